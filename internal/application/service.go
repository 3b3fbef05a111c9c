package application

import (
	"time"

	"cricstats/internal/repository"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type CommentaryProvider interface {
	Pick() string
}

type MatchService interface {
	TrackMatch(input MatchInput) (*MatchSummary, error)
	RecentHistory(limit int) ([]string, error)
	Statistics() (*StatsReport, error)
	ExcelReport() ([]byte, error)
}

type Service struct {
	MatchService MatchService
}

func NewService(repos *repository.Repository, commentary CommentaryProvider, clock func() time.Time, logger Logger) *Service {
	return &Service{
		MatchService: NewMatchServiceImpl(repos.Match, commentary, clock, logger),
	}
}
