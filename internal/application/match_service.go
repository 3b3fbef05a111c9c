package application

import (
	"errors"
	"fmt"
	"time"

	"cricstats/internal/models"
	"cricstats/internal/repository"
	"cricstats/internal/validation"
)

type MatchServiceImpl struct {
	repo       repository.Match
	commentary CommentaryProvider
	now        func() time.Time
	logger     Logger
}

func NewMatchServiceImpl(repo repository.Match, commentary CommentaryProvider, clock func() time.Time, logger Logger) *MatchServiceImpl {
	if clock == nil {
		clock = time.Now
	}
	return &MatchServiceImpl{
		repo:       repo,
		commentary: commentary,
		now:        clock,
		logger:     logger,
	}
}

// MatchInput is a fully validated set of answers from the match form.
type MatchInput struct {
	Opponent      string
	Runs          int
	Overs         float64
	Result        models.Result
	PlayerOfMatch string
}

type MatchSummary struct {
	Record         models.MatchRecord
	RunRate        float64
	ProjectedScore int
	PlayStyle      string
	Commentary     string

	// EnteredOpponent is set when the opponent was matched to an earlier
	// spelling from the log.
	EnteredOpponent string

	SavedTo      string
	TotalMatches int
	// SaveErr is the append failure, if any. The summary is still valid.
	SaveErr error
}

// TrackMatch builds the record, computes the summary figures and appends the
// record to the log. A failed append is reported in SaveErr rather than as the
// returned error so the caller can still show the summary.
func (s *MatchServiceImpl) TrackMatch(input MatchInput) (*MatchSummary, error) {
	record := models.MatchRecord{
		Timestamp:     s.now(),
		Opponent:      input.Opponent,
		Runs:          input.Runs,
		Overs:         input.Overs,
		Result:        input.Result,
		PlayerOfMatch: input.PlayerOfMatch,
	}
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match: %w", err)
	}

	summary := &MatchSummary{}
	if known, ok := s.matchKnownOpponent(record.Opponent); ok && known != record.Opponent {
		summary.EnteredOpponent = record.Opponent
		record.Opponent = known
	}

	summary.Record = record
	summary.RunRate = RunRate(record.Runs, record.Overs)
	summary.ProjectedScore = ProjectedScore(summary.RunRate)
	summary.PlayStyle = PlayStyle(summary.RunRate)
	if s.commentary != nil {
		summary.Commentary = s.commentary.Pick()
	}

	if err := s.repo.Append(record); err != nil {
		s.logger.Error("failed to append match: %v", err)
		summary.SaveErr = err
		return summary, nil
	}
	s.logger.Info("match saved: SL vs %s, %d/%v", record.Opponent, record.Runs, record.Overs)

	summary.SavedTo = s.repo.Path()
	total, err := s.repo.Count()
	if err != nil {
		s.logger.Warn("failed to count matches: %v", err)
	}
	summary.TotalMatches = total
	return summary, nil
}

func (s *MatchServiceImpl) RecentHistory(limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	lines, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	return lastN(lines, limit), nil
}

func (s *MatchServiceImpl) Statistics() (*StatsReport, error) {
	lines, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}

	report := ComputeStats(lines)
	if !report.HasBasic {
		s.logger.Warn("no parsable runs/overs in %d lines", len(lines))
	}
	if !report.HasResults {
		s.logger.Warn("no parsable results in %d lines", len(lines))
	}
	return report, nil
}

// KnownOpponents lists opponent spellings from the log in first-seen order.
func (s *MatchServiceImpl) KnownOpponents() ([]string, error) {
	lines, err := s.repo.LoadAll()
	if errors.Is(err, repository.ErrNoData) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, line := range lines {
		f, err := models.ParseLine(line)
		if err != nil {
			continue
		}
		name, err := f.Opponent()
		if err != nil {
			continue
		}
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names, nil
}

// matchKnownOpponent finds an earlier spelling of name that differs only in
// case or spacing.
func (s *MatchServiceImpl) matchKnownOpponent(name string) (string, bool) {
	known, err := s.KnownOpponents()
	if err != nil {
		s.logger.Warn("failed to load known opponents: %v", err)
		return "", false
	}
	return validation.FindName(name, known)
}
