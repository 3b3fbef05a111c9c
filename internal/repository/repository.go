package repository

import (
	"errors"

	"cricstats/internal/models"
)

var (
	// ErrNoData means nothing has been recorded yet. It is a normal state.
	ErrNoData = errors.New("no matches recorded yet")
	// ErrWriteFailed wraps any failure to append a record.
	ErrWriteFailed = errors.New("failed to save match")
)

type Match interface {
	Append(record models.MatchRecord) error
	LoadAll() ([]string, error)
	Count() (int, error)
	Path() string
}

type Repository struct {
	Match
}

func NewRepository(cfg *Config) (*Repository, error) {
	store, err := NewMatchFile(cfg)
	if err != nil {
		return nil, err
	}
	return &Repository{
		Match: store,
	}, nil
}
