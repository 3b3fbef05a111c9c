package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"cricstats/internal/application"
)

type Config struct {
	TeamName     string
	HistoryLimit int
}

// Shell is the menu-driven console session. It reads one line at a time
// from in and never returns an unvalidated value to the service.
type Shell struct {
	scanner *bufio.Scanner
	out     io.Writer
	service application.MatchService
	logger  application.Logger

	teamName     string
	historyLimit int
}

func NewShell(cfg *Config, in io.Reader, out io.Writer, service application.MatchService, logger application.Logger) *Shell {
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = application.DefaultHistoryLimit
	}
	team := cfg.TeamName
	if team == "" {
		team = "Sri Lanka"
	}
	return &Shell{
		scanner:      bufio.NewScanner(in),
		out:          out,
		service:      service,
		logger:       logger,
		teamName:     team,
		historyLimit: limit,
	}
}

func (s *Shell) Init() error {
	s.logger.Debug("console shell ready, history limit %d", s.historyLimit)
	return nil
}

func (s *Shell) Stop() {
	s.logger.Debug("console shell stopped")
}

// Run drives the menu until the user picks Exit, the input ends, or ctx is
// cancelled between steps.
func (s *Shell) Run(ctx context.Context) error {
	state := StateMainMenu
	for state != StateExit {
		if ctx.Err() != nil {
			return nil
		}

		next, err := s.step(state)
		if errors.Is(err, io.EOF) {
			s.logger.Info("input closed in state %s", state)
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		s.logger.Debug("state %s -> %s", state, next)
		state = next
	}

	fmt.Fprintln(s.out, "Goodbye!")
	return nil
}

func (s *Shell) step(state State) (State, error) {
	var err error
	switch state {
	case StateMainMenu:
		return s.handleMainMenu()
	case StateTrackMatch:
		err = s.handleTrackMatch()
	case StateViewHistory:
		err = s.handleViewHistory()
	case StateViewStats:
		err = s.handleViewStats()
	default:
		return StateExit, fmt.Errorf("unknown shell state %q", state)
	}
	if err != nil {
		return state, err
	}

	if _, err := s.readLine("\nPress Enter to continue..."); err != nil {
		return state, err
	}
	return StateMainMenu, nil
}
