package console

import (
	"errors"
	"fmt"

	"cricstats/internal/application"
	"cricstats/internal/models"
	"cricstats/internal/repository"
)

func (s *Shell) handleMainMenu() (State, error) {
	fmt.Fprintf(s.out, "\n🏏 %s Cricket Score Tracker\n", s.teamName)
	fmt.Fprintln(s.out, banner)
	fmt.Fprintln(s.out, menuText)

	choice, err := s.readBoundedInteger("Choice: ", menuMin, menuMax)
	if err != nil {
		return StateMainMenu, err
	}
	return menuTransitions[choice], nil
}

func (s *Shell) handleTrackMatch() error {
	input, err := s.readMatchInput()
	if err != nil {
		return err
	}

	summary, err := s.service.TrackMatch(input)
	if err != nil {
		// Input already passed the validators, so this is a bug rather than
		// a user mistake.
		s.logger.Error("track match rejected validated input: %v", err)
		fmt.Fprintf(s.out, "💥 Could not record match: %v\n", err)
		return nil
	}

	PrintSummary(s.out, summary)
	return nil
}

func (s *Shell) readMatchInput() (application.MatchInput, error) {
	var (
		in  application.MatchInput
		err error
	)
	if in.Opponent, err = s.readNonEmptyName("Opponent Team: ", models.MaxNameLength); err != nil {
		return in, err
	}
	if in.Runs, err = s.readBoundedInteger("Enter total runs: ", 0, models.MaxRuns); err != nil {
		return in, err
	}
	prompt := fmt.Sprintf("Enter overs (%v-%v): ", models.MinOvers, models.MaxOvers)
	if in.Overs, err = s.readBoundedReal(prompt, models.MinOvers, models.MaxOvers); err != nil {
		return in, err
	}
	if in.PlayerOfMatch, err = s.readNonEmptyName("Player of the match: ", models.MaxNameLength); err != nil {
		return in, err
	}
	if in.Result, err = s.readResultCode("Match result (W/L/D): "); err != nil {
		return in, err
	}
	return in, nil
}

func (s *Shell) handleViewHistory() error {
	lines, err := s.service.RecentHistory(s.historyLimit)
	if errors.Is(err, repository.ErrNoData) {
		fmt.Fprintln(s.out, noMatchesMessage)
		return nil
	}
	if err != nil {
		s.logger.Error("failed to load history: %v", err)
		fmt.Fprintf(s.out, "⚠️ Could not load match history: %v\n", err)
		return nil
	}

	PrintHistory(s.out, lines)
	return nil
}

func (s *Shell) handleViewStats() error {
	report, err := s.service.Statistics()
	if errors.Is(err, repository.ErrNoData) {
		fmt.Fprintln(s.out, noStatsMessage)
		return nil
	}
	if err != nil {
		s.logger.Error("failed to load statistics: %v", err)
		fmt.Fprintf(s.out, "⚠️ Could not load match statistics: %v\n", err)
		return nil
	}

	PrintStats(s.out, report)
	return nil
}
