package models

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"
)

const (
	MaxRuns       = 300
	MinOvers      = 0.1
	MaxOvers      = 20.0
	MaxNameLength = 30
)

type Result int

const (
	ResultUnknown Result = iota
	ResultWin
	ResultLoss
	ResultDraw
)

// Code is the single-letter form written to the match log.
func (r Result) Code() string {
	switch r {
	case ResultWin:
		return "W"
	case ResultLoss:
		return "L"
	case ResultDraw:
		return "D"
	default:
		return ""
	}
}

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "WIN"
	case ResultLoss:
		return "LOSS"
	case ResultDraw:
		return "DRAW"
	default:
		return "UNKNOWN"
	}
}

// ResultFromCode maps an exact log code back to a Result.
func ResultFromCode(code string) (Result, bool) {
	switch code {
	case "W":
		return ResultWin, true
	case "L":
		return ResultLoss, true
	case "D":
		return ResultDraw, true
	default:
		return ResultUnknown, false
	}
}

type MatchRecord struct {
	Timestamp     time.Time `json:"timestamp"`
	Opponent      string    `json:"opponent"`
	Runs          int       `json:"runs"`
	Overs         float64   `json:"overs"`
	Result        Result    `json:"result"`
	PlayerOfMatch string    `json:"player_of_match"`
}

// Validate checks the bounds every persisted record must satisfy.
func (m MatchRecord) Validate() error {
	if err := validName("opponent", m.Opponent); err != nil {
		return err
	}
	if err := validName("player of the match", m.PlayerOfMatch); err != nil {
		return err
	}
	if m.Runs < 0 || m.Runs > MaxRuns {
		return fmt.Errorf("runs %d out of range 0-%d", m.Runs, MaxRuns)
	}
	if math.IsNaN(m.Overs) || m.Overs < MinOvers || m.Overs > MaxOvers {
		return fmt.Errorf("overs %v out of range %v-%v", m.Overs, MinOvers, MaxOvers)
	}
	if m.Result.Code() == "" {
		return fmt.Errorf("unknown match result")
	}
	return nil
}

func validName(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is empty", field)
	}
	if utf8.RuneCountInString(v) > MaxNameLength {
		return fmt.Errorf("%s longer than %d characters", field, MaxNameLength)
	}
	return nil
}
