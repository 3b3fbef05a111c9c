package application

import (
	"strings"

	"cricstats/internal/models"
)

type BasicStats struct {
	Matches      int
	HighestScore int
	AverageRuns  int
	BestRunRate  float64
}

type ResultBreakdown struct {
	Total    int
	Wins     int
	Losses   int
	Draws    int
	WinRate  float64
	LossRate float64
}

type StatsReport struct {
	Basic      BasicStats
	HasBasic   bool
	Results    ResultBreakdown
	HasResults bool
	Form       []models.Result
}

// ComputeBasicStats folds every line whose runs and overs both parse. ok is
// false when no line qualifies.
func ComputeBasicStats(lines []string) (BasicStats, bool) {
	var (
		stats   BasicStats
		total   int
		bestSet bool
		best    float64
	)

	for _, line := range lines {
		f, err := models.ParseLine(line)
		if err != nil {
			continue
		}
		runs, err := f.Runs()
		if err != nil {
			continue
		}
		overs, err := f.Overs()
		if err != nil {
			continue
		}

		if stats.Matches == 0 || runs > stats.HighestScore {
			stats.HighestScore = runs
		}
		if rr := RunRate(runs, overs); !bestSet || rr > best {
			best, bestSet = rr, true
		}
		total += runs
		stats.Matches++
	}

	if stats.Matches == 0 {
		return BasicStats{}, false
	}
	stats.AverageRuns = int(roundTo(float64(total)/float64(stats.Matches), 0))
	stats.BestRunRate = roundTo(best, 2)
	return stats, true
}

// ComputeResultBreakdown counts results over the lines that carry one. Lines
// without a readable result are left out of the denominator.
func ComputeResultBreakdown(lines []string) (ResultBreakdown, bool) {
	var b ResultBreakdown
	for _, line := range lines {
		res, ok := parseResult(line)
		if !ok {
			continue
		}
		switch res {
		case models.ResultWin:
			b.Wins++
		case models.ResultLoss:
			b.Losses++
		case models.ResultDraw:
			b.Draws++
		}
		b.Total++
	}

	if b.Total == 0 {
		return ResultBreakdown{}, false
	}
	b.WinRate = roundTo(calculateRate(b.Wins, b.Total), 1)
	b.LossRate = roundTo(calculateRate(b.Losses, b.Total), 1)
	return b, true
}

// ComputeRecentForm returns the results of the last n lines in chronological
// order. Lines without a result are dropped, not replaced.
func ComputeRecentForm(lines []string, n int) []models.Result {
	var form []models.Result
	for _, line := range lastN(lines, n) {
		if res, ok := parseResult(line); ok {
			form = append(form, res)
		}
	}
	return form
}

func FormatForm(form []models.Result) string {
	names := make([]string, 0, len(form))
	for _, r := range form {
		names = append(names, r.String())
	}
	return strings.Join(names, formSeparator)
}

// ComputeStats runs the three analyses independently over the same lines.
func ComputeStats(lines []string) *StatsReport {
	report := &StatsReport{}
	report.Basic, report.HasBasic = ComputeBasicStats(lines)
	report.Results, report.HasResults = ComputeResultBreakdown(lines)
	report.Form = ComputeRecentForm(lines, RecentFormLimit)
	return report
}

func parseResult(line string) (models.Result, bool) {
	f, err := models.ParseLine(line)
	if err != nil {
		return models.ResultUnknown, false
	}
	res, err := f.Result()
	if err != nil {
		return models.ResultUnknown, false
	}
	return res, true
}

func lastN(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
