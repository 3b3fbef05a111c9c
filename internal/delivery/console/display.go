package console

import (
	"fmt"
	"io"

	"cricstats/internal/application"
	"cricstats/internal/models"
)

const (
	noMatchesMessage = "No matches found. Play some games first!"
	noStatsMessage   = "📊 No matches to analyze"
)

func PrintSummary(w io.Writer, summary *application.MatchSummary) {
	r := summary.Record

	fmt.Fprintln(w, "\n📊 MATCH SUMMARY")
	fmt.Fprintln(w, "\nMatch Stats:")
	if summary.EnteredOpponent != "" {
		fmt.Fprintf(w, "(recorded %q as %q)\n", summary.EnteredOpponent, r.Opponent)
	}
	fmt.Fprintf(w, "🏟️ %s vs %s\n", models.TeamCode, r.Opponent)
	fmt.Fprintf(w, "Run Rate: %.2f\n", summary.RunRate)
	fmt.Fprintf(w, "Projected %d-over score: %d\n", int(models.MaxOvers), summary.ProjectedScore)
	fmt.Fprintln(w, playStyleIcon(summary.RunRate)+" "+summary.PlayStyle)
	fmt.Fprintf(w, " %s is the hero today!\n", r.PlayerOfMatch)
	if summary.Commentary != "" {
		fmt.Fprintln(w, summary.Commentary)
	}

	if summary.SaveErr != nil {
		fmt.Fprintf(w, "💥 Failed to save: %v\n", summary.SaveErr)
		return
	}
	fmt.Fprintf(w, "\n✅ Saved to %s\n", summary.SavedTo)
	fmt.Fprintf(w, "📊 Total Matches Recorded: %d\n", summary.TotalMatches)
}

func playStyleIcon(runRate float64) string {
	if application.IsAggressive(runRate) {
		return "💥"
	}
	return "🛡️"
}

func PrintHistory(w io.Writer, lines []string) {
	if len(lines) == 0 {
		fmt.Fprintln(w, noMatchesMessage)
		return
	}

	fmt.Fprintf(w, "\n📜 Match HISTORY of Last %d games\n", len(lines))
	for _, line := range lines {
		fmt.Fprintf(w, "- %s\n", line)
	}
}

func PrintStats(w io.Writer, report *application.StatsReport) {
	fmt.Fprintln(w, "\n📊 MATCH STATISTICS")

	if report.HasBasic {
		fmt.Fprintf(w, "\n📈 Highest Score: %d\n", report.Basic.HighestScore)
		fmt.Fprintf(w, "📉 Average Runs: %d\n", report.Basic.AverageRuns)
		fmt.Fprintf(w, "⚡ Best Run Rate: %.2f\n", report.Basic.BestRunRate)
	} else {
		fmt.Fprintln(w, "\n⚠️ Could not calculate basic match statistics")
	}

	if report.HasResults {
		fmt.Fprintf(w, "\n🏆 Win Rate: %.1f%%\n", report.Results.WinRate)
		fmt.Fprintf(w, "💔 Loss Rate: %.1f%%\n", report.Results.LossRate)
		fmt.Fprintf(w, "🤝 Draws: %d\n", report.Results.Draws)
	} else {
		fmt.Fprintln(w, "\n⚠️ Could not calculate win/loss statistics")
	}

	if len(report.Form) > 0 {
		fmt.Fprintf(w, "\n🔥 Recent Form (Last %d): %s\n", application.RecentFormLimit, application.FormatForm(report.Form))
	} else {
		fmt.Fprintln(w, "\n⚠️ Could not determine recent form")
	}
}
