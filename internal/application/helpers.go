package application

import "math"

// RunRate is runs per over, 0 when no overs were bowled.
func RunRate(runs int, overs float64) float64 {
	if overs == 0 {
		return 0
	}
	return float64(runs) / overs
}

// ProjectedScore extrapolates a run rate to a full 20-over innings.
func ProjectedScore(runRate float64) int {
	return int(math.Round(runRate * projectedInningsOvers))
}

func IsAggressive(runRate float64) bool {
	return runRate > aggressiveRunRate
}

func PlayStyle(runRate float64) string {
	if IsAggressive(runRate) {
		return "Aggressive batting!"
	}
	return "Defensive strategy"
}

func calculateRate(part, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return (float64(part) / float64(total)) * 100
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func compareOpponentsByPriority(o1, o2 *OpponentStats) bool {
	if o1.Matches != o2.Matches {
		return o1.Matches > o2.Matches
	}

	// Then by win rate
	wr1 := calculateRate(o1.Wins, o1.Matches)
	wr2 := calculateRate(o2.Wins, o2.Matches)
	if wr1 != wr2 {
		return wr1 > wr2
	}

	return o1.Name < o2.Name
}
