package application

const (
	// History limits
	DefaultHistoryLimit = 5
	RecentFormLimit     = 5

	// Projection and play style
	projectedInningsOvers = 20
	aggressiveRunRate     = 6.0

	// Recent form separator
	formSeparator = " → "

	// Excel report configuration
	excelMatchesSheet   = "Matches"
	excelSummarySheet   = "Summary"
	excelOpponentsSheet = "Opponents"
)
