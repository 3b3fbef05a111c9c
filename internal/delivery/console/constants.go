package console

type State string

const (
	StateMainMenu    State = "main_menu"
	StateTrackMatch  State = "track_match"
	StateViewHistory State = "view_history"
	StateViewStats   State = "view_stats"
	StateExit        State = "exit"
)

// Main menu choices
var menuTransitions = map[int]State{
	1: StateTrackMatch,
	2: StateViewHistory,
	3: StateViewStats,
	4: StateExit,
}

const (
	menuMin = 1
	menuMax = 4
)

const banner = `
   _____     _    _ _   _____       _
  / ____|   | |  | | | |_   _|     | |
 | |    _ __| |  | | |   | |  _ __ | | ___
 | |   | '__| |  | | |   | | | '_ \| |/ __|
 | |___| |  | |__| | |  _| |_| | | | | (__
  \_____|_|   \____/|_| |_____|_| |_|_|\___|`

const menuText = `
1. Track New Match
2. View History
3. View Statistics
4. Exit`
