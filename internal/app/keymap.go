package app

// Key binding constants used in handleKey.
const (
	KeyQuit         = "q"
	KeyQuitUpper    = "Q"
	KeyCtrlC        = "ctrl+c"
	KeyTab          = "tab"
	KeyShiftTab     = "shift+tab"
	KeyEsc          = "esc"
	KeyEnter        = "enter"
	KeyUp           = "up"
	KeyDown         = "down"
	KeyJ            = "j"
	KeyK            = "k"
	KeyRefresh      = "r"
	KeyCtrlRefresh  = "ctrl+r"
	KeyAutoEmail    = "e"
	KeySendEmail    = "s"
	KeyToggleOutput = "v"
)

// categoryKeys maps the digit keys to analysis.Categories indexes.
var categoryKeys = map[string]int{
	"1": 0,
	"2": 1,
	"3": 2,
	"4": 3,
	"5": 4,
	"6": 5,
}
