package dash

import (
	tea "github.com/charmbracelet/bubbletea"

	"vigil/internal/state"
)

// Key bindings as constants for consistency.
const (
	KeyQuit         = "q"
	KeyQuitAlt      = "ctrl+c"
	KeyUp           = "up"
	KeyUpAlt        = "k"
	KeyDown         = "down"
	KeyDownAlt      = "j"
	KeySwitchPanel  = "tab"
	KeyNextTab      = "]"
	KeyPrevTab      = "["
	KeyFilter       = "r"
	KeyPin          = " "
	KeyNextTheme    = "t"
	KeyPrevTheme    = "T"
	KeyToggleHelp   = "?"
	KeyCloseOverlay = "esc"
)

// commandFor translates a key press into a semantic command. CmdNone
// means the key is not bound.
func commandFor(msg tea.KeyMsg) state.Command {
	switch msg.String() {
	case KeyQuit, KeyQuitAlt:
		return state.CmdQuit
	case KeyUp, KeyUpAlt:
		return state.CmdNavigateUp
	case KeyDown, KeyDownAlt:
		return state.CmdNavigateDown
	case KeySwitchPanel:
		return state.CmdSwitchPanel
	case KeyNextTab:
		return state.CmdNextTab
	case KeyPrevTab:
		return state.CmdPreviousTab
	case KeyFilter:
		return state.CmdToggleFilter
	case KeyPin:
		return state.CmdToggleSelection
	case KeyNextTheme:
		return state.CmdNextTheme
	case KeyPrevTheme:
		return state.CmdPreviousTheme
	default:
		return state.CmdNone
	}
}
