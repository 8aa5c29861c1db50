// internal/input/action.go
package input

import "github.com/bethropolis/inkblock/internal/style"

// Action is an operation requested by the user.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit

	// Caret movement; the Select variants extend the selection instead.
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionSelectLeft
	ActionSelectRight
	ActionSelectHome
	ActionSelectEnd
	ActionSelectAll

	// Text
	ActionInsertRune
	ActionInsertNewLine
	ActionDeleteBackward
	ActionDeleteForward

	// Styles; Flag names the flag to toggle
	ActionToggleStyle

	// Clipboard
	ActionCopy
	ActionCut
	ActionPaste
)

// ActionEvent is a decoded input event with its payload.
type ActionEvent struct {
	Action Action
	Rune   rune       // ActionInsertRune
	Flag   style.Flag // ActionToggleStyle
}
