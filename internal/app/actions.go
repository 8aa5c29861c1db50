package app

import (
	"github.com/bethropolis/inkblock/internal/input"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/types"
	"github.com/gdamore/tcell/v2"
)

// handleAction runs an input action against the editor and reports whether
// the screen needs a redraw.
func (a *App) handleAction(ev input.ActionEvent) bool {
	ed := a.editor
	switch ev.Action {
	case input.ActionQuit:
		a.Quit()
		return false

	case input.ActionMoveLeft:
		ed.MoveCaret(-1, false)
	case input.ActionMoveRight:
		ed.MoveCaret(1, false)
	case input.ActionMoveHome:
		ed.Home(false)
	case input.ActionMoveEnd:
		ed.End(false)
	case input.ActionSelectLeft:
		ed.MoveCaret(-1, true)
	case input.ActionSelectRight:
		ed.MoveCaret(1, true)
	case input.ActionSelectHome:
		ed.Home(true)
	case input.ActionSelectEnd:
		ed.End(true)
	case input.ActionSelectAll:
		ed.SelectAll()

	case input.ActionInsertRune:
		ed.InsertRune(ev.Rune)
	case input.ActionInsertNewLine:
		ed.InsertRune('\n')
	case input.ActionDeleteBackward:
		ed.Backspace()
	case input.ActionDeleteForward:
		if !ed.DeleteSelection() && ed.Focus() < ed.Block().Len() {
			ed.MoveCaret(1, false)
			ed.Backspace()
		}

	case input.ActionToggleStyle:
		if !ed.HasSelection() {
			a.statusBar.SetTemporaryMessage("select text to toggle %s", ev.Flag)
			return true
		}
		ed.ToggleStyle(ev.Flag)

	case input.ActionCopy:
		if !ed.Copy() {
			a.statusBar.SetTemporaryMessage("nothing selected")
		}
	case input.ActionCut:
		if !ed.Cut() {
			a.statusBar.SetTemporaryMessage("nothing selected")
		}
	case input.ActionPaste:
		if !ed.Paste() {
			a.statusBar.SetTemporaryMessage("clipboard is empty")
		}

	default:
		logger.DebugTagf("app", "unhandled action %v", ev.Action)
		return false
	}
	return true
}

// handleMouse turns a primary button gesture into a selection report: the
// press sets the anchor and every drag moves the focus.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	m := a.mouse.Process(ev)
	if a.layout == nil {
		return false
	}
	switch m.Kind {
	case input.MousePress:
		p, ok := a.layout.PositionAt(m.X, m.Y)
		if !ok {
			return false
		}
		a.mouseAnchor = p
		a.editor.Select(types.Report(p, p))
	case input.MouseDrag:
		p, ok := a.layout.PositionAt(m.X, m.Y)
		if !ok {
			return false
		}
		a.editor.Select(types.Report(a.mouseAnchor, p))
	default:
		return false
	}
	return true
}
