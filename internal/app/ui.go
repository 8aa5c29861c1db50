package app

import (
	"github.com/bethropolis/inkblock/internal/locator"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/tui"
	"github.com/bethropolis/inkblock/internal/types"
)

// drawEditor redraws the block and status bar and places the cursor.
func (a *App) drawEditor() {
	th := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	viewHeight := height - a.cfg.Editor.StatusBarHeight

	logger.DebugTagf("draw", "screen %dx%d, view height %d", width, height, viewHeight)

	a.tuiManager.Clear()
	b := a.editor.Block()
	a.layout = tui.DrawBlock(screen, tui.Rect{Width: width, Height: viewHeight}, b.Runs(), b.Runes(), th, a.editor.Selection())

	a.updateStatusBarContent()
	a.statusBar.Draw(screen, width, height)

	tui.DrawCursor(screen, a.layout, a.caretPosition())
	a.tuiManager.Show()
}

// caretPosition is where the terminal cursor goes. After an edit the
// selection is restored from the pending intent against the new runs and
// reported back to the editor; otherwise the cursor follows the focus.
func (a *App) caretPosition() types.RunPosition {
	runs := a.editor.Runs()
	if sel, ok := a.editor.RestoreCaret(); ok {
		a.editor.Select(types.Report(sel.Anchor, sel.Focus))
		return sel.Focus
	}
	p, _ := locator.Position(runs, a.editor.Focus())
	return p
}

// updateStatusBarContent pushes the editor state to the status bar.
func (a *App) updateStatusBarContent() {
	b := a.editor.Block()
	a.statusBar.SetBlockInfo(b.ID(), b.Len())
	a.statusBar.SetSelectionInfo(a.editor.Selection(), a.editor.ActiveStyle())
	a.statusBar.SetLastIntent(a.editor.LastIntent())
}
