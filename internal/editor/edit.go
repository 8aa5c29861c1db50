package editor

import (
	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/event"
	"github.com/bethropolis/inkblock/internal/locator"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/types"
)

// InsertRune types ch over the active range.
func (e *Editor) InsertRune(ch rune) {
	e.apply(block.InsertSingle(e.block, e.Selection(), ch))
}

// InsertText inserts text from outside the editor. Every inserted character
// gets default metadata.
func (e *Editor) InsertText(text string) {
	if text == "" {
		return
	}
	e.apply(block.InsertMultiple(e.block, e.Selection(), text, nil))
}

// Backspace deletes the selection, or the character before the caret when
// there is none.
func (e *Editor) Backspace() {
	if e.DeleteSelection() {
		return
	}
	e.apply(block.DeleteOne(e.block, e.Selection()))
}

// DeleteSelection removes the selected text. It reports false when the
// active range is a caret.
func (e *Editor) DeleteSelection() bool {
	if !e.HasSelection() {
		return false
	}
	e.apply(block.DeleteRange(e.block, e.Selection()))
	return true
}

// ToggleStyle toggles f over the active range. The selection is kept.
func (e *Editor) ToggleStyle(f style.Flag) {
	e.apply(block.ToggleStyle(e.block, f, e.Selection()))
}

// Copy copies the selection to the clipboard.
func (e *Editor) Copy() bool {
	f, ok := e.clipboard.Copy(e.block, e.Selection())
	if ok {
		e.eventManager.Dispatch(event.TypeClipboardChanged, event.ClipboardChangedData{Text: f.Text})
	}
	return ok
}

// Cut copies the selection to the clipboard and deletes it.
func (e *Editor) Cut() bool {
	out, f, edit, ok := e.clipboard.Cut(e.block, e.Selection())
	if !ok {
		return false
	}
	e.apply(out, edit)
	e.eventManager.Dispatch(event.TypeClipboardChanged, event.ClipboardChangedData{Text: f.Text, Cut: true})
	return true
}

// Paste inserts the clipboard content over the active range.
func (e *Editor) Paste() bool {
	out, edit, ok := e.clipboard.Paste(e.block, e.Selection())
	if ok {
		e.apply(out, edit)
	}
	return ok
}

// Replace swaps in new content from outside the session, keeping the block
// id. Any pending intent is dropped and the selection is clamped.
func (e *Editor) Replace(text string, styles []style.Metadata) {
	e.block = block.Replace(e.block, text, styles)
	e.intent.Reset()
	e.lastEdit = block.Edit{}
	e.SetSelection(e.Selection())
	e.eventManager.Dispatch(event.TypeBlockModified, event.BlockModifiedData{BlockID: e.block.ID()})
}

// RestoreCaret consumes the pending intent and returns where the caret
// belongs in the current runs. It reports false when no edit is pending.
func (e *Editor) RestoreCaret() (types.Selection, bool) {
	if _, ok := e.intent.Pending(); !ok {
		return types.Selection{}, false
	}
	defer e.intent.Reset()

	sel, ok := locator.Restore(e.block.Runs(), e.lastEdit)
	if !ok {
		logger.DebugTagf("editor", "no caret target for %v in empty block", e.lastEdit.Intent)
	}
	return sel, ok
}

func (e *Editor) apply(out block.Block, edit block.Edit) {
	changed := out.Text() != e.block.Text() || !equalStyles(out, e.block)
	e.block = out
	e.lastEdit = edit
	e.intent.Set(edit.Intent)

	logger.DebugTagf("editor", "%v at %d len %d", edit.Intent, edit.Offset, edit.Length)
	if changed {
		e.eventManager.Dispatch(event.TypeBlockModified, event.BlockModifiedData{
			BlockID: e.block.ID(),
			Edit:    edit,
		})
	}
	e.SetSelection(edit.Selection())
}

func equalStyles(a, b block.Block) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		x, _ := a.StyleAt(i)
		y, _ := b.StyleAt(i)
		if x != y {
			return false
		}
	}
	return true
}
