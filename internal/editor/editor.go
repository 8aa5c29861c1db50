// Package editor is a single-block editing session. It owns the block, the
// active selection and the pending edit intent, and turns user actions into
// block operations.
package editor

import (
	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/clipboard"
	"github.com/bethropolis/inkblock/internal/event"
	"github.com/bethropolis/inkblock/internal/intent"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/types"
)

// Editor is an editing session over a single block. It owns the block, the
// selection and the pending edit intent, and reports changes through the
// event manager.
type Editor struct {
	block block.Block

	// Selection state as absolute offsets. anchor == focus is a caret.
	anchor int
	focus  int

	intent   intent.Tracker
	lastEdit block.Edit

	clipboard    *clipboard.Manager
	eventManager *event.Manager
}

// NewEditor creates an editing session over b with the caret at the end of
// the text. A nil clip gets an in-memory clipboard.
func NewEditor(b block.Block, clip *clipboard.Manager) *Editor {
	if clip == nil {
		clip = clipboard.NewManager(nil)
	}
	return &Editor{
		block:     b,
		anchor:    b.Len(),
		focus:     b.Len(),
		clipboard: clip,
	}
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// Block returns the current block value.
func (e *Editor) Block() block.Block { return e.block }

// Runs returns the style runs of the current block.
func (e *Editor) Runs() []style.Run { return e.block.Runs() }

// Attributes returns the range attribute export of the current block.
func (e *Editor) Attributes() []style.Attribute { return block.Attributes(e.block) }

// LastIntent is the most recent edit kind, kept after the caret is restored.
func (e *Editor) LastIntent() intent.Intent { return e.intent.Last() }

// Selection returns the active range.
func (e *Editor) Selection() types.Range {
	switch {
	case e.anchor < e.focus:
		return types.Range{Offset: e.anchor, Length: e.focus - e.anchor, Direction: types.DirectionForward}
	case e.anchor > e.focus:
		return types.Range{Offset: e.focus, Length: e.anchor - e.focus, Direction: types.DirectionBackward}
	}
	return types.Caret(e.focus)
}

// HasSelection reports whether the active range covers any text.
func (e *Editor) HasSelection() bool { return e.anchor != e.focus }

// ActiveStyle is the metadata typing at the caret would produce, or for a
// selection the flags shared by every selected character.
func (e *Editor) ActiveStyle() style.Metadata {
	r := e.Selection()
	if r.Collapsed() {
		if m, ok := e.block.StyleAt(r.Offset - 1); ok {
			return m
		}
		return style.Default
	}

	styles := e.block.Styles()
	common := styles[r.Offset]
	for _, m := range styles[r.Offset+1 : r.End()] {
		common &= m
	}
	return common
}
