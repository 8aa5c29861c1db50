package editor

import (
	"github.com/bethropolis/inkblock/internal/event"
	"github.com/bethropolis/inkblock/internal/locator"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/types"
)

// Focus is the offset of the moving end of the selection, where the caret is.
func (e *Editor) Focus() int { return e.focus }

// Select adopts a selection reported in run coordinates by the renderer.
func (e *Editor) Select(rep types.SelectionReport) {
	r := locator.Locate(e.block.Runs(), e.block.Len(), rep)
	logger.DebugTagf("editor", "report %+v -> %s", rep, r)
	e.SetSelection(r)
}

// SetSelection makes r, clamped to the text, the active range.
func (e *Editor) SetSelection(r types.Range) {
	r = r.Clamp(e.block.Len())
	if r.Direction == types.DirectionBackward {
		e.setAnchorFocus(r.End(), r.Offset)
		return
	}
	e.setAnchorFocus(r.Offset, r.End())
}

// MoveCaret moves the focus by delta units. With extend the anchor stays put;
// without it a selection first collapses to the side it is moving towards.
func (e *Editor) MoveCaret(delta int, extend bool) {
	if !extend && e.HasSelection() && delta != 0 {
		r := e.Selection()
		if delta < 0 {
			e.setAnchorFocus(r.Offset, r.Offset)
		} else {
			e.setAnchorFocus(r.End(), r.End())
		}
		return
	}
	focus := clamp(e.focus+delta, 0, e.block.Len())
	if extend {
		e.setAnchorFocus(e.anchor, focus)
	} else {
		e.setAnchorFocus(focus, focus)
	}
}

// Home moves the focus to the start of the text.
func (e *Editor) Home(extend bool) {
	if extend {
		e.setAnchorFocus(e.anchor, 0)
		return
	}
	e.setAnchorFocus(0, 0)
}

// End moves the focus to the end of the text.
func (e *Editor) End(extend bool) {
	n := e.block.Len()
	if extend {
		e.setAnchorFocus(e.anchor, n)
		return
	}
	e.setAnchorFocus(n, n)
}

// SelectAll selects the whole text forward.
func (e *Editor) SelectAll() {
	e.setAnchorFocus(0, e.block.Len())
}

func (e *Editor) setAnchorFocus(anchor, focus int) {
	if anchor == e.anchor && focus == e.focus {
		return
	}
	e.anchor, e.focus = anchor, focus
	e.eventManager.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{
		BlockID: e.block.ID(),
		Range:   e.Selection(),
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
