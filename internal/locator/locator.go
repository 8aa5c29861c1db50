// Package locator converts between run coordinates, as reported by a renderer
// that draws one element per style run, and absolute offsets into block text.
package locator

import (
	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/intent"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/types"
)

// Locate maps a selection report onto an absolute range over a text of
// textLen units split into runs. The no-selection sentinel, or a report
// naming a run that does not exist, puts the caret at the end of the text.
func Locate(runs []style.Run, textLen int, rep types.SelectionReport) types.Range {
	if rep.IsNone() || rep.AnchorRun >= len(runs) || rep.FocusRun >= len(runs) {
		if !rep.IsNone() {
			logger.DebugTagf("locator", "report %+v outside %d runs, caret to end", rep, len(runs))
		}
		return types.Caret(textLen)
	}

	anchor, focus := rep.AnchorRun, rep.FocusRun
	anchorOff := clampIntra(runs[anchor], rep.AnchorOffset)
	focusOff := clampIntra(runs[focus], rep.FocusOffset)

	var r types.Range
	switch {
	case anchor == focus:
		r = types.Range{
			Offset: runs[anchor].Start + min(anchorOff, focusOff),
			Length: abs(anchorOff - focusOff),
		}
		if anchorOff < focusOff {
			r.Direction = types.DirectionForward
		} else if anchorOff > focusOff {
			r.Direction = types.DirectionBackward
		}
	case anchor < focus:
		r = types.Range{
			Offset:    runs[anchor].Start + anchorOff,
			Length:    span(runs, anchor, anchorOff, focus, focusOff),
			Direction: types.DirectionForward,
		}
	default:
		r = types.Range{
			Offset:    runs[focus].Start + focusOff,
			Length:    span(runs, focus, focusOff, anchor, anchorOff),
			Direction: types.DirectionBackward,
		}
	}
	return r.Clamp(textLen)
}

// span counts the units from (from, fromOff) to (to, toOff) with from < to:
// the rest of the first run, every run strictly between, and toOff units of
// the last run.
func span(runs []style.Run, from, fromOff, to, toOff int) int {
	n := runs[from].Len() - fromOff
	for k := from + 1; k < to; k++ {
		n += runs[k].Len()
	}
	return n + toOff
}

// Position finds the run coordinate of an absolute offset. An offset on a run
// boundary belongs to the run it ends, so the end of the text maps to the
// last run at its full length. It reports false when there are no runs.
func Position(runs []style.Run, offset int) (types.RunPosition, bool) {
	if len(runs) == 0 {
		return types.RunPosition{}, false
	}
	if offset < 0 {
		offset = 0
	}
	for k, r := range runs {
		if offset <= r.End {
			return types.RunPosition{Run: k, Offset: offset - r.Start}, true
		}
	}
	last := len(runs) - 1
	return types.RunPosition{Run: last, Offset: runs[last].Len()}, true
}

// Offset is the inverse of Position: the absolute offset of a run coordinate.
func Offset(runs []style.Run, p types.RunPosition) (int, bool) {
	if p.Run < 0 || p.Run >= len(runs) {
		return 0, false
	}
	return runs[p.Run].Start + clampIntra(runs[p.Run], p.Offset), true
}

// Restore computes where the caret goes after e, given the runs recomputed
// from the edited block. Inserts land after the inserted text, deletes at the
// deletion start, and a style toggle keeps both selection endpoints. It
// reports false when there is nothing to restore.
func Restore(runs []style.Run, e block.Edit) (types.Selection, bool) {
	if e.Intent == intent.None {
		return types.Selection{}, false
	}
	sel := e.Selection()
	start, ok := Position(runs, sel.Offset)
	if !ok {
		return types.Selection{}, false
	}
	if e.Intent != intent.StyleToggle || sel.Collapsed() {
		return types.Selection{Anchor: start, Focus: start}, true
	}

	end, _ := Position(runs, sel.End())
	if sel.Direction == types.DirectionBackward {
		return types.Selection{Anchor: end, Focus: start}, true
	}
	return types.Selection{Anchor: start, Focus: end}, true
}

func clampIntra(r style.Run, off int) int {
	if off < 0 {
		return 0
	}
	if off > r.Len() {
		return r.Len()
	}
	return off
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
