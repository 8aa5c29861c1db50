// Package types holds the small value types shared between the block model,
// the selection locator and the front end.
package types

import "fmt"

// Direction of an active selection relative to its anchor.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	}
	return "none"
}

// Range is the active caret or selection on one block, in absolute text offsets.
// Offset is always the lower end regardless of Direction.
type Range struct {
	Offset    int
	Length    int
	Direction Direction
}

// Caret returns a collapsed range at offset.
func Caret(offset int) Range {
	return Range{Offset: offset}
}

// End is the exclusive upper offset.
func (r Range) End() int { return r.Offset + r.Length }

// Collapsed reports whether the range is a plain caret.
func (r Range) Collapsed() bool { return r.Length == 0 }

// Clamp confines the range to a text of n units: both ends are clamped into
// [0, n] and a negative length becomes zero.
func (r Range) Clamp(n int) Range {
	if n < 0 {
		n = 0
	}
	start := clamp(r.Offset, 0, n)
	end := start
	switch {
	case r.Length <= 0:
	case r.Offset < 0:
		end = clamp(r.Offset+r.Length, start, n)
	case r.Length > n-start:
		end = n
	default:
		end = start + r.Length
	}
	out := Range{Offset: start, Length: end - start, Direction: r.Direction}
	if out.Length == 0 {
		out.Direction = DirectionNone
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("%d+%d %s", r.Offset, r.Length, r.Direction)
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

// RunPosition addresses a point as run index plus offset inside that run,
// the coordinate system a renderer of style runs works in.
type RunPosition struct {
	Run    int
	Offset int
}

func (p RunPosition) String() string {
	return fmt.Sprintf("run %d @%d", p.Run, p.Offset)
}

// SelectionReport is the live selection as seen by the rendering layer.
type SelectionReport struct {
	AnchorRun    int
	AnchorOffset int
	FocusRun     int
	FocusOffset  int
}

// NoSelection means there is no selection inside any run; the caret is
// conceptually at the end of the text.
var NoSelection = SelectionReport{AnchorRun: -1, FocusRun: -1}

// IsNone reports whether r is the no-selection sentinel.
func (r SelectionReport) IsNone() bool {
	return r.AnchorRun < 0 || r.FocusRun < 0
}

// Anchor returns the anchor point.
func (r SelectionReport) Anchor() RunPosition {
	return RunPosition{Run: r.AnchorRun, Offset: r.AnchorOffset}
}

// Focus returns the focus point.
func (r SelectionReport) Focus() RunPosition {
	return RunPosition{Run: r.FocusRun, Offset: r.FocusOffset}
}

// Report builds a SelectionReport from two run positions.
func Report(anchor, focus RunPosition) SelectionReport {
	return SelectionReport{
		AnchorRun:    anchor.Run,
		AnchorOffset: anchor.Offset,
		FocusRun:     focus.Run,
		FocusOffset:  focus.Offset,
	}
}

// Selection is a restored selection expressed in run coordinates.
type Selection struct {
	Anchor RunPosition
	Focus  RunPosition
}

// Collapsed reports whether anchor and focus coincide.
func (c Selection) Collapsed() bool { return c.Anchor == c.Focus }
