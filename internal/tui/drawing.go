// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/inkblock/internal/locator"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/theme"
	"github.com/bethropolis/inkblock/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

// Rect is a screen area.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

type cell struct {
	x, y  int
	width int
}

// Layout records where each text unit of a drawn block landed, so screen
// coordinates can be turned back into run coordinates and back.
type Layout struct {
	area  Rect
	runs  []style.Run
	cells []cell // one per text unit
	end   cell   // caret slot after the last unit
}

// unitWidth is the number of columns ch occupies when drawn at column col of
// a row.
func unitWidth(ch rune, col int) int {
	switch ch {
	case '\t':
		return tabWidth - col%tabWidth
	case '\n':
		return 0
	}
	if w := uniseg.StringWidth(string(ch)); w > 0 {
		return w
	}
	return 1
}

// DrawBlock draws text run by run into area, wrapping at the area width.
// Characters inside sel use the theme's selection style. The returned layout
// covers every unit, including those below the visible area.
func DrawBlock(s tcell.Screen, area Rect, runs []style.Run, text []rune, th *theme.Theme, sel types.Range) *Layout {
	l := &Layout{
		area:  area,
		runs:  runs,
		cells: make([]cell, len(text)),
	}
	if area.Width <= 0 || area.Height <= 0 {
		return l
	}

	defaultStyle := th.GetStyle(theme.StyleDefault)
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			s.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}

	col, row := 0, 0
	for _, run := range runs {
		runStyle := th.Resolve(run.Metadata)
		selStyle := th.Selected(run.Metadata)

		for i := run.Start; i < run.End && i < len(text); i++ {
			ch := text[i]
			w := unitWidth(ch, col)
			if col > 0 && (col >= area.Width || col+w > area.Width) {
				col, row = 0, row+1
				w = unitWidth(ch, col)
			}
			if w > area.Width {
				w = area.Width
			}
			c := cell{x: area.X + col, y: area.Y + row, width: max(w, 1)}
			if ch == '\n' {
				// a line break owns the rest of its row
				c.width = max(area.Width-col, 1)
			}
			l.cells[i] = c

			st := runStyle
			if i >= sel.Offset && i < sel.End() {
				st = selStyle
			}
			if row < area.Height {
				switch ch {
				case '\n':
					s.SetContent(area.X+col, area.Y+row, ' ', nil, st)
				case '\t':
					for k := 0; k < w; k++ {
						s.SetContent(area.X+col+k, area.Y+row, ' ', nil, st)
					}
				default:
					s.SetContent(area.X+col, area.Y+row, ch, nil, st)
				}
			}

			if ch == '\n' {
				col, row = 0, row+1
			} else {
				col += w
			}
		}
	}
	if col >= area.Width {
		col, row = 0, row+1
	}
	l.end = cell{x: area.X + col, y: area.Y + row}
	return l
}

// Offset returns the text offset a click at (x, y) addresses: the unit under
// the cell, the end of the row when clicking past its text, or the end of the
// text below the last row. It reports false outside the area.
func (l *Layout) Offset(x, y int) (int, bool) {
	if !l.area.contains(x, y) {
		return 0, false
	}
	last := -1
	for i, c := range l.cells {
		if c.y > y {
			break
		}
		if c.y < y {
			continue
		}
		if x < c.x+c.width {
			return i, true
		}
		last = i
	}
	if last >= 0 {
		return last + 1, true
	}
	return len(l.cells), true
}

// PositionAt returns the run coordinate under (x, y).
func (l *Layout) PositionAt(x, y int) (types.RunPosition, bool) {
	off, ok := l.Offset(x, y)
	if !ok {
		return types.RunPosition{}, false
	}
	return locator.Position(l.runs, off)
}

// Cell returns the screen cell for a caret at text offset off.
func (l *Layout) Cell(off int) (x, y int) {
	if off < 0 {
		off = 0
	}
	if off >= len(l.cells) {
		return l.end.x, l.end.y
	}
	c := l.cells[off]
	return c.x, c.y
}

// Column returns the screen cell of the run coordinate p.
func (l *Layout) Column(p types.RunPosition) (x, y int, ok bool) {
	off, ok := locator.Offset(l.runs, p)
	if !ok {
		return 0, 0, false
	}
	x, y = l.Cell(off)
	return x, y, true
}

// DrawCursor shows the terminal cursor at the caret position p, or hides it
// when p is outside the layout or the visible area.
func DrawCursor(s tcell.Screen, l *Layout, p types.RunPosition) {
	x, y, ok := l.Column(p)
	if !ok && len(l.runs) == 0 {
		x, y, ok = l.area.X, l.area.Y, true
	}
	if !ok || !l.area.contains(x, y) {
		logger.DebugTagf("tui", "cursor %v not visible", p)
		s.HideCursor()
		return
	}
	s.ShowCursor(x, y)
}
