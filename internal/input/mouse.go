package input

import "github.com/gdamore/tcell/v2"

// MouseKind is the phase of a primary button gesture.
type MouseKind int

const (
	MouseNone MouseKind = iota
	MousePress
	MouseDrag
	MouseRelease
)

// MouseEvent is a decoded primary button event at screen cell (X, Y).
type MouseEvent struct {
	Kind MouseKind
	X, Y int
}

// MouseTracker turns raw tcell mouse events into press, drag and release.
// tcell reports a held button as repeated button events, so the tracker
// remembers whether the button was already down.
type MouseTracker struct {
	down bool
}

// Process decodes ev. Events that are not part of a primary button gesture
// return MouseNone.
func (t *MouseTracker) Process(ev *tcell.EventMouse) MouseEvent {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !t.down:
		t.down = true
		return MouseEvent{Kind: MousePress, X: x, Y: y}
	case pressed:
		return MouseEvent{Kind: MouseDrag, X: x, Y: y}
	case t.down:
		t.down = false
		return MouseEvent{Kind: MouseRelease, X: x, Y: y}
	}
	return MouseEvent{Kind: MouseNone, X: x, Y: y}
}
