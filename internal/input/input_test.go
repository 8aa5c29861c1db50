package input

import (
	"testing"

	"github.com/bethropolis/inkblock/internal/style"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'é'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'A'}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionEvent{Action: ActionMoveLeft}},
		{"shift left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), ActionEvent{Action: ActionSelectLeft}},
		{"shift ctrl end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModShift|tcell.ModCtrl), ActionEvent{Action: ActionSelectEnd}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteBackward}},
		{"ctrl b", tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl), ActionEvent{Action: ActionToggleStyle, Flag: style.Bold}},
		{"ctrl t from raw byte", tcell.NewEventKey(tcell.KeyRune, 0x14, tcell.ModNone), ActionEvent{Action: ActionToggleStyle, Flag: style.Italic}},
		{"ctrl k", tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModCtrl), ActionEvent{Action: ActionToggleStyle, Flag: style.Strikethrough}},
		{"copy", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionEvent{Action: ActionCopy}},
		{"tab inserts", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: '\t'}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionQuit}},
		{"unbound", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestBindOverrides(t *testing.T) {
	p := NewInputProcessor()
	p.Bind(tcell.KeyF2, ActionEvent{Action: ActionToggleStyle, Flag: style.Code})
	assert.Equal(t, ActionEvent{Action: ActionToggleStyle, Flag: style.Code},
		p.ProcessEvent(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)))
}

func TestMouseTracker(t *testing.T) {
	var m MouseTracker
	assert.Equal(t, MouseEvent{Kind: MouseNone, X: 1, Y: 0}, m.Process(tcell.NewEventMouse(1, 0, tcell.ButtonNone, tcell.ModNone)))
	assert.Equal(t, MouseEvent{Kind: MousePress, X: 2, Y: 0}, m.Process(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone)))
	assert.Equal(t, MouseEvent{Kind: MouseDrag, X: 5, Y: 1}, m.Process(tcell.NewEventMouse(5, 1, tcell.Button1, tcell.ModNone)))
	assert.Equal(t, MouseEvent{Kind: MouseRelease, X: 6, Y: 1}, m.Process(tcell.NewEventMouse(6, 1, tcell.ButtonNone, tcell.ModNone)))
	assert.Equal(t, MouseNone, m.Process(tcell.NewEventMouse(6, 1, tcell.Button2, tcell.ModNone)).Kind)
}
