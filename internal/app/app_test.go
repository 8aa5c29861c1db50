package app

import (
	"testing"
	"time"

	"github.com/bethropolis/inkblock/internal/config"
	"github.com/bethropolis/inkblock/internal/event"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, text string) (*App, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Editor.InitialText = text

	s := tcell.NewSimulationScreen("")
	a, err := NewAppWithScreen(cfg, s)
	require.NoError(t, err)
	s.SetSize(20, 5)
	return a, s
}

func typeText(a *App, text string) {
	for _, r := range text {
		a.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func ctrl(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModCtrl)
}

func TestTypeSelectAndBold(t *testing.T) {
	a, s := newTestApp(t, "")
	defer a.tuiManager.Close()

	typeText(a, "hi")
	assert.True(t, a.handleEvent(ctrl(tcell.KeyCtrlA)))
	assert.True(t, a.handleEvent(ctrl(tcell.KeyCtrlB)))
	a.drawEditor()

	runs := a.editor.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, style.Of(style.Bold), runs[0].Metadata)
	assert.Equal(t, types.Range{Offset: 0, Length: 2, Direction: types.DirectionForward}, a.editor.Selection())

	cells, w, _ := s.GetContents()
	_, _, attrs := cells[0].Style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.Equal(t, []rune("h"), cells[0].Runes)
	assert.Equal(t, []rune("i"), cells[1].Runes)
	assert.Equal(t, 20, w)

	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)
}

func TestToggleWithoutSelectionShowsMessage(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	defer a.tuiManager.Close()

	assert.True(t, a.handleEvent(ctrl(tcell.KeyCtrlB)))
	assert.Equal(t, style.Metadata(0), a.editor.Runs()[0].Metadata)

	left, _, message := a.statusBar.Text()
	assert.True(t, message)
	assert.Equal(t, "select text to toggle bold", left)
}

func TestDeleteForward(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	defer a.tuiManager.Close()

	a.handleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	a.handleEvent(tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone))
	assert.Equal(t, "bc", a.editor.Block().Text())
	assert.Equal(t, 0, a.editor.Focus())

	a.handleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	a.handleEvent(tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone))
	assert.Equal(t, "bc", a.editor.Block().Text())
}

func TestMouseDragSelects(t *testing.T) {
	a, _ := newTestApp(t, "hello world")
	defer a.tuiManager.Close()
	a.drawEditor()

	assert.True(t, a.handleEvent(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone)))
	assert.True(t, a.handleEvent(tcell.NewEventMouse(4, 0, tcell.Button1, tcell.ModNone)))
	assert.False(t, a.handleEvent(tcell.NewEventMouse(4, 0, tcell.ButtonNone, tcell.ModNone)))

	assert.Equal(t, types.Range{Offset: 1, Length: 3, Direction: types.DirectionForward}, a.editor.Selection())

	// Dragging back past the anchor reverses the direction.
	a.handleEvent(tcell.NewEventMouse(6, 0, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	assert.Equal(t, types.Range{Offset: 2, Length: 4, Direction: types.DirectionBackward}, a.editor.Selection())
}

func TestMouseBeforeFirstDrawIgnored(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	defer a.tuiManager.Close()

	assert.False(t, a.handleEvent(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone)))
	assert.Equal(t, types.Caret(3), a.editor.Selection())
}

func TestClipboardMessage(t *testing.T) {
	a, _ := newTestApp(t, "hello")
	defer a.tuiManager.Close()

	a.handleEvent(ctrl(tcell.KeyCtrlA))
	a.handleEvent(ctrl(tcell.KeyCtrlX))

	left, _, message := a.statusBar.Text()
	assert.True(t, message)
	assert.Equal(t, "cut 5 characters", left)
	assert.Equal(t, "", a.editor.Block().Text())

	a.handleEvent(ctrl(tcell.KeyCtrlV))
	assert.Equal(t, "hello", a.editor.Block().Text())
}

func TestStatusBarTracksEdits(t *testing.T) {
	a, _ := newTestApp(t, "")
	defer a.tuiManager.Close()

	typeText(a, "abc")
	a.statusBar.ResetTemporaryMessage()

	left, right, message := a.statusBar.Text()
	assert.False(t, message)
	assert.Equal(t, "block 1 -- 3+0 none of 3 -- insert", left)
	assert.Equal(t, "plain", right)
}

func TestRunQuitsOnEscape(t *testing.T) {
	a, s := newTestApp(t, "abc")

	var ready, quit bool
	a.eventManager.Subscribe(event.TypeAppReady, func(event.Event) bool { ready = true; return false })
	a.eventManager.Subscribe(event.TypeAppQuit, func(event.Event) bool { quit = true; return false })

	s.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Escape")
	}

	assert.True(t, ready)
	assert.True(t, quit)
	assert.Equal(t, "abcd", a.editor.Block().Text())
}
