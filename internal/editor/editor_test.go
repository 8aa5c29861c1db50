package editor

import (
	"testing"

	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/clipboard"
	"github.com/bethropolis/inkblock/internal/event"
	"github.com/bethropolis/inkblock/internal/intent"
	"github.com/bethropolis/inkblock/internal/locator"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T, text string) (*Editor, *[]event.Event) {
	t.Helper()
	ed := NewEditor(block.New("1", text, nil), clipboard.NewManager(&clipboard.MemoryProvider{}))
	mgr := event.NewManager()
	var seen []event.Event
	record := func(e event.Event) bool { seen = append(seen, e); return false }
	mgr.Subscribe(event.TypeBlockModified, record)
	mgr.Subscribe(event.TypeSelectionChanged, record)
	mgr.Subscribe(event.TypeClipboardChanged, record)
	ed.SetEventManager(mgr)
	return ed, &seen
}

func typeString(ed *Editor, s string) {
	for _, ch := range s {
		ed.InsertRune(ch)
		ed.RestoreCaret()
	}
}

func TestTypeToggleDelete(t *testing.T) {
	ed, _ := newTestEditor(t, "")
	typeString(ed, "hello")
	assert.Equal(t, "hello", ed.Block().Text())
	assert.Equal(t, types.Caret(5), ed.Selection())

	ed.SetSelection(types.Range{Offset: 0, Length: 5, Direction: types.DirectionForward})
	ed.ToggleStyle(style.Bold)
	assert.Equal(t, []style.Run{{Metadata: style.Of(style.Bold), Start: 0, End: 5}}, ed.Runs())
	assert.Equal(t, types.Range{Offset: 0, Length: 5, Direction: types.DirectionForward}, ed.Selection())

	ed.SetSelection(types.Range{Offset: 1, Length: 3, Direction: types.DirectionForward})
	ed.Backspace()
	assert.Equal(t, "ho", ed.Block().Text())
	assert.Equal(t, types.Caret(1), ed.Selection())

	sel, ok := ed.RestoreCaret()
	require.True(t, ok)
	off, _ := locator.Offset(ed.Runs(), sel.Focus)
	assert.Equal(t, 1, off)
}

func TestRestoreCaretConsumesIntent(t *testing.T) {
	ed, _ := newTestEditor(t, "ab")
	_, ok := ed.RestoreCaret()
	assert.False(t, ok)

	ed.InsertRune('c')
	sel, ok := ed.RestoreCaret()
	require.True(t, ok)
	assert.Equal(t, types.RunPosition{Run: 0, Offset: 3}, sel.Focus)

	_, ok = ed.RestoreCaret()
	assert.False(t, ok, "intent reset after restore")
	assert.Equal(t, intent.Insert, ed.LastIntent())
}

func TestStyleToggleRestoresBackwardSelection(t *testing.T) {
	ed, _ := newTestEditor(t, "abcdef")
	ed.SetSelection(types.Range{Offset: 1, Length: 3, Direction: types.DirectionBackward})
	ed.ToggleStyle(style.Italic)

	sel, ok := ed.RestoreCaret()
	require.True(t, ok)
	rep := types.Report(sel.Anchor, sel.Focus)
	ed.SetSelection(types.Range{})
	ed.Select(rep)
	assert.Equal(t, types.Range{Offset: 1, Length: 3, Direction: types.DirectionBackward}, ed.Selection())
}

func TestSelectFromReport(t *testing.T) {
	ed, _ := newTestEditor(t, "HELLOWORLD")
	ed.SetSelection(types.Range{Offset: 5, Length: 5})
	ed.ToggleStyle(style.Bold)

	// runs: [0,5) plain, [5,10) bold
	ed.Select(types.Report(types.RunPosition{Run: 0, Offset: 3}, types.RunPosition{Run: 1, Offset: 2}))
	assert.Equal(t, types.Range{Offset: 3, Length: 4, Direction: types.DirectionForward}, ed.Selection())

	ed.Select(types.NoSelection)
	assert.Equal(t, types.Caret(10), ed.Selection())
}

func TestMoveCaret(t *testing.T) {
	ed, _ := newTestEditor(t, "abcdef")
	ed.Home(false)
	assert.Equal(t, types.Caret(0), ed.Selection())

	ed.MoveCaret(-1, false)
	assert.Equal(t, types.Caret(0), ed.Selection())

	ed.MoveCaret(2, false)
	ed.MoveCaret(2, true)
	assert.Equal(t, types.Range{Offset: 2, Length: 2, Direction: types.DirectionForward}, ed.Selection())

	ed.MoveCaret(-3, true)
	assert.Equal(t, types.Range{Offset: 1, Length: 1, Direction: types.DirectionBackward}, ed.Selection())

	ed.MoveCaret(1, false)
	assert.Equal(t, types.Caret(2), ed.Selection(), "collapse to the upper end")

	ed.End(true)
	assert.Equal(t, types.Range{Offset: 2, Length: 4, Direction: types.DirectionForward}, ed.Selection())
	ed.Home(true)
	assert.Equal(t, types.Range{Offset: 0, Length: 2, Direction: types.DirectionBackward}, ed.Selection())

	ed.SelectAll()
	assert.Equal(t, types.Range{Offset: 0, Length: 6, Direction: types.DirectionForward}, ed.Selection())
	ed.End(false)
	assert.Equal(t, types.Caret(6), ed.Selection())
}

func TestActiveStyle(t *testing.T) {
	bold := style.Of(style.Bold)
	both := style.Of(style.Bold, style.Italic)
	ed := NewEditor(block.New("1", "abc", []style.Metadata{bold, both, style.Default}), nil)

	ed.SetSelection(types.Caret(0))
	assert.Equal(t, style.Default, ed.ActiveStyle())
	ed.SetSelection(types.Caret(2))
	assert.Equal(t, both, ed.ActiveStyle())
	ed.SetSelection(types.Range{Offset: 0, Length: 2})
	assert.Equal(t, bold, ed.ActiveStyle())
	ed.SelectAll()
	assert.Equal(t, style.Default, ed.ActiveStyle())
}

func TestCopyCutPaste(t *testing.T) {
	ed, seen := newTestEditor(t, "hello world")
	ed.SetSelection(types.Range{Offset: 0, Length: 5})
	ed.ToggleStyle(style.Code)

	require.True(t, ed.Copy())
	ed.End(false)
	require.True(t, ed.Paste())
	assert.Equal(t, "hello worldhello", ed.Block().Text())
	assert.Equal(t, style.Of(style.Code), ed.Block().Styles()[15])
	assert.Equal(t, intent.InsertMultiple, ed.LastIntent())

	ed.SetSelection(types.Range{Offset: 5, Length: 6, Direction: types.DirectionBackward})
	require.True(t, ed.Cut())
	assert.Equal(t, "hellohello", ed.Block().Text())
	assert.Equal(t, types.Caret(5), ed.Selection())

	assert.False(t, ed.Copy(), "nothing selected")

	var clip []event.ClipboardChangedData
	for _, e := range *seen {
		if d, ok := e.Data.(event.ClipboardChangedData); ok {
			clip = append(clip, d)
		}
	}
	assert.Equal(t, []event.ClipboardChangedData{{Text: "hello"}, {Text: " world", Cut: true}}, clip)
}

func TestPasteNothing(t *testing.T) {
	ed, _ := newTestEditor(t, "abc")
	assert.False(t, ed.Paste())
	assert.Equal(t, "abc", ed.Block().Text())
}

func TestInsertTextUsesDefaultStyles(t *testing.T) {
	ed := NewEditor(block.New("1", "ab", []style.Metadata{style.Of(style.Bold), style.Of(style.Bold)}), nil)
	ed.InsertText("xyz")
	assert.Equal(t, "abxyz", ed.Block().Text())
	assert.Equal(t, types.Caret(5), ed.Selection())
	for _, m := range ed.Block().Styles()[2:] {
		assert.Equal(t, style.Default, m)
	}
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	ed, seen := newTestEditor(t, "ab")
	ed.Home(false)
	*seen = nil

	ed.Backspace()
	assert.Equal(t, "ab", ed.Block().Text())
	for _, e := range *seen {
		assert.NotEqual(t, event.TypeBlockModified, e.Type)
	}
}

func TestEventsDispatched(t *testing.T) {
	ed, seen := newTestEditor(t, "")
	ed.InsertRune('x')

	require.Len(t, *seen, 2)
	assert.Equal(t, event.TypeBlockModified, (*seen)[0].Type)
	data := (*seen)[0].Data.(event.BlockModifiedData)
	assert.Equal(t, "1", data.BlockID)
	assert.Equal(t, intent.Insert, data.Edit.Intent)
	assert.Equal(t, event.TypeSelectionChanged, (*seen)[1].Type)
}

func TestReplaceClampsSelection(t *testing.T) {
	ed, _ := newTestEditor(t, "abcdef")
	ed.InsertRune('g')
	ed.Replace("xy", []style.Metadata{style.Of(style.Underline)})

	assert.Equal(t, "xy", ed.Block().Text())
	assert.Equal(t, "1", ed.Block().ID())
	assert.Equal(t, types.Caret(2), ed.Selection())
	_, ok := ed.RestoreCaret()
	assert.False(t, ok)
	assert.Equal(t, []style.Metadata{style.Of(style.Underline), style.Default}, ed.Block().Styles())
}
