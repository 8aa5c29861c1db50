package block

import (
	"github.com/bethropolis/inkblock/internal/intent"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/types"
)

// Edit describes what an operation did. Offset is the insertion point, the
// deletion start or the selection start; Length counts the units inserted,
// deleted or restyled.
type Edit struct {
	Intent    intent.Intent
	Offset    int
	Length    int
	Direction types.Direction
}

// Selection is the selection that should be active after the edit.
func (e Edit) Selection() types.Range {
	switch e.Intent {
	case intent.Insert, intent.InsertMultiple:
		return types.Caret(e.Offset + e.Length)
	case intent.StyleToggle:
		r := types.Range{Offset: e.Offset, Length: e.Length, Direction: e.Direction}
		if r.Length == 0 {
			r.Direction = types.DirectionNone
		}
		return r
	}
	return types.Caret(e.Offset)
}

// ToggleStyle applies the universal toggle of flag f over r: if any character
// in r lacks f, f is set on all of them, otherwise f is cleared on all of
// them. Other flags and characters outside r are unchanged.
func ToggleStyle(b Block, f style.Flag, r types.Range) (Block, Edit) {
	r = r.Clamp(b.Len())
	e := Edit{Intent: intent.StyleToggle, Offset: r.Offset, Length: r.Length, Direction: r.Direction}
	if r.Collapsed() {
		return b, e
	}

	on := false
	for i := r.Offset; i < r.End(); i++ {
		if !b.styles[i].Has(f) {
			on = true
			break
		}
	}
	logger.DebugTagf("block", "toggle %s=%v over %s", f, on, r)
	return b.restyle(r.Offset, r.End(), func(m style.Metadata) style.Metadata {
		return m.Set(f, on)
	}), e
}

// InsertSingle inserts one character, replacing the selection if r is not
// collapsed. The new character copies the style of the character before the
// insertion point, or gets default metadata at offset 0.
func InsertSingle(b Block, r types.Range, ch rune) (Block, Edit) {
	r = r.Clamp(b.Len())
	if !r.Collapsed() {
		b, _ = DeleteRange(b, r)
	}
	at := r.Offset

	meta := style.Default
	if at > 0 {
		meta = b.styles[at-1]
	}
	return b.splice(at, at, []rune{ch}, []style.Metadata{meta}),
		Edit{Intent: intent.Insert, Offset: at, Length: 1}
}

// InsertMultiple inserts a span of text, replacing the selection. When styles
// has exactly one entry per inserted character those styles are used as-is;
// otherwise every inserted character gets default metadata.
func InsertMultiple(b Block, r types.Range, text string, styles []style.Metadata) (Block, Edit) {
	r = r.Clamp(b.Len())
	if !r.Collapsed() {
		b, _ = DeleteRange(b, r)
	}
	at := r.Offset
	runes := []rune(text)

	inserted := make([]style.Metadata, len(runes))
	if styles != nil && len(styles) == len(runes) {
		copy(inserted, styles)
	} else if styles != nil {
		logger.DebugTagf("block", "insert of %d units with %d styles, using defaults", len(runes), len(styles))
	}
	return b.splice(at, at, runes, inserted),
		Edit{Intent: intent.InsertMultiple, Offset: at, Length: len(runes)}
}

// DeleteOne is backspace without a selection: it removes the character before
// r.Offset together with its style. r.Length is ignored. No-op at offset 0.
func DeleteOne(b Block, r types.Range) (Block, Edit) {
	at := types.Caret(r.Offset).Clamp(b.Len()).Offset
	if at == 0 {
		return b, Edit{Intent: intent.DeleteOne}
	}
	return b.splice(at-1, at, nil, nil), Edit{Intent: intent.DeleteOne, Offset: at - 1, Length: 1}
}

// DeleteRange removes the characters covered by r together with their styles.
// No-op when r is collapsed.
func DeleteRange(b Block, r types.Range) (Block, Edit) {
	r = r.Clamp(b.Len())
	e := Edit{Intent: intent.DeleteRange, Offset: r.Offset, Length: r.Length}
	if r.Collapsed() {
		return b, e
	}
	return b.splice(r.Offset, r.End(), nil, nil), e
}
