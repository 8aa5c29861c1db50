// Package block implements the styled text block: a text buffer and a parallel
// per-character style array kept in lock-step by every edit operation.
package block

import (
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/types"
)

// Block is one unit of styled text. It is an immutable value: every operation
// returns a new Block and never shares backing arrays with its input.
//
// len(styles) == len(text) holds for every Block this package hands out, and
// styles[i] describes text[i].
type Block struct {
	id     string
	text   []rune
	styles []style.Metadata
}

// New creates a block from caller supplied content. styles shorter than the
// text are padded with default metadata, longer ones are truncated.
func New(id, text string, styles []style.Metadata) Block {
	runes := []rune(text)
	return Block{id: id, text: runes, styles: repair(id, len(runes), styles)}
}

// Empty returns a block with no text.
func Empty(id string) Block {
	return Block{id: id, text: []rune{}, styles: []style.Metadata{}}
}

// Replace swaps in externally updated content, keeping the block id. The
// same repair as New applies.
func Replace(b Block, text string, styles []style.Metadata) Block {
	return New(b.id, text, styles)
}

func repair(id string, n int, styles []style.Metadata) []style.Metadata {
	out := make([]style.Metadata, n)
	copy(out, styles)
	if len(styles) != n {
		logger.WarnTagf("block", "block %q: %d styles for %d characters, repaired", id, len(styles), n)
	}
	return out
}

// ID returns the opaque block id.
func (b Block) ID() string { return b.id }

// Len is the number of text units.
func (b Block) Len() int { return len(b.text) }

// Text returns the block text.
func (b Block) Text() string { return string(b.text) }

// Runes returns a copy of the text units.
func (b Block) Runes() []rune {
	out := make([]rune, len(b.text))
	copy(out, b.text)
	return out
}

// Styles returns a copy of the per-character styles.
func (b Block) Styles() []style.Metadata {
	out := make([]style.Metadata, len(b.styles))
	copy(out, b.styles)
	return out
}

// StyleAt returns the style of character i.
func (b Block) StyleAt(i int) (style.Metadata, bool) {
	if i < 0 || i >= len(b.styles) {
		return style.Default, false
	}
	return b.styles[i], true
}

// Runs is the run decomposition of the block styles.
func (b Block) Runs() []style.Run {
	return style.Compress(b.styles)
}

// Slice returns the text and styles covered by r, clamped to the block.
func (b Block) Slice(r types.Range) (string, []style.Metadata) {
	r = r.Clamp(len(b.text))
	styles := make([]style.Metadata, r.Length)
	copy(styles, b.styles[r.Offset:r.End()])
	return string(b.text[r.Offset:r.End()]), styles
}

// Attributes exports the runs of b with inclusive [start, end-1] bounds.
func Attributes(b Block) []style.Attribute {
	return style.Attributes(b.styles)
}

// splice replaces [start, end) with text and styles in a fresh Block.
// Callers pass clamped bounds and len(text) == len(styles).
func (b Block) splice(start, end int, text []rune, styles []style.Metadata) Block {
	n := len(b.text) - (end - start) + len(text)
	outText := make([]rune, 0, n)
	outText = append(outText, b.text[:start]...)
	outText = append(outText, text...)
	outText = append(outText, b.text[end:]...)

	outStyles := make([]style.Metadata, 0, n)
	outStyles = append(outStyles, b.styles[:start]...)
	outStyles = append(outStyles, styles...)
	outStyles = append(outStyles, b.styles[end:]...)

	return Block{id: b.id, text: outText, styles: outStyles}
}

// restyle returns a copy of b with the styles of [start, end) rewritten by fn.
func (b Block) restyle(start, end int, fn func(style.Metadata) style.Metadata) Block {
	out := b.Styles()
	for i := start; i < end; i++ {
		out[i] = fn(out[i])
	}
	return Block{id: b.id, text: b.Runes(), styles: out}
}
