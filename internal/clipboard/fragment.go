// Package clipboard implements copy, cut and paste of block sub-ranges. A
// fragment carries the exact per-character styles of the copied text and is
// trusted on paste only when its text matches the plain-text clipboard payload.
package clipboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/inkblock/internal/block"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/bethropolis/inkblock/internal/types"
)

// formatTag identifies payloads written by Encode.
const formatTag = "inkblock/fragment+v1"

// ErrNotFragment is returned by Decode for payloads Encode did not produce.
var ErrNotFragment = errors.New("clipboard: not a block fragment")

// Fragment is a copied sub-range of a block.
type Fragment struct {
	SourceID string           `json:"sourceId"`
	Text     string           `json:"text"`
	Styles   []style.Metadata `json:"styles"`
}

// Internal reports whether the fragment has exactly one style per text unit,
// i.e. whether its styles can be applied verbatim.
func (f Fragment) Internal() bool {
	return len(f.Styles) == utf8.RuneCountInString(f.Text)
}

type envelope struct {
	Format string `json:"format"`
	Fragment
}

// Encode serializes f. Decode(Encode(f)) reproduces f exactly.
func Encode(f Fragment) ([]byte, error) {
	if f.Styles == nil {
		f.Styles = []style.Metadata{}
	}
	data, err := json.Marshal(envelope{Format: formatTag, Fragment: f})
	if err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}
	return data, nil
}

// Decode parses a payload written by Encode.
func Decode(data []byte) (Fragment, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Fragment{}, fmt.Errorf("decode fragment: %w", err)
	}
	if env.Format != formatTag {
		return Fragment{}, ErrNotFragment
	}
	if env.Styles == nil {
		env.Styles = []style.Metadata{}
	}
	return env.Fragment, nil
}

// Copy extracts the text and styles covered by r.
func Copy(b block.Block, r types.Range) Fragment {
	text, styles := b.Slice(r)
	return Fragment{SourceID: b.ID(), Text: text, Styles: styles}
}

// Cut copies r and then deletes it.
func Cut(b block.Block, r types.Range) (block.Block, Fragment, block.Edit) {
	f := Copy(b, r)
	out, e := block.DeleteRange(b, r)
	return out, f, e
}

// Paste inserts plain at r, replacing any selection. frag's styles are used
// only when frag is present, internal, and its text equals plain; otherwise
// every inserted character gets default metadata. The insertion point is
// r.Offset whatever the selection direction.
func Paste(b block.Block, r types.Range, plain string, frag *Fragment) (block.Block, block.Edit) {
	if frag != nil {
		switch {
		case frag.Text != plain:
			logger.DebugTagf("clipboard", "fragment from %q does not match clipboard text, pasting plain", frag.SourceID)
		case !frag.Internal():
			logger.WarnTagf("clipboard", "fragment from %q has %d styles for %q, pasting plain", frag.SourceID, len(frag.Styles), frag.Text)
		default:
			return block.InsertMultiple(b, r, frag.Text, frag.Styles)
		}
	}
	return block.InsertMultiple(b, r, plain, nil)
}
