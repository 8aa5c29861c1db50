// Package style holds per-character style metadata and the run-length
// compression that turns a per-character style sequence into style runs.
package style

import (
	"encoding/json"
	"strings"
)

// Flag is a single boolean style attribute.
type Flag uint8

// Style flags. Each is one bit of Metadata.
const (
	Bold Flag = 1 << iota
	Italic
	Underline
	Code
	Strikethrough
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Underline, "underline"},
	{Code, "code"},
	{Strikethrough, "strikethrough"},
}

// Flags returns every style flag in display order.
func Flags() []Flag {
	out := make([]Flag, len(flagNames))
	for i, fn := range flagNames {
		out[i] = fn.flag
	}
	return out
}

// String returns the lowercase flag name, as used in style maps and key bindings.
func (f Flag) String() string {
	for _, fn := range flagNames {
		if fn.flag == f {
			return fn.name
		}
	}
	return "unknown"
}

// ParseFlag looks a flag up by name, case-insensitively.
func ParseFlag(name string) (Flag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return 0, false
}

// Metadata is the immutable set of style flags of one character.
// The zero value is the default style with every flag off.
type Metadata uint8

// Default is the all-false metadata.
const Default Metadata = 0

// Of builds metadata with the given flags set.
func Of(flags ...Flag) Metadata {
	var m Metadata
	for _, f := range flags {
		m = m.With(f)
	}
	return m
}

// Has reports whether f is set.
func (m Metadata) Has(f Flag) bool { return m&Metadata(f) != 0 }

// With returns m with f set.
func (m Metadata) With(f Flag) Metadata { return m | Metadata(f) }

// Without returns m with f cleared.
func (m Metadata) Without(f Flag) Metadata { return m &^ Metadata(f) }

// Set returns m with f set to on. Other flags are untouched.
func (m Metadata) Set(f Flag, on bool) Metadata {
	if on {
		return m.With(f)
	}
	return m.Without(f)
}

// IsBold reports whether Bold is set.
func (m Metadata) IsBold() bool { return m.Has(Bold) }

// IsItalic reports whether Italic is set.
func (m Metadata) IsItalic() bool { return m.Has(Italic) }

// IsUnderline reports whether Underline is set.
func (m Metadata) IsUnderline() bool { return m.Has(Underline) }

// IsCode reports whether Code is set.
func (m Metadata) IsCode() bool { return m.Has(Code) }

// IsStrikethrough reports whether Strikethrough is set.
func (m Metadata) IsStrikethrough() bool { return m.Has(Strikethrough) }

// Equal is field-wise equality of all flags.
func (m Metadata) Equal(o Metadata) bool { return m == o }

// String lists the set flags joined by "+", or "plain".
func (m Metadata) String() string {
	names := m.Names()
	if len(names) == 0 {
		return "plain"
	}
	return strings.Join(names, "+")
}

type metadataJSON struct {
	IsBold          bool `json:"isBold"`
	IsItalic        bool `json:"isItalic"`
	IsUnderline     bool `json:"isUnderline"`
	IsCode          bool `json:"isCode"`
	IsStrikethrough bool `json:"isStrikethrough"`
}

// MarshalJSON writes the flags as an object of named booleans.
func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(metadataJSON{
		IsBold:          m.IsBold(),
		IsItalic:        m.IsItalic(),
		IsUnderline:     m.IsUnderline(),
		IsCode:          m.IsCode(),
		IsStrikethrough: m.IsStrikethrough(),
	})
}

// UnmarshalJSON reads the object form written by MarshalJSON. Missing keys are false.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw metadataJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Default.
		Set(Bold, raw.IsBold).
		Set(Italic, raw.IsItalic).
		Set(Underline, raw.IsUnderline).
		Set(Code, raw.IsCode).
		Set(Strikethrough, raw.IsStrikethrough)
	return nil
}
