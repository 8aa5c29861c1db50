// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/bethropolis/inkblock/internal/style"
	"github.com/gdamore/tcell/v2"
)

// UI style names. Character metadata flags are looked up by their flag name
// ("bold", "italic", "underline", "code", "strikethrough").
const (
	StyleDefault          = "Default"
	StyleSelection        = "Selection"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarFlag    = "StatusBarFlag"
	StyleStatusBarMessage = "StatusBarMessage"
)

// Theme is an immutable lookup from style names to terminal styles. The
// style of every metadata combination is computed once on construction.
type Theme struct {
	Name   string
	IsDark bool

	styles   map[string]tcell.Style
	resolved []tcell.Style // indexed by style.Metadata
}

// New builds a theme from named styles. A missing "Default" falls back to the
// terminal default.
func New(name string, isDark bool, styles map[string]tcell.Style) *Theme {
	t := &Theme{
		Name:     name,
		IsDark:   isDark,
		styles:   make(map[string]tcell.Style, len(styles)+1),
		resolved: make([]tcell.Style, 1<<len(style.Flags())),
	}
	for k, v := range styles {
		t.styles[k] = v
	}
	if _, ok := t.styles[StyleDefault]; !ok {
		t.styles[StyleDefault] = tcell.StyleDefault
	}
	for m := range t.resolved {
		t.resolved[m] = t.combine(style.Metadata(m))
	}
	return t
}

// GetStyle returns the named style, trying the part before the first dot and
// then "Default" when the exact name is missing.
func (t *Theme) GetStyle(name string) tcell.Style {
	if s, ok := t.styles[name]; ok {
		return s
	}
	if dot := strings.Index(name, "."); dot != -1 {
		if s, ok := t.styles[name[:dot]]; ok {
			logger.DebugTagf("theme", "%s: style %q not found, using %q", t.Name, name, name[:dot])
			return s
		}
	}
	return t.styles[StyleDefault]
}

// Resolve returns the terminal style for characters carrying m.
func (t *Theme) Resolve(m style.Metadata) tcell.Style {
	if int(m) < len(t.resolved) {
		return t.resolved[m]
	}
	return t.combine(m)
}

// Selected is Resolve for characters inside the active selection: the
// selection background with the character's foreground and attributes.
func (t *Theme) Selected(m style.Metadata) tcell.Style {
	resolved := t.Resolve(m)
	sel, ok := t.styles[StyleSelection]
	if !ok {
		return resolved.Reverse(true)
	}
	fg, _, attrs := resolved.Decompose()
	_, bg, _ := sel.Decompose()
	return withAttrs(tcell.StyleDefault.Foreground(fg).Background(bg), attrs)
}

// combine layers the style of every flag in m over Default: colours that
// differ from Default override it and attributes accumulate.
func (t *Theme) combine(m style.Metadata) tcell.Style {
	base := t.styles[StyleDefault]
	baseFg, baseBg, _ := base.Decompose()
	fg, bg, attrs := base.Decompose()

	for _, f := range style.Flags() {
		if !m.Has(f) {
			continue
		}
		s, ok := t.styles[f.String()]
		if !ok {
			continue
		}
		sfg, sbg, sattrs := s.Decompose()
		if sfg != baseFg {
			fg = sfg
		}
		if sbg != baseBg {
			bg = sbg
		}
		attrs |= sattrs
	}
	return withAttrs(tcell.StyleDefault.Foreground(fg).Background(bg), attrs)
}

// withAttrs sets attrs on s. Underline goes through Underline so the
// underline style is set along with the attribute bit.
func withAttrs(s tcell.Style, attrs tcell.AttrMask) tcell.Style {
	s = s.Attributes(attrs &^ tcell.AttrUnderline)
	if attrs&tcell.AttrUnderline != 0 {
		s = s.Underline(true)
	}
	return s
}

// --- Ink Dark, the built-in theme ---

var InkDark *Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	codeBg := tcell.NewHexColor(0x353b45)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	InkDark = New("Ink Dark", true, map[string]tcell.Style{
		StyleDefault:          base,
		StyleSelection:        base.Background(tcell.NewHexColor(0x3e4451)),
		StyleStatusBar:        tcell.StyleDefault.Background(background).Foreground(foreground),
		StyleStatusBarFlag:    tcell.StyleDefault.Background(background).Foreground(yellow).Bold(true),
		StyleStatusBarMessage: tcell.StyleDefault.Background(background).Foreground(green).Bold(true),

		style.Bold.String():          base.Bold(true),
		style.Italic.String():        base.Italic(true),
		style.Underline.String():     base.Underline(true),
		style.Code.String():          base.Foreground(green).Background(codeBg),
		style.Strikethrough.String(): base.Foreground(muted).StrikeThrough(true),
	})
}
