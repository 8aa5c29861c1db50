// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/inkblock/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef is a single style definition in a theme file. Pointers tell a
// missing value apart from false.
type TomlStyleDef struct {
	Fg            *string `toml:"fg"`
	Bg            *string `toml:"bg"`
	Bold          *bool   `toml:"bold"`
	Italic        *bool   `toml:"italic"`
	Underline     *bool   `toml:"underline"`
	Strikethrough *bool   `toml:"strikethrough"`
	Reverse       *bool   `toml:"reverse"`
}

// TomlTheme is the structure of a theme file:
//
//	name = "Paper"
//	[styles.Default]
//	fg = "#1e1e1e"
//	[styles.code]
//	fg = "darkgreen"
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML theme file.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var tomlTheme TomlTheme
	metadata, err := toml.Decode(string(data), &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.WarnTagf("theme", "unrecognized keys in '%s': %v", filePath, undecoded)
	}

	if tomlTheme.Name == "" {
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	styles := make(map[string]tcell.Style, len(tomlTheme.Styles)+1)

	// Everything else inherits from the theme's Default.
	base := tcell.StyleDefault
	if def, ok := tomlTheme.Styles[StyleDefault]; ok {
		if base, err = convertTomlStyle(def, tcell.StyleDefault); err != nil {
			logger.WarnTagf("theme", "%s: bad Default style, using terminal default: %v", tomlTheme.Name, err)
			base = tcell.StyleDefault
		}
	}
	styles[StyleDefault] = base

	for name, def := range tomlTheme.Styles {
		if name == StyleDefault {
			continue
		}
		s, err := convertTomlStyle(def, base)
		if err != nil {
			logger.WarnTagf("theme", "%s: skipping style '%s': %v", tomlTheme.Name, name, err)
			continue
		}
		styles[name] = s
	}

	logger.DebugTagf("theme", "loaded theme '%s' from '%s'", tomlTheme.Name, filePath)
	return New(tomlTheme.Name, tomlTheme.IsDark, styles), nil
}

// convertTomlStyle applies def on top of base.
func convertTomlStyle(def TomlStyleDef, base tcell.Style) (tcell.Style, error) {
	s := base

	if def.Fg != nil {
		color, err := parseColorString(*def.Fg)
		if err != nil {
			return s, fmt.Errorf("invalid foreground color '%s': %w", *def.Fg, err)
		}
		s = s.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColorString(*def.Bg)
		if err != nil {
			return s, fmt.Errorf("invalid background color '%s': %w", *def.Bg, err)
		}
		s = s.Background(color)
	}

	if def.Bold != nil {
		s = s.Bold(*def.Bold)
	}
	if def.Italic != nil {
		s = s.Italic(*def.Italic)
	}
	if def.Underline != nil {
		s = s.Underline(*def.Underline)
	}
	if def.Strikethrough != nil {
		s = s.StrikeThrough(*def.Strikethrough)
	}
	if def.Reverse != nil {
		s = s.Reverse(*def.Reverse)
	}
	return s, nil
}

// parseColorString accepts "#RRGGBB", a W3C color name, "reset" or "default".
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") && len(s) != 7 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
	}
	if c := tcell.GetColor(s); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color format or name '%s'", s)
}
