// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/inkblock/internal/logger"
)

// Manager holds the loaded themes and the active one. Themes themselves are
// immutable; activating another theme swaps the whole lookup.
type Manager struct {
	themes map[string]*Theme // lowercase name -> theme
	active *Theme
}

// NewManager creates a manager holding the built-in theme, active.
func NewManager() *Manager {
	m := &Manager{themes: make(map[string]*Theme)}
	m.Add(InkDark)
	m.active = InkDark
	return m
}

// Add registers t, replacing a theme with the same name.
func (m *Manager) Add(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok && existing != t {
		logger.WarnTagf("theme", "theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// LoadFile loads a theme file, registers it and makes it active.
func (m *Manager) LoadFile(path string) error {
	t, err := LoadThemeFromFile(path)
	if err != nil {
		return err
	}
	m.Add(t)
	m.active = t
	logger.InfoTagf("theme", "active theme: %s", t.Name)
	return nil
}

// LoadDir registers every .toml theme in dir. A missing dir is not an error.
func (m *Manager) LoadDir(dir string) error {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	loaded := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		path := filepath.Join(dir, file.Name())
		t, err := LoadThemeFromFile(path)
		if err != nil {
			logger.WarnTagf("theme", "skipping '%s': %v", path, err)
			continue
		}
		m.Add(t)
		loaded++
	}
	logger.DebugTagf("theme", "loaded %d themes from '%s'", loaded, dir)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	return m.active
}

// SetTheme activates the theme named name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	t, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	m.active = t
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
