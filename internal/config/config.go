// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/inkblock/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Theme  ThemeConfig   `toml:"theme"`
}

// EditorConfig holds settings of the editing session.
type EditorConfig struct {
	BlockID         string `toml:"block_id"`
	InitialText     string `toml:"initial_text"`
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBarHeight int    `toml:"status_bar_height"`
}

// ThemeConfig selects the theme. File wins over Name; Dir is scanned for
// additional themes and defaults to the themes directory next to the config.
type ThemeConfig struct {
	File string `toml:"file"`
	Dir  string `toml:"dir"`
	Name string `toml:"name"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	logCfg := logger.NewConfig()
	logCfg.LogFilePath = DefaultLogFileName
	return &Config{
		Logger: logCfg,
		Editor: EditorConfig{
			BlockID:         DefaultBlockID,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
	}
}

// DefaultDir is the per-user configuration directory, or "" when the
// platform does not have one.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName)
}

// loadFromFile decodes filePath over cfg. A missing file leaves cfg untouched
// and is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		logger.DebugTagf("config", "config file not found: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.WarnTagf("config", "config file '%s': unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Editor.BlockID == "" {
		c.Editor.BlockID = defaults.Editor.BlockID
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
}

// Load builds a configuration from the defaults, the TOML file at path (the
// default location when path is empty) and the flags that were set.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		if dir := DefaultDir(); dir != "" {
			path = filepath.Join(dir, DefaultConfigFileName)
		}
	}

	var err error
	if path != "" {
		err = loadFromFile(path, cfg)
	}
	if cfg.Theme.Dir == "" && path != "" {
		cfg.Theme.Dir = filepath.Join(filepath.Dir(path), ThemesDirName)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig loads the process configuration once, typically from main.
func LoadConfig(path string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(path, flags)
	})
	return loadedConfig, loadErr
}
