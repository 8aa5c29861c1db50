package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"Noisy"}}, &buf)

	DebugTagf("noisy", "dropped-message")
	DebugTagf("block", "tagged-message")
	Infof("plain-message")

	out := buf.String()
	assert.NotContains(t, out, "dropped-message")
	assert.Contains(t, out, "tagged-message")
	assert.Contains(t, out, "plain-message")
	assert.Contains(t, out, "tag=block")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"locator"}}, &buf)

	Infof("untagged-message")
	InfoTagf("locator", "locator-message")

	out := buf.String()
	assert.NotContains(t, out, "untagged-message")
	assert.Contains(t, out, "locator-message")
}

func TestPackageFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledPackages: []string{"block"}}, &buf)

	Warnf("from-logger-package")
	assert.NotContains(t, buf.String(), "from-logger-package")

	buf.Reset()
	Init(Config{LogLevel: "debug", DisabledFiles: []string{"logger_test.go"}}, &buf)
	Errorf("from-this-file")
	assert.NotContains(t, buf.String(), "from-this-file")
}

func TestLevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "warn"}, &buf)

	Infof("below-threshold")
	Warnf("at-threshold")
	assert.NotContains(t, buf.String(), "below-threshold")
	assert.Contains(t, buf.String(), "at-threshold")

	SetLevel(slog.LevelDebug)
	Debugf("after-set-level")
	assert.Contains(t, buf.String(), "after-set-level")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"WARNING", slog.LevelWarn, true},
		{"err", slog.LevelError, true},
		{"", slog.LevelInfo, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
