package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/range-picker/internal/calendar"
	"github.com/username/range-picker/internal/report"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// loadDefaults loads an empty config file, leaving every key at its default
func loadDefaults(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	return cfg
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
picker:
  presets: [7, 14, 90]
  year_span: 10
  start_view: "2024-02"
log:
  file: /tmp/range-picker.log
  level: debug
output:
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 14, 90}, cfg.Picker.Presets)
	assert.Equal(t, 10, cfg.Picker.YearSpan)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/range-picker.log", cfg.Log.File)
	assert.Equal(t, report.FormatJSON, cfg.Output.Format)
	assert.Equal(t, calendar.View{Year: 2024, Month: 1}, cfg.Picker.GetStartView(time.Now()))

	presets := cfg.Picker.GetPresets()
	require.Len(t, presets, 3)
	assert.Equal(t, "Last 90 days", presets[2].Label)
}

func TestLoad_DefaultsForPartialFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 30}, cfg.Picker.Presets)
	assert.Equal(t, 50, cfg.Picker.YearSpan)
	assert.Equal(t, report.FormatText, cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_SearchPathWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Picker.YearSpan)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RANGE_PICKER_LOG_LEVEL", "error")
	t.Setenv("RANGE_PICKER_OUTPUT_FORMAT", "json")

	cfg, err := Load(writeConfig(t, "picker:\n  year_span: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, report.FormatJSON, cfg.Output.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "zero preset", mutate: func(c *Config) { c.Picker.Presets = []int{7, 0} }, wantErr: true},
		{name: "negative year span", mutate: func(c *Config) { c.Picker.YearSpan = -1 }, wantErr: true},
		{name: "bad start view", mutate: func(c *Config) { c.Picker.StartView = "Feb 2024" }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Output.Format = "xml" }, wantErr: true},
		{name: "json format", mutate: func(c *Config) { c.Output.Format = report.FormatJSON }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadDefaults(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetStartView_CurrentMonth(t *testing.T) {
	cfg := loadDefaults(t)
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)
	assert.Equal(t, calendar.View{Year: 2026, Month: 9}, cfg.Picker.GetStartView(now))
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("RP_LOG_DIR", "/var/log/rp")
	cfg := loadDefaults(t)
	cfg.Log.File = "$RP_LOG_DIR/picker.log"
	cfg.ExpandEnvVars()
	assert.Equal(t, "/var/log/rp/picker.log", cfg.Log.File)
}
