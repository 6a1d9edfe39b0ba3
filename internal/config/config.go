package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/range-picker/internal/calendar"
	"github.com/username/range-picker/internal/daterange"
	"github.com/username/range-picker/internal/report"
)

// Config represents application configuration
type Config struct {
	Picker PickerConfig `mapstructure:"picker"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// PickerConfig represents picker behaviour
type PickerConfig struct {
	Presets   []int  `mapstructure:"presets"`    // "last N days" shortcuts
	YearSpan  int    `mapstructure:"year_span"`  // years reachable either side of the current year
	StartView string `mapstructure:"start_view"` // YYYY-MM, empty for the current month
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// OutputConfig represents how results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load loads configuration from file. An empty path searches the default
// locations; not finding a config file there is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.range-picker")
		v.AddConfigPath("/etc/range-picker")
	}

	// Read environment variables
	v.SetEnvPrefix("RANGE_PICKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("picker.presets", daterange.DefaultPresetDays)
	v.SetDefault("picker.year_span", 50)
	v.SetDefault("picker.start_view", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("output.format", report.FormatText)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, n := range c.Picker.Presets {
		if n <= 0 {
			return fmt.Errorf("picker.presets must be positive, got %d", n)
		}
	}
	if c.Picker.YearSpan <= 0 {
		return fmt.Errorf("picker.year_span must be positive")
	}
	if c.Picker.StartView != "" {
		if _, err := calendar.ParseView(c.Picker.StartView); err != nil {
			return fmt.Errorf("picker.start_view: %w", err)
		}
	}

	switch c.Output.Format {
	case report.FormatText, report.FormatJSON:
	default:
		return fmt.Errorf("output.format must be '%s' or '%s', got '%s'", report.FormatText, report.FormatJSON, c.Output.Format)
	}

	return nil
}

// GetStartView returns the month to show first: the configured one or the
// month containing now.
func (c *PickerConfig) GetStartView(now time.Time) calendar.View {
	if c.StartView == "" {
		return calendar.ViewOf(now)
	}
	view, err := calendar.ParseView(c.StartView)
	if err != nil {
		return calendar.ViewOf(now)
	}
	return view
}

// GetPresets returns the configured shortcuts
func (c *PickerConfig) GetPresets() []daterange.Preset {
	if len(c.Presets) == 0 {
		return daterange.DefaultPresets()
	}
	return daterange.PresetsFor(c.Presets)
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
}
