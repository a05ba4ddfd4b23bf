package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/cyp0633/textcal/calendar"
	"github.com/cyp0633/textcal/event"
	"github.com/cyp0633/textcal/export"
	"gopkg.in/yaml.v3"
)

// Config is the runner configuration.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level" json:"log_level"`

	// AllDayStart and AllDayEnd bound events created with a date only, as HH:MM.
	AllDayStart string `yaml:"all_day_start" json:"all_day_start"`
	AllDayEnd   string `yaml:"all_day_end" json:"all_day_end"`

	// ProductID is written as the iCalendar PRODID on export.
	ProductID string `yaml:"product_id" json:"product_id"`

	// MaxOccurrences caps how many events one series command may generate.
	// Zero, the default, disables the cap.
	MaxOccurrences int `yaml:"max_occurrences" json:"max_occurrences"`
}

const (
	defaultLogLevel       = "info"
	defaultAllDayStart    = "08:00"
	defaultAllDayEnd      = "17:00"
	defaultMaxOccurrences = 0

	clockLayout = "15:04"
)

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       defaultLogLevel,
		AllDayStart:    defaultAllDayStart,
		AllDayEnd:      defaultAllDayEnd,
		ProductID:      export.DefaultProductID,
		MaxOccurrences: defaultMaxOccurrences,
	}
}

// Normalize fills in missing values with defaults so that partial files
// still behave correctly.
func (c *Config) Normalize() {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = defaultLogLevel
	}
	if c.AllDayStart == "" {
		c.AllDayStart = defaultAllDayStart
	}
	if c.AllDayEnd == "" {
		c.AllDayEnd = defaultAllDayEnd
	}
	if c.ProductID == "" {
		c.ProductID = export.DefaultProductID
	}
	if c.MaxOccurrences < 0 {
		c.MaxOccurrences = defaultMaxOccurrences
	}
}

// AllDayWindow parses AllDayStart and AllDayEnd.
func (c *Config) AllDayWindow() (calendar.Window, error) {
	start, err := parseClock(c.AllDayStart)
	if err != nil {
		return calendar.Window{}, fmt.Errorf("all_day_start: %w", err)
	}
	end, err := parseClock(c.AllDayEnd)
	if err != nil {
		return calendar.Window{}, fmt.Errorf("all_day_end: %w", err)
	}
	if end.Before(start) {
		return calendar.Window{}, fmt.Errorf("all_day_end %s is before all_day_start %s", end, start)
	}
	return calendar.Window{Start: start, End: end}, nil
}

func parseClock(s string) (event.TimeOfDay, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return event.TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return event.ClockOf(t), nil
}

// Parse reads YAML configuration and normalizes it.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()
	if _, err := cfg.AllDayWindow(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads configuration from the given YAML path.
// An empty path or a missing file yields the defaults; nothing is written.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return Parse(data)
}
