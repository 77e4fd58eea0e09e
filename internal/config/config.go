package config

import (
	"fmt"
	"time"
)

// Number of forecast columns and rows per column the dashboard draws
const (
	ForecastDays = 7
	SlotRows     = 8
)

// Config holds all process-wide settings for the dashboard
type Config struct {
	// Forecast location
	Latitude  float64
	Longitude float64
	Timezone  string

	// Units requested from the API
	Units Units

	// Forecast API
	BaseURL     string
	HTTPTimeout time.Duration
	UserAgent   string

	// Input feed
	TickRate  time.Duration
	QueueSize int

	// Panel proportions
	Layout Layout

	// Logging
	LogFile string
}

// Units are the unit names sent to the forecast API
type Units struct {
	Temperature   string // "fahrenheit" or "celsius"
	WindSpeed     string // "mph", "kmh", "ms" or "kn"
	Precipitation string // "inch" or "mm"
}

// Layout holds the percentage weights of every panel split
type Layout struct {
	Root            []int // title, tabs, body, controls
	Menu            []int // title, body, controls
	ForecastColumns []int // one per day
	SlotRows        []int // date, spacer, high, low, sunrise, sunset, precip, wind
	LoadingGrid     []int // both axes, loading panel takes the middle cell
}

// Default returns the fixed configuration used when no file is given
func Default() *Config {
	return &Config{
		Latitude:  42.64,
		Longitude: -82.96,
		Timezone:  "America/New_York",
		Units: Units{
			Temperature:   "fahrenheit",
			WindSpeed:     "mph",
			Precipitation: "inch",
		},
		BaseURL:     "https://api.open-meteo.com/v1/forecast",
		HTTPTimeout: 30 * time.Second,
		UserAgent:   "weatherman/1.0",
		TickRate:    200 * time.Millisecond,
		QueueSize:   64,
		Layout: Layout{
			Root:            []int{9, 9, 73, 9},
			Menu:            []int{33, 33, 34},
			ForecastColumns: []int{15, 14, 14, 14, 14, 14, 15},
			SlotRows:        []int{14, 6, 14, 14, 13, 13, 13, 13},
			LoadingGrid:     []int{20, 20, 20, 20, 20},
		},
	}
}

// Load returns the default configuration, overridden by the YAML file at path when path is set
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	fileConfig, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	fileConfig.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive the dashboard
func (c *Config) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %g", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %g", c.Longitude)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %s", c.TickRate)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("queue size must be positive, got %d", c.QueueSize)
	}

	switch c.Units.Temperature {
	case "fahrenheit", "celsius":
	default:
		return fmt.Errorf("unknown temperature unit %q", c.Units.Temperature)
	}
	switch c.Units.WindSpeed {
	case "mph", "kmh", "ms", "kn":
	default:
		return fmt.Errorf("unknown wind speed unit %q", c.Units.WindSpeed)
	}
	switch c.Units.Precipitation {
	case "inch", "mm":
	default:
		return fmt.Errorf("unknown precipitation unit %q", c.Units.Precipitation)
	}

	return c.Layout.validate()
}

func (l Layout) validate() error {
	checks := []struct {
		name    string
		weights []int
		count   int // 0 means any non-empty length
	}{
		{"root", l.Root, 4},
		{"menu", l.Menu, 3},
		{"forecast columns", l.ForecastColumns, ForecastDays},
		{"slot rows", l.SlotRows, SlotRows},
		{"loading grid", l.LoadingGrid, 0},
	}

	for _, c := range checks {
		if c.count > 0 && len(c.weights) != c.count {
			return fmt.Errorf("%s layout needs %d weights, got %d", c.name, c.count, len(c.weights))
		}
		if len(c.weights) == 0 {
			return fmt.Errorf("%s layout has no weights", c.name)
		}
		for _, w := range c.weights {
			if w < 0 {
				return fmt.Errorf("%s layout has negative weight %d", c.name, w)
			}
		}
	}

	return nil
}
