package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig represents the structure of the optional YAML config file.
// Zero values leave the defaults untouched.
type FileConfig struct {
	Location struct {
		Latitude  *float64 `yaml:"latitude"`
		Longitude *float64 `yaml:"longitude"`
		Timezone  string   `yaml:"timezone"`
	} `yaml:"location"`

	Units struct {
		Temperature   string `yaml:"temperature"`
		WindSpeed     string `yaml:"wind_speed"`
		Precipitation string `yaml:"precipitation"`
	} `yaml:"units"`

	API struct {
		BaseURL   string `yaml:"base_url"`
		Timeout   int    `yaml:"timeout"` // seconds
		UserAgent string `yaml:"user_agent"`
	} `yaml:"api"`

	Input struct {
		TickRate  int `yaml:"tick_rate_ms"`
		QueueSize int `yaml:"queue_size"`
	} `yaml:"input"`

	Layout struct {
		Root            []int `yaml:"root"`
		Menu            []int `yaml:"menu"`
		ForecastColumns []int `yaml:"forecast_columns"`
		SlotRows        []int `yaml:"slot_rows"`
		LoadingGrid     []int `yaml:"loading_grid"`
	} `yaml:"layout"`

	LogFile string `yaml:"log_file"`
}

// LoadFromFile loads configuration from the YAML file at path
func LoadFromFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &fc, nil
}

// apply copies every value set in the file onto cfg
func (fc *FileConfig) apply(cfg *Config) {
	if fc.Location.Latitude != nil {
		cfg.Latitude = *fc.Location.Latitude
	}
	if fc.Location.Longitude != nil {
		cfg.Longitude = *fc.Location.Longitude
	}
	if fc.Location.Timezone != "" {
		cfg.Timezone = fc.Location.Timezone
	}

	if fc.Units.Temperature != "" {
		cfg.Units.Temperature = fc.Units.Temperature
	}
	if fc.Units.WindSpeed != "" {
		cfg.Units.WindSpeed = fc.Units.WindSpeed
	}
	if fc.Units.Precipitation != "" {
		cfg.Units.Precipitation = fc.Units.Precipitation
	}

	if fc.API.BaseURL != "" {
		cfg.BaseURL = fc.API.BaseURL
	}
	if fc.API.Timeout != 0 {
		cfg.HTTPTimeout = time.Duration(fc.API.Timeout) * time.Second
	}
	if fc.API.UserAgent != "" {
		cfg.UserAgent = fc.API.UserAgent
	}

	if fc.Input.TickRate != 0 {
		cfg.TickRate = time.Duration(fc.Input.TickRate) * time.Millisecond
	}
	if fc.Input.QueueSize != 0 {
		cfg.QueueSize = fc.Input.QueueSize
	}

	if fc.Layout.Root != nil {
		cfg.Layout.Root = fc.Layout.Root
	}
	if fc.Layout.Menu != nil {
		cfg.Layout.Menu = fc.Layout.Menu
	}
	if fc.Layout.ForecastColumns != nil {
		cfg.Layout.ForecastColumns = fc.Layout.ForecastColumns
	}
	if fc.Layout.SlotRows != nil {
		cfg.Layout.SlotRows = fc.Layout.SlotRows
	}
	if fc.Layout.LoadingGrid != nil {
		cfg.Layout.LoadingGrid = fc.Layout.LoadingGrid
	}

	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
}
