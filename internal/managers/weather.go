package managers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/AlejandroE25/weatherman/internal/weather"
)

// ForecastSource is anything that can produce the weekly forecast
type ForecastSource interface {
	Fetch(ctx context.Context) (*weather.WeeklyForecast, error)
}

// WeatherData is the outcome of one fetch
type WeatherData struct {
	Forecast *weather.WeeklyForecast
	Err      error
	Elapsed  time.Duration
}

// WeatherManager runs the forecast fetch off the render goroutine
// and hands the result back on a channel
type WeatherManager struct {
	source ForecastSource

	once    sync.Once
	updates chan WeatherData
}

// NewWeatherManager creates a new WeatherManager
func NewWeatherManager(source ForecastSource) *WeatherManager {
	return &WeatherManager{
		source:  source,
		updates: make(chan WeatherData, 1),
	}
}

// Fetch starts the fetch in the background. Only the first call does anything.
func (wm *WeatherManager) Fetch(ctx context.Context) {
	wm.once.Do(func() {
		go wm.fetch(ctx)
	})
}

func (wm *WeatherManager) fetch(ctx context.Context) {
	start := time.Now()
	forecast, err := wm.source.Fetch(ctx)
	data := WeatherData{
		Forecast: forecast,
		Err:      err,
		Elapsed:  time.Since(start),
	}

	if err != nil {
		log.Printf("Forecast fetch failed after %s: %v", data.Elapsed, err)
	} else {
		log.Printf("Forecast loaded in %s", data.Elapsed)
	}

	// Buffered, never blocks
	wm.updates <- data
}

// Updates returns the channel the fetch result arrives on
func (wm *WeatherManager) Updates() <-chan WeatherData {
	return wm.updates
}
