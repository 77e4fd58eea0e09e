package app

import (
	"context"
	"fmt"
	"log"

	"github.com/AlejandroE25/weatherman/internal/input"
	"github.com/AlejandroE25/weatherman/internal/managers"
	"github.com/AlejandroE25/weatherman/internal/ui"
	"github.com/AlejandroE25/weatherman/internal/weather"
)

// KeySource delivers key presses from a background reader
type KeySource interface {
	Start(ctx context.Context)
	Keys() <-chan input.Key
	Errors() <-chan error
}

// App is the main application struct
type App struct {
	renderer   *ui.Renderer
	keys       KeySource
	weatherMgr *managers.WeatherManager
	opts       ui.Options

	// UI state, built once the forecast has arrived
	machine *ui.Machine
}

// New creates a new App drawing on surface
func New(surface ui.Surface, keys KeySource, source managers.ForecastSource, opts ui.Options) *App {
	return &App{
		renderer:   ui.NewRenderer(surface, opts.Layout),
		keys:       keys,
		weatherMgr: managers.NewWeatherManager(source),
		opts:       opts,
	}
}

// Run shows the loading panel until the forecast arrives, then drives the
// screens until the user quits or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	if err := a.renderer.Clear(); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}
	if err := a.renderer.RenderLoading(); err != nil {
		return fmt.Errorf("failed to draw loading panel: %w", err)
	}

	// Keys are read while loading so Ctrl+C can abandon a slow fetch
	a.weatherMgr.Fetch(ctx)
	a.keys.Start(ctx)

	forecast, pending, err := a.waitForForecast(ctx)
	if err != nil {
		return err
	}
	if forecast == nil {
		return a.renderer.Clear()
	}

	if err := a.renderer.Clear(); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}

	a.machine = ui.NewMachine(forecast, a.opts)
	for _, key := range pending {
		if a.machine.HandleKey(key) {
			log.Println("Shutting down...")
			return a.renderer.Clear()
		}
	}

	return a.eventLoop(ctx)
}

// waitForForecast blocks until the fetch completes. Keys pressed meanwhile are
// returned for replay. Ctrl+C or cancellation returns a nil forecast and no error.
func (a *App) waitForForecast(ctx context.Context) (*weather.WeeklyForecast, []input.Key, error) {
	var pending []input.Key
	for {
		select {
		case data := <-a.weatherMgr.Updates():
			if data.Err != nil {
				if ctx.Err() != nil {
					log.Println("Shutting down before the forecast arrived")
					return nil, nil, nil
				}
				return nil, nil, fmt.Errorf("failed to load forecast: %w", data.Err)
			}
			return data.Forecast, pending, nil

		case key := <-a.keys.Keys():
			if key.Code == input.KeyCtrlC {
				log.Println("Quit while loading")
				return nil, nil, nil
			}
			pending = append(pending, key)

		case err := <-a.keys.Errors():
			return nil, nil, fmt.Errorf("input stopped: %w", err)

		case <-ctx.Done():
			log.Println("Shutting down before the forecast arrived")
			return nil, nil, nil
		}
	}
}

// eventLoop renders the current screen and waits for the next key
func (a *App) eventLoop(ctx context.Context) error {
	for {
		if err := a.renderer.Render(a.machine.Current()); err != nil {
			return fmt.Errorf("failed to draw %s screen: %w", a.machine.CurrentID(), err)
		}

		select {
		case key := <-a.keys.Keys():
			if a.machine.HandleKey(key) {
				log.Println("Shutting down...")
				return a.renderer.Clear()
			}

		case err := <-a.keys.Errors():
			return fmt.Errorf("input stopped: %w", err)

		case <-ctx.Done():
			log.Println("Shutting down...")
			return a.renderer.Clear()
		}
	}
}
