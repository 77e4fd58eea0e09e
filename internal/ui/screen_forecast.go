package ui

import (
	"github.com/AlejandroE25/weatherman/internal/config"
	"github.com/AlejandroE25/weatherman/internal/input"
	"github.com/AlejandroE25/weatherman/internal/weather"
)

var forecastBindings = []Binding{
	{Key: "Q", Help: "quit"},
	{Key: "M", Help: "menu"},
}

// forecastScreen shows the seven-day forecast
type forecastScreen struct {
	forecast *weather.WeeklyForecast
	layout   config.Layout
	labels   UnitLabels
	emoji    bool
}

func (s *forecastScreen) ID() ScreenID {
	return ScreenForecast
}

func (s *forecastScreen) Render(area Rect) Frame {
	l := CalculateForecastLayout(area, s.layout)

	var f Frame
	f.Place(l.Title, TitleBlock(s.emoji))
	f.Place(l.Tabs, TabsBlock("7 day forecast"))
	f.Place(l.Controls, ControlsBlock(forecastBindings))

	for i, day := range s.forecast.Days() {
		if i >= len(l.Slots) {
			break
		}
		blocks := ForecastBlocks(day, PositionFromIndex(i), s.labels)
		for row, block := range blocks {
			if row >= len(l.Slots[i]) {
				break
			}
			f.Place(l.Slots[i][row], block)
		}
	}

	return f
}

func (s *forecastScreen) HandleKey(key input.Key) Transition {
	switch {
	case key.Is('q'):
		return quit()
	case key.Is('m'):
		return switchTo(ScreenMenu)
	}
	return stay()
}
