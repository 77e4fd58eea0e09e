package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AlejandroE25/weatherman/internal/config"
	"github.com/AlejandroE25/weatherman/internal/weather"
)

// Colors (ANSI palette indexes)
const (
	ColorBlue      = lipgloss.Color("4")
	ColorMagenta   = lipgloss.Color("5")
	ColorCyan      = lipgloss.Color("6")
	ColorYellow    = lipgloss.Color("3")
	ColorDarkGray  = lipgloss.Color("8")
	ColorLightRed  = lipgloss.Color("9")
	ColorLightBlue = lipgloss.Color("12")
	ColorWhite     = lipgloss.Color("15")
)

// ForecastPosition is where a day's column sits among the seven
type ForecastPosition int

const (
	PositionLeft ForecastPosition = iota
	PositionMiddle
	PositionRight
)

// PositionFromIndex maps a day index (0-6) to its column position
func PositionFromIndex(index int) ForecastPosition {
	switch {
	case index <= 2:
		return PositionLeft
	case index == 3:
		return PositionMiddle
	default:
		return PositionRight
	}
}

// borders returns the column edges drawn for a position
func (p ForecastPosition) borders() Borders {
	switch p {
	case PositionLeft:
		return BorderLeft
	case PositionMiddle:
		return BorderLeft | BorderRight
	default:
		return BorderRight
	}
}

// UnitLabels are the suffixes printed after forecast values
type UnitLabels struct {
	Temperature   string
	Precipitation string
	WindSpeed     string
}

// LabelsFor returns display suffixes for the configured API units
func LabelsFor(units config.Units) UnitLabels {
	labels := UnitLabels{
		Temperature:   "°F",
		Precipitation: "in",
		WindSpeed:     "mph",
	}

	if units.Temperature == "celsius" {
		labels.Temperature = "°C"
	}
	if units.Precipitation == "mm" {
		labels.Precipitation = "mm"
	}
	switch units.WindSpeed {
	case "kmh":
		labels.WindSpeed = "km/h"
	case "ms":
		labels.WindSpeed = "m/s"
	case "kn":
		labels.WindSpeed = "kn"
	}

	return labels
}

// ForecastBlocks returns the eight blocks of one day's column: date, spacer,
// high, low, sunrise, sunset, precipitation and wind
func ForecastBlocks(day weather.DailyWeather, pos ForecastPosition, labels UnitLabels) []Block {
	side := pos.borders()

	row := func(text string, color lipgloss.Color, extra Borders) Block {
		return Block{
			Lines:   []Line{{{Text: text, Style: TextStyle{Foreground: color}}}},
			Borders: side | extra,
			Align:   lipgloss.Center,
		}
	}

	date := Block{
		Lines:   []Line{{{Text: day.DisplayDate(), Style: TextStyle{Bold: true, Underline: true}}}},
		Borders: BorderAll,
		Style:   TextStyle{Foreground: ColorMagenta},
		Align:   lipgloss.Center,
	}

	return []Block{
		date,
		{},
		row("high: "+weather.FormatNumber(day.MaxTemp)+labels.Temperature, ColorLightRed, BorderTop),
		row("low: "+weather.FormatNumber(day.MinTemp)+labels.Temperature, ColorCyan, BorderNone),
		row("sunrise: "+day.Sunrise, ColorYellow, BorderNone),
		row("sunset: "+day.Sunset, ColorDarkGray, BorderNone),
		row("precip: "+weather.FormatNumber(day.Precipitation)+labels.Precipitation, ColorBlue, BorderNone),
		row("winds: "+weather.FormatNumber(day.MaxWindSpeed)+labels.WindSpeed, ColorWhite, BorderBottom),
	}
}

// TitleBlock returns the application title
func TitleBlock(emoji bool) Block {
	title := "weatherman"
	if emoji {
		title += " 🌩️"
	}
	return Block{
		Lines:   []Line{{{Text: title}}},
		Borders: BorderAll,
		Style:   TextStyle{Foreground: ColorLightBlue},
		Align:   lipgloss.Center,
	}
}

// TabsBlock returns the label of the current screen
func TabsBlock(label string) Block {
	return Block{
		Lines:   []Line{{{Text: label}}},
		Borders: BorderAll,
		Style:   TextStyle{Foreground: ColorWhite},
		Align:   lipgloss.Center,
	}
}

// Binding is one key help entry
type Binding struct {
	Key  string
	Help string
}

// ControlsBlock returns the key help line, e.g. "Q: quit | M: menu"
func ControlsBlock(bindings []Binding) Block {
	keyStyle := TextStyle{Bold: true, Underline: true}

	var line Line
	for i, b := range bindings {
		if i > 0 {
			line = append(line, Span{Text: " | "})
		}
		line = append(line, Span{Text: b.Key, Style: keyStyle}, Span{Text: ": " + b.Help})
	}

	return Block{
		Lines:   []Line{line},
		Borders: BorderAll,
		Style:   TextStyle{Foreground: ColorWhite},
		Align:   lipgloss.Center,
	}
}

// MenuBlock lists entries, marking the selected one. A negative selected marks none.
func MenuBlock(entries []string, selected int) Block {
	lines := make([]Line, 0, len(entries))
	for i, entry := range entries {
		if i == selected {
			lines = append(lines, Line{{
				Text:  "> " + entry,
				Style: TextStyle{Foreground: ColorLightBlue, Bold: true, Reverse: true},
			}})
			continue
		}
		lines = append(lines, Line{{Text: "  " + entry}})
	}

	return Block{
		Lines:   lines,
		Borders: BorderAll,
		Style:   TextStyle{Foreground: ColorWhite},
		Align:   lipgloss.Center,
	}
}

// LoadingBlock returns the message shown while the forecast is fetched
func LoadingBlock() Block {
	return Block{
		Lines:   []Line{{{Text: "Loading..."}}},
		Borders: BorderAll,
		Align:   lipgloss.Center,
	}
}

// BlankBlock returns an empty bordered panel
func BlankBlock() Block {
	return Block{Borders: BorderAll}
}
