package ui

import "github.com/AlejandroE25/weatherman/internal/config"

// RootLayout is the four-band layout shared by the forecast, hourly and options screens
type RootLayout struct {
	Title    Rect
	Tabs     Rect
	Body     Rect
	Controls Rect
}

// CalculateRootLayout splits the screen into title, tabs, body and controls bands
func CalculateRootLayout(area Rect, layout config.Layout) RootLayout {
	bands := Split(area, Vertical, layout.Root)
	return RootLayout{
		Title:    bands[0],
		Tabs:     bands[1],
		Body:     bands[2],
		Controls: bands[3],
	}
}

// ForecastLayout adds the per-day columns and their rows to the root layout
type ForecastLayout struct {
	RootLayout

	// Slots[day][row] is the cell for one row of one day's column
	Slots [][]Rect
}

// CalculateForecastLayout computes every region of the forecast screen
func CalculateForecastLayout(area Rect, layout config.Layout) ForecastLayout {
	root := CalculateRootLayout(area, layout)

	columns := Split(root.Body, Horizontal, layout.ForecastColumns)
	slots := make([][]Rect, len(columns))
	for i, column := range columns {
		slots[i] = Split(column, Vertical, layout.SlotRows)
	}

	return ForecastLayout{
		RootLayout: root,
		Slots:      slots,
	}
}
