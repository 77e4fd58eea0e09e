package ui

import "github.com/AlejandroE25/weatherman/internal/config"

// MenuLayout is the three-band layout of the menu screen
type MenuLayout struct {
	Title    Rect
	Body     Rect
	Controls Rect
}

// CalculateMenuLayout splits the screen into title, menu list and controls thirds
func CalculateMenuLayout(area Rect, layout config.Layout) MenuLayout {
	bands := Split(area, Vertical, layout.Menu)
	return MenuLayout{
		Title:    bands[0],
		Body:     bands[1],
		Controls: bands[2],
	}
}

// LoadingPanel returns the centred region the loading message is drawn in
func LoadingPanel(area Rect, layout config.Layout) Rect {
	return Centered(area, layout.LoadingGrid)
}
