package ui

import (
	"github.com/AlejandroE25/weatherman/internal/config"
	"github.com/AlejandroE25/weatherman/internal/input"
)

// menuEntries are the screens the menu can open, in cursor order
var menuEntries = []ScreenID{ScreenForecast, ScreenHourly, ScreenOptions}

var menuLabels = []string{"Forecast", "Hourly", "Options"}

var menuBindings = []Binding{
	{Key: "J/K", Help: "move"},
	{Key: "Enter", Help: "select"},
	{Key: "Q", Help: "quit"},
}

// menuScreen lets the user pick another screen
type menuScreen struct {
	cursor *Cursor
	layout config.Layout
	emoji  bool
}

func (s *menuScreen) ID() ScreenID {
	return ScreenMenu
}

// activate selects the first entry when nothing has been selected yet
func (s *menuScreen) activate() {
	if _, ok := s.cursor.Selected(); !ok {
		s.cursor.Select(0)
	}
}

func (s *menuScreen) Render(area Rect) Frame {
	l := CalculateMenuLayout(area, s.layout)

	selected := -1
	if i, ok := s.cursor.Selected(); ok {
		selected = i
	}

	var f Frame
	f.Place(l.Title, TitleBlock(s.emoji))
	f.Place(l.Body, MenuBlock(menuLabels, selected))
	f.Place(l.Controls, ControlsBlock(menuBindings))
	return f
}

func (s *menuScreen) HandleKey(key input.Key) Transition {
	switch {
	case key.Is('q'):
		return quit()
	case key.Is('j'):
		s.cursor.Next()
	case key.Is('k'):
		s.cursor.Prev()
	case key.Code == input.KeyEnter:
		return switchTo(s.target())
	}
	return stay()
}

// target returns the screen under the cursor, or the forecast when there is none
func (s *menuScreen) target() ScreenID {
	i, ok := s.cursor.Selected()
	if !ok || i < 0 || i >= len(menuEntries) {
		return ScreenForecast
	}
	return menuEntries[i]
}
