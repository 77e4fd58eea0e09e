package ui

import (
	"github.com/AlejandroE25/weatherman/internal/config"
	"github.com/AlejandroE25/weatherman/internal/input"
)

var placeholderBindings = []Binding{
	{Key: "Q", Help: "quit"},
}

// placeholderScreen has chrome but an empty body (hourly and options)
type placeholderScreen struct {
	id     ScreenID
	label  string
	layout config.Layout
	emoji  bool
}

func (s *placeholderScreen) ID() ScreenID {
	return s.id
}

func (s *placeholderScreen) Render(area Rect) Frame {
	l := CalculateRootLayout(area, s.layout)

	var f Frame
	f.Place(l.Title, TitleBlock(s.emoji))
	f.Place(l.Tabs, TabsBlock(s.label))
	f.Place(l.Body, BlankBlock())
	f.Place(l.Controls, ControlsBlock(placeholderBindings))
	return f
}

func (s *placeholderScreen) HandleKey(key input.Key) Transition {
	if key.Is('q') {
		return quit()
	}
	return stay()
}
