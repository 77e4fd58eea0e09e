package ui

import (
	"log"

	"github.com/AlejandroE25/weatherman/internal/config"
	"github.com/AlejandroE25/weatherman/internal/input"
	"github.com/AlejandroE25/weatherman/internal/weather"
)

// Cursor is a selection over a fixed-size list that wraps at both ends.
// A new cursor has no selection.
type Cursor struct {
	size     int
	index    int
	selected bool
}

// NewCursor creates a cursor over size entries with nothing selected
func NewCursor(size int) *Cursor {
	return &Cursor{size: size}
}

// Selected returns the selected index, and false when there is no selection
func (c *Cursor) Selected() (int, bool) {
	return c.index, c.selected
}

// Select selects entry i, wrapped into range
func (c *Cursor) Select(i int) {
	if c.size <= 0 {
		return
	}
	c.index = ((i % c.size) + c.size) % c.size
	c.selected = true
}

// Next moves down one entry; with no selection it selects the first
func (c *Cursor) Next() {
	if !c.selected {
		c.Select(0)
		return
	}
	c.Select(c.index + 1)
}

// Prev moves up one entry; with no selection it selects the last
func (c *Cursor) Prev() {
	if !c.selected {
		c.Select(c.size - 1)
		return
	}
	c.Select(c.index - 1)
}

// Options configure how screens are drawn
type Options struct {
	Layout config.Layout
	Labels UnitLabels
	Emoji  bool
}

// Machine tracks the current screen and routes key presses to it
type Machine struct {
	current ScreenID
	screens map[ScreenID]Screen
	cursor  *Cursor
}

// NewMachine builds the four dashboard screens around forecast, starting on the forecast screen
func NewMachine(forecast *weather.WeeklyForecast, opts Options) *Machine {
	cursor := NewCursor(len(menuEntries))

	screens := []Screen{
		&forecastScreen{forecast: forecast, layout: opts.Layout, labels: opts.Labels, emoji: opts.Emoji},
		&menuScreen{cursor: cursor, layout: opts.Layout, emoji: opts.Emoji},
		&placeholderScreen{id: ScreenHourly, label: "hourly forecast", layout: opts.Layout, emoji: opts.Emoji},
		&placeholderScreen{id: ScreenOptions, label: "options", layout: opts.Layout, emoji: opts.Emoji},
	}

	m := &Machine{
		current: ScreenForecast,
		screens: make(map[ScreenID]Screen, len(screens)),
		cursor:  cursor,
	}
	for _, s := range screens {
		m.screens[s.ID()] = s
	}

	return m
}

// Current returns the screen to draw
func (m *Machine) Current() Screen {
	return m.screens[m.current]
}

// CurrentID returns the identity of the current screen
func (m *Machine) CurrentID() ScreenID {
	return m.current
}

// HandleKey applies one key press and reports whether the program should quit
func (m *Machine) HandleKey(key input.Key) bool {
	// Raw mode swallows SIGINT, so Ctrl+C quits from anywhere
	if key.Code == input.KeyCtrlC {
		return true
	}

	t := m.Current().HandleKey(key)
	switch t.Kind {
	case TransitionQuit:
		return true

	case TransitionSwitch:
		next, ok := m.screens[t.To]
		if !ok {
			log.Printf("Ignoring switch to unknown screen %d", t.To)
			return false
		}
		log.Printf("Screen %s -> %s", m.current, t.To)
		m.current = t.To
		if a, ok := next.(activator); ok {
			a.activate()
		}
	}

	return false
}
