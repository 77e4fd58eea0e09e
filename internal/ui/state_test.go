package ui

import (
	"testing"

	"github.com/AlejandroE25/weatherman/internal/config"
	"github.com/AlejandroE25/weatherman/internal/input"
)

var (
	keyQ     = input.Char('q')
	keyM     = input.Char('m')
	keyJ     = input.Char('j')
	keyK     = input.Char('k')
	keyEnter = input.Key{Code: input.KeyEnter}
)

func TestCursorWraps(t *testing.T) {
	c := NewCursor(3)

	if _, ok := c.Selected(); ok {
		t.Fatal("A new cursor should have no selection")
	}

	c.Select(0)
	for _, want := range []int{1, 2, 0} {
		c.Next()
		if got, _ := c.Selected(); got != want {
			t.Errorf("Next: expected %d, got %d", want, got)
		}
	}

	c.Prev()
	if got, _ := c.Selected(); got != 2 {
		t.Errorf("Prev from 0: expected 2, got %d", got)
	}
}

func TestCursorWithoutSelection(t *testing.T) {
	next := NewCursor(3)
	next.Next()
	if got, ok := next.Selected(); !ok || got != 0 {
		t.Errorf("Next with no selection: expected 0, got %d (%v)", got, ok)
	}

	prev := NewCursor(3)
	prev.Prev()
	if got, ok := prev.Selected(); !ok || got != 2 {
		t.Errorf("Prev with no selection: expected 2, got %d (%v)", got, ok)
	}

	empty := NewCursor(0)
	empty.Next()
	if _, ok := empty.Selected(); ok {
		t.Error("An empty cursor should never select")
	}
}

func TestMachineStartsOnForecast(t *testing.T) {
	m := newTestMachine(t)
	AssertScreen(t, m, ScreenForecast)

	if m.Current().ID() != ScreenForecast {
		t.Error("Current screen does not match CurrentID")
	}
}

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name     string
		keys     []input.Key
		want     ScreenID
		selected int
	}{
		{"open menu", []input.Key{keyM}, ScreenMenu, 0},
		{"menu back to forecast", []input.Key{keyM, keyEnter}, ScreenForecast, 0},
		{"menu to hourly", []input.Key{keyM, keyJ, keyEnter}, ScreenHourly, 1},
		{"menu to options", []input.Key{keyM, keyK, keyEnter}, ScreenOptions, 2},
		{"wrap down to forecast", []input.Key{keyM, keyJ, keyJ, keyJ, keyEnter}, ScreenForecast, 0},
		{"m ignored on menu", []input.Key{keyM, keyM}, ScreenMenu, 0},
		{"m ignored on hourly", []input.Key{keyM, keyJ, keyEnter, keyM}, ScreenHourly, 1},
		{"j ignored on forecast", []input.Key{keyJ, keyK, keyEnter}, ScreenForecast, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t)

			for _, k := range tt.keys {
				if m.HandleKey(k) {
					t.Fatalf("key %s should not quit", k)
				}
			}

			AssertScreen(t, m, tt.want)
			if tt.want == ScreenMenu || tt.selected != 0 {
				if got, _ := m.cursor.Selected(); got != tt.selected {
					t.Errorf("Expected cursor %d, got %d", tt.selected, got)
				}
			}
		})
	}
}

func TestMachineQuitsFromEveryScreen(t *testing.T) {
	paths := map[ScreenID][]input.Key{
		ScreenForecast: nil,
		ScreenMenu:     {keyM},
		ScreenHourly:   {keyM, keyJ, keyEnter},
		ScreenOptions:  {keyM, keyK, keyEnter},
	}

	for id, path := range paths {
		for _, quitKey := range []input.Key{keyQ, {Code: input.KeyCtrlC}} {
			m := newTestMachine(t)
			for _, k := range path {
				m.HandleKey(k)
			}
			AssertScreen(t, m, id)

			if !m.HandleKey(quitKey) {
				t.Errorf("%s: %s should quit", id, quitKey)
			}
		}
	}
}

func TestMachineIgnoresUnknownKeys(t *testing.T) {
	unknown := []input.Key{
		input.Char('x'),
		input.Char('Q'),
		{Code: input.KeyEscape},
		{Code: input.KeyUp},
		{Code: input.KeyTab},
		{Code: input.KeyNone},
	}

	for _, id := range []ScreenID{ScreenForecast, ScreenMenu} {
		m := newTestMachine(t)
		if id == ScreenMenu {
			m.HandleKey(keyM)
		}
		before, _ := m.cursor.Selected()

		for _, k := range unknown {
			if m.HandleKey(k) {
				t.Errorf("%s: %s should not quit", id, k)
			}
		}

		AssertScreen(t, m, id)
		if after, _ := m.cursor.Selected(); after != before {
			t.Errorf("%s: cursor moved from %d to %d", id, before, after)
		}
	}
}

func TestMenuCursorPersistsAcrossVisits(t *testing.T) {
	m := newTestMachine(t)

	for _, k := range []input.Key{keyM, keyJ, keyK, keyEnter, keyM} {
		m.HandleKey(k)
	}
	AssertScreen(t, m, ScreenMenu)

	if got, ok := m.cursor.Selected(); !ok || got != 0 {
		t.Fatalf("Expected cursor to stay on 0, got %d (%v)", got, ok)
	}

	m.HandleKey(keyK)
	if got, _ := m.cursor.Selected(); got != 2 {
		t.Errorf("Expected cursor to wrap to 2, got %d", got)
	}
}

func TestMenuEnterWithoutSelection(t *testing.T) {
	s := &menuScreen{cursor: NewCursor(len(menuEntries)), layout: config.Default().Layout}

	tr := s.HandleKey(keyEnter)
	if tr.Kind != TransitionSwitch || tr.To != ScreenForecast {
		t.Errorf("Expected switch to forecast, got %+v", tr)
	}
}

func TestScreensRender(t *testing.T) {
	area := Rect{Width: 140, Height: 50}

	tests := []struct {
		path       []input.Key
		id         ScreenID
		placements int
		tab        string
	}{
		{nil, ScreenForecast, 3 + config.ForecastDays*config.SlotRows, "7 day forecast"},
		{[]input.Key{keyM}, ScreenMenu, 3, ""},
		{[]input.Key{keyM, keyJ, keyEnter}, ScreenHourly, 4, "hourly forecast"},
		{[]input.Key{keyM, keyK, keyEnter}, ScreenOptions, 4, "options"},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			m := newTestMachine(t)
			for _, k := range tt.path {
				m.HandleKey(k)
			}
			AssertScreen(t, m, tt.id)

			f := m.Current().Render(area)
			if len(f.Placements) != tt.placements {
				t.Fatalf("Expected %d placements, got %d", tt.placements, len(f.Placements))
			}
			for i, p := range f.Placements {
				assertWithin(t, "placement", p.Area, area)
				if i == 0 && p.Block.Text() != "weatherman" {
					t.Errorf("Expected title first, got %q", p.Block.Text())
				}
			}
			if tt.tab != "" && f.Placements[1].Block.Text() != tt.tab {
				t.Errorf("Expected tab %q, got %q", tt.tab, f.Placements[1].Block.Text())
			}
		})
	}
}

func TestMenuRenderShowsSelection(t *testing.T) {
	m := newTestMachine(t)
	m.HandleKey(keyM)
	m.HandleKey(keyJ)

	f := m.Current().Render(Rect{Width: 60, Height: 30})
	if got := f.Placements[1].Block.Text(); got != "  Forecast\n> Hourly\n  Options" {
		t.Errorf("Unexpected menu body %q", got)
	}
}
