package ui

import "github.com/AlejandroE25/weatherman/internal/input"

// ScreenID identifies one of the dashboard screens
type ScreenID int

const (
	ScreenForecast ScreenID = iota
	ScreenMenu
	ScreenHourly
	ScreenOptions
)

// String returns the screen name
func (id ScreenID) String() string {
	switch id {
	case ScreenForecast:
		return "forecast"
	case ScreenMenu:
		return "menu"
	case ScreenHourly:
		return "hourly"
	case ScreenOptions:
		return "options"
	default:
		return "unknown"
	}
}

// TransitionKind says what a key press does to the machine
type TransitionKind int

const (
	TransitionStay TransitionKind = iota
	TransitionSwitch
	TransitionQuit
)

// Transition is the outcome of handling one key
type Transition struct {
	Kind TransitionKind
	To   ScreenID // set for TransitionSwitch
}

func stay() Transition {
	return Transition{Kind: TransitionStay}
}

func switchTo(id ScreenID) Transition {
	return Transition{Kind: TransitionSwitch, To: id}
}

func quit() Transition {
	return Transition{Kind: TransitionQuit}
}

// Placement is a block assigned to a region
type Placement struct {
	Area  Rect
	Block Block
}

// Frame is everything drawn for one redraw
type Frame struct {
	Placements []Placement
}

// Place appends a block at area
func (f *Frame) Place(area Rect, b Block) {
	f.Placements = append(f.Placements, Placement{Area: area, Block: b})
}

// Screen pairs the rendering and the key handling of one screen
type Screen interface {
	// ID returns which screen this is
	ID() ScreenID

	// Render lays the screen out in area and builds its blocks
	Render(area Rect) Frame

	// HandleKey interprets one key press
	HandleKey(key input.Key) Transition
}

// activator is implemented by screens that need to react when they become current
type activator interface {
	activate()
}
