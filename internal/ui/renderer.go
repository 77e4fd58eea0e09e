package ui

import "github.com/AlejandroE25/weatherman/internal/config"

// Renderer turns screens into frames sized to the surface
type Renderer struct {
	surface Surface
	layout  config.Layout
}

// NewRenderer creates a new Renderer drawing on surface
func NewRenderer(surface Surface, layout config.Layout) *Renderer {
	return &Renderer{
		surface: surface,
		layout:  layout,
	}
}

// area returns the full surface, queried fresh for every frame
func (r *Renderer) area() (Rect, error) {
	width, height, err := r.surface.Size()
	if err != nil {
		return Rect{}, err
	}
	return Rect{Width: width, Height: height}, nil
}

// Render draws one frame of screen
func (r *Renderer) Render(screen Screen) error {
	area, err := r.area()
	if err != nil {
		return err
	}
	return r.surface.Draw(screen.Render(area))
}

// RenderLoading draws the loading panel
func (r *Renderer) RenderLoading() error {
	area, err := r.area()
	if err != nil {
		return err
	}

	var f Frame
	f.Place(LoadingPanel(area, r.layout), LoadingBlock())
	return r.surface.Draw(f)
}

// Clear clears the surface
func (r *Renderer) Clear() error {
	return r.surface.Clear()
}
