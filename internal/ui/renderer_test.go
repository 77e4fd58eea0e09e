package ui

import (
	"errors"
	"testing"

	"github.com/AlejandroE25/weatherman/internal/config"
)

func TestRendererQueriesSizeEveryFrame(t *testing.T) {
	surface := &fakeSurface{width: 80, height: 24}
	r := NewRenderer(surface, config.Default().Layout)
	m := newTestMachine(t)

	if err := r.Render(m.Current()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	surface.width, surface.height = 120, 40
	if err := r.Render(m.Current()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if surface.sizeCalls != 2 {
		t.Errorf("Expected size to be queried twice, got %d", surface.sizeCalls)
	}
	if len(surface.frames) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(surface.frames))
	}
	if w := surface.frames[0].Placements[0].Area.Width; w != 80 {
		t.Errorf("first frame: expected title width 80, got %d", w)
	}
	if w := surface.frames[1].Placements[0].Area.Width; w != 120 {
		t.Errorf("second frame: expected title width 120, got %d", w)
	}
}

func TestRendererLoading(t *testing.T) {
	surface := &fakeSurface{width: 100, height: 50}
	r := NewRenderer(surface, config.Default().Layout)

	if err := r.RenderLoading(); err != nil {
		t.Fatalf("RenderLoading returned error: %v", err)
	}

	f := surface.frames[0]
	if len(f.Placements) != 1 {
		t.Fatalf("Expected one placement, got %d", len(f.Placements))
	}
	if f.Placements[0].Block.Text() != "Loading..." {
		t.Errorf("Unexpected loading text %q", f.Placements[0].Block.Text())
	}
	want := Rect{X: 40, Y: 20, Width: 20, Height: 10}
	if f.Placements[0].Area != want {
		t.Errorf("Expected loading panel at %+v, got %+v", want, f.Placements[0].Area)
	}
}

func TestRendererErrors(t *testing.T) {
	sizeErr := errors.New("size failed")
	surface := &fakeSurface{sizeErr: sizeErr}
	r := NewRenderer(surface, config.Default().Layout)

	if err := r.Render(newTestMachine(t).Current()); !errors.Is(err, sizeErr) {
		t.Errorf("Expected size error, got %v", err)
	}
	if err := r.RenderLoading(); !errors.Is(err, sizeErr) {
		t.Errorf("Expected size error, got %v", err)
	}

	drawErr := errors.New("draw failed")
	surface = &fakeSurface{width: 10, height: 10, drawErr: drawErr}
	r = NewRenderer(surface, config.Default().Layout)
	if err := r.RenderLoading(); !errors.Is(err, drawErr) {
		t.Errorf("Expected draw error, got %v", err)
	}
}

func TestRendererClear(t *testing.T) {
	surface := &fakeSurface{}
	r := NewRenderer(surface, config.Default().Layout)

	if err := r.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if surface.clears != 1 {
		t.Errorf("Expected one clear, got %d", surface.clears)
	}
}
