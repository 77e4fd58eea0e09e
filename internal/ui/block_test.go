package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestBordersHas(t *testing.T) {
	b := BorderLeft | BorderTop

	if !b.Has(BorderLeft) || !b.Has(BorderTop) || !b.Has(BorderLeft|BorderTop) {
		t.Error("Expected left and top to be set")
	}
	if b.Has(BorderRight) || b.Has(BorderAll) {
		t.Error("Expected right to be unset")
	}
	if !BorderAll.Has(BorderTop | BorderRight | BorderBottom | BorderLeft) {
		t.Error("BorderAll should contain every side")
	}
}

func TestBlockText(t *testing.T) {
	b := Block{Lines: []Line{
		{{Text: "Q"}, {Text: ": quit"}},
		{{Text: "second"}},
	}}

	if got := b.Text(); got != "Q: quit\nsecond" {
		t.Errorf("Expected joined text, got %q", got)
	}
	if got := (Block{}).Text(); got != "" {
		t.Errorf("Expected empty text, got %q", got)
	}
}

func TestBlockRenderFillsArea(t *testing.T) {
	tests := []struct {
		name          string
		block         Block
		width, height int
	}{
		{"bordered", Block{Lines: []Line{{{Text: "hello"}}}, Borders: BorderAll, Align: lipgloss.Center}, 12, 3},
		{"left only", Block{Lines: []Line{{{Text: "low: 30"}}}, Borders: BorderLeft}, 10, 2},
		{"left and top", Block{Lines: []Line{{{Text: "high"}}}, Borders: BorderLeft | BorderTop}, 8, 3},
		{"no borders", Block{Lines: []Line{{{Text: "plain"}}}}, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.block.Render(tt.width, tt.height, lipgloss.RoundedBorder())

			lines := strings.Split(out, "\n")
			if len(lines) != tt.height {
				t.Fatalf("Expected %d lines, got %d: %q", tt.height, len(lines), out)
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w != tt.width {
					t.Errorf("line %d: expected width %d, got %d (%q)", i, tt.width, w, line)
				}
			}
		})
	}
}

func TestBlockRenderNeverExceedsArea(t *testing.T) {
	b := Block{
		Lines:   []Line{{{Text: "a long line of text that does not fit anywhere"}}, {{Text: "second"}}, {{Text: "third"}}},
		Borders: BorderAll,
	}

	sizes := [][2]int{{1, 1}, {2, 2}, {3, 1}, {5, 3}, {20, 4}}
	for _, size := range sizes {
		out := b.Render(size[0], size[1], lipgloss.RoundedBorder())

		lines := strings.Split(out, "\n")
		if len(lines) > size[1] {
			t.Errorf("%dx%d: got %d lines", size[0], size[1], len(lines))
		}
		for _, line := range lines {
			if w := lipgloss.Width(line); w > size[0] {
				t.Errorf("%dx%d: line %q is %d wide", size[0], size[1], line, w)
			}
		}
	}
}

func TestBlockRenderEmptyArea(t *testing.T) {
	b := Block{Lines: []Line{{{Text: "hello"}}}}

	for _, size := range [][2]int{{0, 0}, {0, 5}, {5, 0}, {-1, 3}} {
		if out := b.Render(size[0], size[1], lipgloss.RoundedBorder()); out != "" {
			t.Errorf("%dx%d: expected nothing, got %q", size[0], size[1], out)
		}
	}
}

func TestBlockRenderUsesBorderSet(t *testing.T) {
	b := Block{Lines: []Line{{{Text: "x"}}}, Borders: BorderAll}

	rounded := ansi.Strip(b.Render(5, 3, lipgloss.RoundedBorder()))
	if !strings.HasPrefix(rounded, "╭") {
		t.Errorf("Expected rounded corner, got %q", rounded)
	}

	ascii := ansi.Strip(b.Render(5, 3, asciiBorder))
	if !strings.HasPrefix(ascii, "+---+") {
		t.Errorf("Expected ascii corner, got %q", ascii)
	}
}

func TestBlockMonochrome(t *testing.T) {
	blocks := append(ForecastBlocks(newTestForecast(t).Day(0), PositionMiddle, UnitLabels{}), MenuBlock(menuLabels, 0))

	for i, b := range blocks {
		mono := b.monochrome()

		if mono.Style.Foreground != "" {
			t.Errorf("block %d: block color %q survived", i, mono.Style.Foreground)
		}
		for _, line := range mono.Lines {
			for _, span := range line {
				if span.Style.Foreground != "" {
					t.Errorf("block %d: span color %q survived", i, span.Style.Foreground)
				}
			}
		}
		if mono.Text() != b.Text() || mono.Borders != b.Borders {
			t.Errorf("block %d: content or borders changed", i)
		}
	}

	// the original keeps its colors
	menu := MenuBlock(menuLabels, 0)
	menu.monochrome()
	if menu.Lines[0][0].Style.Foreground != ColorLightBlue {
		t.Error("monochrome modified the original block")
	}
	if !menu.monochrome().Lines[0][0].Style.Bold {
		t.Error("monochrome dropped non-color styling")
	}
}
