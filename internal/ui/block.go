package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Borders is a set of block edges to draw
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether every side in sides is set
func (b Borders) Has(sides Borders) bool {
	return b&sides == sides
}

// TextStyle is a cosmetic hint for a block or span
type TextStyle struct {
	Foreground lipgloss.Color // empty means terminal default
	Bold       bool
	Underline  bool
	Reverse    bool
}

func (s TextStyle) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(s.Foreground)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}

func (s TextStyle) isZero() bool {
	return s == TextStyle{}
}

// Span is a run of text sharing one style
type Span struct {
	Text  string
	Style TextStyle
}

// Line is one line of spans
type Line []Span

// Block is a styled piece of text to be placed into a region.
// Blocks are rebuilt for every frame.
type Block struct {
	Lines   []Line
	Borders Borders
	Style   TextStyle // applies to text and borders
	Align   lipgloss.Position
}

// monochrome returns a copy of b with every foreground color removed
func (b Block) monochrome() Block {
	out := b
	out.Style.Foreground = ""
	out.Lines = make([]Line, len(b.Lines))
	for i, line := range b.Lines {
		spans := make(Line, len(line))
		for j, span := range line {
			span.Style.Foreground = ""
			spans[j] = span
		}
		out.Lines[i] = spans
	}
	return out
}

// Text returns the unstyled content, lines joined by newlines
func (b Block) Text() string {
	lines := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		var sb strings.Builder
		for _, span := range line {
			sb.WriteString(span.Text)
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Render draws the block into a width x height cell area using the given border characters.
// The result never exceeds the area.
func (b Block) Render(width, height int, border lipgloss.Border) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	innerWidth, innerHeight := width, height
	if b.Borders.Has(BorderLeft) {
		innerWidth--
	}
	if b.Borders.Has(BorderRight) {
		innerWidth--
	}
	if b.Borders.Has(BorderTop) {
		innerHeight--
	}
	if b.Borders.Has(BorderBottom) {
		innerHeight--
	}

	content := ""
	if innerWidth > 0 && innerHeight > 0 {
		content = b.Style.style().
			Width(innerWidth).
			Height(innerHeight).
			MaxHeight(innerHeight).
			Align(b.Align).
			Render(b.renderLines())
	}

	frame := lipgloss.NewStyle()
	if b.Borders != BorderNone {
		frame = frame.Border(border,
			b.Borders.Has(BorderTop),
			b.Borders.Has(BorderRight),
			b.Borders.Has(BorderBottom),
			b.Borders.Has(BorderLeft),
		)
		if b.Style.Foreground != "" {
			frame = frame.BorderForeground(b.Style.Foreground)
		}
	}

	// content is already clipped to the inner area
	return frame.MaxWidth(width).MaxHeight(height).Render(content)
}

func (b Block) renderLines() string {
	lines := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		var sb strings.Builder
		for _, span := range line {
			if span.Style.isZero() {
				sb.WriteString(span.Text)
				continue
			}
			sb.WriteString(span.Style.style().Render(span.Text))
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
