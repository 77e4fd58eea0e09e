package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const (
	// ANSI control
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
	ResetStyle  = "\033[0m"
)

// asciiBorder is used when the terminal cannot draw box characters
var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// moveCursor returns ANSI code to move cursor to position
func moveCursor(x, y int) string {
	return fmt.Sprintf("\033[%d;%dH", y+1, x+1)
}

// Surface is the character grid frames are drawn on
type Surface interface {
	// Size returns the current width and height in cells
	Size() (width, height int, err error)

	// Clear blanks the whole surface
	Clear() error

	// Draw replaces the surface contents with frame
	Draw(frame Frame) error
}

// TerminalError wraps a failure of a terminal primitive
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s failed: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// TerminalCapabilities holds information about terminal features
type TerminalCapabilities struct {
	SupportsColor   bool
	SupportsUnicode bool
	SupportsEmoji   bool
}

// DetectCapabilities detects terminal capabilities from the environment
func DetectCapabilities() *TerminalCapabilities {
	caps := &TerminalCapabilities{
		SupportsColor:   true, // Assume true for modern terminals
		SupportsUnicode: true,
		SupportsEmoji:   true,
	}

	// Basic terminals don't support colors
	termType := os.Getenv("TERM")
	if termType == "dumb" || termType == "unknown" {
		caps.SupportsColor = false
		caps.SupportsUnicode = false
		caps.SupportsEmoji = false
	}

	// Box drawing and emoji need a UTF-8 locale
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LC_CTYPE")
	}
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	upper := strings.ToUpper(locale)
	if !strings.Contains(upper, "UTF-8") && !strings.Contains(upper, "UTF8") {
		caps.SupportsEmoji = false
		caps.SupportsUnicode = false
	}

	return caps
}

// Terminal is a Surface over a real terminal in raw mode
type Terminal struct {
	in       *os.File
	out      io.Writer
	oldState *term.State
	caps     *TerminalCapabilities
	size     func() (int, int, error)
}

// OpenTerminal puts in into raw mode and prepares out for drawing
func OpenTerminal(in, out *os.File) (*Terminal, error) {
	oldState, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, &TerminalError{Op: "enable raw mode", Err: err}
	}

	t := newTerminal(out, DetectCapabilities(), func() (int, int, error) {
		return term.GetSize(int(out.Fd()))
	})
	t.in = in
	t.oldState = oldState

	if _, err := io.WriteString(out, HideCursor); err != nil {
		term.Restore(int(in.Fd()), oldState)
		return nil, &TerminalError{Op: "hide cursor", Err: err}
	}

	return t, nil
}

func newTerminal(out io.Writer, caps *TerminalCapabilities, size func() (int, int, error)) *Terminal {
	return &Terminal{
		out:  out,
		caps: caps,
		size: size,
	}
}

// Capabilities returns what the terminal was detected to support
func (t *Terminal) Capabilities() *TerminalCapabilities {
	return t.caps
}

// Size queries the current terminal size
func (t *Terminal) Size() (int, int, error) {
	width, height, err := t.size()
	if err != nil {
		return 0, 0, &TerminalError{Op: "query size", Err: err}
	}
	return width, height, nil
}

// Clear clears the screen
func (t *Terminal) Clear() error {
	if _, err := io.WriteString(t.out, ClearScreen+CursorHome); err != nil {
		return &TerminalError{Op: "clear", Err: err}
	}
	return nil
}

// Draw renders every placement and writes the frame in a single write.
// Regions are overwritten in place; callers Clear when the frame does not cover the screen.
func (t *Terminal) Draw(frame Frame) error {
	var buf bytes.Buffer
	buf.WriteString(CursorHome)

	border := t.border()
	color := t.caps == nil || t.caps.SupportsColor
	for _, p := range frame.Placements {
		if p.Area.Empty() {
			continue
		}

		block := p.Block
		if !color {
			block = block.monochrome()
		}

		rendered := block.Render(p.Area.Width, p.Area.Height, border)
		if rendered == "" {
			continue
		}

		for i, line := range strings.Split(rendered, "\n") {
			if i >= p.Area.Height {
				break
			}
			buf.WriteString(moveCursor(p.Area.X, p.Area.Y+i))
			buf.WriteString(ansi.Truncate(line, p.Area.Width, ""))
			buf.WriteString(ResetStyle)
		}
	}

	if _, err := t.out.Write(buf.Bytes()); err != nil {
		return &TerminalError{Op: "draw", Err: err}
	}
	return nil
}

// Close shows the cursor again and restores the original terminal mode
func (t *Terminal) Close() error {
	io.WriteString(t.out, ResetStyle+ShowCursor)

	if t.in == nil || t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return &TerminalError{Op: "restore", Err: err}
	}
	return nil
}

func (t *Terminal) border() lipgloss.Border {
	if t.caps != nil && !t.caps.SupportsUnicode {
		return asciiBorder
	}
	return lipgloss.RoundedBorder()
}
