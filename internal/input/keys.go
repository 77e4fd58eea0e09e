package input

import "unicode/utf8"

// KeyCode identifies a decoded key press
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// Key is one key press
type Key struct {
	Code KeyCode
	Rune rune // set when Code is KeyRune
}

// Char returns the key for a printable character
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Is reports whether k is the printable character r
func (k Key) Is(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}

// String returns a readable name for logging
func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "Backspace"
	case KeyTab:
		return "Tab"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyCtrlC:
		return "Ctrl+C"
	default:
		return "None"
	}
}

// DecodeKey turns the bytes of one raw-mode read into a key.
// Escape sequences arrive in a single read and become one key.
func DecodeKey(b []byte) Key {
	if len(b) == 0 {
		return Key{}
	}

	switch b[0] {
	case 3: // Ctrl+C
		return Key{Code: KeyCtrlC}
	case 9:
		return Key{Code: KeyTab}
	case 10, 13: // LF and CR
		return Key{Code: KeyEnter}
	case 127, 8: // Backspace/Delete
		return Key{Code: KeyBackspace}
	case 27:
		return decodeEscape(b[1:])
	}

	if b[0] < 32 {
		return Key{}
	}

	r, _ := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return Key{}
	}
	return Char(r)
}

// decodeEscape decodes the bytes after ESC
func decodeEscape(rest []byte) Key {
	if len(rest) == 0 {
		return Key{Code: KeyEscape}
	}

	// CSI (ESC [) and SS3 (ESC O) arrow keys
	if len(rest) >= 2 && (rest[0] == '[' || rest[0] == 'O') {
		switch rest[1] {
		case 'A':
			return Key{Code: KeyUp}
		case 'B':
			return Key{Code: KeyDown}
		case 'C':
			return Key{Code: KeyRight}
		case 'D':
			return Key{Code: KeyLeft}
		}
	}

	return Key{}
}
