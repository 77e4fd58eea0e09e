package input

import (
	"fmt"
	"os"
)

// TerminalPoller reads keys from the terminal's input file.
// The terminal must already be in raw mode.
type TerminalPoller struct {
	file *os.File
	buf  []byte
}

// NewTerminalPoller creates a poller over file, usually os.Stdin
func NewTerminalPoller(file *os.File) *TerminalPoller {
	return &TerminalPoller{
		file: file,
		buf:  make([]byte, 16),
	}
}

// ReadKey reads the bytes of one key press
func (p *TerminalPoller) ReadKey() (Key, error) {
	n, err := p.file.Read(p.buf)
	if err != nil {
		return Key{}, err
	}
	if n == 0 {
		return Key{}, fmt.Errorf("empty read from %s", p.file.Name())
	}
	return DecodeKey(p.buf[:n]), nil
}
