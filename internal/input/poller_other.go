//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package input

import "time"

// Poll always reports ready; ReadKey then blocks until a key arrives
func (p *TerminalPoller) Poll(timeout time.Duration) (bool, error) {
	return true, nil
}
