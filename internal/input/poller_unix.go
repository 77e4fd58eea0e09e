//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package input

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Poll waits up to timeout for the input file to become readable
func (p *TerminalPoller) Poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{
		Fd:     int32(p.file.Fd()),
		Events: unix.POLLIN,
	}}

	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if errors.Is(err, unix.EINTR) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	revents := fds[0].Revents
	if revents&unix.POLLIN == 0 && revents&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
		return false, fmt.Errorf("%s is no longer readable (revents %#x)", p.file.Name(), revents)
	}

	return true, nil
}
