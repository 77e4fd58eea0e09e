package input

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrConsumerGone is reported when a key cannot be delivered because the reader stopped
var ErrConsumerGone = errors.New("input queue has no consumer")

// Poller is the terminal input primitive the feed drives
type Poller interface {
	// Poll waits up to timeout for input, reporting whether a key is ready
	Poll(timeout time.Duration) (bool, error)

	// ReadKey reads one key; only called after Poll reported ready
	ReadKey() (Key, error)
}

// Feed polls the terminal on its own goroutine and queues key presses in arrival order
type Feed struct {
	poller Poller
	tick   time.Duration

	keys   chan Key
	errors chan error
	done   chan struct{}
}

// NewFeed creates a feed polling every tick with room for queueSize pending keys
func NewFeed(poller Poller, tick time.Duration, queueSize int) *Feed {
	return &Feed{
		poller: poller,
		tick:   tick,
		keys:   make(chan Key, queueSize),
		errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// Start launches the polling goroutine. It runs until ctx is done or the poller fails.
func (f *Feed) Start(ctx context.Context) {
	go f.run(ctx)
}

func (f *Feed) run(ctx context.Context) {
	defer close(f.done)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		ready, err := f.poller.Poll(f.tick)
		if err != nil {
			f.fail(fmt.Errorf("failed to poll terminal input: %w", err))
			return
		}
		if !ready {
			continue
		}

		key, err := f.poller.ReadKey()
		if err != nil {
			f.fail(fmt.Errorf("failed to read terminal input: %w", err))
			return
		}
		if key.Code == KeyNone {
			continue
		}

		select {
		case f.keys <- key:
		case <-ctx.Done():
			f.fail(ErrConsumerGone)
			return
		}
	}
}

// fail reports the first fatal error
func (f *Feed) fail(err error) {
	log.Printf("Input feed stopped: %v", err)
	select {
	case f.errors <- err:
	default:
	}
}

// Keys returns the queue of key presses
func (f *Feed) Keys() <-chan Key {
	return f.keys
}

// Errors returns the channel fatal feed errors arrive on
func (f *Feed) Errors() <-chan error {
	return f.errors
}

// Done is closed once the polling goroutine has exited
func (f *Feed) Done() <-chan struct{} {
	return f.done
}
