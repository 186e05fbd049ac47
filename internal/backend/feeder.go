package backend

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Event carries one replayed text-field value, or the error that ended the
// replay.
type Event struct {
	Line int
	Text string
	Err  error
}

// Feeder replays lines from a reader as text-field changes, one per
// interval. It only emits events; applying them is up to the consumer.
type Feeder struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// OpenFeeder starts a feeder over the file at path.
func OpenFeeder(path string, interval time.Duration) (*Feeder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	return NewFeeder(f, interval), nil
}

// NewFeeder starts a feeder over r. If r is an io.Closer it is closed once
// the feeder finishes.
func NewFeeder(r io.Reader, interval time.Duration) *Feeder {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Feeder{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	f.wg.Add(1)
	go f.run(r)
	go func() {
		f.wg.Wait()
		close(f.events)
	}()
	return f
}

// Events returns the event stream. It is closed when the input is exhausted
// or the feeder is stopped.
func (f *Feeder) Events() <-chan Event {
	return f.events
}

// Stop cancels the feeder. Use Wait if a clean drain is required.
func (f *Feeder) Stop() {
	f.cancel()
}

// Wait blocks until the replay goroutine has exited.
func (f *Feeder) Wait() {
	f.wg.Wait()
}

func (f *Feeder) run(r io.Reader) {
	defer f.wg.Done()
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	throttle := newThrottle(f.interval)
	emit := func(evt Event) bool {
		select {
		case <-f.ctx.Done():
			return false
		case f.events <- evt:
			return true
		}
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if !throttle.wait(f.ctx) {
			return
		}
		if !emit(Event{Line: line, Text: scanner.Text()}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		emit(Event{Line: line, Err: fmt.Errorf("read replay line %d: %w", line+1, err)})
	}
}
