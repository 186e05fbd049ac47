// Package reactive provides a latest-value channel and the subscription
// handles used to release its observers.
package reactive

import "sync"

// Observer receives values published on a Subject.
type Observer[T any] func(T)

// Scheduler runs deliveries on a chosen execution context.
type Scheduler interface {
	Schedule(func())
}

type immediate struct{}

func (immediate) Schedule(fn func()) {
	fn()
}

// Immediate runs every delivery inline on the publishing goroutine.
var Immediate Scheduler = immediate{}

type subscribeOptions struct {
	skipCurrent bool
	scheduler   Scheduler
}

// SubscribeOption adjusts a single subscription.
type SubscribeOption func(*subscribeOptions)

// SkipCurrent suppresses the replay of the current value on subscribe.
func SkipCurrent() SubscribeOption {
	return func(o *subscribeOptions) {
		o.skipCurrent = true
	}
}

// ObserveOn hands each delivery to s instead of running it inline.
func ObserveOn(s Scheduler) SubscribeOption {
	return func(o *subscribeOptions) {
		if s != nil {
			o.scheduler = s
		}
	}
}

type subscription[T any] struct {
	handle    *Handle
	observer  Observer[T]
	scheduler Scheduler
}

// deliver drops the value if the handle is disposed, both before scheduling
// and when the scheduler finally runs it.
func (s *subscription[T]) deliver(value T) {
	if s.handle.Disposed() {
		return
	}
	s.scheduler.Schedule(func() {
		if s.handle.Disposed() {
			return
		}
		s.observer(value)
	})
}

// Subject always holds a current value. Publish replaces it and notifies
// every active observer in subscription order; new observers receive the
// current value first unless they opt out.
type Subject[T any] struct {
	mu    sync.Mutex
	value T
	subs  []*subscription[T]
}

// NewSubject returns a Subject holding initial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial}
}

// Value returns the current value.
func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Publish stores value as current and notifies observers. Observers run
// outside the lock so they may publish or unsubscribe.
func (s *Subject[T]) Publish(value T) {
	s.mu.Lock()
	s.value = value
	subs := make([]*subscription[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.deliver(value)
	}
}

// Subscribe registers observer and returns the handle that cancels it.
func (s *Subject[T]) Subscribe(observer Observer[T], opts ...SubscribeOption) *Handle {
	o := subscribeOptions{scheduler: Immediate}
	for _, opt := range opts {
		opt(&o)
	}
	sub := &subscription[T]{observer: observer, scheduler: o.scheduler}
	sub.handle = newHandle(func() {
		s.remove(sub)
	})

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	current := s.value
	s.mu.Unlock()

	if !o.skipCurrent {
		sub.deliver(current)
	}
	return sub.handle
}

// Unsubscribe cancels h. Equivalent to h.Dispose.
func (s *Subject[T]) Unsubscribe(h *Handle) {
	h.Dispose()
}

// Observers reports the number of active subscriptions.
func (s *Subject[T]) Observers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Subject[T]) remove(target *subscription[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub == target {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
