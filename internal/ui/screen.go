package ui

import (
	"github.com/atomicstack/typelog/internal/logging/events"
	"github.com/atomicstack/typelog/internal/reactive"
	"github.com/atomicstack/typelog/internal/state"
	"github.com/atomicstack/typelog/internal/ui/adapter"
)

const defaultNotice = "I am updating data"

// Screen wires the text field to the log channel and the channel to the list
// adapter. Its subscription is owned by a registry released at teardown.
type Screen struct {
	channel  *reactive.Subject[*state.Log]
	registry *reactive.Registry
	adapter  *adapter.Adapter
	notice   string
	notify   func(string)
	tornDown bool
}

// NewScreen creates the log, its channel and the adapter bound to it, and
// subscribes to future publishes. Deliveries go through scheduler; notify
// shows the transient notice.
func NewScreen(scheduler reactive.Scheduler, notice string, notify func(string)) *Screen {
	if notice == "" {
		notice = defaultNotice
	}
	log := state.NewLog()
	s := &Screen{
		channel:  reactive.NewSubject(log),
		registry: reactive.NewRegistry(),
		adapter:  adapter.New(log),
		notice:   notice,
		notify:   notify,
	}
	// The initial empty log is not replayed: nothing is shown until the
	// first change.
	handle := s.channel.Subscribe(s.onLogPublished, reactive.SkipCurrent(), reactive.ObserveOn(scheduler))
	s.registry.Add(handle)
	events.Channel.Subscribe(handle.ID())
	return s
}

func (s *Screen) onLogPublished(*state.Log) {
	if s.notify != nil {
		s.notify(s.notice)
	}
	s.adapter.NotifyDataSetChanged()
}

// OnTextChanged appends text to the current log and republishes it.
//
// The log is appended in place, so the value republished is the same
// pointer that was current before. Anything holding the previous value sees
// the new entry too, and the adapter relies on that to avoid rebinding.
func (s *Screen) OnTextChanged(text string) {
	if s.tornDown {
		events.Screen.Detached(text)
	} else {
		events.Input.Changed(text)
	}
	current := s.channel.Value()
	if current == nil {
		current = state.NewLog()
	}
	current.Append(text)
	s.channel.Publish(current)
	latest, _ := current.Last()
	events.Channel.Publish(current.Len(), latest)
}

// OnScreenTeardown releases every subscription. No notice or redraw happens
// afterwards, including for deliveries already queued on the scheduler.
func (s *Screen) OnScreenTeardown() {
	if s.tornDown {
		return
	}
	s.tornDown = true
	events.Screen.Teardown(s.registry.Dispose())
}

// TornDown reports whether OnScreenTeardown has run.
func (s *Screen) TornDown() bool {
	return s.tornDown
}

// Log returns the channel's current value.
func (s *Screen) Log() *state.Log {
	return s.channel.Value()
}

// Channel exposes the latest-value channel.
func (s *Screen) Channel() *reactive.Subject[*state.Log] {
	return s.channel
}

// Adapter returns the list adapter bound to the log.
func (s *Screen) Adapter() *adapter.Adapter {
	return s.adapter
}
