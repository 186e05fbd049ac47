package command

import (
	"sync"

	"github.com/atomicstack/typelog/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// DrainMsg wakes the Bubble Tea loop so queued work runs on it.
type DrainMsg struct{}

// Bus queues work for the Bubble Tea loop goroutine. It satisfies
// reactive.Scheduler: Schedule may be called from any goroutine, Drain must
// only be called from the loop.
type Bus struct {
	mu    sync.Mutex
	queue []func()
	send  func(tea.Msg)
}

// New initialises an empty bus.
func New() *Bus {
	return &Bus{}
}

// Attach sets the sender used to wake the loop, normally tea.Program.Send.
func (b *Bus) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

// Schedule queues fn. The first item queued after a drain also wakes the
// loop; the wake-up is sent from its own goroutine because Program.Send
// blocks when called from inside Update.
func (b *Bus) Schedule(fn func()) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	wake := len(b.queue) == 0
	b.queue = append(b.queue, fn)
	pending := len(b.queue)
	send := b.send
	b.mu.Unlock()

	events.Command.Queue(pending)
	if wake && send != nil {
		go send(DrainMsg{})
	}
}

// Pending reports how many items are queued.
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Drain runs queued work in order, including anything queued while
// draining, and returns how many items ran.
func (b *Bus) Drain() int {
	ran := 0
	for {
		b.mu.Lock()
		batch := b.queue
		b.queue = nil
		b.mu.Unlock()
		if len(batch) == 0 {
			events.Command.Drain(ran)
			return ran
		}
		for _, fn := range batch {
			fn()
			ran++
		}
	}
}
