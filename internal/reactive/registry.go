package reactive

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle cancels a single subscription. Dispose is safe to call repeatedly
// and from any goroutine.
type Handle struct {
	id       string
	once     sync.Once
	disposed atomic.Bool
	release  func()
}

func newHandle(release func()) *Handle {
	return &Handle{id: uuid.NewString(), release: release}
}

// ID identifies the handle in trace output.
func (h *Handle) ID() string {
	if h == nil {
		return ""
	}
	return h.id
}

// Dispose cancels the subscription.
func (h *Handle) Dispose() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.disposed.Store(true)
		if h.release != nil {
			h.release()
		}
	})
}

// Disposed reports whether Dispose has run.
func (h *Handle) Disposed() bool {
	return h == nil || h.disposed.Load()
}

// Registry owns the handles for one screen and releases them together.
type Registry struct {
	mu       sync.Mutex
	handles  []*Handle
	disposed bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add takes ownership of h. Once the registry is disposed, h is disposed
// immediately and Add returns false.
func (r *Registry) Add(h *Handle) bool {
	if h == nil {
		return false
	}
	r.mu.Lock()
	if r.disposed {
		r.mu.Unlock()
		h.Dispose()
		return false
	}
	r.handles = append(r.handles, h)
	r.mu.Unlock()
	return true
}

// Len reports the number of handles currently owned.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// Clear disposes every owned handle and leaves the registry usable.
// It returns how many handles were released.
func (r *Registry) Clear() int {
	r.mu.Lock()
	handles := r.handles
	r.handles = nil
	r.mu.Unlock()
	for _, h := range handles {
		h.Dispose()
	}
	return len(handles)
}

// Dispose clears the registry and rejects every later Add.
func (r *Registry) Dispose() int {
	r.mu.Lock()
	r.disposed = true
	r.mu.Unlock()
	return r.Clear()
}

// Disposed reports whether Dispose has run.
func (r *Registry) Disposed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disposed
}
