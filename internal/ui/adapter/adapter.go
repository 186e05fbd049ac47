package adapter

import (
	"github.com/atomicstack/typelog/internal/logging/events"
	"github.com/atomicstack/typelog/internal/state"
	"github.com/muesli/reflow/truncate"
)

const emptyRowLabel = "(empty)"

// Adapter renders a log as list rows. It holds the store by reference, so
// appends made after binding are picked up on the next redraw without
// rebinding. It never mutates the store.
type Adapter struct {
	store      state.LogStore
	count      int
	rows       []string
	rowWidth   int
	generation int
	onChanged  func(count int)
}

// New binds the adapter to store.
func New(store state.LogStore) *Adapter {
	a := &Adapter{store: store}
	if store != nil {
		a.count = store.Len()
	}
	return a
}

// OnChanged registers fn to run after every NotifyDataSetChanged.
func (a *Adapter) OnChanged(fn func(count int)) {
	a.onChanged = fn
}

// NotifyDataSetChanged drops every cached row and re-reads the row count.
// There is no positional update; the whole list is treated as changed.
func (a *Adapter) NotifyDataSetChanged() {
	a.rows = nil
	a.count = 0
	if a.store != nil {
		a.count = a.store.Len()
	}
	a.generation++
	events.Adapter.Redraw(a.count, a.generation)
	if a.onChanged != nil {
		a.onChanged(a.count)
	}
}

// ItemCount is the row count as of the last redraw instruction.
func (a *Adapter) ItemCount() int {
	return a.count
}

// Redraws reports how many redraw instructions have been received.
func (a *Adapter) Redraws() int {
	return a.generation
}

// Item returns the raw entry behind row i.
func (a *Adapter) Item(i int) string {
	if a.store == nil || i < 0 || i >= a.count {
		return ""
	}
	return a.store.At(i)
}

// Labels returns the raw entries for every row.
func (a *Adapter) Labels() []string {
	labels := make([]string, a.count)
	for i := range labels {
		labels[i] = a.Item(i)
	}
	return labels
}

// Rows renders up to limit rows starting at offset, each no wider than width
// cells. A limit <= 0 renders every remaining row; width <= 0 disables
// truncation. Offsets outside the list are clamped.
func (a *Adapter) Rows(offset, limit, width int) []string {
	if a.count == 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= a.count {
		offset = a.count - 1
	}
	end := a.count
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	if a.rows == nil || width != a.rowWidth {
		a.rows = make([]string, a.count)
		a.rowWidth = width
	}
	out := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		if a.rows[i] == "" {
			a.rows[i] = a.renderRow(i)
		}
		out = append(out, a.rows[i])
	}
	return out
}

func (a *Adapter) renderRow(i int) string {
	label := a.Item(i)
	if label == "" {
		label = emptyRowLabel
	}
	if a.rowWidth > 0 {
		label = truncate.StringWithTail(label, uint(a.rowWidth), "…")
	}
	return label
}
