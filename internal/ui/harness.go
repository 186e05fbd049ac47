package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultCmdTimeout = 50 * time.Millisecond

// Harness drives the UI model programmatically for integration tests.
// Commands that do not produce a message within the timeout (cursor blinks,
// notice timers) are dropped, so a test never waits on wall-clock ticks
// unless it raises the timeout.
type Harness struct {
	model   *Model
	timeout time.Duration
	quit    bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model, timeout: defaultCmdTimeout}
}

// SetCmdTimeout changes how long a command may run before it is dropped.
func (h *Harness) SetCmdTimeout(d time.Duration) {
	if d > 0 {
		h.timeout = d
	}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || h.quit {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.Run(cmd)
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a single non-rune key.
func (h *Harness) Press(k tea.KeyType) {
	h.Send(tea.KeyMsg{Type: k})
}

// Run executes cmd and feeds whatever it produces back into the model.
func (h *Harness) Run(cmd tea.Cmd) {
	if cmd == nil || h.quit {
		return
	}
	msg, ok := runWithTimeout(cmd, h.timeout)
	if !ok || msg == nil {
		return
	}
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			h.Run(c)
		}
	case tea.QuitMsg:
		h.quit = true
	default:
		h.Send(msg)
	}
}

func runWithTimeout(cmd tea.Cmd, timeout time.Duration) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() {
		done <- cmd()
	}()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case msg := <-done:
		return msg, true
	case <-timer.C:
		return nil, false
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
