package ui

import (
	"github.com/atomicstack/typelog/internal/backend"
	"github.com/atomicstack/typelog/internal/logging"
	"github.com/atomicstack/typelog/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForFeederEvent(f *backend.Feeder) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-f.Events()
		if !ok {
			return feederDoneMsg{}
		}
		return feederEventMsg{event: evt}
	}
}

type feederEventMsg struct {
	event backend.Event
}

type feederDoneMsg struct{}

// handleFeederEventMsg applies a replayed line as a text-field change and
// keeps listening until the feeder closes its stream.
func (m *Model) handleFeederEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(feederEventMsg)
	if !ok {
		return nil
	}
	m.applyFeederEvent(eventMsg.event)
	if m.feeder != nil {
		return waitForFeederEvent(m.feeder)
	}
	return nil
}

func (m *Model) handleFeederDoneMsg(tea.Msg) tea.Cmd {
	m.feeder = nil
	events.Replay.Done()
	return nil
}

func (m *Model) applyFeederEvent(evt backend.Event) {
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
		logging.Error(evt.Err)
		events.Replay.Error(evt.Err)
		return
	}
	events.Replay.Line(evt.Line, evt.Text)
	if m.screen.TornDown() {
		return
	}
	m.setInputText(evt.Text)
}
