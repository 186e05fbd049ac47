package ui

import (
	"unicode"

	"github.com/atomicstack/typelog/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// updateInput forwards msg to the text field and reports a content change
// to the screen. Every change counts, deletions included.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.screen.OnTextChanged(after)
	}
	return cmd
}

// setInputText replaces the field content as if the user had typed it.
func (m *Model) setInputText(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.screen.OnTextChanged(text)
}

// handleJumpInput applies list-focus typing to the type-ahead query.
func (m *Model) handleJumpInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.list.Query == "" {
			return false
		}
		m.list.DeleteQueryRune(m.screen.Adapter().Labels())
		m.afterJump()
		return true
	case tea.KeySpace:
		return m.appendJump(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendJump(string(msg.Runes))
	}
	return false
}

func (m *Model) appendJump(text string) bool {
	m.list.AppendQuery(text, m.screen.Adapter().Labels())
	m.afterJump()
	return true
}

func (m *Model) afterJump() {
	events.Jump.Query(m.list.Query, m.list.Cursor)
	m.syncViewport()
}

func (m *Model) clearJump() {
	if m.list.ClearQuery() {
		events.Jump.Cleared()
	}
}
