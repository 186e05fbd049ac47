package ui

import (
	"github.com/atomicstack/typelog/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.FocusToggle):
		return m.toggleFocus()
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(m.list.MoveCursorPageUp(m.maxVisibleItems()))
		return nil
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(m.list.MoveCursorPageDown(m.maxVisibleItems()))
		return nil
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(m.list.MoveCursorUp())
		return nil
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(m.list.MoveCursorDown())
		return nil
	}
	if m.focus == focusInput {
		return m.updateInput(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.list.MoveCursorHome())
		return nil
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.list.MoveCursorEnd())
		return nil
	case key.Matches(keyMsg, m.keys.ClearJump):
		m.clearJump()
		return nil
	}
	m.handleJumpInput(keyMsg)
	return nil
}

func (m *Model) toggleFocus() tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
	} else {
		m.focus = focusInput
		m.clearJump()
		cmd = m.input.Focus()
	}
	events.UI.Focus(m.focus.String())
	return cmd
}

func (m *Model) moveCursor(moved bool) {
	if moved {
		events.UI.Cursor(m.list.Cursor, m.list.ViewportOffset)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.applyWidth()
	m.syncViewport()
	return nil
}

func (m *Model) applyWidth() {
	m.help.Width = m.width
	if m.width <= 0 {
		m.input.Width = 0
		return
	}
	w := m.width - len([]rune(m.input.Prompt)) - 1
	if w < 1 {
		w = 1
	}
	m.input.Width = w
}
