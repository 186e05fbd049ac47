package ui

import (
	"time"

	"github.com/atomicstack/typelog/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// showNotice is the screen's notify hook. It only runs on the Bubble Tea
// goroutine, from the bus drain at the end of Update.
func (m *Model) showNotice(message string) {
	m.notices++
	m.noticeSeq++
	m.noticeMsg = message
	events.Screen.Notice(message)
	if m.noticeTTL <= 0 {
		return
	}
	seq := m.noticeSeq
	m.pending = append(m.pending, tea.Tick(m.noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	}))
}

func (m *Model) handleNoticeExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(noticeExpiredMsg)
	if !ok {
		return nil
	}
	if expired.seq != m.noticeSeq {
		return nil
	}
	m.noticeMsg = ""
	m.syncViewport()
	return nil
}
