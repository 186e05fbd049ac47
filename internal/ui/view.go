package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const rowIndicator = "▌"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})

	adapter := m.screen.Adapter()
	m.syncViewport()
	if adapter.ItemCount() == 0 {
		lines = append(lines, styledLine{text: "(no entries)", style: styles.Empty})
	} else {
		offset, limit := 0, m.maxVisibleItems()
		if limit > 0 {
			offset = m.list.ViewportOffset
		}
		rowWidth := 0
		if m.width > 0 {
			rowWidth = m.width - len([]rune(rowIndicator)) - 1
			if rowWidth < 1 {
				rowWidth = 1
			}
		}
		for i, row := range adapter.Rows(offset, limit, rowWidth) {
			idx := offset + i
			lines = append(lines, m.buildRowLine(row, idx, adapter.Item(idx) == "", m.width))
		}
	}

	if m.noticeMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.noticeMsg, style: styles.Notice})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	// Reserve 2 rows for the bottom bar (status + input).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	bottomLines := []styledLine{
		m.statusLine(),
		{text: m.input.View(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) header() string {
	count := m.screen.Adapter().ItemCount()
	noun := "entries"
	if count == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("%s · %d %s", appTitle, count, noun)
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if m.focus == focusList {
		if m.list.Query != "" {
			return styledLine{text: fmt.Sprintf("jump: %s", m.list.Query), style: styles.Jump}
		}
		return styledLine{text: "list focused: type to jump, tab to return", style: styles.Footer}
	}
	return styledLine{}
}

// buildRowLine constructs a single styledLine for a list row. The cursor row
// is highlighted only while the list has focus.
func (m *Model) buildRowLine(label string, idx int, empty bool, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if empty {
		lineStyle = styles.EmptyItem
	}
	if m.focus == focusList && idx == m.list.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := rowIndicator + " " + label
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header + status + input
	if m.noticeMsg != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
