package tui

import (
	"fmt"
	"strings"

	"shortforge/sheets"
)

const maxVisibleRows = 12

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🎬 Shortforge Queue Watcher"))
	b.WriteString("\n\n")

	if !m.Connected {
		if m.Err != nil {
			b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ Queue unreachable: %v", m.Err)))
		} else {
			b.WriteString(StatusStyle.Render("⏳ Connecting to queue..."))
		}
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
		return b.String()
	}

	pending, processing, done, failed := m.countByStatus()
	stats := fmt.Sprintf("📊 Pending: %d | Processing: %d | Done: %d | Failed: %d",
		pending, processing, done, failed)
	b.WriteString(InfoStyle.Render(stats))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("   Last refresh: %s", m.LastRefresh.Format("15:04:05"))))
	b.WriteString("\n\n")

	if len(m.Rows) > 0 {
		b.WriteString(BoxStyle.Render(m.formatRows()))
		b.WriteString("\n\n")
	}

	b.WriteString(InfoStyle.Render("Press 'r' to refresh | Press 'q' or Ctrl+C to quit"))
	return b.String()
}

// formatRows renders the most recent queue rows, newest last.
func (m Model) formatRows() string {
	rows := m.Rows
	if len(rows) > maxVisibleRows {
		rows = rows[len(rows)-maxVisibleRows:]
	}

	var b strings.Builder
	b.WriteString(HighlightStyle.Render("Recent Topics"))
	b.WriteString("\n\n")

	for _, row := range rows {
		topic := row.Topic
		if len(topic) > 48 {
			topic = topic[:48] + "..."
		}
		line := fmt.Sprintf("%s %-10s %s", statusIcon(row.Status), statusLabel(row.Status), topic)
		b.WriteString(line)
		if row.Status == sheets.StatusDone && row.URL != "" {
			b.WriteString("\n")
			b.WriteString(InfoStyle.Render("     " + row.URL))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func statusIcon(status string) string {
	switch status {
	case sheets.StatusProcessing:
		return "⏳"
	case sheets.StatusDone:
		return "✅"
	case sheets.StatusError:
		return "❌"
	default:
		return "🕐"
	}
}

func statusLabel(status string) string {
	if status == "" {
		return sheets.StatusPending
	}
	return status
}
