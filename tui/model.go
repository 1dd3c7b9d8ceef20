package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shortforge/sheets"
)

// Model is a read-only dashboard over the topics queue. It polls the sheet
// and shows row statuses while the orchestrator works through them.
type Model struct {
	queue *sheets.Queue

	Rows        []sheets.Row
	Err         error
	Connected   bool
	LastRefresh time.Time
}

// NewModel creates the queue watcher model.
func NewModel(queue *sheets.Queue) Model {
	return Model{queue: queue}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		pollQueue(m.queue),
		tickCmd(),
	)
}

// countByStatus tallies rows per queue status. Rows with a blank status are
// counted as pending, matching how the orchestrator treats them.
func (m Model) countByStatus() (pending, processing, done, failed int) {
	for _, row := range m.Rows {
		switch row.Status {
		case sheets.StatusProcessing:
			processing++
		case sheets.StatusDone:
			done++
		case sheets.StatusError:
			failed++
		default:
			pending++
		}
	}
	return
}

func pollQueue(queue *sheets.Queue) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		rows, err := queue.List(ctx)
		return RowsMsg{Rows: rows, Err: err}
	}
}

// tickCmd schedules the next poll.
func tickCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
