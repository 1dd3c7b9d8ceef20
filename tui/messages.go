package tui

import (
	"time"

	"shortforge/sheets"
)

// Messages for the tea program (polling-based)

// RowsMsg is sent when a queue poll completes.
type RowsMsg struct {
	Rows []sheets.Row
	Err  error
}

// TickMsg is sent periodically to trigger polling.
type TickMsg struct {
	Time time.Time
}
