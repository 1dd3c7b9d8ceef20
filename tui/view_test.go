package tui

import (
	"testing"

	"shortforge/sheets"
)

func TestCountByStatus(t *testing.T) {
	m := Model{Rows: []sheets.Row{
		{Topic: "a"},
		{Topic: "b", Status: sheets.StatusPending},
		{Topic: "c", Status: sheets.StatusProcessing},
		{Topic: "d", Status: sheets.StatusDone},
		{Topic: "e", Status: sheets.StatusDone},
		{Topic: "f", Status: sheets.StatusError},
	}}

	pending, processing, done, failed := m.countByStatus()
	if pending != 2 {
		t.Errorf("pending = %d, want 2 (blank status counts as pending)", pending)
	}
	if processing != 1 || done != 2 || failed != 1 {
		t.Errorf("processing/done/failed = %d/%d/%d, want 1/2/1", processing, done, failed)
	}
}

func TestStatusLabelDefaultsToPending(t *testing.T) {
	if got := statusLabel(""); got != sheets.StatusPending {
		t.Errorf("statusLabel(\"\") = %q, want %q", got, sheets.StatusPending)
	}
	if got := statusLabel(sheets.StatusDone); got != sheets.StatusDone {
		t.Errorf("statusLabel(done) = %q", got)
	}
}
