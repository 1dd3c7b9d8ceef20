package orchestrator

import (
	"testing"

	"shortforge/sheets"
)

func TestClaimKey(t *testing.T) {
	tests := []struct {
		name string
		row  sheets.Row
		want string
	}{
		{"with id", sheets.Row{Index: 4, ID: "abc-123"}, "shortforge:claim:abc-123"},
		{"without id falls back to row index", sheets.Row{Index: 7}, "shortforge:claim:row-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := claimKey(&tt.row); got != tt.want {
				t.Errorf("claimKey = %q, want %q", got, tt.want)
			}
		})
	}
}
