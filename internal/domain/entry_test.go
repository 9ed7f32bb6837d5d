package domain

import (
	"testing"
	"time"
)

func TestParseEntryDate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid date", id: "2024-01-02"},
		{name: "empty", id: "", wantErr: true},
		{name: "wrong format", id: "01/02/2024", wantErr: true},
		{name: "not a date", id: "memory-trace-2024", wantErr: true},
		{name: "impossible day", id: "2024-02-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseEntryDate(tt.id)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got nil", tt.id)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if EntryID(date) != tt.id {
				t.Errorf("round trip: got %q, want %q", EntryID(date), tt.id)
			}
		})
	}
}

func TestIsWeekly(t *testing.T) {
	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	if !IsWeekly(sunday) {
		t.Error("expected Sunday to be weekly")
	}
	if IsWeekly(monday) {
		t.Error("expected Monday not to be weekly")
	}
}

func TestBacklink(t *testing.T) {
	if got := Backlink("2024-01-01"); got != "[[2024-01-01]]" {
		t.Errorf("Backlink() = %q", got)
	}
}
