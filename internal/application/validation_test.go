package application

import (
	"strings"
	"testing"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		errMsg  string
	}{
		{name: "valid date", value: "2024-10-05"},
		{name: "empty", value: "", wantErr: true, errMsg: "date is required"},
		{name: "wrong format", value: "10/05/2024", wantErr: true, errMsg: "YYYY-MM-DD"},
		{name: "trailing text", value: "2024-10-05x", wantErr: true, errMsg: "YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ValidateDate("date", tt.value)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if date.IsZero() {
				t.Error("expected parsed date, got zero value")
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	if err := ValidateRange("days", 30, 1, 365); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateRange("days", 0, 1, 365); err == nil {
		t.Error("expected error for value below range")
	}
	if err := ValidateRange("days", 366, 1, 365); err == nil {
		t.Error("expected error for value above range")
	}
}
