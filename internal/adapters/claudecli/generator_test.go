package claudecli

import (
	"testing"
)

func TestDecodeResult(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{
			name:   "valid envelope",
			output: `{"type":"result","subtype":"success","is_error":false,"result":"work, stress, recovery","session_id":"abc"}`,
			want:   "work, stress, recovery",
		},
		{
			name:   "result is trimmed",
			output: `{"is_error":false,"result":"  1. What changed?\n"}`,
			want:   "1. What changed?",
		},
		{
			name:    "error envelope",
			output:  `{"is_error":true,"result":"rate limited"}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			output:  "claude: command failed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeResult([]byte(tt.output))

			if (err != nil) != tt.wantErr {
				t.Errorf("decodeResult() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("decodeResult() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithModel(t *testing.T) {
	g := New(WithModel("sonnet"))
	if g.model != "sonnet" {
		t.Errorf("model = %q, want sonnet", g.model)
	}
}
