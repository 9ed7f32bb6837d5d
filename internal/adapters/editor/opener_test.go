package editor

import "testing"

func TestCommandJumpsToEndForVi(t *testing.T) {
	t.Setenv("EDITOR", "nvim")

	cmd, err := NewOpener().Command("/journal/2024-03-15.md")
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if len(cmd.Args) != 3 || cmd.Args[1] != "+" || cmd.Args[2] != "/journal/2024-03-15.md" {
		t.Errorf("Args = %v, want [nvim + path]", cmd.Args)
	}
}

func TestCommandPlainEditor(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	cmd, err := NewOpener().Command("/journal/2024-03-15.md")
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if len(cmd.Args) != 2 || cmd.Args[1] != "/journal/2024-03-15.md" {
		t.Errorf("Args = %v, want [nano path]", cmd.Args)
	}
}

func TestIsViFamily(t *testing.T) {
	tests := []struct {
		editor string
		want   bool
	}{
		{"vim", true},
		{"nvim", true},
		{"/usr/bin/vi", true},
		{"nano", false},
		{"code", false},
	}

	for _, tt := range tests {
		if got := isViFamily(tt.editor); got != tt.want {
			t.Errorf("isViFamily(%q) = %v, want %v", tt.editor, got, tt.want)
		}
	}
}
