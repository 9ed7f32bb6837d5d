package obsidian

import (
	"testing"
)

func TestNewOpener_DerivesVaultName(t *testing.T) {
	tests := []struct {
		name          string
		journalPath   string
		wantVaultName string
	}{
		{
			name:          "simple journal path",
			journalPath:   "/Users/test/diary",
			wantVaultName: "diary",
		},
		{
			name:          "journal with spaces",
			journalPath:   "/Users/test/My Journal",
			wantVaultName: "My Journal",
		},
		{
			name:          "nested journal path",
			journalPath:   "/Users/test/Documents/notes/diary",
			wantVaultName: "diary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := NewOpener(tt.journalPath)
			if opener.vaultName != tt.wantVaultName {
				t.Errorf("vaultName = %q, want %q", opener.vaultName, tt.wantVaultName)
			}
		})
	}
}

func TestBuildURI(t *testing.T) {
	tests := []struct {
		name        string
		journalPath string
		filePath    string
		wantURI     string
		wantErr     bool
	}{
		{
			name:        "entry at journal root",
			journalPath: "/Users/test/diary",
			filePath:    "/Users/test/diary/2024-03-15.md",
			wantURI:     "obsidian://open?vault=diary&file=2024-03-15.md",
			wantErr:     false,
		},
		{
			name:        "vault name with spaces",
			journalPath: "/Users/test/My Journal",
			filePath:    "/Users/test/My Journal/2024-03-15.md",
			wantURI:     "obsidian://open?vault=My%20Journal&file=2024-03-15.md",
			wantErr:     false,
		},
		{
			name:        "memory trace report",
			journalPath: "/Users/test/diary",
			filePath:    "/Users/test/diary/memory-trace.md",
			wantURI:     "obsidian://open?vault=diary&file=memory-trace.md",
			wantErr:     false,
		},
		{
			name:        "file outside journal",
			journalPath: "/Users/test/diary",
			filePath:    "/Users/test/other/2024-03-15.md",
			wantURI:     "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := NewOpener(tt.journalPath)
			gotURI, err := opener.BuildURI(tt.filePath)

			if (err != nil) != tt.wantErr {
				t.Errorf("BuildURI() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if gotURI != tt.wantURI {
				t.Errorf("BuildURI() = %q, want %q", gotURI, tt.wantURI)
			}
		})
	}
}
