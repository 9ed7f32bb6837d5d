package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"diaro/internal/domain"
)

// Store implements ports.EntryStore on a flat directory of Markdown
// files named YYYY-MM-DD.md
type Store struct {
	journalPath string
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// NewStore creates a new filesystem store, creating the journal
// directory if it does not exist yet
func NewStore(journalPath string) (*Store, error) {
	journalPath = ExpandHome(journalPath)
	if err := os.MkdirAll(journalPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}
	return &Store{journalPath: journalPath}, nil
}

// ListAll returns every dated entry in the journal, newest first.
// Files whose stem is not a valid date are ignored.
func (s *Store) ListAll() ([]domain.Entry, error) {
	files, err := os.ReadDir(s.journalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	var entries []domain.Entry
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}
		id := strings.TrimSuffix(file.Name(), ".md")
		date, err := domain.ParseEntryDate(id)
		if err != nil {
			continue
		}
		entries = append(entries, domain.Entry{
			Date: date,
			ID:   id,
			Path: filepath.Join(s.journalPath, file.Name()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries, nil
}

// Read returns the content of one entry
func (s *Store) Read(id string) (string, error) {
	data, err := os.ReadFile(s.Path(id))
	if err != nil {
		return "", fmt.Errorf("failed to read entry %s: %w", id, err)
	}
	return string(data), nil
}

// Write stores the content of one entry, replacing any previous content
func (s *Store) Write(id, content string) error {
	if err := os.WriteFile(s.Path(id), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", id, err)
	}
	return nil
}

// Exists reports whether an entry file is present
func (s *Store) Exists(id string) bool {
	_, err := os.Stat(s.Path(id))
	return err == nil
}

// Path returns the absolute file path for an entry identifier
func (s *Store) Path(id string) string {
	return filepath.Join(s.journalPath, id+".md")
}

// Root returns the journal directory
func (s *Store) Root() string {
	return s.journalPath
}
