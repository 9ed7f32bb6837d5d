package ports

import "diaro/internal/domain"

// EntryStore defines the interface for journal entry storage.
// Entries are keyed by their YYYY-MM-DD identifier.
type EntryStore interface {
	// ListAll returns every dated entry, newest first.
	ListAll() ([]domain.Entry, error)

	// Read returns the raw content of an entry. A failed read returns an
	// error; callers scanning the corpus skip the entry rather than abort.
	Read(id string) (string, error)

	// Write stores content for an entry, creating the journal directory
	// if needed.
	Write(id string, content string) error

	// Exists reports whether an entry file exists for the identifier.
	Exists(id string) bool

	// Path returns the absolute file path for an entry identifier.
	Path(id string) string

	// Root returns the journal directory.
	Root() string
}
