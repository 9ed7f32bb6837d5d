package ports

import "diaro/internal/domain"

// JournalIndex provides cached access to entry metadata and the wiki-link
// graph between entries. The index is derived state: it can always be
// rebuilt from the journal directory.
type JournalIndex interface {
	// Lifecycle
	Open(journalPath string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental() (*domain.SyncStats, error)
	SyncFull() (*domain.SyncStats, error)

	// Queries
	Entries() ([]domain.IndexedEntry, error)
	GetEntry(id string) (*domain.IndexedEntry, error)
	LinksTo(id string) ([]domain.Link, error)
	LinksFrom(id string) ([]domain.Link, error)
	Stats() (*domain.IndexStats, error)
}
