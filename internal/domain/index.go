package domain

import "time"

// IndexedEntry represents a cached journal entry in the SQLite index.
type IndexedEntry struct {
	ID        string // entry date YYYY-MM-DD (primary key)
	Path      string // relative path from journal root
	Mtime     int64  // unix timestamp for incremental sync
	WordCount int
}

// Link represents a wiki link between two entries.
type Link struct {
	SourceID string // entry containing the link
	TargetID string // referenced entry date
	LinkText string // original [[link]] text
}

// SyncStats holds statistics from an index sync operation.
type SyncStats struct {
	EntriesAdded   int
	EntriesUpdated int
	EntriesDeleted int
	LinksAdded     int
	FilesScanned   int
	Duration       time.Duration
}

// IndexStats summarizes the indexed journal.
type IndexStats struct {
	EntryCount int
	LinkCount  int
	TotalWords int
	FirstEntry string
	LastEntry  string
}
