package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"diaro/internal/domain"
	"diaro/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.JournalIndex using SQLite
type Index struct {
	db          *sql.DB
	journalPath string
	dbPath      string
}

// Ensure Index implements JournalIndex
var _ ports.JournalIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given journal path
func (idx *Index) Open(journalPath string) error {
	// Expand ~ in path
	if len(journalPath) > 0 && journalPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		journalPath = filepath.Join(home, journalPath[1:])
	}

	idx.journalPath = journalPath
	idx.dbPath = databasePath(journalPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS entries (
			date TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			mtime INTEGER NOT NULL,
			word_count INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS links (
			source_date TEXT NOT NULL,
			target_date TEXT NOT NULL,
			link_text TEXT NOT NULL,
			PRIMARY KEY (source_date, target_date)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_date);
		CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_date);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	// Update metadata
	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the index should be fully rebuilt
func (idx *Index) NeedsFullRebuild() bool {
	var version, journalHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'journal_path_hash'").Scan(&journalHash)

	expectedHash := hashJournalPath(idx.journalPath)

	return version != schemaVersion || journalHash != expectedHash
}

// databasePath returns the path for the SQLite database
func databasePath(journalPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash journal path for unique DB name
	hash := hashJournalPath(journalPath)

	return filepath.Join(dataHome, "diaro", hash+".db")
}

// hashJournalPath returns a short hash of the journal path
func hashJournalPath(journalPath string) string {
	h := sha256.Sum256([]byte(journalPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and journal path hash
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?), ('journal_path_hash', ?)
	`, schemaVersion, hashJournalPath(idx.journalPath))
	return err
}

// Entries returns all indexed entries, newest first
func (idx *Index) Entries() ([]domain.IndexedEntry, error) {
	rows, err := idx.db.Query(`
		SELECT date, path, mtime, word_count
		FROM entries ORDER BY date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.IndexedEntry
	for rows.Next() {
		var e domain.IndexedEntry
		if err := rows.Scan(&e.ID, &e.Path, &e.Mtime, &e.WordCount); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// GetEntry retrieves an entry by date, nil when not indexed
func (idx *Index) GetEntry(id string) (*domain.IndexedEntry, error) {
	var e domain.IndexedEntry

	err := idx.db.QueryRow(`
		SELECT date, path, mtime, word_count
		FROM entries WHERE date = ?
	`, id).Scan(&e.ID, &e.Path, &e.Mtime, &e.WordCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// LinksTo returns all links pointing at an entry
func (idx *Index) LinksTo(id string) ([]domain.Link, error) {
	return idx.queryLinks(`
		SELECT source_date, target_date, link_text
		FROM links WHERE target_date = ?
	`, id)
}

// LinksFrom returns all links leaving an entry
func (idx *Index) LinksFrom(id string) ([]domain.Link, error) {
	return idx.queryLinks(`
		SELECT source_date, target_date, link_text
		FROM links WHERE source_date = ?
	`, id)
}

func (idx *Index) queryLinks(query, arg string) ([]domain.Link, error) {
	rows, err := idx.db.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.SourceID, &l.TargetID, &l.LinkText); err != nil {
			return nil, err
		}
		links = append(links, l)
	}

	return links, rows.Err()
}

// Stats summarizes the indexed journal
func (idx *Index) Stats() (*domain.IndexStats, error) {
	stats := &domain.IndexStats{}

	err := idx.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(word_count), 0),
		       COALESCE(MIN(date), ''), COALESCE(MAX(date), '')
		FROM entries
	`).Scan(&stats.EntryCount, &stats.TotalWords, &stats.FirstEntry, &stats.LastEntry)
	if err != nil {
		return nil, err
	}

	if err := idx.db.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&stats.LinkCount); err != nil {
		return nil, err
	}

	return stats, nil
}
