package sqlite

import (
	"database/sql"
	"strconv"

	"diaro/internal/domain"
)

// indexTx batches index writes in one SQLite transaction
type indexTx struct {
	tx *sql.Tx
}

func (idx *Index) beginTx() (*indexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

// upsertEntry inserts or updates an entry row
func (t *indexTx) upsertEntry(entry *domain.IndexedEntry) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO entries (date, path, mtime, word_count)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Path, entry.Mtime, entry.WordCount)
	return err
}

// deleteEntry removes an entry and its outgoing links
func (t *indexTx) deleteEntry(id string) error {
	if _, err := t.tx.Exec(`DELETE FROM entries WHERE date = ?`, id); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM links WHERE source_date = ?`, id)
	return err
}

// deleteAllEntries clears the index for a full rebuild
func (t *indexTx) deleteAllEntries() error {
	if _, err := t.tx.Exec(`DELETE FROM entries`); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM links`)
	return err
}

// deleteLinksFrom removes all links leaving an entry
func (t *indexTx) deleteLinksFrom(id string) error {
	_, err := t.tx.Exec(`DELETE FROM links WHERE source_date = ?`, id)
	return err
}

// insertLink adds a new link
func (t *indexTx) insertLink(link *domain.Link) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO links (source_date, target_date, link_text)
		VALUES (?, ?, ?)
	`, link.SourceID, link.TargetID, link.LinkText)
	return err
}

// setLastSyncTime records when the index was last synced
func (t *indexTx) setLastSyncTime(unix int64) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		strconv.FormatInt(unix, 10))
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
