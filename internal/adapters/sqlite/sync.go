package sqlite

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"diaro/internal/domain"
)

// Wiki link pattern: [[2024-01-15]] or [[2024-01-15|label]]
var linkPattern = regexp.MustCompile(`\[\[([^\]|]+)(?:\|[^\]]+)?\]\]`)

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.beginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Clear existing data
	if err := tx.deleteAllEntries(); err != nil {
		return nil, err
	}

	files, err := os.ReadDir(idx.journalPath)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}
		stats.FilesScanned++

		id := strings.TrimSuffix(file.Name(), ".md")
		if _, err := domain.ParseEntryDate(id); err != nil {
			continue
		}
		info, err := file.Info()
		if err != nil {
			continue
		}

		entry, links, err := readEntryFile(idx.journalPath, file.Name(), info.ModTime().Unix())
		if err != nil {
			continue // Skip unreadable files
		}

		if err := tx.upsertEntry(entry); err != nil {
			continue
		}
		stats.EntriesAdded++
		for _, link := range links {
			if err := tx.insertLink(&link); err == nil {
				stats.LinksAdded++
			}
		}
	}

	if err := tx.setLastSyncTime(time.Now().Unix()); err != nil {
		return stats, err
	}
	if err := tx.Commit(); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental updates only files that changed since last sync
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	// Get last sync time
	var lastSyncUnix int64
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync_time'`).Scan(&lastSyncUnix)

	// Track existing entries to detect deletions
	existing := make(map[string]bool)
	rows, err := idx.db.Query(`SELECT date FROM entries`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id string
		rows.Scan(&id)
		existing[id] = true
	}
	rows.Close()

	tx, err := idx.beginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	seen := make(map[string]bool)

	files, err := os.ReadDir(idx.journalPath)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}

		id := strings.TrimSuffix(file.Name(), ".md")
		if _, err := domain.ParseEntryDate(id); err != nil {
			continue
		}
		seen[id] = true
		stats.FilesScanned++

		info, err := file.Info()
		if err != nil {
			continue
		}
		mtime := info.ModTime().Unix()
		if mtime <= lastSyncUnix && existing[id] {
			continue
		}

		entry, links, err := readEntryFile(idx.journalPath, file.Name(), mtime)
		if err != nil {
			continue
		}

		if existing[id] {
			if err := tx.upsertEntry(entry); err != nil {
				continue
			}
			tx.deleteLinksFrom(id)
			stats.EntriesUpdated++
		} else {
			if err := tx.upsertEntry(entry); err != nil {
				continue
			}
			stats.EntriesAdded++
		}
		for _, link := range links {
			if err := tx.insertLink(&link); err == nil {
				stats.LinksAdded++
			}
		}
	}

	// Delete entries whose files are gone
	for id := range existing {
		if !seen[id] {
			tx.deleteEntry(id)
			stats.EntriesDeleted++
		}
	}

	if err := tx.setLastSyncTime(time.Now().Unix()); err != nil {
		return stats, err
	}
	if err := tx.Commit(); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// readEntryFile reads one entry file and extracts its index row and links
func readEntryFile(journalPath, fileName string, mtime int64) (*domain.IndexedEntry, []domain.Link, error) {
	content, err := os.ReadFile(filepath.Join(journalPath, fileName))
	if err != nil {
		return nil, nil, err
	}

	id := strings.TrimSuffix(fileName, ".md")
	entry := &domain.IndexedEntry{
		ID:        id,
		Path:      fileName,
		Mtime:     mtime,
		WordCount: len(strings.Fields(string(content))),
	}

	var links []domain.Link
	for _, match := range linkPattern.FindAllStringSubmatch(string(content), -1) {
		target := match[1]
		if _, err := domain.ParseEntryDate(target); err != nil {
			continue // Only dated wiki links belong in the graph
		}
		if target == id {
			continue
		}
		links = append(links, domain.Link{
			SourceID: id,
			TargetID: target,
			LinkText: match[0],
		})
	}

	return entry, links, nil
}
