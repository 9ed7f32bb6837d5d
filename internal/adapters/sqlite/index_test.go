package sqlite

import (
	"os"
	"path/filepath"
	"testing"
)

func setupIndex(t *testing.T) (*Index, string) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	journal := t.TempDir()
	idx := NewIndex()
	if err := idx.Open(journal); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx, journal
}

func writeEntry(t *testing.T, journal, id, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(journal, id+".md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSyncFull(t *testing.T) {
	idx, journal := setupIndex(t)

	writeEntry(t, journal, "2024-01-01", "First entry, four words here.")
	writeEntry(t, journal, "2024-01-02", "Second entry links back to [[2024-01-01]] today.")
	writeEntry(t, journal, "not-a-date", "ignored")
	if err := os.WriteFile(filepath.Join(journal, "README.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, err := idx.SyncFull()
	if err != nil {
		t.Fatalf("SyncFull() error = %v", err)
	}
	if stats.EntriesAdded != 2 {
		t.Errorf("EntriesAdded = %d, want 2", stats.EntriesAdded)
	}
	if stats.LinksAdded != 1 {
		t.Errorf("LinksAdded = %d, want 1", stats.LinksAdded)
	}

	entries, err := idx.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != "2024-01-02" {
		t.Errorf("entries should be newest first, got %s", entries[0].ID)
	}
	if entries[1].WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", entries[1].WordCount)
	}
}

func TestLinkQueries(t *testing.T) {
	idx, journal := setupIndex(t)

	writeEntry(t, journal, "2024-01-01", "The origin entry.")
	writeEntry(t, journal, "2024-01-02", "Points at [[2024-01-01]] and also [[2024-03-03]] which does not exist.")
	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull() error = %v", err)
	}

	incoming, err := idx.LinksTo("2024-01-01")
	if err != nil {
		t.Fatalf("LinksTo() error = %v", err)
	}
	if len(incoming) != 1 || incoming[0].SourceID != "2024-01-02" {
		t.Errorf("LinksTo() = %v, want one link from 2024-01-02", incoming)
	}

	outgoing, err := idx.LinksFrom("2024-01-02")
	if err != nil {
		t.Fatalf("LinksFrom() error = %v", err)
	}
	// Dangling links are still indexed; they describe the text as written.
	if len(outgoing) != 2 {
		t.Errorf("LinksFrom() returned %d links, want 2", len(outgoing))
	}
}

func TestSyncIncrementalAddAndDelete(t *testing.T) {
	idx, journal := setupIndex(t)

	writeEntry(t, journal, "2024-01-01", "Original entry.")
	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull() error = %v", err)
	}

	writeEntry(t, journal, "2024-01-02", "A brand new entry.")
	if err := os.Remove(filepath.Join(journal, "2024-01-01.md")); err != nil {
		t.Fatal(err)
	}

	stats, err := idx.SyncIncremental()
	if err != nil {
		t.Fatalf("SyncIncremental() error = %v", err)
	}
	if stats.EntriesAdded != 1 {
		t.Errorf("EntriesAdded = %d, want 1", stats.EntriesAdded)
	}
	if stats.EntriesDeleted != 1 {
		t.Errorf("EntriesDeleted = %d, want 1", stats.EntriesDeleted)
	}

	entry, err := idx.GetEntry("2024-01-01")
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if entry != nil {
		t.Error("deleted entry should be gone from the index")
	}
}

func TestStats(t *testing.T) {
	idx, journal := setupIndex(t)

	writeEntry(t, journal, "2024-01-01", "one two three")
	writeEntry(t, journal, "2024-02-01", "four five [[2024-01-01]]")
	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull() error = %v", err)
	}

	stats, err := idx.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.EntryCount != 2 {
		t.Errorf("EntryCount = %d, want 2", stats.EntryCount)
	}
	if stats.LinkCount != 1 {
		t.Errorf("LinkCount = %d, want 1", stats.LinkCount)
	}
	if stats.TotalWords != 6 {
		t.Errorf("TotalWords = %d, want 6", stats.TotalWords)
	}
	if stats.FirstEntry != "2024-01-01" || stats.LastEntry != "2024-02-01" {
		t.Errorf("span = %s..%s", stats.FirstEntry, stats.LastEntry)
	}
}

func TestNeedsFullRebuild(t *testing.T) {
	idx, _ := setupIndex(t)
	if idx.NeedsFullRebuild() {
		t.Error("freshly opened index should not need a rebuild")
	}

	// Simulate pointing the same database at a different journal.
	idx.journalPath = "/somewhere/else"
	if !idx.NeedsFullRebuild() {
		t.Error("index for a different journal path should be rebuilt")
	}
}
