package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "diary")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	info, err := os.Stat(store.Root())
	if err != nil || !info.IsDir() {
		t.Errorf("journal directory not created: %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := setupStore(t)

	content := "## 🧠 Brain Dump\n\nSome thoughts.\n"
	if err := store.Write("2024-03-15", content); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := store.Read("2024-03-15")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != content {
		t.Errorf("Read() = %q, want %q", got, content)
	}
	if !store.Exists("2024-03-15") {
		t.Error("Exists() = false after Write")
	}
	if store.Exists("2024-03-16") {
		t.Error("Exists() = true for missing entry")
	}
}

func TestReadMissing(t *testing.T) {
	store := setupStore(t)
	if _, err := store.Read("2024-01-01"); err == nil {
		t.Error("Read() of missing entry should fail")
	}
}

func TestListAllNewestFirst(t *testing.T) {
	store := setupStore(t)

	for _, id := range []string{"2024-01-05", "2024-03-01", "2024-02-14"} {
		if err := store.Write(id, "content"); err != nil {
			t.Fatalf("Write(%s) error = %v", id, err)
		}
	}

	entries, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}

	want := []string{"2024-03-01", "2024-02-14", "2024-01-05"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("entries[%d].ID = %s, want %s", i, entries[i].ID, id)
		}
	}
}

func TestListAllIgnoresNonEntries(t *testing.T) {
	store := setupStore(t)

	files := []string{"2024-03-15.md", "memory-trace.md", "notes.txt", "2024-13-01.md", "not-a-date.md"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(store.Root(), name), []byte("content"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(store.Root(), "2024-01-01.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "2024-03-15" {
		t.Errorf("ListAll() = %v, want only 2024-03-15", entries)
	}
}

func TestPathLayout(t *testing.T) {
	store := setupStore(t)
	want := filepath.Join(store.Root(), "2024-03-15.md")
	if got := store.Path("2024-03-15"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
