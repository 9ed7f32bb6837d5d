package template

import (
	"context"
	"strings"
	"testing"
	"time"

	"diaro/internal/domain"
)

type fakeStore struct {
	entries map[string]string
	order   []string
}

func (s *fakeStore) ListAll() ([]domain.Entry, error) {
	var out []domain.Entry
	for _, id := range s.order {
		date, err := domain.ParseEntryDate(id)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Entry{Date: date, ID: id, Path: "/journal/" + id + ".md"})
	}
	return out, nil
}

func (s *fakeStore) Read(id string) (string, error) {
	return s.entries[id], nil
}

func (s *fakeStore) Write(id, content string) error {
	s.entries[id] = content
	return nil
}

func (s *fakeStore) Exists(id string) bool {
	_, ok := s.entries[id]
	return ok
}

func (s *fakeStore) Path(id string) string { return "/journal/" + id + ".md" }
func (s *fakeStore) Root() string          { return "/journal" }

type fakePrompts struct {
	prompts    []string
	lastRecent string
	lastCount  int
	lastWeekly bool
	lastFocus  string
}

func (f *fakePrompts) GenerateReflectionPrompts(_ context.Context, recent, focus string, count int, weekly bool) []string {
	f.lastRecent = recent
	f.lastFocus = focus
	f.lastCount = count
	f.lastWeekly = weekly
	if len(f.prompts) > count {
		return f.prompts[:count]
	}
	return f.prompts
}

func testStore() *fakeStore {
	return &fakeStore{
		entries: map[string]string{
			"2024-01-06": "Saturday entry content",
			"2024-01-05": "Friday entry content",
			"2024-01-04": "Thursday entry content",
			"2023-12-20": "An older entry outside any weekly window",
		},
		order: []string{"2024-01-06", "2024-01-05", "2024-01-04", "2023-12-20"},
	}
}

func TestContentRegularDay(t *testing.T) {
	prompts := &fakePrompts{prompts: []string{"What felt good today?", "What was hard?", "What next?"}}
	gen := New(testStore(), prompts, 3)

	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	got, err := gen.Content(context.Background(), monday, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "## 🧠 Reflection Prompts") {
		t.Errorf("missing daily header:\n%s", got)
	}
	if !strings.Contains(got, "**1. What felt good today?**") {
		t.Errorf("missing numbered prompt:\n%s", got)
	}
	if !strings.Contains(got, "## 🧠 Brain Dump") {
		t.Errorf("missing brain dump section:\n%s", got)
	}

	if prompts.lastCount != 3 || prompts.lastWeekly {
		t.Errorf("expected 3 daily prompts, got count=%d weekly=%v", prompts.lastCount, prompts.lastWeekly)
	}
	if !strings.Contains(prompts.lastRecent, "## MOST RECENT ENTRY (2024-01-06):") {
		t.Errorf("most recent entry not weighted:\n%s", prompts.lastRecent)
	}
	if !strings.Contains(prompts.lastRecent, "## Earlier entry (2024-01-05):") {
		t.Errorf("earlier entry not labelled:\n%s", prompts.lastRecent)
	}
	if strings.Contains(prompts.lastRecent, "2023-12-20") {
		t.Errorf("context exceeded recent count:\n%s", prompts.lastRecent)
	}
}

func TestContentWeekly(t *testing.T) {
	prompts := &fakePrompts{prompts: []string{"q1?", "q2?", "q3?", "q4?", "q5?"}}
	gen := New(testStore(), prompts, 3)

	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	got, err := gen.Content(context.Background(), sunday, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "## 🌅 Weekly Synthesis & Alignment") {
		t.Errorf("missing weekly header:\n%s", got)
	}
	if prompts.lastCount != 5 || !prompts.lastWeekly {
		t.Errorf("expected 5 weekly prompts, got count=%d weekly=%v", prompts.lastCount, prompts.lastWeekly)
	}
	// Window is the 7 calendar days before the entry, not the last N entries
	if strings.Contains(prompts.lastRecent, "2023-12-20") {
		t.Errorf("entry outside the week leaked into context:\n%s", prompts.lastRecent)
	}
	if !strings.Contains(prompts.lastRecent, "2024-01-06") {
		t.Errorf("entry within the week missing from context:\n%s", prompts.lastRecent)
	}
}

func TestContentFallbackPrompts(t *testing.T) {
	prompts := &fakePrompts{} // generation yields nothing
	gen := New(testStore(), prompts, 3)

	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	got, err := gen.Content(context.Background(), monday, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "What's on your mind right now?") {
		t.Errorf("missing fallback prompt:\n%s", got)
	}
}

func TestContentFocusForwarded(t *testing.T) {
	prompts := &fakePrompts{prompts: []string{"q?"}}
	gen := New(testStore(), prompts, 3)

	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	if _, err := gen.Content(context.Background(), monday, "current struggles"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if prompts.lastFocus != "current struggles" {
		t.Errorf("focus not forwarded, got %q", prompts.lastFocus)
	}
}
