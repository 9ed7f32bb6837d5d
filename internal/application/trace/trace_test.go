package trace

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"diaro/internal/domain"
)

type fakeStore struct {
	entries map[string]string
	readErr map[string]error
}

func (f *fakeStore) ListAll() ([]domain.Entry, error) { return nil, nil }
func (f *fakeStore) Read(id string) (string, error) {
	if err := f.readErr[id]; err != nil {
		return "", err
	}
	content, ok := f.entries[id]
	if !ok {
		return "", errors.New("not found")
	}
	return content, nil
}
func (f *fakeStore) Write(id, content string) error { return nil }
func (f *fakeStore) Exists(id string) bool          { _, ok := f.entries[id]; return ok }
func (f *fakeStore) Path(id string) string          { return id + ".md" }
func (f *fakeStore) Root() string                   { return "/tmp" }

type fakeThemes struct {
	byID map[string]domain.ThemeSet
}

func (f *fakeThemes) ThemesCached(ctx context.Context, content, id string) domain.ThemeSet {
	return f.byID[id]
}

func mustEntry(t *testing.T, id string) domain.Entry {
	t.Helper()
	date, err := domain.ParseEntryDate(id)
	if err != nil {
		t.Fatalf("bad test date %q: %v", id, err)
	}
	return domain.Entry{Date: date, ID: id}
}

func testGenerator(store *fakeStore, themes *fakeThemes) *Generator {
	g := New(store, themes)
	g.now = func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerateEmpty(t *testing.T) {
	g := testGenerator(&fakeStore{entries: map[string]string{}}, &fakeThemes{})
	got := g.Generate(context.Background(), nil)
	if got != "No valid entries found to analyze." {
		t.Errorf("Generate() = %q, want empty-corpus message", got)
	}
}

func TestGenerateSkipsUnreadable(t *testing.T) {
	store := &fakeStore{
		entries: map[string]string{"2024-01-02": "A day with some writing in it worth reading."},
		readErr: map[string]error{"2024-01-01": errors.New("locked")},
	}
	g := testGenerator(store, &fakeThemes{byID: map[string]domain.ThemeSet{
		"2024-01-02": {"work"},
	}})

	got := g.Generate(context.Background(), []domain.Entry{
		mustEntry(t, "2024-01-01"),
		mustEntry(t, "2024-01-02"),
	})
	if strings.Contains(got, "2024-01-01") {
		t.Error("trace should not mention unreadable entries")
	}
	if !strings.Contains(got, "2024-01-02") {
		t.Error("trace should include the readable entry")
	}
}

func TestGenerateSections(t *testing.T) {
	store := &fakeStore{entries: map[string]string{
		"2024-01-01": "Long conversation with Marta about the project. I realized that pacing matters more than speed.",
		"2024-01-08": "Another week of work stress. Marta suggested a different approach to the deadline.",
		"2024-01-15": "Started sketching again, first time in months. Work felt lighter today.",
	}}
	themes := &fakeThemes{byID: map[string]domain.ThemeSet{
		"2024-01-01": {"work", "stress"},
		"2024-01-08": {"work", "stress"},
		"2024-01-15": {"creativity", "work"},
	}}
	g := testGenerator(store, themes)

	got := g.Generate(context.Background(), []domain.Entry{
		mustEntry(t, "2024-01-15"),
		mustEntry(t, "2024-01-01"),
		mustEntry(t, "2024-01-08"),
	})

	wantSections := []string{
		"# Memory Trace",
		"## 📅 Timeline Overview",
		"## 🧠 Core Themes & Evolution",
		"## 🔄 Recurring Patterns",
		"## 👥 Relationships Map",
		"## 🌱 Growth Trajectory",
		"## 💎 Wisdom Extracted",
		"## ⭐ Significant Moments",
		"## 📊 Entry Overview",
	}
	for _, section := range wantSections {
		if !strings.Contains(got, section) {
			t.Errorf("trace missing section %q", section)
		}
	}

	// Entries appear in chronological order regardless of input order.
	first := strings.Index(got, "2024-01-01")
	last := strings.Index(got, "2024-01-15")
	if first == -1 || last == -1 || first > last {
		t.Error("timeline should list entries oldest first")
	}

	// work appears three times, so it leads the core themes.
	if !strings.Contains(got, "### 💼 Work") {
		t.Error("expected a Work core theme section")
	}
	if !strings.Contains(got, "Appeared in 3 entries") {
		t.Error("expected work frequency of 3")
	}

	// work+stress co-occur twice.
	if !strings.Contains(got, "*stress* + *work* (2 times)") {
		t.Errorf("expected co-occurrence line, got:\n%s", got)
	}

	// Marta is mentioned in two entries.
	if !strings.Contains(got, "**Marta**: mentioned 2 times") {
		t.Error("expected Marta in relationships map")
	}

	// Realization sentence surfaces as wisdom.
	if !strings.Contains(got, "I realized that pacing matters") {
		t.Error("expected realization quote in wisdom section")
	}

	if !strings.Contains(got, "Entries analyzed:** 3") {
		t.Error("expected entry count of 3")
	}
}

func TestExtractNames(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain name",
			content: "talked to Giulia about the move.",
			want:    []string{"Giulia"},
		},
		{
			name:    "sentence starters excluded",
			content: "Today I went out. The weather was fine.",
			want:    nil,
		},
		{
			name:    "all caps excluded",
			content: "finished the api migration at WORK.",
			want:    nil,
		},
		{
			name:    "punctuation trimmed",
			content: "dinner with (Paolo).",
			want:    []string{"Paolo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractNames(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("extractNames() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("extractNames()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEmojiFor(t *testing.T) {
	tests := []struct {
		name   string
		themes domain.ThemeSet
		want   string
	}{
		{name: "direct match", themes: domain.ThemeSet{"work"}, want: "💼"},
		{name: "substring match", themes: domain.ThemeSet{"work-life balance"}, want: "💼"},
		{name: "unknown", themes: domain.ThemeSet{"zymurgy"}, want: "•"},
		{name: "empty", themes: nil, want: "•"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emojiFor(tt.themes); got != tt.want {
				t.Errorf("emojiFor(%v) = %q, want %q", tt.themes, got, tt.want)
			}
		})
	}
}

func TestSentimentScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{name: "neutral", content: "went to the office and wrote code", want: 0},
		{name: "positive", content: "grateful for real progress, a good day", want: 1},
		{name: "negative", content: "tired and frustrated, everything felt hard", want: -1},
		{name: "mixed", content: "good progress but tired", want: 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sentimentScore(tt.content); got != tt.want {
				t.Errorf("sentimentScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSentimentArrow(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.5, "↗ ↗"},
		{0.1, "↗"},
		{0, "→"},
		{-0.1, "↘"},
		{-0.5, "↘ ↘"},
	}

	for _, tt := range tests {
		if got := sentimentArrow(tt.score); got != tt.want {
			t.Errorf("sentimentArrow(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
