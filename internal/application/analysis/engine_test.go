package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"diaro/internal/domain"
)

// fakeGenerator returns canned responses keyed by a substring of the prompt,
// counting every call.
type fakeGenerator struct {
	response   string
	responses  map[string]string // substring of prompt -> response
	err        error
	calls      int
	lastPrompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt, _ string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	for substr, resp := range g.responses {
		if strings.Contains(prompt, substr) {
			return resp, nil
		}
	}
	return g.response, nil
}

// fakeStore serves entries from a map, counting reads and lists.
type fakeStore struct {
	entries   map[string]string // id -> content
	order     []string          // listing order, newest first
	readErrs  map[string]error
	listCalls int
	readCalls int
}

func (s *fakeStore) ListAll() ([]domain.Entry, error) {
	s.listCalls++
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
	s.readCalls++
	if err := s.readErrs[id]; err != nil {
		return "", err
	}
	content, ok := s.entries[id]
	if !ok {
		return "", fmt.Errorf("entry %s: %w", id, errors.New("no such file"))
	}
	return content, nil
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

const longEnough = "I felt anxious about my job interview today and could not stop thinking about it."

func TestExtractThemesShortCircuit(t *testing.T) {
	gen := &fakeGenerator{response: "a, b"}
	engine := NewEngine(&fakeStore{}, gen)

	themes := engine.ExtractThemes(context.Background(), "too short")

	if !themes.IsEmpty() {
		t.Errorf("expected empty themes, got %v", themes)
	}
	if gen.calls != 0 {
		t.Errorf("expected no generation call for short content, got %d", gen.calls)
	}
}

func TestExtractThemesGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	engine := NewEngine(&fakeStore{}, gen)

	themes := engine.ExtractThemes(context.Background(), longEnough)

	if !themes.IsEmpty() {
		t.Errorf("expected empty themes on failure, got %v", themes)
	}
}

func TestExtractThemesPrefersBrainDump(t *testing.T) {
	gen := &fakeGenerator{response: "reflection, focus"}
	engine := NewEngine(&fakeStore{}, gen)

	content := "## 🧠 Reflection Prompts\n\n**1. A templated prompt question?**\n\n" +
		"## 🧠 Brain Dump\n\nHere is the actual reflection text, long enough to analyze on its own."

	themes := engine.ExtractThemes(context.Background(), content)

	if len(themes) != 2 || themes[0] != "reflection" {
		t.Errorf("expected themes, got %v", themes)
	}
	if strings.Contains(gen.lastPrompt, "templated prompt question") {
		t.Error("prompt included templated sections instead of just the brain dump")
	}
	if !strings.Contains(gen.lastPrompt, "the actual reflection text") {
		t.Error("prompt missing brain dump content")
	}
}

func TestThemesCachedIdempotent(t *testing.T) {
	gen := &fakeGenerator{response: "job, anxiety"}
	engine := NewEngine(&fakeStore{}, gen)
	ctx := context.Background()

	first := engine.ThemesCached(ctx, longEnough, "2024-01-01")
	second := engine.ThemesCached(ctx, longEnough, "2024-01-01")

	if gen.calls != 1 {
		t.Errorf("expected exactly one generation call, got %d", gen.calls)
	}
	if len(first) != len(second) {
		t.Fatalf("cached result differs: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cached result differs at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestThemesCachedEmptyResultCached(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	engine := NewEngine(&fakeStore{}, gen)
	ctx := context.Background()

	engine.ThemesCached(ctx, longEnough, "2024-01-01")
	engine.ThemesCached(ctx, longEnough, "2024-01-01")

	if gen.calls != 1 {
		t.Errorf("expected failed extraction to be cached, got %d calls", gen.calls)
	}
}

func TestThemesCachedSensitiveToEdits(t *testing.T) {
	gen := &fakeGenerator{response: "a, b"}
	engine := NewEngine(&fakeStore{}, gen)
	ctx := context.Background()

	engine.ThemesCached(ctx, longEnough, "2024-01-01")
	edited := "X" + longEnough[1:] // same length, different first character
	engine.ThemesCached(ctx, edited, "2024-01-01")
	engine.ThemesCached(ctx, longEnough+" more", "2024-01-01")

	if gen.calls != 3 {
		t.Errorf("expected three extractions for three content states, got %d", gen.calls)
	}
}

func TestThemesCachedDistinctIdentifiers(t *testing.T) {
	gen := &fakeGenerator{response: "a, b"}
	engine := NewEngine(&fakeStore{}, gen)
	ctx := context.Background()

	engine.ThemesCached(ctx, longEnough, "2024-01-01")
	engine.ThemesCached(ctx, longEnough, "2024-01-02")

	if gen.calls != 2 {
		t.Errorf("expected per-identifier cache entries, got %d calls", gen.calls)
	}
}

func TestFindRelatedEmptyThemesShortCircuit(t *testing.T) {
	store := &fakeStore{
		entries: map[string]string{"2024-01-01": longEnough},
		order:   []string{"2024-01-01"},
	}
	gen := &fakeGenerator{err: errors.New("backend down")}
	engine := NewEngine(store, gen)

	related := engine.FindRelated(context.Background(), longEnough, "2024-01-02", 6)

	if related != nil {
		t.Errorf("expected nil result, got %v", related)
	}
	if store.listCalls != 0 || store.readCalls != 0 {
		t.Errorf("expected no corpus scan, got %d lists and %d reads", store.listCalls, store.readCalls)
	}
}

func TestFindRelatedSelfExclusion(t *testing.T) {
	store := &fakeStore{
		entries: map[string]string{
			"2024-01-01": longEnough,
			"2024-01-02": longEnough + " again",
		},
		order: []string{"2024-01-02", "2024-01-01"},
	}
	gen := &fakeGenerator{response: "job, anxiety, interview"}
	engine := NewEngine(store, gen)

	related := engine.FindRelated(context.Background(), longEnough+" again", "2024-01-02", 6)

	for _, link := range related {
		if strings.Contains(link, "2024-01-02") {
			t.Errorf("result contains the excluded entry: %v", related)
		}
	}
	if len(related) != 1 || related[0] != "[[2024-01-01]]" {
		t.Errorf("expected [[2024-01-01]], got %v", related)
	}
}

func TestFindRelatedSkipsUnreadableEntries(t *testing.T) {
	store := &fakeStore{
		entries: map[string]string{
			"2024-01-01": longEnough,
			"2024-01-02": longEnough + " again",
		},
		order:    []string{"2024-01-02", "2024-01-01"},
		readErrs: map[string]error{"2024-01-02": errors.New("permission denied")},
	}
	gen := &fakeGenerator{response: "job, anxiety"}
	engine := NewEngine(store, gen)

	related := engine.FindRelated(context.Background(), "A fresh entry about the job anxiety spiral.", "", 6)

	if len(related) != 1 || related[0] != "[[2024-01-01]]" {
		t.Errorf("expected unreadable entry skipped, got %v", related)
	}
}

func TestFindRelatedThresholdExclusion(t *testing.T) {
	// The threshold is strictly-greater: a zero-overlap candidate (score
	// 0 <= 0.08) must never appear.
	store := &fakeStore{
		entries: map[string]string{
			"2024-01-01": "entry alpha with plenty of content to analyze properly.",
			"2024-01-02": "entry beta with plenty of content to analyze properly.",
		},
		order: []string{"2024-01-02", "2024-01-01"},
	}
	gen := &fakeGenerator{responses: map[string]string{
		"entry alpha": "a, p, q, r, s",        // sim vs {a,b,c,d,e}: 1/9 ≈ 0.111 > 0.08
		"entry beta":  "x1, x2, x3, x4, x5",   // sim 0, excluded
		"fresh":       "a, b, c, d, e",
	}}
	engine := NewEngine(store, gen)

	related := engine.FindRelated(context.Background(), "fresh content long enough to analyze today.", "", 6)

	if len(related) != 1 || related[0] != "[[2024-01-01]]" {
		t.Errorf("expected only the above-threshold candidate, got %v", related)
	}
}

func TestFindRelatedRankingDeterminism(t *testing.T) {
	store := &fakeStore{
		entries: map[string]string{
			"2024-01-01": "first entry body long enough for the generator.",
			"2024-01-02": "second entry body long enough for the generator.",
			"2024-01-03": "third entry body long enough for the generator.",
		},
		order: []string{"2024-01-03", "2024-01-02", "2024-01-01"},
	}
	gen := &fakeGenerator{responses: map[string]string{
		"first entry":  "a, b",    // 1.0
		"second entry": "a, b, c", // 0.667
		"third entry":  "a",       // 0.5
		"current":      "a, b",
	}}
	engine := NewEngine(store, gen)

	related := engine.FindRelated(context.Background(), "current content long enough for the generator.", "", 6)

	want := []string{"[[2024-01-01]]", "[[2024-01-02]]", "[[2024-01-03]]"}
	if len(related) != len(want) {
		t.Fatalf("FindRelated() = %v, want %v", related, want)
	}
	for i := range want {
		if related[i] != want[i] {
			t.Errorf("rank %d: got %s, want %s", i, related[i], want[i])
		}
	}
}

func TestFindRelatedMaxResults(t *testing.T) {
	store := &fakeStore{entries: map[string]string{}, order: nil}
	for day := 1; day <= 9; day++ {
		id := fmt.Sprintf("2024-01-0%d", day)
		store.entries[id] = fmt.Sprintf("entry %d body long enough for the generator.", day)
		store.order = append(store.order, id)
	}
	gen := &fakeGenerator{response: "a, b"}
	engine := NewEngine(store, gen)

	related := engine.FindRelated(context.Background(), "current content long enough for the generator.", "", 4)

	if len(related) != 4 {
		t.Errorf("expected max 4 results, got %d: %v", len(related), related)
	}
}

func TestFindRelatedEndToEnd(t *testing.T) {
	store := &fakeStore{
		entries: map[string]string{
			"2024-01-01": "## Brain Dump\n\nI felt anxious about my job interview and rehearsed answers all evening.",
			"2024-01-02": "Another stressful day interviewing for jobs",
		},
		order: []string{"2024-01-02", "2024-01-01"},
	}
	gen := &fakeGenerator{response: "job, anxiety, interview"}
	engine := NewEngine(store, gen)

	content, err := store.Read("2024-01-02")
	if err != nil {
		t.Fatal(err)
	}
	related := engine.FindRelated(context.Background(), content, "2024-01-02", 6)

	if len(related) != 1 || related[0] != "[[2024-01-01]]" {
		t.Errorf("expected [[2024-01-01]], got %v", related)
	}
}

func TestGenerateReflectionPromptsCountBound(t *testing.T) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("%d. Question number %d about your writing?", i, i))
	}
	gen := &fakeGenerator{response: strings.Join(lines, "\n")}
	engine := NewEngine(&fakeStore{}, gen)

	prompts := engine.GenerateReflectionPrompts(context.Background(), longEnough, "", 3, false)

	if len(prompts) > 3 {
		t.Errorf("expected at most 3 prompts, got %d", len(prompts))
	}
}

func TestGenerateReflectionPromptsShortContent(t *testing.T) {
	gen := &fakeGenerator{response: "1. Should not be called?"}
	engine := NewEngine(&fakeStore{}, gen)

	prompts := engine.GenerateReflectionPrompts(context.Background(), "hi", "", 3, false)

	if prompts != nil {
		t.Errorf("expected nil for short content, got %v", prompts)
	}
	if gen.calls != 0 {
		t.Errorf("expected no generation call, got %d", gen.calls)
	}
}

func TestExtractTodos(t *testing.T) {
	gen := &fakeGenerator{response: "- Call the bank about the statement\n- Draft the follow-up email"}
	engine := NewEngine(&fakeStore{}, gen)

	todos := engine.ExtractTodos(context.Background(), longEnough)

	if len(todos) != 2 {
		t.Fatalf("expected 2 todos, got %v", todos)
	}
	if todos[0] != "Call the bank about the statement" {
		t.Errorf("unexpected first todo: %q", todos[0])
	}
}
