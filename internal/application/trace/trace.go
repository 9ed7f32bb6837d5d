package trace

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"diaro/internal/domain"
	"diaro/internal/logging"
	"diaro/internal/ports"
)

// ThemeSource supplies cached theme sets; *analysis.Engine satisfies it.
// The trace reuses the same cache as backlink generation, so a trace over
// an already-linked corpus costs zero extra generation calls.
type ThemeSource interface {
	ThemesCached(ctx context.Context, content, id string) domain.ThemeSet
}

// Generator builds Memory Trace reports: a longitudinal view of themes,
// patterns, and connections across a span of entries.
type Generator struct {
	store  ports.EntryStore
	themes ThemeSource
	log    *log.Logger

	// now is injected for deterministic tests
	now func() time.Time
}

// New creates a trace generator.
func New(store ports.EntryStore, themes ThemeSource) *Generator {
	return &Generator{
		store:  store,
		themes: themes,
		log:    logging.New("trace"),
		now:    time.Now,
	}
}

// entryData is one analyzed entry, in chronological position.
type entryData struct {
	entry   domain.Entry
	content string
	themes  domain.ThemeSet
}

// Generate renders the full Memory Trace document for the given entries.
// Unreadable entries are skipped like everywhere else in the corpus scan.
func (g *Generator) Generate(ctx context.Context, entries []domain.Entry) string {
	sorted := make([]domain.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	var data []entryData
	for _, entry := range sorted {
		content, err := g.store.Read(entry.ID)
		if err != nil {
			g.log.Debug("skipping unreadable entry", "id", entry.ID, "err", err)
			continue
		}
		data = append(data, entryData{
			entry:   entry,
			content: content,
			themes:  g.themes.ThemesCached(ctx, content, entry.ID),
		})
	}

	if len(data) == 0 {
		return "No valid entries found to analyze."
	}

	var sections []string
	sections = append(sections, g.header(data))
	sections = append(sections, timelineOverview(data))
	sections = append(sections, coreThemes(data))
	sections = append(sections, recurringPatterns(data))
	if rel := relationshipsMap(data); rel != "" {
		sections = append(sections, rel)
	}
	sections = append(sections, growthTrajectory(data))
	sections = append(sections, wisdomExtracted(data))
	sections = append(sections, timelineMoments(data))
	sections = append(sections, entryOverview(data))
	sections = append(sections, "---\n\n*This memory trace serves as a living document of your journey. Update it periodically to track your evolution.*")

	return strings.Join(sections, "\n\n")
}

func (g *Generator) header(data []entryData) string {
	start := data[0].entry.Date.Format("January 2006")
	end := data[len(data)-1].entry.Date.Format("January 2006")

	return fmt.Sprintf(`# Memory Trace
*Generated: %s*

A visualization of themes, patterns, and connections across your diary entries from %s to %s.

---`, g.now().Format(domain.DateLayout), start, end)
}

// topThemes returns themes by descending frequency, ties alphabetical.
func topThemes(data []entryData, limit int) []themeCount {
	counts := make(map[string]int)
	for _, d := range data {
		for _, theme := range d.themes {
			counts[theme]++
		}
	}

	out := make([]themeCount, 0, len(counts))
	for theme, count := range counts {
		out = append(out, themeCount{theme: theme, count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].theme < out[j].theme
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

type themeCount struct {
	theme string
	count int
}

func titleTheme(theme string) string {
	words := strings.Fields(strings.ReplaceAll(theme, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func themesLabel(themes domain.ThemeSet, max int, fallback string) string {
	if themes.IsEmpty() {
		return fallback
	}
	if len(themes) > max {
		themes = themes[:max]
	}
	return strings.Join(themes, " & ")
}
