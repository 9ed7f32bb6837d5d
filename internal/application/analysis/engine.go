package analysis

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"diaro/internal/domain"
	"diaro/internal/logging"
	"diaro/internal/ports"
)

const (
	// SimilarityThreshold is the minimum Jaccard index for a backlink
	// candidate. Candidates at or below it are dropped.
	SimilarityThreshold = 0.08

	// DefaultMaxRelated caps the backlinks returned by FindRelated.
	DefaultMaxRelated = 6

	// minAnalyzableLen is the shortest content worth a generation call.
	minAnalyzableLen = 20

	// minBrainDumpLen is the threshold above which the Brain Dump section
	// replaces the full entry as analysis input.
	minBrainDumpLen = 50
)

const (
	themeSystemPrompt = "You are an expert at identifying key themes in personal writing. Extract the most meaningful concepts."

	themePromptFormat = `Analyze this journal entry and extract 3-5 key themes or topics.

Entry content: %s

Return ONLY the themes as a simple comma-separated list with no other text:
friendship, work-stress, creativity`
)

// Engine performs theme extraction, caching, and relatedness analysis over
// a journal corpus. Construct one per process and share it: the theme cache
// it owns is what bounds the number of generation calls.
type Engine struct {
	store ports.EntryStore
	gen   ports.TextGenerator
	log   *log.Logger

	mu         sync.Mutex
	themeCache map[string]domain.ThemeSet
}

// NewEngine creates an analysis engine over the given store and generator.
func NewEngine(store ports.EntryStore, gen ports.TextGenerator) *Engine {
	return &Engine{
		store:      store,
		gen:        gen,
		log:        logging.New("analysis"),
		themeCache: make(map[string]domain.ThemeSet),
	}
}

// analysisContent selects the text worth sending to the generator: the
// Brain Dump section when it holds substantial free writing, otherwise the
// full entry minus any previously appended backlink section.
func analysisContent(content string) string {
	if dump := domain.ExtractBrainDump(content); len(dump) > minBrainDumpLen {
		return dump
	}
	return domain.StripMemoryLinks(content)
}

// ExtractThemes derives a theme set from entry content. Extraction is
// best-effort: any generator failure yields an empty set, never an error.
func (e *Engine) ExtractThemes(ctx context.Context, content string) domain.ThemeSet {
	input := analysisContent(content)
	if len(strings.TrimSpace(input)) < minAnalyzableLen {
		return nil
	}

	response, err := e.gen.Generate(ctx, fmt.Sprintf(themePromptFormat, input), themeSystemPrompt)
	if err != nil {
		e.log.Error("theme extraction failed", "err", err)
		return nil
	}

	return parseThemes(response)
}

// fingerprint identifies one (entry, content-state) pair. Content edits
// change the fingerprint, so stale cache entries are never served.
func fingerprint(id, content string) string {
	h := fnv.New64a()
	h.Write([]byte(content))
	return fmt.Sprintf("%s_%d_%x", id, len(content), h.Sum64())
}

// ThemesCached returns the theme set for content, extracting at most once
// per distinct fingerprint for the lifetime of the engine. Empty results
// are cached too: "nothing extractable" is an answer, not a retry signal.
func (e *Engine) ThemesCached(ctx context.Context, content, id string) domain.ThemeSet {
	key := fingerprint(id, content)

	e.mu.Lock()
	if themes, ok := e.themeCache[key]; ok {
		e.mu.Unlock()
		return themes
	}
	e.mu.Unlock()

	themes := e.ExtractThemes(ctx, content)

	e.mu.Lock()
	e.themeCache[key] = themes
	e.mu.Unlock()

	return themes
}

// FindRelated scans the corpus for entries thematically similar to the
// given content and returns ranked backlinks, excluding excludeID. Read
// failures on individual entries skip that candidate; no error escapes.
func (e *Engine) FindRelated(ctx context.Context, content, excludeID string, max int) []string {
	if max <= 0 {
		max = DefaultMaxRelated
	}

	cacheKey := excludeID
	if cacheKey == "" {
		cacheKey = "current"
	}
	current := e.ThemesCached(ctx, content, cacheKey)
	if current.IsEmpty() {
		e.log.Info("no themes extracted for current entry")
		return nil
	}

	entries, err := e.store.ListAll()
	if err != nil {
		e.log.Error("listing entries failed", "err", err)
		return nil
	}

	e.log.Info("finding related entries", "themes", strings.Join(current, ", "), "corpus", len(entries))

	type candidate struct {
		id    string
		score float64
	}
	var candidates []candidate

	for _, entry := range entries {
		if entry.ID == excludeID {
			continue
		}

		entryContent, err := e.store.Read(entry.ID)
		if err != nil {
			e.log.Debug("skipping unreadable entry", "id", entry.ID, "err", err)
			continue
		}

		themes := e.ThemesCached(ctx, entryContent, entry.ID)
		if themes.IsEmpty() {
			continue
		}

		score := current.Jaccard(themes)
		if score > SimilarityThreshold {
			candidates = append(candidates, candidate{id: entry.ID, score: score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].id > candidates[j].id
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}

	backlinks := make([]string, 0, len(candidates))
	for _, c := range candidates {
		backlinks = append(backlinks, domain.Backlink(c.id))
	}

	if len(backlinks) > 0 {
		e.log.Info("found connections", "count", len(backlinks))
	} else {
		e.log.Info("no connections above similarity threshold")
	}

	return backlinks
}

// CacheSize reports the number of cached fingerprints.
func (e *Engine) CacheSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.themeCache)
}
