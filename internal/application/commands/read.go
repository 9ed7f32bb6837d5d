package commands

import (
	"context"
	"fmt"
	"sort"
	"time"

	"diaro/internal/application"
	"diaro/internal/domain"
	"diaro/internal/ports"
)

// ReadEntryResult contains an entry's content
type ReadEntryResult struct {
	ID      string
	Path    string
	Content string
}

// ReadEntryCommand reads one entry
type ReadEntryCommand struct {
	store ports.EntryStore

	Date string
}

// NewReadEntryCommand creates a new ReadEntryCommand
func NewReadEntryCommand(store ports.EntryStore, date string) *ReadEntryCommand {
	return &ReadEntryCommand{store: store, Date: date}
}

// Validate checks if the read operation is valid
func (c *ReadEntryCommand) Validate() error {
	_, err := application.ValidateDate("date", c.Date)
	return err
}

// Execute runs the read entry command
func (c *ReadEntryCommand) Execute(ctx context.Context) (*ReadEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, err := c.store.Read(c.Date)
	if err != nil {
		return nil, &application.EntryError{ID: c.Date, Reason: application.ErrNotFound}
	}

	return &ReadEntryResult{ID: c.Date, Path: c.store.Path(c.Date), Content: content}, nil
}

// ListRecentResult contains the most recent entries, newest first
type ListRecentResult struct {
	Entries []domain.Entry
	Total   int
	Message string
}

// ListRecentCommand lists the most recent entries
type ListRecentCommand struct {
	store ports.EntryStore

	Count int
}

// NewListRecentCommand creates a new ListRecentCommand
func NewListRecentCommand(store ports.EntryStore, count int) *ListRecentCommand {
	return &ListRecentCommand{store: store, Count: count}
}

// Validate checks if the list operation is valid
func (c *ListRecentCommand) Validate() error {
	return application.ValidateRange("count", c.Count, 1, 100)
}

// Execute runs the list recent command
func (c *ListRecentCommand) Execute(ctx context.Context) (*ListRecentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	total := len(entries)
	if len(entries) > c.Count {
		entries = entries[:c.Count]
	}

	return &ListRecentResult{
		Entries: entries,
		Total:   total,
		Message: fmt.Sprintf("Showing %d of %d %s", len(entries), total, pluralize(total, "entry", "entries")),
	}, nil
}

// ShowThemesResult contains an entry's extracted themes
type ShowThemesResult struct {
	ID     string
	Themes domain.ThemeSet
	Tags   []string
}

// ShowThemesCommand extracts and reports the themes of one entry
type ShowThemesCommand struct {
	store    ports.EntryStore
	analyzer Analyzer

	Date string
}

// NewShowThemesCommand creates a new ShowThemesCommand
func NewShowThemesCommand(store ports.EntryStore, analyzer Analyzer, date string) *ShowThemesCommand {
	return &ShowThemesCommand{store: store, analyzer: analyzer, Date: date}
}

// Validate checks if the show themes operation is valid
func (c *ShowThemesCommand) Validate() error {
	if _, err := application.ValidateDate("date", c.Date); err != nil {
		return err
	}
	if !c.store.Exists(c.Date) {
		return &application.EntryError{ID: c.Date, Reason: application.ErrNotFound}
	}
	return nil
}

// Execute runs the show themes command
func (c *ShowThemesCommand) Execute(ctx context.Context) (*ShowThemesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, err := c.store.Read(c.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry: %w", err)
	}

	themes := c.analyzer.ThemesCached(ctx, content, c.Date)
	return &ShowThemesResult{ID: c.Date, Themes: themes, Tags: themes.TopicTags()}, nil
}

// ThemeFrequency is one theme's occurrence count across the analyzed window
type ThemeFrequency struct {
	Theme   string
	Count   int
	Percent int // of analyzed entries containing the theme
}

// ThemeFrequencyResult contains theme frequencies over recent entries
type ThemeFrequencyResult struct {
	Entries int
	Themes  []ThemeFrequency
	Message string
}

// ThemeFrequencyCommand counts how often each theme appears across the
// entries of the last N days
type ThemeFrequencyCommand struct {
	store    ports.EntryStore
	analyzer Analyzer

	Days int // 0 means the whole journal
}

// NewThemeFrequencyCommand creates a new ThemeFrequencyCommand
func NewThemeFrequencyCommand(store ports.EntryStore, analyzer Analyzer, days int) *ThemeFrequencyCommand {
	return &ThemeFrequencyCommand{store: store, analyzer: analyzer, Days: days}
}

// Validate checks if the theme frequency operation is valid
func (c *ThemeFrequencyCommand) Validate() error {
	if c.Days < 0 {
		return &application.ValidationError{Field: "days", Message: "must not be negative"}
	}
	return nil
}

const maxFrequencyThemes = 15

// Execute runs the theme frequency command
func (c *ThemeFrequencyCommand) Execute(ctx context.Context) (*ThemeFrequencyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	var cutoff time.Time
	if c.Days > 0 {
		cutoff = time.Now().AddDate(0, 0, -c.Days)
	}

	counts := make(map[string]int)
	analyzed := 0
	for _, entry := range entries {
		if c.Days > 0 && entry.Date.Before(cutoff) {
			continue
		}
		content, err := c.store.Read(entry.ID)
		if err != nil {
			continue
		}
		analyzed++
		for _, theme := range c.analyzer.ThemesCached(ctx, content, entry.ID) {
			counts[theme]++
		}
	}

	freqs := make([]ThemeFrequency, 0, len(counts))
	for theme, count := range counts {
		freqs = append(freqs, ThemeFrequency{
			Theme:   theme,
			Count:   count,
			Percent: count * 100 / analyzed,
		})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Theme < freqs[j].Theme
	})
	if len(freqs) > maxFrequencyThemes {
		freqs = freqs[:maxFrequencyThemes]
	}

	window := "all entries"
	if c.Days > 0 {
		window = fmt.Sprintf("last %d days", c.Days)
	}
	return &ThemeFrequencyResult{
		Entries: analyzed,
		Themes:  freqs,
		Message: fmt.Sprintf("%d distinct themes across %d entries (%s)", len(counts), analyzed, window),
	}, nil
}
