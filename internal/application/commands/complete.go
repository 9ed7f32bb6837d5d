package commands

import (
	"context"
	"fmt"

	"diaro/internal/application"
	"diaro/internal/domain"
	"diaro/internal/ports"
)

// CompleteEntryResult contains the result of completing an entry
type CompleteEntryResult struct {
	ID           string
	RelatedCount int
	Tags         []string
	Message      string
}

// CompleteEntryCommand analyzes a finished entry and appends its memory
// links section: temporal connections to related entries plus topic tags
type CompleteEntryCommand struct {
	store    ports.EntryStore
	analyzer Analyzer

	Date       string
	MaxRelated int
}

// NewCompleteEntryCommand creates a new CompleteEntryCommand
func NewCompleteEntryCommand(store ports.EntryStore, analyzer Analyzer, date string, maxRelated int) *CompleteEntryCommand {
	return &CompleteEntryCommand{
		store:      store,
		analyzer:   analyzer,
		Date:       date,
		MaxRelated: maxRelated,
	}
}

// Validate checks if the complete operation is valid
func (c *CompleteEntryCommand) Validate() error {
	if _, err := application.ValidateDate("date", c.Date); err != nil {
		return err
	}
	if !c.store.Exists(c.Date) {
		return &application.EntryError{ID: c.Date, Reason: application.ErrNotFound}
	}
	return nil
}

// Execute runs the complete entry command
func (c *CompleteEntryCommand) Execute(ctx context.Context) (*CompleteEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, err := c.store.Read(c.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry: %w", err)
	}

	related := c.analyzer.FindRelated(ctx, content, c.Date, c.MaxRelated)
	themes := c.analyzer.ThemesCached(ctx, content, c.Date)
	tags := themes.TopicTags()

	updated := domain.AppendMemoryLinks(content, related, tags)
	if err := c.store.Write(c.Date, updated); err != nil {
		return nil, fmt.Errorf("failed to write entry: %w", err)
	}

	message := fmt.Sprintf("Completed %s: %d related %s", c.Date, len(related), pluralize(len(related), "entry", "entries"))
	return &CompleteEntryResult{
		ID:           c.Date,
		RelatedCount: len(related),
		Tags:         tags,
		Message:      message,
	}, nil
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// RefreshResult describes one entry touched by a refresh
type RefreshResult struct {
	ID           string
	RelatedCount int
	Err          error
}

// RefreshRecentResult contains the result of refreshing recent entries
type RefreshRecentResult struct {
	Entries []RefreshResult
	Message string
}

// RefreshRecentCommand re-runs relatedness analysis over the most recent
// entries so their backlinks pick up entries written after them
type RefreshRecentCommand struct {
	store    ports.EntryStore
	analyzer Analyzer

	Count      int
	MaxRelated int
}

// NewRefreshRecentCommand creates a new RefreshRecentCommand
func NewRefreshRecentCommand(store ports.EntryStore, analyzer Analyzer, count, maxRelated int) *RefreshRecentCommand {
	return &RefreshRecentCommand{
		store:      store,
		analyzer:   analyzer,
		Count:      count,
		MaxRelated: maxRelated,
	}
}

// Validate checks if the refresh operation is valid
func (c *RefreshRecentCommand) Validate() error {
	return application.ValidateRange("count", c.Count, 1, 50)
}

// Execute runs the refresh recent command
func (c *RefreshRecentCommand) Execute(ctx context.Context) (*RefreshRecentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	if len(entries) > c.Count {
		entries = entries[:c.Count]
	}

	result := &RefreshRecentResult{}
	refreshed := 0
	for _, entry := range entries {
		content, err := c.store.Read(entry.ID)
		if err != nil {
			result.Entries = append(result.Entries, RefreshResult{ID: entry.ID, Err: err})
			continue
		}

		related := c.analyzer.FindRelated(ctx, content, entry.ID, c.MaxRelated)
		themes := c.analyzer.ThemesCached(ctx, content, entry.ID)

		updated := domain.AppendMemoryLinks(content, related, themes.TopicTags())
		if updated != content {
			if err := c.store.Write(entry.ID, updated); err != nil {
				result.Entries = append(result.Entries, RefreshResult{ID: entry.ID, Err: err})
				continue
			}
		}
		result.Entries = append(result.Entries, RefreshResult{ID: entry.ID, RelatedCount: len(related)})
		refreshed++
	}

	result.Message = fmt.Sprintf("Refreshed backlinks for %d of %d %s", refreshed, len(entries), pluralize(len(entries), "entry", "entries"))
	return result, nil
}
