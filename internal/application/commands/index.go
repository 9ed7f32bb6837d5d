package commands

import (
	"context"
	"fmt"
	"time"

	"diaro/internal/application"
	"diaro/internal/domain"
	"diaro/internal/ports"
)

// SyncIndexResult contains the result of syncing the journal index
type SyncIndexResult struct {
	Stats   *domain.SyncStats
	Full    bool
	Message string
}

// SyncIndexCommand refreshes the SQLite index from the journal directory
type SyncIndexCommand struct {
	index ports.JournalIndex

	Full bool
}

// NewSyncIndexCommand creates a new SyncIndexCommand
func NewSyncIndexCommand(index ports.JournalIndex, full bool) *SyncIndexCommand {
	return &SyncIndexCommand{index: index, Full: full}
}

// Execute runs the sync index command
func (c *SyncIndexCommand) Execute(ctx context.Context) (*SyncIndexResult, error) {
	full := c.Full || c.index.NeedsFullRebuild()

	var stats *domain.SyncStats
	var err error
	if full {
		stats, err = c.index.SyncFull()
	} else {
		stats, err = c.index.SyncIncremental()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sync index: %w", err)
	}

	mode := "incremental"
	if full {
		mode = "full"
	}
	return &SyncIndexResult{
		Stats: stats,
		Full:  full,
		Message: fmt.Sprintf("Synced index (%s): %d added, %d updated, %d deleted in %s",
			mode, stats.EntriesAdded, stats.EntriesUpdated, stats.EntriesDeleted, stats.Duration.Round(time.Millisecond)),
	}, nil
}

// JournalStatsResult contains summary statistics about the journal
type JournalStatsResult struct {
	Stats   *domain.IndexStats
	Message string
}

// JournalStatsCommand reports journal-wide statistics from the index
type JournalStatsCommand struct {
	index ports.JournalIndex
}

// NewJournalStatsCommand creates a new JournalStatsCommand
func NewJournalStatsCommand(index ports.JournalIndex) *JournalStatsCommand {
	return &JournalStatsCommand{index: index}
}

// Execute runs the journal stats command
func (c *JournalStatsCommand) Execute(ctx context.Context) (*JournalStatsResult, error) {
	stats, err := c.index.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	return &JournalStatsResult{
		Stats: stats,
		Message: fmt.Sprintf("%d entries, %d links, %d words (%s to %s)",
			stats.EntryCount, stats.LinkCount, stats.TotalWords, stats.FirstEntry, stats.LastEntry),
	}, nil
}

// EntryLinksResult contains the link graph neighborhood of one entry
type EntryLinksResult struct {
	ID       string
	Outgoing []domain.Link
	Incoming []domain.Link
}

// EntryLinksCommand reports which entries link to and from a given entry
type EntryLinksCommand struct {
	index ports.JournalIndex

	Date string
}

// NewEntryLinksCommand creates a new EntryLinksCommand
func NewEntryLinksCommand(index ports.JournalIndex, date string) *EntryLinksCommand {
	return &EntryLinksCommand{index: index, Date: date}
}

// Validate checks if the links operation is valid
func (c *EntryLinksCommand) Validate() error {
	_, err := application.ValidateDate("date", c.Date)
	return err
}

// Execute runs the entry links command
func (c *EntryLinksCommand) Execute(ctx context.Context) (*EntryLinksResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	outgoing, err := c.index.LinksFrom(c.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to read outgoing links: %w", err)
	}
	incoming, err := c.index.LinksTo(c.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to read incoming links: %w", err)
	}

	return &EntryLinksResult{ID: c.Date, Outgoing: outgoing, Incoming: incoming}, nil
}
