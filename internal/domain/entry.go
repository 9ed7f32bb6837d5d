package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format that keys every journal entry.
const DateLayout = "2006-01-02"

// Entry represents one diary document, identified by its calendar date.
type Entry struct {
	Date time.Time
	ID   string // date formatted as YYYY-MM-DD, also the file stem
	Path string // absolute path to the markdown file
}

// ParseEntryDate parses a YYYY-MM-DD identifier into a date.
func ParseEntryDate(id string) (time.Time, error) {
	date, err := time.Parse(DateLayout, id)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid entry date %q: expected YYYY-MM-DD", id)
	}
	return date, nil
}

// EntryID formats a date as the canonical entry identifier.
func EntryID(date time.Time) string {
	return date.Format(DateLayout)
}

// Backlink formats an entry identifier as an Obsidian wiki link.
func Backlink(id string) string {
	return "[[" + id + "]]"
}

// IsWeekly reports whether an entry date calls for the weekly synthesis
// template (Sundays).
func IsWeekly(date time.Time) bool {
	return date.Weekday() == time.Sunday
}
