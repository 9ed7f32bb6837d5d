package domain

import (
	"regexp"
	"strings"
)

// MaxThemes caps the number of themes per entry. Downstream similarity and
// tag generation assume a small bounded set.
const MaxThemes = 5

// ThemeSet is the collection of normalized theme tokens for one entry.
// Tokens are lowercase and deduplicated on comparison; the empty set is a
// valid value meaning "no extractable theme".
type ThemeSet []string

// IsEmpty reports whether the set contains no themes.
func (ts ThemeSet) IsEmpty() bool {
	return len(ts) == 0
}

func (ts ThemeSet) toMap() map[string]struct{} {
	m := make(map[string]struct{}, len(ts))
	for _, t := range ts {
		m[t] = struct{}{}
	}
	return m
}

// Jaccard returns the Jaccard index |A∩B| / |A∪B| between two theme sets.
// It is 0 when either set is empty.
func (ts ThemeSet) Jaccard(other ThemeSet) float64 {
	a, b := ts.toMap(), other.toMap()
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}

var (
	tagStripPattern    = regexp.MustCompile(`[^\w\s-]`)
	tagSpacePattern    = regexp.MustCompile(`\s+`)
	leakedSplitPattern = regexp.MustCompile(`[:\n•\-]`)
)

// TopicTags converts themes to Obsidian-compatible #kebab-case tags.
// Themes that look like leaked model prose ("key themes", "extracted from")
// are split apart and salvaged piecewise.
func (ts ThemeSet) TopicTags() []string {
	if len(ts) == 0 {
		return nil
	}

	var tags []string
	for _, theme := range ts {
		lower := strings.ToLower(theme)
		if strings.Contains(lower, "key themes") || strings.Contains(lower, "extracted from") {
			for _, part := range leakedSplitPattern.Split(theme, -1) {
				part = strings.TrimSpace(part)
				if part == "" || len(part) >= 50 || containsAny(strings.ToLower(part), "key themes", "extracted", "journal entry") {
					continue
				}
				if tag := toTag(part); tag != "" {
					tags = append(tags, tag)
				}
			}
			continue
		}
		if tag := toTag(theme); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

func toTag(theme string) string {
	clean := tagStripPattern.ReplaceAllString(strings.ToLower(theme), "")
	clean = tagSpacePattern.ReplaceAllString(strings.TrimSpace(clean), "-")
	clean = strings.ReplaceAll(clean, "/", "-")
	if clean == "" {
		return ""
	}
	return "#" + clean
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
