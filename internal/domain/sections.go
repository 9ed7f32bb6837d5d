package domain

import (
	"regexp"
	"strings"
)

// BrainDumpPlaceholder is the template line removed before analysis so it
// never counts as written content.
const BrainDumpPlaceholder = "*Your thoughts, experiences, and observations...*"

var (
	// Matches the Brain Dump header, tolerating an emoji or other decoration
	// between "##" and the label, up to but not including the next section.
	brainDumpPattern = regexp.MustCompile(`(?is)##[^\p{L}\d\n]*brain dump[ \t]*\n+(.*?)(\n##|\z)`)

	relatedEntriesPattern  = regexp.MustCompile(`(?s)(\n+---\n+)?\*\*Related entries:\*\*.*$`)
	memoryLinksBoldPattern = regexp.MustCompile(`(?s)(\n+---\n+)?\*\*Memory links:\*\*.*$`)
	memoryLinksPattern     = regexp.MustCompile(`(?s)(\n+---\n+)?##\s*🔗\s*Memory Links.*$`)
)

// ExtractBrainDump returns the free-writing Brain Dump section of an entry,
// stripped of the placeholder line. Returns "" when no such section exists.
func ExtractBrainDump(content string) string {
	m := brainDumpPattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	dump := strings.TrimSpace(m[1])
	dump = strings.ReplaceAll(dump, BrainDumpPlaceholder, "")
	return strings.TrimSpace(dump)
}

// StripMemoryLinks removes any previously appended backlink sections so that
// recomputing links never analyzes or duplicates old ones.
func StripMemoryLinks(content string) string {
	content = relatedEntriesPattern.ReplaceAllString(content, "")
	content = memoryLinksBoldPattern.ReplaceAllString(content, "")
	content = memoryLinksPattern.ReplaceAllString(content, "")
	return strings.TrimRight(content, " \t\n")
}

// AppendMemoryLinks rewrites the Memory Links section of an entry with the
// given backlinks and topic tags, replacing any existing section.
func AppendMemoryLinks(content string, related, tags []string) string {
	var b strings.Builder
	b.WriteString(StripMemoryLinks(content))
	b.WriteString("\n\n---\n\n## 🔗 Memory Links\n\n")

	if len(related) > 0 {
		b.WriteString("**Temporal connections:** ")
		b.WriteString(strings.Join(related, " • "))
		b.WriteString("\n\n")
	}
	if len(tags) > 0 {
		b.WriteString("**Topic tags:** ")
		b.WriteString(strings.Join(tags, " "))
		b.WriteString("\n\n")
	}

	if len(related) > 0 || len(tags) > 0 {
		b.WriteString("*Temporal connections and topic exploration available in Obsidian.*")
	} else {
		b.WriteString("*No connections found - this represents novel cognitive territory.*")
	}

	return b.String()
}

var (
	headerPattern   = regexp.MustCompile(`#+ `)
	wikiLinkPattern = regexp.MustCompile(`\[\[.*?\]\]`)
	boldLinePattern = regexp.MustCompile(`\*\*.*?\*\*:`)
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
)

// Snippet extracts the first substantial sentence from entry content,
// truncated to maxLen. Markdown headers, wiki links, and bold labels are
// removed first.
func Snippet(content string, maxLen int) string {
	clean := headerPattern.ReplaceAllString(content, "")
	clean = wikiLinkPattern.ReplaceAllString(clean, "")
	clean = boldLinePattern.ReplaceAllString(clean, "")

	for _, sentence := range sentenceSplit.Split(clean, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) >= 20 {
			if len(sentence) > maxLen {
				return sentence[:maxLen] + "..."
			}
			return sentence
		}
	}

	clean = strings.TrimSpace(clean)
	if len(clean) > maxLen {
		return clean[:maxLen] + "..."
	}
	if clean == "" {
		return "..."
	}
	return clean
}
