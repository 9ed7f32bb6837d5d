package trace

import (
	"fmt"
	"sort"
	"strings"

	"diaro/internal/domain"
)

// themeEmoji maps common theme keywords to timeline markers. Unknown
// themes fall back to a neutral dot.
var themeEmoji = map[string]string{
	"work":          "💼",
	"career":        "💼",
	"family":        "👨‍👩‍👧",
	"relationships": "💞",
	"love":          "💞",
	"health":        "🩺",
	"exercise":      "🏃",
	"fitness":       "🏃",
	"creativity":    "🎨",
	"writing":       "✍️",
	"music":         "🎵",
	"travel":        "✈️",
	"learning":      "📚",
	"reading":       "📚",
	"growth":        "🌱",
	"anxiety":       "🌧️",
	"stress":        "🌧️",
	"burnout":       "🔥",
	"gratitude":     "🙏",
	"friendship":    "🤝",
	"money":         "💰",
	"finances":      "💰",
	"sleep":         "😴",
	"food":          "🍽️",
	"nature":        "🌲",
	"reflection":    "💭",
	"goals":         "🎯",
	"planning":      "🎯",
}

func emojiFor(themes domain.ThemeSet) string {
	for _, theme := range themes {
		if e, ok := themeEmoji[theme]; ok {
			return e
		}
		for key, e := range themeEmoji {
			if strings.Contains(theme, key) {
				return e
			}
		}
	}
	return "•"
}

// timelineOverview lists every entry up to 10, then condenses to four
// waypoints (first, two midpoints, last) with gap counts between them.
func timelineOverview(data []entryData) string {
	var b strings.Builder
	b.WriteString("## 📅 Timeline Overview\n\n```\n")

	if len(data) <= 10 {
		for _, d := range data {
			writeTimelineLine(&b, d)
		}
	} else {
		indices := []int{0, len(data) / 3, 2 * len(data) / 3, len(data) - 1}
		for i, idx := range indices {
			writeTimelineLine(&b, data[idx])
			if i < len(indices)-1 {
				fmt.Fprintf(&b, "   ... %d entries ...\n", indices[i+1]-idx-1)
			}
		}
	}

	b.WriteString("```")
	return b.String()
}

func writeTimelineLine(b *strings.Builder, d entryData) {
	label := themesLabel(d.themes, 3, "quiet day")
	fmt.Fprintf(b, "%s %s %s\n", d.entry.Date.Format(domain.DateLayout), emojiFor(d.themes), label)
}

func coreThemes(data []entryData) string {
	top := topThemes(data, 8)

	var b strings.Builder
	b.WriteString("## 🧠 Core Themes & Evolution\n")
	for _, tc := range top {
		var appearances []entryData
		for _, d := range data {
			for _, theme := range d.themes {
				if theme == tc.theme {
					appearances = append(appearances, d)
					break
				}
			}
		}
		if len(appearances) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n### %s %s\n", emojiFor(domain.ThemeSet{tc.theme}), titleTheme(tc.theme))
		fmt.Fprintf(&b, "*Appeared in %d %s*\n\n", tc.count, pluralEntries(tc.count))

		first := appearances[0]
		fmt.Fprintf(&b, "- **First seen** %s: %s\n", first.entry.ID, domain.Snippet(first.content, 100))
		if len(appearances) > 1 {
			last := appearances[len(appearances)-1]
			fmt.Fprintf(&b, "- **Most recent** %s: %s\n", last.entry.ID, domain.Snippet(last.content, 100))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func pluralEntries(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

// recurringPatterns reports theme co-occurrence pairs and day-of-week habits.
func recurringPatterns(data []entryData) string {
	pairCounts := make(map[[2]string]int)
	for _, d := range data {
		themes := append(domain.ThemeSet(nil), d.themes...)
		sort.Strings(themes)
		for i := 0; i < len(themes); i++ {
			for j := i + 1; j < len(themes); j++ {
				pairCounts[[2]string{themes[i], themes[j]}]++
			}
		}
	}

	type pair struct {
		a, b  string
		count int
	}
	var pairs []pair
	for k, c := range pairCounts {
		if c >= 2 {
			pairs = append(pairs, pair{a: k[0], b: k[1], count: c})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})
	if len(pairs) > 5 {
		pairs = pairs[:5]
	}

	dayThemes := make(map[string]map[string]int)
	for _, d := range data {
		day := d.entry.Date.Weekday().String()
		if dayThemes[day] == nil {
			dayThemes[day] = make(map[string]int)
		}
		for _, theme := range d.themes {
			dayThemes[day][theme]++
		}
	}

	var b strings.Builder
	b.WriteString("## 🔄 Recurring Patterns\n")

	if len(pairs) > 0 {
		b.WriteString("\n**Themes that travel together:**\n")
		for _, p := range pairs {
			fmt.Fprintf(&b, "- *%s* + *%s* (%d times)\n", p.a, p.b, p.count)
		}
	}

	var dayLines []string
	for day, counts := range dayThemes {
		best, bestCount := "", 0
		for theme, c := range counts {
			if c > bestCount || (c == bestCount && theme < best) {
				best, bestCount = theme, c
			}
		}
		if bestCount >= 2 {
			dayLines = append(dayLines, fmt.Sprintf("- **%ss** tend toward *%s*", day, best))
		}
	}
	sort.Strings(dayLines)
	if len(dayLines) > 0 {
		b.WriteString("\n**Weekly rhythms:**\n")
		b.WriteString(strings.Join(dayLines, "\n"))
	}

	if len(pairs) == 0 && len(dayLines) == 0 {
		b.WriteString("\nNo strong recurring patterns yet; keep writing.")
	}
	return strings.TrimRight(b.String(), "\n")
}

// relationshipsMap surfaces capitalized names mentioned across entries.
// Returns "" when nothing qualifies.
func relationshipsMap(data []entryData) string {
	mentions := make(map[string]int)
	for _, d := range data {
		for _, name := range extractNames(d.content) {
			mentions[name]++
		}
	}

	type nameCount struct {
		name  string
		count int
	}
	var names []nameCount
	for name, count := range mentions {
		if count >= 2 {
			names = append(names, nameCount{name: name, count: count})
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i].count != names[j].count {
			return names[i].count > names[j].count
		}
		return names[i].name < names[j].name
	})
	if len(names) > 10 {
		names = names[:10]
	}

	var b strings.Builder
	b.WriteString("## 👥 Relationships Map\n\n")
	for _, nc := range names {
		fmt.Fprintf(&b, "- **%s**: mentioned %d times\n", nc.name, nc.count)
	}
	return strings.TrimRight(b.String(), "\n")
}

// commonCapitalized are sentence-initial words that look like names but
// never are.
var commonCapitalized = map[string]bool{
	"The": true, "This": true, "That": true, "These": true, "Those": true,
	"Today": true, "Yesterday": true, "Tomorrow": true, "Monday": true,
	"Tuesday": true, "Wednesday": true, "Thursday": true, "Friday": true,
	"Saturday": true, "Sunday": true, "January": true, "February": true,
	"March": true, "April": true, "May": true, "June": true, "July": true,
	"August": true, "September": true, "October": true, "November": true,
	"December": true, "I": true, "It": true, "When": true, "What": true,
	"Where": true, "Why": true, "How": true, "And": true, "But": true,
	"Then": true, "There": true, "After": true, "Before": true, "During": true,
	"Maybe": true, "Also": true, "Brain": true, "Dump": true, "Related": true,
	"Memory": true, "Links": true, "Temporal": true, "Topic": true,
	"Reflection": true, "Weekly": true, "If": true, "Not": true, "So": true,
	"My": true, "We": true, "He": true, "She": true, "They": true, "A": true,
	"An": true, "In": true, "On": true, "At": true, "For": true, "Even": true,
}

func extractNames(content string) []string {
	var names []string
	for _, field := range strings.Fields(content) {
		word := strings.Trim(field, ".,!?;:()\"'*#[]")
		if len(word) < 2 || len(word) > 20 {
			continue
		}
		first := rune(word[0])
		if first < 'A' || first > 'Z' {
			continue
		}
		if strings.ToLower(word[1:]) != word[1:] {
			continue
		}
		if commonCapitalized[word] {
			continue
		}
		names = append(names, word)
	}
	return names
}

// growthTrajectory compares the first and last thirds of the span.
func growthTrajectory(data []entryData) string {
	var b strings.Builder
	b.WriteString("## 🌱 Growth Trajectory\n\n")

	if len(data) < 3 {
		b.WriteString("Not enough entries yet to chart a trajectory.")
		return b.String()
	}

	third := len(data) / 3
	early := topThemes(data[:third+1], 3)
	late := topThemes(data[len(data)-third-1:], 3)

	b.WriteString("**Where you started:** ")
	b.WriteString(joinThemeCounts(early))
	b.WriteString("\n\n**Where you are now:** ")
	b.WriteString(joinThemeCounts(late))

	emerged := diffThemes(late, early)
	faded := diffThemes(early, late)
	if len(emerged) > 0 {
		fmt.Fprintf(&b, "\n\n**Emerging:** %s", strings.Join(emerged, ", "))
	}
	if len(faded) > 0 {
		fmt.Fprintf(&b, "\n\n**Receding:** %s", strings.Join(faded, ", "))
	}

	b.WriteString("\n\n```\n")
	segSize := len(data) / 5
	if segSize < 1 {
		segSize = 1
	}
	for i := 0; i < len(data); i += segSize {
		end := i + segSize
		if end > len(data) {
			end = len(data)
		}
		var sum float64
		for _, e := range data[i:end] {
			sum += sentimentScore(e.content)
		}
		fmt.Fprintf(&b, "%s  %s\n", data[i].entry.Date.Format("2006-01"), sentimentArrow(sum/float64(end-i)))
	}
	b.WriteString("```\n")
	b.WriteString("*Legend: ↗ lighter, → steady, ↘ heavier*")
	return b.String()
}

var positiveWords = []string{
	"great", "good", "excellent", "amazing", "wonderful", "love", "happy",
	"excited", "grateful", "proud", "success", "achieved", "progress",
	"better", "improved", "growth", "win",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "sad", "angry", "frustrated", "worried",
	"anxious", "stressed", "failed", "struggling", "difficult", "hard",
	"tired", "exhausted",
}

// sentimentScore counts which tone words appear at all, not how often.
// Returns the net share in [-1, 1].
func sentimentScore(content string) float64 {
	lower := strings.ToLower(content)
	var pos, neg int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

func sentimentArrow(score float64) string {
	switch {
	case score > 0.2:
		return "↗ ↗"
	case score > 0:
		return "↗"
	case score < -0.2:
		return "↘ ↘"
	case score < 0:
		return "↘"
	default:
		return "→"
	}
}

func joinThemeCounts(tcs []themeCount) string {
	if len(tcs) == 0 {
		return "no dominant themes"
	}
	parts := make([]string, len(tcs))
	for i, tc := range tcs {
		parts[i] = fmt.Sprintf("*%s*", tc.theme)
	}
	return strings.Join(parts, ", ")
}

func diffThemes(a, b []themeCount) []string {
	inB := make(map[string]bool, len(b))
	for _, tc := range b {
		inB[tc.theme] = true
	}
	var out []string
	for _, tc := range a {
		if !inB[tc.theme] {
			out = append(out, tc.theme)
		}
	}
	return out
}

// wisdomExtracted pulls reflective-sounding sentences from the corpus.
func wisdomExtracted(data []entryData) string {
	markers := []string{
		"i realized", "i learned", "i noticed", "i understand now",
		"it turns out", "the lesson", "what matters", "i keep coming back to",
	}

	type quote struct {
		id   string
		text string
	}
	var quotes []quote
	for _, d := range data {
		for _, line := range strings.Split(d.content, "\n") {
			sentence := strings.TrimSpace(strings.TrimLeft(line, "-*# "))
			if len(sentence) < 30 || len(sentence) > 200 {
				continue
			}
			lower := strings.ToLower(sentence)
			for _, m := range markers {
				if strings.Contains(lower, m) {
					quotes = append(quotes, quote{id: d.entry.ID, text: sentence})
					break
				}
			}
		}
	}
	if len(quotes) > 5 {
		quotes = quotes[len(quotes)-5:]
	}

	var b strings.Builder
	b.WriteString("## 💎 Wisdom Extracted\n\n")
	if len(quotes) == 0 {
		b.WriteString("No explicit realizations captured yet. They tend to show up in sentences starting with \"I realized\".")
		return b.String()
	}
	for _, q := range quotes {
		fmt.Fprintf(&b, "> %s\n> — %s\n\n", q.text, q.id)
	}
	return strings.TrimRight(b.String(), "\n")
}

// timelineMoments highlights the longest entries as significant moments.
func timelineMoments(data []entryData) string {
	type moment struct {
		d     entryData
		words int
	}
	moments := make([]moment, 0, len(data))
	for _, d := range data {
		moments = append(moments, moment{d: d, words: len(strings.Fields(d.content))})
	}
	sort.Slice(moments, func(i, j int) bool {
		if moments[i].words != moments[j].words {
			return moments[i].words > moments[j].words
		}
		return moments[i].d.entry.ID < moments[j].d.entry.ID
	})
	if len(moments) > 3 {
		moments = moments[:3]
	}
	sort.Slice(moments, func(i, j int) bool { return moments[i].d.entry.ID < moments[j].d.entry.ID })

	var b strings.Builder
	b.WriteString("## ⭐ Significant Moments\n\n")
	for _, m := range moments {
		label := themesLabel(m.d.themes, 2, "unthemed")
		fmt.Fprintf(&b, "- **%s** (%d words, %s): %s\n", m.d.entry.ID, m.words, label, domain.Snippet(m.d.content, 80))
	}
	return strings.TrimRight(b.String(), "\n")
}

func entryOverview(data []entryData) string {
	totalWords := 0
	themed := 0
	for _, d := range data {
		totalWords += len(strings.Fields(d.content))
		if !d.themes.IsEmpty() {
			themed++
		}
	}
	avg := 0
	if len(data) > 0 {
		avg = totalWords / len(data)
	}

	var b strings.Builder
	b.WriteString("## 📊 Entry Overview\n\n")
	fmt.Fprintf(&b, "- **Entries analyzed:** %d\n", len(data))
	fmt.Fprintf(&b, "- **Span:** %s to %s\n", data[0].entry.ID, data[len(data)-1].entry.ID)
	fmt.Fprintf(&b, "- **Total words:** %d (avg %d per entry)\n", totalWords, avg)
	fmt.Fprintf(&b, "- **Entries with extracted themes:** %d of %d\n\n", themed, len(data))

	recent := data
	if len(recent) > 15 {
		recent = recent[len(recent)-15:]
	}
	for _, d := range recent {
		fmt.Fprintf(&b, "- **%s**: %s\n", d.entry.ID, themesLabel(d.themes, 2, "general reflection"))
	}
	if len(data) > 15 {
		fmt.Fprintf(&b, "\n*...and %d earlier entries*\n", len(data)-15)
	}
	return strings.TrimRight(b.String(), "\n")
}
