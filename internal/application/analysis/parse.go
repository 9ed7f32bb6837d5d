package analysis

import (
	"regexp"
	"strings"

	"diaro/internal/domain"
)

// Free-form model output is parsed heuristically: a garbled response
// degrades to fewer usable items, never to an error.

var (
	thinkBlockPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)
	thinkTagPattern   = regexp.MustCompile(`</?think>`)
	listMarkerPattern = regexp.MustCompile(`^[\d\-.\s]+`)
	bulletPattern     = regexp.MustCompile(`^[-*•\s]+`)
)

// parseThemes turns a comma-separated model response into a ThemeSet:
// trimmed, lowercased, empties dropped, capped at domain.MaxThemes.
func parseThemes(response string) domain.ThemeSet {
	var themes domain.ThemeSet
	for _, raw := range strings.Split(strings.TrimSpace(response), ",") {
		theme := strings.ToLower(strings.TrimSpace(raw))
		if theme == "" {
			continue
		}
		themes = append(themes, theme)
		if len(themes) == domain.MaxThemes {
			break
		}
	}
	return themes
}

var promptSkipMarkers = []string{
	"unresolved", "worth exploring", "here are", "**",
	"topics:", "questions:", "<think>", "</think>",
}

// parsePrompts extracts up to count questions from a numbered or dashed
// model response, discarding chain-of-thought blocks and commentary lines.
func parsePrompts(response string, count int) []string {
	response = thinkBlockPattern.ReplaceAllString(response, "")
	response = thinkTagPattern.ReplaceAllString(response, "")

	var prompts []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || containsAnyFold(line, promptSkipMarkers) {
			continue
		}
		if !isListLine(line) {
			continue
		}

		prompt := strings.TrimSpace(listMarkerPattern.ReplaceAllString(line, ""))
		// A real question, or at least a full sentence; drops stray fragments
		if prompt == "" || (!strings.HasSuffix(prompt, "?") && len(prompt) <= 20) {
			continue
		}

		prompts = append(prompts, prompt)
		if len(prompts) == count {
			break
		}
	}
	return prompts
}

func isListLine(line string) bool {
	for _, prefix := range []string{"1.", "2.", "3.", "4.", "5.", "-"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

var todoSkipMarkers = []string{"action items:", "tasks:", "todos:", "here are"}

// parseTodos extracts bulleted action items from a model response.
func parseTodos(response string) []string {
	if strings.Contains(strings.ToLower(response), "no action items") {
		return nil
	}

	var todos []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || containsAnyFold(line, todoSkipMarkers) {
			continue
		}
		if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "*") && !strings.HasPrefix(line, "•") {
			continue
		}

		todo := strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
		if len(todo) > 3 {
			todos = append(todos, todo)
		}
	}
	return todos
}

func containsAnyFold(line string, markers []string) bool {
	lower := strings.ToLower(line)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
