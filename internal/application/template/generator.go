package template

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"diaro/internal/domain"
	"diaro/internal/logging"
	"diaro/internal/ports"
)

const (
	dailyPromptCount  = 3
	weeklyPromptCount = 5
)

// PromptSource produces reflection questions from recent entry text.
// *analysis.Engine satisfies it.
type PromptSource interface {
	GenerateReflectionPrompts(ctx context.Context, recent, focus string, count int, weekly bool) []string
}

// Generator builds entry templates seeded with AI-generated reflection
// prompts from recent entries.
type Generator struct {
	store       ports.EntryStore
	prompts     PromptSource
	recentCount int
	log         *log.Logger
}

// New creates a template generator. recentCount is how many recent entries
// feed the prompt context on regular days.
func New(store ports.EntryStore, prompts PromptSource, recentCount int) *Generator {
	return &Generator{
		store:       store,
		prompts:     prompts,
		recentCount: recentCount,
		log:         logging.New("template"),
	}
}

// Content generates the template for an entry on the given date. Sundays
// get a weekly synthesis built from the past 7 calendar days; other days
// use the most recent entries.
func (g *Generator) Content(ctx context.Context, entryDate time.Time, focus string) (string, error) {
	weekly := domain.IsWeekly(entryDate)

	recent, err := g.recentEntries(entryDate, weekly)
	if err != nil {
		return "", fmt.Errorf("collecting recent entries: %w", err)
	}

	recentText := g.buildContext(recent)
	g.log.Info("template context", "entries", len(recent), "chars", len(recentText), "weekly", weekly)

	count := dailyPromptCount
	if weekly {
		count = weeklyPromptCount
	}

	prompts := g.prompts.GenerateReflectionPrompts(ctx, recentText, focus, count, weekly)
	if len(prompts) == 0 {
		g.log.Warn("no generated prompts, using fallbacks")
		prompts = fallbackPrompts(weekly)
	}

	return build(prompts, weekly), nil
}

// recentEntries picks the context window: the past 7 calendar days for a
// weekly entry, the last N entries otherwise.
func (g *Generator) recentEntries(entryDate time.Time, weekly bool) ([]domain.Entry, error) {
	all, err := g.store.ListAll()
	if err != nil {
		return nil, err
	}

	if weekly {
		weekStart := entryDate.AddDate(0, 0, -7)
		var window []domain.Entry
		for _, e := range all {
			if !e.Date.Before(weekStart) && e.Date.Before(entryDate) {
				window = append(window, e)
			}
		}
		return window, nil
	}

	if len(all) > g.recentCount {
		all = all[:g.recentCount]
	}
	return all, nil
}

// buildContext weights recency: the newest entry is labelled so the model
// pays most attention to it.
func (g *Generator) buildContext(entries []domain.Entry) string {
	var parts []string
	for i, entry := range entries {
		content, err := g.store.Read(entry.ID)
		if err != nil {
			g.log.Debug("skipping unreadable entry", "id", entry.ID, "err", err)
			continue
		}
		if i == 0 {
			parts = append(parts, fmt.Sprintf("## MOST RECENT ENTRY (%s):\n%s", entry.ID, content))
		} else {
			parts = append(parts, fmt.Sprintf("## Earlier entry (%s):\n%s", entry.ID, content))
		}
	}
	return strings.Join(parts, "\n\n")
}

func fallbackPrompts(weekly bool) []string {
	if weekly {
		return []string{
			"What went well this week, and what felt hard?",
			"What choices did you make that you want to remember?",
			"What do you want to do differently next week?",
			"What's one thing you learned about yourself?",
			"What are you looking forward to or worried about?",
		}
	}
	return []string{
		"What's on your mind right now?",
		"What choices are you thinking about?",
		"What felt good or difficult today?",
	}
}

// build assembles the entry skeleton around the prompts.
func build(prompts []string, weekly bool) string {
	var b strings.Builder

	if weekly {
		b.WriteString("## 🌅 Weekly Synthesis & Alignment\n")
		b.WriteString("\n*A deeper reflection on the past week and intentional focus for the week ahead*\n\n")
	} else {
		b.WriteString("## 🧠 Reflection Prompts\n")
		b.WriteString("\n*Building on insights from previous entries*\n\n")
	}

	for i, prompt := range prompts {
		fmt.Fprintf(&b, "**%d. %s**\n\n\n", i+1, prompt)
	}

	b.WriteString("---\n\n## 🧠 Brain Dump\n\n")
	b.WriteString(domain.BrainDumpPlaceholder)

	return b.String()
}
