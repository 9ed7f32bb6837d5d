package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diaro/internal/application/commands"
)

// RegisterReadTools adds all read-only journal tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(previewTemplateTool(), previewTemplateHandler(deps))
	s.AddTool(readEntryTool(), readEntryHandler(deps))
	s.AddTool(listRecentTool(), listRecentHandler(deps))
	s.AddTool(showThemesTool(), showThemesHandler(deps))
	s.AddTool(journalStatsTool(), journalStatsHandler(deps))
	s.AddTool(pingTool(), pingHandler(deps))
}

// --- preview_template ---

func previewTemplateTool() mcp.Tool {
	return mcp.NewTool("preview_template",
		mcp.WithDescription("Render the template a new entry would be created with, without writing anything. Reflection prompts are generated from recent entries."),
		mcp.WithString("date",
			mcp.Description("Entry date in YYYY-MM-DD format. Defaults to today."),
		),
		mcp.WithString("focus",
			mcp.Description("Optional topic to steer the reflection prompts toward."),
		),
	)
}

func previewTemplateHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", commands.Today())
		focus := req.GetString("focus", "")

		cmd := commands.NewPreviewTemplateCommand(deps.Template, date, focus)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// --- read_entry ---

func readEntryTool() mcp.Tool {
	return mcp.NewTool("read_entry",
		mcp.WithDescription("Read the full content of one journal entry."),
		mcp.WithString("date",
			mcp.Description("Entry date in YYYY-MM-DD format"),
			mcp.Required(),
		),
	)
}

func readEntryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", "")

		cmd := commands.NewReadEntryCommand(deps.Store, date)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// --- list_recent ---

func listRecentTool() mcp.Tool {
	return mcp.NewTool("list_recent",
		mcp.WithDescription("List the most recent journal entries, newest first."),
		mcp.WithNumber("count",
			mcp.Description("How many entries to list. Defaults to the configured recent window."),
		),
	)
}

func listRecentHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		count := req.GetInt("count", deps.RecentCount)

		cmd := commands.NewListRecentCommand(deps.Store, count)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Entries) == 0 {
			return mcp.NewToolResultText("No entries yet."), nil
		}

		var sb strings.Builder
		for _, entry := range result.Entries {
			fmt.Fprintf(&sb, "%s  %s\n", entry.ID, entry.Path)
		}
		fmt.Fprintf(&sb, "\n%s\n", result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- show_themes ---

func showThemesTool() mcp.Tool {
	return mcp.NewTool("show_themes",
		mcp.WithDescription("Show extracted themes. With a date, the themes of that entry; without one, theme frequencies across recent entries. Results are cached per content fingerprint."),
		mcp.WithString("date",
			mcp.Description("Entry date in YYYY-MM-DD format. Omit for a frequency report."),
		),
		mcp.WithNumber("days",
			mcp.Description("Window for the frequency report in days. Defaults to 30; 0 means the whole journal."),
		),
	)
}

func showThemesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", "")
		if date == "" {
			return themeFrequency(ctx, deps, req.GetInt("days", 30))
		}

		cmd := commands.NewShowThemesCommand(deps.Store, deps.Analyzer, date)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if result.Themes.IsEmpty() {
			return mcp.NewToolResultText(fmt.Sprintf("No themes extracted for %s.", date)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Themes for %s:\n", date)
		for _, theme := range result.Themes {
			fmt.Fprintf(&sb, "- %s\n", theme)
		}
		if len(result.Tags) > 0 {
			fmt.Fprintf(&sb, "\nTags: %s\n", strings.Join(result.Tags, " "))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func themeFrequency(ctx context.Context, deps Deps, days int) (*mcp.CallToolResult, error) {
	cmd := commands.NewThemeFrequencyCommand(deps.Store, deps.Analyzer, days)
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}

	if len(result.Themes) == 0 {
		return mcp.NewToolResultText("No themes extracted yet."), nil
	}

	var sb strings.Builder
	for _, f := range result.Themes {
		fmt.Fprintf(&sb, "- %s: %d (%d%%)\n", f.Theme, f.Count, f.Percent)
	}
	fmt.Fprintf(&sb, "\n%s\n", result.Message)
	return mcp.NewToolResultText(sb.String()), nil
}

// --- journal_stats ---

func journalStatsTool() mcp.Tool {
	return mcp.NewTool("journal_stats",
		mcp.WithDescription("Show journal-wide statistics from the index: entry count, link count, word counts, and date span."),
	)
}

func journalStatsHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if deps.Index == nil {
			return toolError(fmt.Errorf("journal index is not available"))
		}

		if _, err := commands.NewSyncIndexCommand(deps.Index, false).Execute(ctx); err != nil {
			return toolError(err)
		}
		result, err := commands.NewJournalStatsCommand(deps.Index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- ping ---

func pingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Check that the text generator is reachable."),
	)
}

func pingHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if deps.Pinger == nil {
			return mcp.NewToolResultText("Generator has no health endpoint; assuming available."), nil
		}
		if err := deps.Pinger.Ping(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Generator reachable (model %s).", deps.Pinger.ModelName())), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
