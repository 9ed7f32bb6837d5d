package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diaro/internal/application/commands"
)

// RegisterWriteTools adds all journal-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(createEntryTool(), createEntryHandler(deps))
	s.AddTool(completeEntryTool(), completeEntryHandler(deps))
	s.AddTool(updateBacklinksTool(), updateBacklinksHandler(deps))
	s.AddTool(refreshRecentTool(), refreshRecentHandler(deps))
	s.AddTool(memoryTraceTool(), memoryTraceHandler(deps))
	s.AddTool(extractTodosTool(), extractTodosHandler(deps))
}

// --- create_entry ---

func createEntryTool() mcp.Tool {
	return mcp.NewTool("create_entry",
		mcp.WithDescription("Create a new journal entry from a generated template with reflection prompts drawn from recent entries."),
		mcp.WithString("date",
			mcp.Description("Entry date in YYYY-MM-DD format. Defaults to today."),
		),
		mcp.WithString("focus",
			mcp.Description("Optional topic to steer the reflection prompts toward."),
		),
	)
}

func createEntryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", commands.Today())
		focus := req.GetString("focus", "")

		cmd := commands.NewCreateEntryCommand(deps.Store, deps.Template, date, focus)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\n%s", result.Message, result.Path)), nil
	}
}

// --- complete_entry ---

func completeEntryTool() mcp.Tool {
	return mcp.NewTool("complete_entry",
		mcp.WithDescription("Finalize an entry: extract its themes, link it to related entries by theme overlap, and append the Memory Links section."),
		mcp.WithString("date",
			mcp.Description("Entry date in YYYY-MM-DD format. Defaults to today."),
		),
	)
}

func completeEntryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", commands.Today())

		cmd := commands.NewCompleteEntryCommand(deps.Store, deps.Analyzer, date, deps.MaxRelated)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		if len(result.Tags) > 0 {
			fmt.Fprintf(&sb, "\nTags: %s", strings.Join(result.Tags, " "))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- update_backlinks ---

func updateBacklinksTool() mcp.Tool {
	return mcp.NewTool("update_backlinks",
		mcp.WithDescription("Recompute the Memory Links section of an existing entry so it picks up entries written after it."),
		mcp.WithString("date",
			mcp.Description("Entry date in YYYY-MM-DD format"),
			mcp.Required(),
		),
	)
}

func updateBacklinksHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", "")

		cmd := commands.NewCompleteEntryCommand(deps.Store, deps.Analyzer, date, deps.MaxRelated)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Updated backlinks for %s: %d related", result.ID, result.RelatedCount)), nil
	}
}

// --- refresh_recent ---

func refreshRecentTool() mcp.Tool {
	return mcp.NewTool("refresh_recent",
		mcp.WithDescription("Recompute backlinks for the most recent entries in one pass."),
		mcp.WithNumber("count",
			mcp.Description("How many recent entries to refresh. Defaults to the configured recent window."),
		),
	)
}

func refreshRecentHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		count := req.GetInt("count", deps.RecentCount)

		cmd := commands.NewRefreshRecentCommand(deps.Store, deps.Analyzer, count, deps.MaxRelated)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, r := range result.Entries {
			if r.Err != nil {
				fmt.Fprintf(&sb, "%s: error: %v\n", r.ID, r.Err)
				continue
			}
			fmt.Fprintf(&sb, "%s: %d related\n", r.ID, r.RelatedCount)
		}
		fmt.Fprintf(&sb, "\n%s\n", result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- memory_trace ---

func memoryTraceTool() mcp.Tool {
	return mcp.NewTool("memory_trace",
		mcp.WithDescription("Generate a memory trace: a longitudinal report of themes, patterns, relationships, and significant moments across entries."),
		mcp.WithNumber("days",
			mcp.Description("Only include entries from the last N days. 0 traces the whole journal."),
		),
		mcp.WithBoolean("save",
			mcp.Description("Also save the report as memory-trace.md in the journal directory."),
		),
	)
}

func memoryTraceHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		days := req.GetInt("days", 0)
		save := req.GetBool("save", false)

		cmd := commands.NewMemoryTraceCommand(deps.Store, deps.Tracer, days, save)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Report), nil
	}
}

// --- extract_todos ---

func extractTodosTool() mcp.Tool {
	return mcp.NewTool("extract_todos",
		mcp.WithDescription("Extract action items from an entry and append them as unchecked tasks to the planner file."),
		mcp.WithString("date",
			mcp.Description("Entry date in YYYY-MM-DD format. Defaults to today."),
		),
	)
}

func extractTodosHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", commands.Today())

		cmd := commands.NewExtractTodosCommand(deps.Store, deps.Analyzer, date, commands.PlannerFile(deps.PlannerDir, date))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Todos) == 0 {
			return mcp.NewToolResultText(result.Message), nil
		}

		var sb strings.Builder
		for _, todo := range result.Todos {
			fmt.Fprintf(&sb, "- [ ] %s\n", todo)
		}
		fmt.Fprintf(&sb, "\n%s\n", result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}
