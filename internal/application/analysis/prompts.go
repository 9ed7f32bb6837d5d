package analysis

import (
	"context"
	"fmt"
	"strings"
)

const reflectionSystemPrompt = "You are a thoughtful journaling coach who helps people explore their ideas deeper. " +
	"Generate questions based ONLY on what the person actually wrote - never assume feelings, concerns, or problems they didn't mention. " +
	"Ask questions that expand on their topics, curiosities, and observations. Be conversational and encouraging. " +
	"CRITICAL: Output ONLY numbered questions, no other text."

const reflectionPromptFormat = `Read through these journal entries and generate %d thoughtful reflection questions. Pay special attention to the MOST RECENT entry.%s%s

Journal entries (most recent first):
%s

Your task:
- Focus ONLY on what they actually wrote - do NOT make assumptions or infer feelings they didn't express
- Reference specific things they mentioned, not imagined concerns
- Identify concrete topics they discussed: ideas, observations, plans, questions
- Generate %d questions about DIFFERENT topics from their writing
- Write questions that EXPAND on what they said, not assume problems
- Use "you" and "your" - speak directly to them
- Base questions on their actual words and topics
- Each question should explore a different topic they mentioned

CRITICAL: Only ask about things they actually wrote about. Do not invent concerns or feelings.

Format as numbered questions ONLY (no commentary, no summaries, just questions):
%s`

// GenerateReflectionPrompts turns recent entry text into up to count
// open-ended questions. The full content is embedded un-truncated; the
// backend handles its own context. Failure returns nil and the caller
// supplies fallback prompts.
func (e *Engine) GenerateReflectionPrompts(ctx context.Context, recent, focus string, count int, weekly bool) []string {
	if len(strings.TrimSpace(recent)) < minAnalyzableLen {
		e.log.Warn("content too short for prompt generation")
		return nil
	}

	var focusInstruction string
	if focus != "" {
		focusInstruction = fmt.Sprintf("\n\nFocus specifically on %s for all questions.", focus)
	}

	var weeklyInstruction string
	if weekly {
		weeklyInstruction = "\n\nThis is a Sunday reflection - synthesize the past week and set intentions for the week ahead."
	}

	var skeleton strings.Builder
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&skeleton, "%d. [question]\n", i)
	}

	prompt := fmt.Sprintf(reflectionPromptFormat,
		count, focusInstruction, weeklyInstruction, recent, count, skeleton.String())

	response, err := e.gen.Generate(ctx, prompt, reflectionSystemPrompt)
	if err != nil {
		e.log.Error("prompt generation failed", "err", err)
		return nil
	}

	return parsePrompts(response, count)
}

const todoSystemPrompt = "You are a helpful assistant that extracts action items from journal entries. " +
	"Be thorough but focused on actionable tasks. Output ONLY a bulleted list of action items, nothing else."

const todoPromptFormat = `Analyze this journal entry and extract ALL action items, tasks, and todos mentioned.

Journal entry:
%s

Your task:
- Identify any tasks, action items, or things the person needs/wants to do
- Include both explicit todos ("I need to...", "I should...") and implicit ones (unfinished work, intentions, goals)
- Be specific and actionable
- Extract the person's own words where possible
- If there are no clear action items, return "No action items found"

Format as a simple bulleted list with one action per line:
- [Action item 1]
- [Action item 2]
- [Action item 3]

IMPORTANT: Only output the bulleted list, no other text or commentary.`

// ExtractTodos pulls action items out of entry content. Like theme
// extraction it prefers the Brain Dump section and absorbs all failures
// into an empty result.
func (e *Engine) ExtractTodos(ctx context.Context, content string) []string {
	if len(strings.TrimSpace(content)) < minAnalyzableLen {
		return nil
	}

	input := analysisContent(content)

	response, err := e.gen.Generate(ctx, fmt.Sprintf(todoPromptFormat, input), todoSystemPrompt)
	if err != nil {
		e.log.Error("todo extraction failed", "err", err)
		return nil
	}

	return parseTodos(response)
}
