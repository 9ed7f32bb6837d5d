package claudecli

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"diaro/internal/ports"
)

// Ensure Generator implements the interface.
var _ ports.TextGenerator = (*Generator)(nil)

// Generator implements ports.TextGenerator using the Claude Code CLI.
// It is an offline-friendly alternative to Ollama for machines that have
// the claude binary but no local model server.
type Generator struct {
	model string
}

// Option configures the Generator
type Option func(*Generator)

// WithModel sets the Claude model to use
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// New creates a new Claude CLI generator
func New(opts ...Option) *Generator {
	g := &Generator{
		model: "haiku", // Default to haiku for speed
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// claudeResponse represents the JSON output from claude CLI
type claudeResponse struct {
	Type         string  `json:"type"`
	Subtype      string  `json:"subtype"`
	CostUSD      float64 `json:"cost_usd"`
	DurationMS   int     `json:"duration_ms"`
	DurationAPI  int     `json:"duration_api_ms"`
	IsError      bool    `json:"is_error"`
	NumTurns     int     `json:"num_turns"`
	Result       string  `json:"result"`
	SessionID    string  `json:"session_id"`
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// Generate runs one prompt through the claude CLI and returns the result text
func (g *Generator) Generate(ctx context.Context, prompt, system string) (string, error) {
	full := prompt
	if system != "" {
		full = system + "\n\n" + prompt
	}

	args := []string{
		"-p", full,
		"--output-format", "json",
		"--model", g.model,
	}

	cmd := exec.CommandContext(ctx, "claude", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("claude CLI error: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("claude CLI error: %w", err)
	}

	return decodeResult(output)
}

// decodeResult extracts the result text from the claude CLI JSON envelope
func decodeResult(output []byte) (string, error) {
	var response claudeResponse
	if err := json.Unmarshal(output, &response); err != nil {
		return "", fmt.Errorf("failed to parse claude response: %w", err)
	}

	if response.IsError {
		return "", fmt.Errorf("claude returned an error: %s", response.Result)
	}

	return strings.TrimSpace(response.Result), nil
}

// IsAvailable checks if the claude CLI is installed and accessible
func (g *Generator) IsAvailable() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}
