package ports

import "context"

// TextGenerator defines the interface for the text-generation backend.
// Implementations are fallible and may block on network or subprocess I/O;
// cancellation and timeouts propagate through the context.
type TextGenerator interface {
	// Generate sends a prompt with a system framing and returns the
	// generated text.
	Generate(ctx context.Context, prompt, system string) (string, error)
}
