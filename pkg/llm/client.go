package llm

import "context"

// Backend is one text-generation strategy in the fallback chain.
type Backend interface {
	Name() string

	// Available reports whether the backend is configured (credential
	// present, endpoint known). Unavailable backends are skipped, not
	// treated as failures.
	Available() bool

	// Generate produces text for a prompt. An empty response counts as a
	// failure at the chain level.
	Generate(ctx context.Context, prompt string) (string, error)
}

// SourcedContent is one article body with its provenance, as handed to the
// summarizer.
type SourcedContent struct {
	Content string
	Source  string
	Title   string
}
