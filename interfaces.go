package bioflow

import "context"

// SearchResult is a single item returned by a SearchProvider.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
	// RawContent holds the full page text when the provider was asked to
	// include it. It may be empty.
	RawContent string
}

// SearchProvider executes a query and returns results.
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// LLMResponse is returned by LLMProvider.Generate and carries the generated
// text and the cost (in dollars) of the call. Reasoning holds thinking-model
// output when the backend separates it from the answer text.
type LLMResponse struct {
	Text      string
	Reasoning string
	Cost      float64
}

// LLMProvider is implemented by user-supplied language model clients.
type LLMProvider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (LLMResponse, error)
}

// Stage is one step of the research workflow. A stage reads fields already
// present in the session state and writes exactly one output field. Run
// returns the cost accumulated by the stage.
type Stage interface {
	Name() string
	OutputKey() string
	Run(ctx context.Context, sess *Session) (float64, error)
}

// Event is one item of a Runner's progress stream. A stage completion
// produces a non-final event carrying the stage output and its cost. The
// stream ends with exactly one final event: on success its Text is the
// reviewed summary, on failure Err is set.
type Event struct {
	Author string
	Text   string
	Cost   float64
	Err    error
	Final  bool
}

// Result is returned by Flow.ResearchPerson and carries the reviewed
// summary together with the total cost accumulated during the run.
type Result struct {
	Summary string
	Cost    float64
}
