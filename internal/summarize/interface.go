package summarize

import "context"

// Summarizer produces one natural-language summary of a merged transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, promptTemplate string) (string, error)
}

// Backend is a single summarization model call.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
