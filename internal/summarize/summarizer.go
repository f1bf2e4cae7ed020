// Package summarize turns a merged transcript into one coherent summary,
// chunking the transcript when it exceeds the model's token budget and
// reducing the partial summaries with a final combining call.
package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/tokens"
)

// transcriptPlaceholder is the substitution point in prompt templates.
const transcriptPlaceholder = "{{TRANSCRIPT}}"

const (
	continuationNote = "\n\nNote: this text is a continuation of a longer transcript. Summarize it so the result composes with the summaries of the preceding parts without repeating their context."
	combineNote      = "\n\nNote: the text above consists of partial summaries of one meeting. Produce a single concise synthesis of the whole meeting."
)

type implSummarizer struct {
	backend        Backend
	estimator      *tokens.Estimator
	logger         logger.Logger
	tokenLimit     int
	promptOverhead int
}

// New creates a chunked Summarizer. promptOverhead is reserved from
// tokenLimit to leave room for the prompt wrapper and the model's response.
func New(backend Backend, estimator *tokens.Estimator, log logger.Logger, tokenLimit, promptOverhead int) Summarizer {
	return &implSummarizer{
		backend:        backend,
		estimator:      estimator,
		logger:         log,
		tokenLimit:     tokenLimit,
		promptOverhead: promptOverhead,
	}
}

// Summarize substitutes the transcript into promptTemplate and calls the
// backend, partitioning first when the transcript exceeds the effective
// budget. Any backend failure aborts the summarization; there is no
// partial-summary fallback.
func (s *implSummarizer) Summarize(ctx context.Context, transcript, promptTemplate string) (string, error) {
	budget := s.tokenLimit - s.promptOverhead
	if budget <= 0 {
		return "", fmt.Errorf("token limit %d does not cover the prompt overhead %d", s.tokenLimit, s.promptOverhead)
	}

	estimated := s.estimator.Estimate(ctx, transcript)
	if estimated <= budget {
		return s.call(ctx, promptTemplate, transcript, "")
	}

	chunks := s.estimator.Partition(ctx, transcript, budget)
	s.logger.Info(ctx, "Transcript estimated at %d tokens (budget %d), summarizing in %d chunks", estimated, budget, len(chunks))

	if len(chunks) == 1 {
		return s.call(ctx, promptTemplate, chunks[0], "")
	}

	partials := make([]string, len(chunks))
	for i, chunk := range chunks {
		note := ""
		if i > 0 {
			note = continuationNote
		}
		partial, err := s.call(ctx, promptTemplate, chunk, note)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		partials[i] = partial
	}

	combined, err := s.call(ctx, promptTemplate, strings.Join(partials, "\n\n"), combineNote)
	if err != nil {
		return "", fmt.Errorf("combine partial summaries: %w", err)
	}
	return combined, nil
}

func (s *implSummarizer) call(ctx context.Context, promptTemplate, text, note string) (string, error) {
	prompt := strings.ReplaceAll(promptTemplate, transcriptPlaceholder, text) + note
	return s.backend.Complete(ctx, prompt)
}
