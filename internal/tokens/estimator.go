// Package tokens approximates model token costs and partitions text into
// budget-sized chunks for summarization calls.
package tokens

import (
	"context"
	"math"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

// wordTokenRatio is the heuristic cost of one whitespace-delimited word.
const wordTokenRatio = 1.3

// Tokenizer counts tokens exactly for a specific model family. When none is
// available the estimator falls back to the word-count heuristic.
type Tokenizer interface {
	CountTokens(text string) (int, error)
}

type Estimator struct {
	tokenizer Tokenizer
	logger    logger.Logger
}

// NewEstimator creates an Estimator. tokenizer may be nil, in which case only
// the heuristic strategy is used.
func NewEstimator(tokenizer Tokenizer, log logger.Logger) *Estimator {
	return &Estimator{
		tokenizer: tokenizer,
		logger:    log,
	}
}

// Estimate returns an approximate token count for text. The result is a soft
// target: callers must not treat it as an upper bound on the true cost.
func (e *Estimator) Estimate(ctx context.Context, text string) int {
	if e.tokenizer != nil {
		n, err := e.tokenizer.CountTokens(text)
		if err == nil {
			return n
		}
		e.logger.Warn(ctx, "Tokenizer failed, falling back to heuristic: %v", err)
	}
	return heuristicEstimate(text)
}

func heuristicEstimate(text string) int {
	words := len(strings.Fields(text))
	return int(math.Round(float64(words) * wordTokenRatio))
}

// wordCost returns the unrounded cost of a single word, used by the
// partitioner's running total.
func (e *Estimator) wordCost(word string) float64 {
	if e.tokenizer != nil {
		if n, err := e.tokenizer.CountTokens(word); err == nil {
			return float64(n)
		}
	}
	return wordTokenRatio
}
