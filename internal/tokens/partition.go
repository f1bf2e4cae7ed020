package tokens

import (
	"context"
	"strings"
)

// Partition splits text into chunks whose estimated token cost stays within
// maxTokens. Words are accumulated greedily against a running total; when the
// next word would push the total over the budget the current chunk is closed
// and the word opens a new one. Splitting never goes below word granularity,
// so a single word costing more than maxTokens still becomes its own chunk.
//
// Joining the chunks' words in order reconstructs the whitespace-normalized
// input exactly.
func (e *Estimator) Partition(ctx context.Context, text string, maxTokens int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	current := make([]string, 0, len(words))
	total := 0.0

	for _, word := range words {
		cost := e.wordCost(word)
		if len(current) > 0 && total+cost > float64(maxTokens) {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
		}
		current = append(current, word)
		total += cost
	}
	chunks = append(chunks, strings.Join(current, " "))

	return chunks
}
