package tokens

import (
	"context"
	"errors"
	"testing"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

type fixedTokenizer struct {
	perWord int
	err     error
}

func (f *fixedTokenizer) CountTokens(text string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	inWord := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n * f.perWord, nil
}

func TestEstimateHeuristic(t *testing.T) {
	e := NewEstimator(nil, logger.New("error"))
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"one word", "hello", 1},
		{"two words", "hello world", 3},     // 2.6 rounds to 3
		{"three words", "one two three", 4}, // 3.9 rounds to 4
		{"collapsed whitespace", "  a \t b\n c  ", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Estimate(ctx, tt.text)
			if got != tt.want {
				t.Errorf("Estimate(%q) = %d, want %d", tt.text, got, tt.want)
			}
			if got < 0 {
				t.Errorf("Estimate(%q) = %d, want >= 0", tt.text, got)
			}
		})
	}
}

func TestEstimatePreciseTokenizer(t *testing.T) {
	e := NewEstimator(&fixedTokenizer{perWord: 2}, logger.New("error"))
	got := e.Estimate(context.Background(), "hello world")
	if got != 4 {
		t.Errorf("Estimate() = %d, want 4 from tokenizer", got)
	}
}

func TestEstimateTokenizerFallback(t *testing.T) {
	e := NewEstimator(&fixedTokenizer{err: errors.New("model not loaded")}, logger.New("error"))
	got := e.Estimate(context.Background(), "hello world")
	if got != 3 {
		t.Errorf("Estimate() = %d, want 3 from heuristic fallback", got)
	}
}
