package tokens

import (
	"context"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

func TestPartitionGreedy(t *testing.T) {
	e := NewEstimator(nil, logger.New("error"))
	ctx := context.Background()

	// Two words cost ~2.6 which fits in 3; the third word would push the
	// running total to ~3.9 and closes the chunk.
	got := e.Partition(ctx, "a b c d e", 3)
	want := []string{"a b", "c", "d", "e"}

	if len(got) != len(want) {
		t.Fatalf("Partition() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPartitionEmpty(t *testing.T) {
	e := NewEstimator(nil, logger.New("error"))
	if got := e.Partition(context.Background(), "", 10); got != nil {
		t.Errorf("Partition(\"\") = %v, want nil", got)
	}
	if got := e.Partition(context.Background(), "   \n\t ", 10); got != nil {
		t.Errorf("Partition(whitespace) = %v, want nil", got)
	}
}

func TestPartitionOversizedWord(t *testing.T) {
	e := NewEstimator(&fixedTokenizer{perWord: 50}, logger.New("error"))
	got := e.Partition(context.Background(), "supercalifragilistic", 10)
	if len(got) != 1 || got[0] != "supercalifragilistic" {
		t.Errorf("Partition() = %v, want the oversized word alone in one chunk", got)
	}
}

func TestPartitionRoundTrip(t *testing.T) {
	e := NewEstimator(nil, logger.New("error"))
	ctx := context.Background()

	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"one",
		"alpha   beta\tgamma\ndelta epsilon",
	}
	limits := []int{1, 2, 3, 5, 100}

	for _, text := range texts {
		normalized := strings.Join(strings.Fields(text), " ")
		for _, limit := range limits {
			chunks := e.Partition(ctx, text, limit)
			joined := strings.Join(chunks, " ")
			if joined != normalized {
				t.Errorf("Partition(%q, %d) round trip = %q, want %q", text, limit, joined, normalized)
			}
		}
	}
}
