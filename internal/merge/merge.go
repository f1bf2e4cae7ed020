// Package merge reconciles per-chunk transcriptions with the diarization
// timeline into a single ordered, speaker-labeled transcript.
package merge

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/timeline"
)

// MissingPlaceholder marks timeline entries whose chunk failed to transcribe.
const MissingPlaceholder = "[Transcription missing]"

// ChunkText is one chunk's transcription, carrying the explicit ordinal it
// was cut at.
type ChunkText struct {
	Index int
	Text  string
}

type Merger struct {
	logger logger.Logger
}

func NewMerger(log logger.Logger) *Merger {
	return &Merger{logger: log}
}

// Raw concatenates chunk transcriptions in ordinal order into one flat text
// blob, independent of diarization timing.
func (m *Merger) Raw(ctx context.Context, texts []ChunkText) string {
	ordered := make([]ChunkText, len(texts))
	copy(ordered, texts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})

	parts := make([]string, len(ordered))
	for i, t := range ordered {
		parts[i] = t.Text
	}
	return strings.Join(parts, "\n")
}

// Timestamped zips transcriptions against the timeline by position: the i-th
// timeline entry gets the i-th transcription, or the missing placeholder once
// transcriptions run out. Output lines follow timeline order, one per entry,
// regardless of how many transcriptions are available.
func (m *Merger) Timestamped(ctx context.Context, transcriptions []string, tl timeline.Timeline) string {
	if len(transcriptions) != len(tl) {
		m.logger.Warn(ctx, "Mismatch between the number of transcriptions (%d) and timeline entries (%d)",
			len(transcriptions), len(tl))
	}

	lines := make([]string, len(tl))
	for i, seg := range tl {
		text := MissingPlaceholder
		if i < len(transcriptions) {
			text = transcriptions[i]
		}
		lines[i] = fmt.Sprintf("[%.1fs - %.1fs] %s: %s", seg.Start, seg.End, seg.Speaker, text)
	}
	return strings.Join(lines, "\n")
}

// Persist writes a merged artifact to path.
func (m *Merger) Persist(ctx context.Context, path, merged string) error {
	if err := os.WriteFile(path, []byte(merged), 0644); err != nil {
		return fmt.Errorf("write merged output: %w", err)
	}
	m.logger.Info(ctx, "Merged output saved to %s", path)
	return nil
}
