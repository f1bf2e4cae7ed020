package diarize

import (
	"context"

	"github.com/nguyentantai21042004/meeting-scribe/internal/timeline"
)

// Diarizer partitions a recording into speaker turns. Implementations persist
// their own serialized annotation artifact into artifactDir.
type Diarizer interface {
	Diarize(ctx context.Context, audioPath, artifactDir string) (timeline.Timeline, error)
}
