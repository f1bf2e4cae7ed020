package audio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/youpy/go-wav"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/timeline"
)

const testSampleRate = 8000

// writeTestWAV creates a mono WAV of the given length in seconds.
func writeTestWAV(t *testing.T, dir string, seconds float64) string {
	t.Helper()

	n := int(seconds * testSampleRate)
	samples := make([]wav.Sample, n)
	for i := range samples {
		samples[i].Values[0] = i % 128
	}

	path := filepath.Join(dir, "recording.wav")
	if err := writeMonoWAV(path, samples, testSampleRate); err != nil {
		t.Fatalf("writeMonoWAV() error = %v", err)
	}
	return path
}

func TestSplit(t *testing.T) {
	dir := t.TempDir()
	wavPath := writeTestWAV(t, dir, 5.0)
	outDir := filepath.Join(dir, "chunks")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		t.Fatal(err)
	}

	tl := timeline.Timeline{
		{Start: 0, End: 2, Speaker: "SPEAKER_00"},
		{Start: 2, End: 4, Speaker: "SPEAKER_01"},
		{Start: 4, End: 5, Speaker: "SPEAKER_00"},
	}

	s := NewSplitter(0.1, logger.New("error"))
	chunks, kept, err := s.Split(context.Background(), wavPath, tl, outDir)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if len(kept) != 3 {
		t.Fatalf("got %d kept segments, want 3", len(kept))
	}

	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d has Index %d", i, c.Index)
		}
		if c.Speaker != tl[i].Speaker {
			t.Errorf("chunk %d speaker = %q, want %q", i, c.Speaker, tl[i].Speaker)
		}

		d, err := Duration(c.Path)
		if err != nil {
			t.Fatalf("Duration(%s) error = %v", c.Path, err)
		}
		want := tl[i].Duration()
		if d < want-0.01 || d > want+0.01 {
			t.Errorf("chunk %d duration = %.3f, want ~%.3f", i, d, want)
		}
	}
}

func TestSplitDropsShortSegments(t *testing.T) {
	dir := t.TempDir()
	wavPath := writeTestWAV(t, dir, 3.0)

	tl := timeline.Timeline{
		{Start: 0, End: 1, Speaker: "A"},
		{Start: 1, End: 1.05, Speaker: "B"}, // 50ms, below the 100ms minimum
		{Start: 1.05, End: 3, Speaker: "A"},
	}

	s := NewSplitter(0.1, logger.New("error"))
	chunks, kept, err := s.Split(context.Background(), wavPath, tl, dir)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2 after dropping the short segment", len(chunks))
	}
	if kept[1].Speaker != "A" || kept[1].Start != 1.05 {
		t.Errorf("kept[1] = %+v, want the segment after the dropped one", kept[1])
	}
	// Ordinals stay dense so the merger's index zip lines up with kept.
	if chunks[0].Index != 0 || chunks[1].Index != 1 {
		t.Errorf("chunk ordinals = %d,%d, want 0,1", chunks[0].Index, chunks[1].Index)
	}
}

func TestSplitOverlappingSegments(t *testing.T) {
	dir := t.TempDir()
	wavPath := writeTestWAV(t, dir, 4.0)

	tl := timeline.Timeline{
		{Start: 0, End: 3, Speaker: "A"},
		{Start: 2, End: 4, Speaker: "B"}, // overlaps the first turn
	}

	s := NewSplitter(0.1, logger.New("error"))
	chunks, _, err := s.Split(context.Background(), wavPath, tl, dir)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
}

func TestSplitSegmentBeyondAudio(t *testing.T) {
	dir := t.TempDir()
	wavPath := writeTestWAV(t, dir, 1.0)

	tl := timeline.Timeline{
		{Start: 0, End: 0.5, Speaker: "A"},
		{Start: 5, End: 6, Speaker: "B"}, // entirely past the end of the audio
	}

	s := NewSplitter(0.1, logger.New("error"))
	chunks, kept, err := s.Split(context.Background(), wavPath, tl, dir)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(chunks) != 1 || len(kept) != 1 {
		t.Fatalf("got %d chunks / %d kept, want 1 / 1", len(chunks), len(kept))
	}
}

func TestDuration(t *testing.T) {
	dir := t.TempDir()
	wavPath := writeTestWAV(t, dir, 2.0)

	d, err := Duration(wavPath)
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if d < 1.99 || d > 2.01 {
		t.Errorf("Duration() = %.3f, want ~2.0", d)
	}
}
