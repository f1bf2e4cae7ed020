package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/youpy/go-wav"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/timeline"
)

const readBatch = 8192

// Chunk is one per-speaker-turn slice of the source recording. Index is the
// explicit ordinal contract between the splitter and the merger; the filename
// embeds it only for artifact readability.
type Chunk struct {
	Path    string
	Index   int
	Speaker string
	Start   float64
	End     float64
}

type Splitter struct {
	minSegment float64 // seconds; shorter timeline entries are dropped
	logger     logger.Logger
}

func NewSplitter(minSegment float64, log logger.Logger) *Splitter {
	return &Splitter{
		minSegment: minSegment,
		logger:     log,
	}
}

// Split cuts the mono WAV at wavPath into one chunk file per timeline entry,
// writing them into outDir. Entries shorter than the minimum segment length
// are dropped. It returns the chunks and the filtered timeline they were cut
// from, both in the same ordinal order.
func (s *Splitter) Split(ctx context.Context, wavPath string, tl timeline.Timeline, outDir string) ([]Chunk, timeline.Timeline, error) {
	samples, sampleRate, err := readMonoSamples(wavPath)
	if err != nil {
		return nil, nil, err
	}

	base := strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath))

	var chunks []Chunk
	var kept timeline.Timeline

	for _, seg := range tl {
		if seg.Duration() < s.minSegment {
			s.logger.Debug(ctx, "Dropping segment %.3fs-%.3fs (%s): below minimum duration", seg.Start, seg.End, seg.Speaker)
			continue
		}

		startIdx := int(seg.Start * float64(sampleRate))
		endIdx := int(seg.End * float64(sampleRate))
		if startIdx < 0 {
			startIdx = 0
		}
		if endIdx > len(samples) {
			endIdx = len(samples)
		}
		if startIdx >= endIdx {
			s.logger.Warn(ctx, "Segment %.3fs-%.3fs (%s) is outside the audio, skipping", seg.Start, seg.End, seg.Speaker)
			continue
		}

		idx := len(chunks)
		name := fmt.Sprintf("%s_speaker_%s_chunk_%d.wav", base, seg.Speaker, idx)
		chunkPath := filepath.Join(outDir, name)

		if err := writeMonoWAV(chunkPath, samples[startIdx:endIdx], sampleRate); err != nil {
			return nil, nil, fmt.Errorf("write chunk %d: %w", idx, err)
		}

		chunks = append(chunks, Chunk{
			Path:    chunkPath,
			Index:   idx,
			Speaker: seg.Speaker,
			Start:   seg.Start,
			End:     seg.End,
		})
		kept = append(kept, seg)
		s.logger.Debug(ctx, "Saved chunk %d for speaker %s: %s", idx, seg.Speaker, chunkPath)
	}

	s.logger.Info(ctx, "Split %s into %d chunks (%d segments dropped)", wavPath, len(chunks), len(tl)-len(chunks))
	return chunks, kept, nil
}

// readMonoSamples loads all samples of a mono WAV into memory. Diarization
// segments may overlap, so sequential streaming per segment is not an option.
func readMonoSamples(path string) ([]wav.Sample, uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	reader := wav.NewReader(f)
	format, err := reader.Format()
	if err != nil {
		return nil, 0, fmt.Errorf("wav format %s: %w", path, err)
	}
	if format.NumChannels != 1 {
		return nil, 0, fmt.Errorf("expected mono wav, got %d channels in %s", format.NumChannels, path)
	}

	var samples []wav.Sample
	for {
		batch, err := reader.ReadSamples(readBatch)
		if len(batch) > 0 {
			samples = append(samples, batch...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read samples %s: %w", path, err)
		}
	}

	return samples, format.SampleRate, nil
}

func writeMonoWAV(path string, samples []wav.Sample, sampleRate uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	defer f.Close()

	writer := wav.NewWriter(f, uint32(len(samples)), 1, sampleRate, 16)
	for start := 0; start < len(samples); start += readBatch {
		end := start + readBatch
		if end > len(samples) {
			end = len(samples)
		}
		if err := writer.WriteSamples(samples[start:end]); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
	}

	return nil
}
