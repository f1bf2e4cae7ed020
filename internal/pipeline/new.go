package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/meeting-scribe/internal/audio"
	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/diarize"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/merge"
	"github.com/nguyentantai21042004/meeting-scribe/internal/summarize"
	"github.com/nguyentantai21042004/meeting-scribe/internal/timeline"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcribe"
)

// converter is the subset of *audio.Converter the processor needs.
type converter interface {
	ToWAV(ctx context.Context, inputPath, outputPath string) error
	PlotWaveform(ctx context.Context, wavPath, outPath string) error
	WAVDuration(path string) (float64, error)
}

// splitter is satisfied by *audio.Splitter.
type splitter interface {
	Split(ctx context.Context, wavPath string, tl timeline.Timeline, outDir string) ([]audio.Chunk, timeline.Timeline, error)
}

type implProcessor struct {
	cfg         *config.Config
	converter   converter
	diarizer    diarize.Diarizer
	splitter    splitter
	transcriber transcribe.Transcriber
	merger      *merge.Merger
	summarizer  summarize.Summarizer
	logger      logger.Logger
	progress    ProgressFunc
}

// New creates a Processor. progress may be nil.
func New(
	cfg *config.Config,
	conv converter,
	diarizer diarize.Diarizer,
	split splitter,
	transcriber transcribe.Transcriber,
	merger *merge.Merger,
	summarizer summarize.Summarizer,
	log logger.Logger,
	progress ProgressFunc,
) Processor {
	if progress == nil {
		progress = func(Stage, float64) {}
	}
	return &implProcessor{
		cfg:         cfg,
		converter:   conv,
		diarizer:    diarizer,
		splitter:    split,
		transcriber: transcriber,
		merger:      merger,
		summarizer:  summarizer,
		logger:      log,
		progress:    progress,
	}
}
