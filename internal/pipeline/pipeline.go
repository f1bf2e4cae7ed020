// Package pipeline drives one recording end to end: convert, diarize, split,
// transcribe, merge, summarize, plot, and move to the processed directory.
// Failures are contained per file; the batch loop continues with the next one.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-scribe/internal/merge"
	"github.com/nguyentantai21042004/meeting-scribe/internal/summarize"
	"github.com/nguyentantai21042004/meeting-scribe/internal/timeline"
	"github.com/nguyentantai21042004/meeting-scribe/internal/workspace"
)

// Process runs the full stage machine for one file. The temp workspace is
// removed on every exit path; the source file moves to the processed
// directory only after every stage succeeded, which is the durable marker
// that the file is done.
func (p *implProcessor) Process(ctx context.Context, job Job) (*Result, error) {
	res := &Result{StageDurations: make(map[Stage]time.Duration)}

	p.logger.Info(ctx, "Processing file: %s", job.AudioPath)

	name := workspace.SanitizeName(job.RecordingName)
	ws, err := workspace.Create(p.cfg.Paths.Output, p.cfg.Paths.Temp, job.RecordingDate, name)
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	defer ws.Cleanup(ctx, p.logger)

	base := strings.TrimSuffix(filepath.Base(job.AudioPath), filepath.Ext(job.AudioPath))
	wavPath := filepath.Join(ws.TempWAV, base+".wav")

	// Converting
	p.progress(StageConverting, 0.05)
	err = p.timed(res, StageConverting, func() error {
		return p.converter.ToWAV(ctx, job.AudioPath, wavPath)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: convert audio: %w", ErrExternalTool, err)
	}

	// Diarizing
	p.progress(StageDiarizing, 0.15)
	var tl timelineResult
	err = p.timed(res, StageDiarizing, func() error {
		t, derr := p.diarizer.Diarize(ctx, wavPath, ws.Diarizations)
		tl.full = t
		return derr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: diarization: %w", ErrBackend, err)
	}
	if len(tl.full) == 0 {
		return nil, fmt.Errorf("%w: diarization produced no speaker turns for %s", ErrBackend, job.AudioPath)
	}

	// Splitting
	p.progress(StageSplitting, 0.3)
	var chunks []chunkRef
	err = p.timed(res, StageSplitting, func() error {
		cs, kept, serr := p.splitter.Split(ctx, wavPath, tl.full, ws.TempChunks)
		if serr != nil {
			return serr
		}
		for _, c := range cs {
			chunks = append(chunks, chunkRef{path: c.Path, index: c.Index})
		}
		tl.kept = kept
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("split audio: %w", err)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no audio chunks produced for %s", job.AudioPath)
	}

	// Transcribing: per-chunk failures are tolerated; the chunk simply
	// contributes no transcription and the merger fills the gap.
	p.progress(StageTranscribing, 0.4)
	var transcriptions []string
	var chunkTexts []merge.ChunkText
	err = p.timed(res, StageTranscribing, func() error {
		for i, c := range chunks {
			text, terr := p.transcriber.Transcribe(ctx, c.path)
			if terr != nil {
				p.logger.Warn(ctx, "Transcription failed for chunk %d (%s): %v", c.index, c.path, terr)
				continue
			}

			txtPath := filepath.Join(ws.TempTranscriptions,
				strings.TrimSuffix(filepath.Base(c.path), ".wav")+"_transcription.txt")
			if werr := os.WriteFile(txtPath, []byte(text), 0644); werr != nil {
				return fmt.Errorf("write chunk transcription: %w", werr)
			}

			transcriptions = append(transcriptions, text)
			chunkTexts = append(chunkTexts, merge.ChunkText{Index: c.index, Text: text})
			p.progress(StageTranscribing, 0.4+0.3*float64(i+1)/float64(len(chunks)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(transcriptions) != len(chunks) {
		p.logger.Warn(ctx, "Mismatch between the number of transcriptions (%d) and chunk files (%d)",
			len(transcriptions), len(chunks))
	}

	// Merging: raw concatenation first, then the timestamped merge against
	// the timeline the chunks were cut from.
	p.progress(StageMerging, 0.7)
	var merged string
	err = p.timed(res, StageMerging, func() error {
		raw := p.merger.Raw(ctx, chunkTexts)
		rawPath := filepath.Join(ws.Transcriptions, base+"_transcription.txt")
		if perr := p.merger.Persist(ctx, rawPath, raw); perr != nil {
			return perr
		}

		merged = p.merger.Timestamped(ctx, transcriptions, tl.kept)
		res.MergedPath = filepath.Join(ws.MergedOutput, base+"_merged_output.txt")
		return p.merger.Persist(ctx, res.MergedPath, merged)
	})
	if err != nil {
		return nil, fmt.Errorf("merge transcriptions: %w", err)
	}

	// Summarizing
	p.progress(StageSummarizing, 0.8)
	err = p.timed(res, StageSummarizing, func() error {
		summary, serr := p.summarizer.Summarize(ctx, merged, job.PromptTemplate)
		if serr != nil {
			return serr
		}

		res.SummaryPath = filepath.Join(ws.Summary, base+"_summary.md")
		if werr := os.WriteFile(res.SummaryPath, []byte(summary), 0644); werr != nil {
			return fmt.Errorf("write summary: %w", werr)
		}
		p.logger.Info(ctx, "Summary saved to %s", res.SummaryPath)

		if p.cfg.Summary.ExportDocx {
			docxPath := filepath.Join(ws.Summary, base+"_summary.docx")
			if derr := summarize.WriteDocx(job.RecordingName, summary, docxPath); derr != nil {
				p.logger.Warn(ctx, "Docx export failed for %s: %v", base, derr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: summarization: %w", ErrBackend, err)
	}

	// Plotting: best-effort, never fails the file.
	p.progress(StagePlotting, 0.9)
	_ = p.timed(res, StagePlotting, func() error {
		figurePath := filepath.Join(ws.Figures, base+"_waveform.png")
		if perr := p.converter.PlotWaveform(ctx, wavPath, figurePath); perr != nil {
			p.logger.Warn(ctx, "Waveform plot failed for %s: %v", base, perr)
		}
		return nil
	})

	// Accounting, before the source moves away.
	if info, serr := os.Stat(job.AudioPath); serr == nil {
		res.SizeBytes = info.Size()
	}
	if seconds, derr := p.converter.WAVDuration(wavPath); derr == nil {
		res.AudioSeconds = seconds
	} else {
		p.logger.Warn(ctx, "Could not measure audio length of %s: %v", wavPath, derr)
	}

	if err := p.moveToProcessed(ctx, job.AudioPath); err != nil {
		return nil, err
	}

	p.progress(StageDone, 1.0)
	p.logStageTimes(ctx, job.AudioPath, res)
	return res, nil
}

// timelineResult carries the diarization timeline and the filtered timeline
// the chunks were actually cut from.
type timelineResult struct {
	full timeline.Timeline
	kept timeline.Timeline
}

// chunkRef is the processor's view of one audio chunk: its file and its
// explicit ordinal.
type chunkRef struct {
	path  string
	index int
}
