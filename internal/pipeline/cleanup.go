package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// moveToProcessed moves the source file into the processed directory. The
// move is the durable completion marker; there is no separate ledger.
func (p *implProcessor) moveToProcessed(ctx context.Context, audioPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Processed, 0755); err != nil {
		return fmt.Errorf("create processed directory: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Processed, filepath.Base(audioPath))
	p.logger.Info(ctx, "Moving to processed folder: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to processed: %w", err)
	}
	return nil
}

// timed runs fn and records its duration under stage.
func (p *implProcessor) timed(res *Result, stage Stage, fn func() error) error {
	start := time.Now()
	err := fn()
	res.StageDurations[stage] = time.Since(start)
	return err
}

func (p *implProcessor) logStageTimes(ctx context.Context, audioPath string, res *Result) {
	order := []Stage{
		StageConverting, StageDiarizing, StageSplitting,
		StageTranscribing, StageMerging, StageSummarizing, StagePlotting,
	}

	p.logger.Info(ctx, "Completed %s", audioPath)
	for _, stage := range order {
		if d, ok := res.StageDurations[stage]; ok {
			p.logger.Info(ctx, "  - %s: %s", stage, d.Round(time.Millisecond))
		}
	}
}
