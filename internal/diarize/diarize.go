// Package diarize runs speaker diarization through an external command that
// follows a narrow contract: `<command> <audio.wav> <output.rttm>`, reading
// its auth token from the environment. The typical implementation is a thin
// pyannote wrapper script.
package diarize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/internal/timeline"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

type implDiarizer struct {
	command  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a command-driven Diarizer.
func New(command string, exec executor.Executor, log logger.Logger) Diarizer {
	return &implDiarizer{
		command:  command,
		executor: exec,
		logger:   log,
	}
}

// Diarize runs the external diarization command on audioPath and parses the
// RTTM annotation it writes into artifactDir. The RTTM file is kept as the
// run's diarization artifact.
func (d *implDiarizer) Diarize(ctx context.Context, audioPath, artifactDir string) (timeline.Timeline, error) {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	rttmPath := filepath.Join(artifactDir, base+"_diarization.rttm")

	d.logger.Info(ctx, "Diarizing %s", audioPath)

	if _, err := d.executor.Execute(ctx, d.command, audioPath, rttmPath); err != nil {
		return nil, fmt.Errorf("diarization command: %w", err)
	}

	f, err := os.Open(rttmPath)
	if err != nil {
		return nil, fmt.Errorf("open diarization output: %w", err)
	}
	defer f.Close()

	tl, err := timeline.ParseRTTM(f)
	if err != nil {
		return nil, fmt.Errorf("parse diarization output: %w", err)
	}

	d.logger.Info(ctx, "Diarization found %d speaker turns, saved to %s", len(tl), rttmPath)
	return tl, nil
}
