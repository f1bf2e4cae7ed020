// Package workspace lays out the per-recording output directories and the
// run-scoped temporary tree that is destroyed when the file completes.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

var invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SanitizeName makes a recording name safe for use in directory names.
func SanitizeName(name string) string {
	return strings.ToLower(invalidNameChars.ReplaceAllString(name, "_"))
}

// Workspace holds the directories for one recording run. The persistent
// directories survive the run; the temp tree is owned by the file currently
// being processed and removed on every exit path. The run ID in the temp path
// keeps runs collision-free even if files were ever processed in parallel.
type Workspace struct {
	RunID string

	// Persistent, under {base}/{date}-{name}/
	Transcriptions string
	Diarizations   string
	MergedOutput   string
	Summary        string
	Figures        string

	// Ephemeral, under {temp}/{run-id}/
	TempWAV            string
	TempChunks         string
	TempTranscriptions string

	tempRoot string
}

// Create builds the directory tree for one recording.
func Create(baseOutput, tempBase, date, sanitizedName string) (*Workspace, error) {
	runID := uuid.NewString()
	outputDir := filepath.Join(baseOutput, fmt.Sprintf("%s-%s", date, sanitizedName))
	tempRoot := filepath.Join(tempBase, runID)

	w := &Workspace{
		RunID:              runID,
		Transcriptions:     filepath.Join(outputDir, "transcriptions"),
		Diarizations:       filepath.Join(outputDir, "diarizations"),
		MergedOutput:       filepath.Join(outputDir, "merged_output"),
		Summary:            filepath.Join(outputDir, "summary"),
		Figures:            filepath.Join(outputDir, "figures"),
		TempWAV:            filepath.Join(tempRoot, "wav_files"),
		TempChunks:         filepath.Join(tempRoot, "chunks"),
		TempTranscriptions: filepath.Join(tempRoot, "transcriptions"),
		tempRoot:           tempRoot,
	}

	dirs := []string{
		w.Transcriptions, w.Diarizations, w.MergedOutput, w.Summary, w.Figures,
		w.TempWAV, w.TempChunks, w.TempTranscriptions,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return w, nil
}

// Cleanup removes the ephemeral temp tree. It is safe to call more than once
// and never fails the caller; removal problems are logged.
func (w *Workspace) Cleanup(ctx context.Context, log logger.Logger) {
	if err := os.RemoveAll(w.tempRoot); err != nil {
		log.Warn(ctx, "Failed to clean temp workspace %s: %v", w.tempRoot, err)
		return
	}
	log.Debug(ctx, "Cleaned temp workspace %s", w.tempRoot)
}
