package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

type whisperLocal struct {
	cfg      config.TranscriptionConfig
	executor executor.Executor
	logger   logger.Logger
}

func newWhisperLocal(cfg config.TranscriptionConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &whisperLocal{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Transcribe runs whisper.cpp on the chunk and reads the text file it emits
// next to the chunk.
func (w *whisperLocal) Transcribe(ctx context.Context, chunkPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(chunkPath, filepath.Ext(chunkPath))

	args := []string{
		"-m", w.cfg.WhisperModel,
		"-f", chunkPath,
		"-otxt",
		"-l", w.cfg.WhisperLanguage,
		"-t", strconv.Itoa(w.cfg.WhisperThreads),
		"-np",
		"--output-file", outputPrefix,
	}

	if _, err := w.executor.Execute(ctx, w.cfg.WhisperBinary, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	defer os.Remove(txtPath)

	text := strings.TrimSpace(string(data))
	w.logger.Debug(ctx, "Transcribed %s (%d chars)", chunkPath, len(text))
	return text, nil
}
