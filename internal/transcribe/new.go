// Package transcribe provides the two interchangeable transcription
// backends: a local whisper.cpp binary and the hosted OpenAI API.
package transcribe

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

// New selects a Transcriber by backend name.
func New(cfg config.TranscriptionConfig, apiKey string, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch strings.ToLower(cfg.Backend) {
	case "whisper-local", "whisper", "local":
		if cfg.WhisperBinary == "" || cfg.WhisperModel == "" {
			return nil, fmt.Errorf("whisper-local backend requires transcription.whisper_binary and transcription.whisper_model")
		}
		return newWhisperLocal(cfg, exec, log), nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai backend requires OPENAI_API_KEY")
		}
		return newOpenAI(apiKey, log), nil
	default:
		return nil, fmt.Errorf("unknown transcription backend %q", cfg.Backend)
	}
}
