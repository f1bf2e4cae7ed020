package transcribe

import (
	"testing"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

func TestNew(t *testing.T) {
	log := logger.New("error")
	exec := executor.New()

	tests := []struct {
		name    string
		cfg     config.TranscriptionConfig
		apiKey  string
		wantErr bool
	}{
		{
			name: "whisper local",
			cfg: config.TranscriptionConfig{
				Backend:       "whisper-local",
				WhisperBinary: "./whisper",
				WhisperModel:  "models/ggml-small.bin",
			},
		},
		{
			name: "whisper alias",
			cfg: config.TranscriptionConfig{
				Backend:       "local",
				WhisperBinary: "./whisper",
				WhisperModel:  "models/ggml-small.bin",
			},
		},
		{
			name:    "whisper local without binary",
			cfg:     config.TranscriptionConfig{Backend: "whisper-local"},
			wantErr: true,
		},
		{
			name:   "openai with key",
			cfg:    config.TranscriptionConfig{Backend: "openai"},
			apiKey: "sk-test",
		},
		{
			name:    "openai without key",
			cfg:     config.TranscriptionConfig{Backend: "openai"},
			wantErr: true,
		},
		{
			name:    "unknown backend",
			cfg:     config.TranscriptionConfig{Backend: "deepgram"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.cfg, tt.apiKey, exec, log)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tr == nil {
				t.Error("New() returned nil Transcriber")
			}
		})
	}
}
