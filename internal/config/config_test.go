package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		Paths: PathsConfig{
			Input:  "audio/input",
			Output: "output",
		},
		Diarization: DiarizationConfig{
			Command: "./scripts/diarize.sh",
		},
		Transcription: TranscriptionConfig{
			Backend: "whisper-local",
		},
		Summary: SummaryConfig{
			Model: "gpt-4o",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing input path",
			mutate:  func(c *Config) { c.Paths.Input = "" },
			wantErr: true,
		},
		{
			name:    "missing output path",
			mutate:  func(c *Config) { c.Paths.Output = "" },
			wantErr: true,
		},
		{
			name:    "missing diarization command",
			mutate:  func(c *Config) { c.Diarization.Command = "" },
			wantErr: true,
		},
		{
			name:    "missing transcription backend",
			mutate:  func(c *Config) { c.Transcription.Backend = "" },
			wantErr: true,
		},
		{
			name:    "missing summary model",
			mutate:  func(c *Config) { c.Summary.Model = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.FFmpeg.BinaryPath != "ffmpeg" {
		t.Errorf("BinaryPath = %v, want ffmpeg", cfg.FFmpeg.BinaryPath)
	}
	if cfg.FFmpeg.SampleRate != 16000 {
		t.Errorf("SampleRate = %v, want 16000", cfg.FFmpeg.SampleRate)
	}
	if cfg.Diarization.MinSegment != 0.1 {
		t.Errorf("MinSegment = %v, want 0.1", cfg.Diarization.MinSegment)
	}
	if cfg.Summary.PromptOverhead != 1000 {
		t.Errorf("PromptOverhead = %v, want 1000", cfg.Summary.PromptOverhead)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "audio/input"
  output: "output"

diarization:
  command: "./scripts/diarize.sh"
  min_segment_ms: 100

transcription:
  backend: "whisper-local"
  whisper_binary: "./whisper"
  whisper_model: "models/ggml-small.bin"

summary:
  model: "gpt-4o"
  token_limits:
    gpt: 8000

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "audio/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "audio/input")
	}
	if cfg.Transcription.WhisperModel != "models/ggml-small.bin" {
		t.Errorf("WhisperModel = %v, want models/ggml-small.bin", cfg.Transcription.WhisperModel)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestTokenLimit(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		model   string
		want    int
		wantErr bool
	}{
		{"gpt family", "gpt-4o", 8000, false},
		{"gemini family", "gemini-2.5-flash", 30000, false},
		{"case insensitive", "GPT-4O-Mini", 8000, false},
		{"unknown model", "llama-3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.TokenLimit(tt.model)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TokenLimit(%q) error = %v, wantErr %v", tt.model, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TokenLimit(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}
