package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths         PathsConfig         `yaml:"paths"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Diarization   DiarizationConfig   `yaml:"diarization"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summary       SummaryConfig       `yaml:"summary"`
	Logging       LoggingConfig       `yaml:"logging"`

	Secrets Secrets `yaml:"-"`
}

type PathsConfig struct {
	Input     string `yaml:"input"`
	Processed string `yaml:"processed"`
	Output    string `yaml:"output"`
	Temp      string `yaml:"temp"`
	Prompts   string `yaml:"prompts"`
}

type FFmpegConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	ProbePath   string `yaml:"probe_path"`
	SampleRate  int    `yaml:"sample_rate"`
	NumChannels int    `yaml:"num_channels"`
}

type DiarizationConfig struct {
	Command      string  `yaml:"command"`
	MinSegmentMS int     `yaml:"min_segment_ms"`
	MinSegment   float64 `yaml:"-"`
}

type TranscriptionConfig struct {
	Backend         string `yaml:"backend"` // "whisper-local" or "openai"
	WhisperBinary   string `yaml:"whisper_binary"`
	WhisperModel    string `yaml:"whisper_model"`
	WhisperLanguage string `yaml:"whisper_language"`
	WhisperThreads  int    `yaml:"whisper_threads"`
}

type SummaryConfig struct {
	Model          string         `yaml:"model"`
	TokenLimits    map[string]int `yaml:"token_limits"`
	PromptOverhead int            `yaml:"prompt_overhead"`
	PromptFile     string         `yaml:"prompt_file"`
	ExportDocx     bool           `yaml:"export_docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Secrets holds credentials read from the environment, never from config.yaml.
type Secrets struct {
	HFAuthToken   string
	OpenAIAPIKey  string
	GeminiAPIKeys []string
}

// Load reads and validates the YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Secrets = loadSecrets()
	return &cfg, nil
}

// loadSecrets pulls credentials from the environment. Callers load .env first.
func loadSecrets() Secrets {
	s := Secrets{
		HFAuthToken:  os.Getenv("HF_AUTH_TOKEN"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
	}
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				s.GeminiAPIKeys = append(s.GeminiAPIKeys, k)
			}
		}
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		s.GeminiAPIKeys = []string{key}
	}
	return s
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Diarization.Command == "" {
		return fmt.Errorf("diarization.command is required")
	}
	if c.Transcription.Backend == "" {
		return fmt.Errorf("transcription.backend is required")
	}
	if c.Summary.Model == "" {
		return fmt.Errorf("summary.model is required")
	}

	if c.Paths.Processed == "" {
		c.Paths.Processed = "audio/processed"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "temp"
	}
	if c.Paths.Prompts == "" {
		c.Paths.Prompts = "prompts"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.NumChannels == 0 {
		c.FFmpeg.NumChannels = 1
	}
	if c.Diarization.MinSegmentMS == 0 {
		c.Diarization.MinSegmentMS = 100
	}
	c.Diarization.MinSegment = float64(c.Diarization.MinSegmentMS) / 1000.0
	if c.Transcription.WhisperLanguage == "" {
		c.Transcription.WhisperLanguage = "auto"
	}
	if c.Transcription.WhisperThreads == 0 {
		c.Transcription.WhisperThreads = 4
	}
	if c.Summary.PromptOverhead == 0 {
		c.Summary.PromptOverhead = 1000
	}
	if c.Summary.PromptFile == "" {
		c.Summary.PromptFile = "prompts/summary_prompt.txt"
	}
	if c.Summary.TokenLimits == nil {
		c.Summary.TokenLimits = map[string]int{
			"gpt":    8000,
			"gemini": 30000,
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// TokenLimit returns the configured token budget for the given model identity,
// matched by case-insensitive substring against the token_limits keys.
func (c *Config) TokenLimit(model string) (int, error) {
	lower := strings.ToLower(model)
	for family, limit := range c.Summary.TokenLimits {
		if strings.Contains(lower, strings.ToLower(family)) {
			return limit, nil
		}
	}
	return 0, fmt.Errorf("no token limit configured for model %q", model)
}
