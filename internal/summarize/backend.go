package summarize

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

// NewBackend selects a summarization backend by case-insensitive substring
// match on the model identity. An unrecognized identity is a configuration
// error.
func NewBackend(model string, secrets config.Secrets, log logger.Logger) (Backend, error) {
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "gpt"):
		if secrets.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("model %q requires OPENAI_API_KEY", model)
		}
		return newOpenAIBackend(secrets.OpenAIAPIKey, model, log), nil
	case strings.Contains(lower, "gemini"):
		if len(secrets.GeminiAPIKeys) == 0 {
			return nil, fmt.Errorf("model %q requires GEMINI_API_KEY or GEMINI_API_KEYS", model)
		}
		return newGeminiBackend(secrets.GeminiAPIKeys, model, log), nil
	default:
		return nil, fmt.Errorf("unrecognized summarization model %q", model)
	}
}
