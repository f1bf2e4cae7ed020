package transcribe

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

type openAITranscriber struct {
	client *openai.Client
	logger logger.Logger
}

func newOpenAI(apiKey string, log logger.Logger) Transcriber {
	return &openAITranscriber{
		client: openai.NewClient(apiKey),
		logger: log,
	}
}

// Transcribe sends the chunk to the hosted whisper model.
func (o *openAITranscriber) Transcribe(ctx context.Context, chunkPath string) (string, error) {
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: chunkPath,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	o.logger.Debug(ctx, "Transcribed %s (%d chars)", chunkPath, len(text))
	return text, nil
}
