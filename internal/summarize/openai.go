package summarize

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

type openAIBackend struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

func newOpenAIBackend(apiKey, model string, log logger.Logger) Backend {
	return &openAIBackend{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: log,
	}
}

func (b *openAIBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful assistant."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}
