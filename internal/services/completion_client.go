// internal/services/completion_client.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/pranaara/pranaara-backend/internal/config"
)

const emptyCompletionReply = "I apologize, but I cannot provide a response right now. Please try again."

// OpenAICompletionClient is the hosted-provider implementation of
// CompletionClient. Each call is a single attempt under the configured
// timeout; retries would stack badly behind a chat UI.
type OpenAICompletionClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAICompletionClient(cfg config.OpenAIConfig) *OpenAICompletionClient {
	return &OpenAICompletionClient{
		client:  openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:   cfg.Model,
		timeout: time.Duration(cfg.RequestTimeout) * time.Second,
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, systemPrompt, profileContext string, history []ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	if profileContext != "" {
		messages = append(messages, openai.UserMessage(profileContext))
	}
	for _, m := range history {
		if m.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(m.Content))
			continue
		}
		messages = append(messages, openai.UserMessage(m.Content))
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:         messages,
		Model:            shared.ChatModel(c.model),
		MaxTokens:        openai.Int(1200),
		Temperature:      openai.Float(0.7),
		PresencePenalty:  openai.Float(0.1),
		FrequencyPenalty: openai.Float(0.1),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	reply := completion.Choices[0].Message.Content
	if reply == "" {
		return emptyCompletionReply, nil
	}

	return reply, nil
}
