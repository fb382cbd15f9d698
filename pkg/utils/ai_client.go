package utils

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClientInterface is the boundary the generation service talks to.
// The default implementation walks a chain of OpenAI-compatible providers
// (Groq first, OpenAI proper as fallback) and returns the first answer.
type ChatClientInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type chatProvider struct {
	name   string
	client *openai.Client
	model  string
}

type chatClient struct {
	providers []chatProvider
}

func NewChatClient() ChatClientInterface {
	var providers []chatProvider

	if key := strings.TrimSpace(os.Getenv("GROQ_API_KEY")); key != "" {
		cfg := openai.DefaultConfig(key)
		cfg.BaseURL = "https://api.groq.com/openai/v1"
		providers = append(providers, chatProvider{
			name:   "groq",
			client: openai.NewClientWithConfig(cfg),
			model:  "llama-3.1-8b-instant",
		})
	}

	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		providers = append(providers, chatProvider{
			name:   "openai",
			client: openai.NewClient(key),
			model:  openai.GPT3Dot5Turbo,
		})
	}

	return &chatClient{providers: providers}
}

func (c *chatClient) Complete(ctx context.Context, prompt string) (string, error) {
	if len(c.providers) == 0 {
		return "", errors.New("no AI provider configured")
	}

	var lastErr error
	for _, p := range c.providers {
		resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens:   900,
			Temperature: 0.2,
		})
		if err != nil {
			log.Printf("chat provider %s failed: %v", p.name, err)
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = errors.New("empty completion response")
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", lastErr
}
