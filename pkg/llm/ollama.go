package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOllamaModel = "llama3:8b"

// OllamaClient is the local, offline-capable tier. It talks to Ollama's
// OpenAI-compatible endpoint, so no separate SDK is needed.
type OllamaClient struct {
	client *openai.Client
	model  string
}

func NewOllamaClient(host, model string) *OllamaClient {
	if host == "" {
		host = "http://localhost:11434"
	}
	if model == "" {
		model = defaultOllamaModel
	}

	client := openai.NewClient(
		option.WithBaseURL(host+"/v1"),
		// Ollama ignores the key but the client requires one.
		option.WithAPIKey("ollama"),
	)

	return &OllamaClient{
		client: &client,
		model:  model,
	}
}

func (c *OllamaClient) Name() string {
	return "ollama"
}

// Available is always true: the local tier is always worth attempting, and
// an unreachable server simply fails over to the next backend.
func (c *OllamaClient) Available() bool {
	return true
}

func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("ollama API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from ollama")
	}

	return resp.Choices[0].Message.Content, nil
}
