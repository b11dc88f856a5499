package oracle

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"memofiler/internal/analyzer"
)

// ChatCompletionCreator is the minimal OpenAI client surface this provider
// needs; tests substitute a mock.
type ChatCompletionCreator interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAnalyzer asks an OpenAI-compatible chat model for a memo verdict.
type OpenAIAnalyzer struct {
	client     ChatCompletionCreator
	model      string
	categories []string
}

func NewOpenAIAnalyzer(client ChatCompletionCreator, model string, categories []string) *OpenAIAnalyzer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAnalyzer{client: client, model: model, categories: categories}
}

// NewOpenAIAnalyzerFromKey builds a real client. An empty apiKey falls back
// to OPENAI_API_KEY.
func NewOpenAIAnalyzerFromKey(apiKey, model string, categories []string) (*OpenAIAnalyzer, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key not provided")
	}
	return NewOpenAIAnalyzer(openai.NewClient(apiKey), model, categories), nil
}

func (o *OpenAIAnalyzer) Analyze(ctx context.Context, content string) (*analyzer.OracleResult, error) {
	if o.client == nil {
		return nil, fmt.Errorf("openai analyzer is not initialized with a client")
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(content, o.categories),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from OpenAI")
	}
	return parseVerdict(resp.Choices[0].Message.Content, o.categories)
}
