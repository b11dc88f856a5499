package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCategories = []string{"education", "tech", "business", "media", "ideas", "general"}

// --- Mock OpenAI client ---
type mockChatClient struct {
	response openai.ChatCompletionResponse
	err      error
}

func (m *mockChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if m.err != nil {
		return openai.ChatCompletionResponse{}, m.err
	}
	return m.response, nil
}

// --- End mock OpenAI client ---

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestOpenAIAnalyzer_ParsesVerdict(t *testing.T) {
	// 1. Valid JSON verdict from the model
	mock := &mockChatClient{response: chatResponse(
		`{"title": "MCPサーバー設計", "category": "tech", "tags": ["MCP", "設計"], "summary": ["構成の決定"]}`,
	)}
	a := NewOpenAIAnalyzer(mock, "gpt-test", testCategories)

	// 2. Call the method under test
	result, err := a.Analyze(context.Background(), "メモ内容")

	// 3. Assert the parsed fields
	require.NoError(t, err)
	assert.Equal(t, "MCPサーバー設計", result.Title)
	assert.Equal(t, "tech", result.Category)
	assert.Equal(t, []string{"MCP", "設計"}, result.Tags)
	assert.Equal(t, []string{"構成の決定"}, result.Summary)
}

func TestOpenAIAnalyzer_InvalidJSON(t *testing.T) {
	mock := &mockChatClient{response: chatResponse("ただのテキストです")}
	a := NewOpenAIAnalyzer(mock, "gpt-test", testCategories)

	_, err := a.Analyze(context.Background(), "メモ内容")

	assert.Error(t, err)
}

func TestOpenAIAnalyzer_APIError(t *testing.T) {
	mock := &mockChatClient{err: errors.New("rate limited")}
	a := NewOpenAIAnalyzer(mock, "gpt-test", testCategories)

	_, err := a.Analyze(context.Background(), "メモ内容")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestParseVerdict_StripsCodeFence(t *testing.T) {
	content := "```json\n{\"title\": \"題\", \"category\": \"tech\", \"tags\": [\"x\"]}\n```"

	result, err := parseVerdict(content, testCategories)

	require.NoError(t, err)
	assert.Equal(t, "題", result.Title)
}

func TestParseVerdict_RejectsUnknownCategory(t *testing.T) {
	content := `{"title": "題", "category": "consulting", "tags": ["x"]}`

	_, err := parseVerdict(content, testCategories)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestParseVerdict_RequiresTitleAndCategory(t *testing.T) {
	_, err := parseVerdict(`{"tags": ["x"]}`, testCategories)

	assert.Error(t, err)
}
