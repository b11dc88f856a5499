package oracle

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"memofiler/internal/analyzer"
)

// Fallback chain tried in order until a model responds.
var geminiModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-1.5-flash-latest",
}

// GeminiAnalyzer asks the Gemini API for a full memo verdict. Models are
// tried in fallback order per request; a dead key or exhausted quota surfaces
// as an error, which the pipeline treats as "use heuristics".
type GeminiAnalyzer struct {
	client     *genai.Client
	models     []string
	categories []string
}

// NewGeminiAnalyzer creates the provider. An empty apiKey falls back to the
// GEMINI_API_KEY environment variable; with neither set, construction fails.
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string, categories []string) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not provided")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	models := geminiModels
	if model != "" {
		models = append([]string{model}, geminiModels...)
	}
	log.Infof("Gemini analyzer initialized (preferred model %s)", models[0])
	return &GeminiAnalyzer{client: client, models: models, categories: categories}, nil
}

func (g *GeminiAnalyzer) Analyze(ctx context.Context, content string) (*analyzer.OracleResult, error) {
	prompt := buildPrompt(content, g.categories)

	var lastErr error
	for _, name := range g.models {
		model := g.client.GenerativeModel(name)
		model.ResponseMIMEType = "application/json"

		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			log.WithError(err).WithField("model", name).Debug("Gemini model unavailable, trying next")
			lastErr = err
			continue
		}
		text := responseText(resp)
		if text == "" {
			lastErr = fmt.Errorf("gemini model %s returned no content", name)
			continue
		}
		return parseVerdict(text, g.categories)
	}
	return nil, fmt.Errorf("all gemini models failed: %w", lastErr)
}

func (g *GeminiAnalyzer) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			return string(t)
		}
	}
	return ""
}
