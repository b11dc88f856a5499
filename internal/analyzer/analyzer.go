// Package analyzer implements the heuristic memo analysis pipeline: category
// classification, title generation, layered tag extraction, related-document
// scoring and summary generation. All stages are pure functions of the memo
// text plus a read-only corpus snapshot; the pipeline holds no mutable state
// and is safe for concurrent use.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"memofiler/internal/analyzer/rules"
	"memofiler/internal/models"
)

// Oracle is an optional deep-analysis collaborator consulted before the
// heuristic stages. A non-empty result fully replaces the heuristic category,
// title and tags. Errors and empty results fall through to the heuristics.
type Oracle interface {
	Analyze(ctx context.Context, content string) (*OracleResult, error)
}

// OracleResult carries the oracle's verdict. Empty fields are ignored.
type OracleResult struct {
	Category string
	Title    string
	Tags     []string
	Summary  []string
}

// OracleConfidence is assigned to oracle-supplied classifications.
const OracleConfidence = 0.95

// Pipeline wires the analysis stages. Construct once via New and reuse.
type Pipeline struct {
	rules      *rules.RuleSet
	normalizer *Normalizer
	classifier *Classifier
	titles     *TitleGenerator
	tags       *TagGenerator
	relations  *RelationFinder
	summaries  *SummaryGenerator
	oracle     Oracle // nil when no deep analyzer is configured
}

func New(rs *rules.RuleSet, oracle Oracle) *Pipeline {
	persons := newPersonExtractor(rs.Honorifics, rs.PersonNameExcludes)
	titles := NewTitleGenerator(rs, persons)
	return &Pipeline{
		rules:      rs,
		normalizer: NewNormalizer(rs.VoiceSubstitutions),
		classifier: NewClassifier(rs, persons),
		titles:     titles,
		tags:       NewTagGenerator(rs),
		relations:  NewRelationFinder(rs.Relations),
		summaries:  NewSummaryGenerator(rs, titles),
		oracle:     oracle,
	}
}

// Rules exposes the active rule set, mainly for folder mapping.
func (p *Pipeline) Rules() *rules.RuleSet { return p.rules }

// Analyze runs the full pipeline. It never returns an error or panics: any
// internal failure yields a degraded result with Success=false, and empty
// input is reported the same way.
func (p *Pipeline) Analyze(ctx context.Context, content string, corpus Corpus, override *models.AnalysisOverride) (result models.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Analysis pipeline panicked")
			result = failedResult(fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	content = p.normalizer.Normalize(content)
	if content == "" {
		return failedResult(models.ErrEmptyContent.Error())
	}

	result = models.AnalysisResult{Success: true, Timestamp: time.Now()}

	if oracle := p.consultOracle(ctx, content); oracle != nil {
		result.Oracle = true
		result.Category = models.CategoryResult{Name: oracle.Category, Confidence: OracleConfidence}
		result.Title = models.TitleResult{Title: oracle.Title, Method: "oracle", Confidence: OracleConfidence}
		result.Tags = models.TagResult{Tags: normalizeTags(oracle.Tags), Method: "oracle"}
		if len(oracle.Summary) > 0 {
			result.Summary = models.Summary{Points: oracle.Summary}
		}
	} else {
		result.Category = p.classifier.Classify(content)
		result.Title = p.titles.Generate(content, result.Category)
		result.Tags = p.tags.Generate(content, result.Category)
	}

	if corpus != nil {
		result.Relations = p.relations.Find(content, result.Title.Title, corpus)
	}
	if len(result.Summary.Points) == 0 {
		result.Summary = p.summaries.Generate(content)
	}

	applyOverride(&result, override)
	return result
}

// consultOracle returns a usable oracle verdict or nil. A result missing any
// of category/title/tags counts as declined.
func (p *Pipeline) consultOracle(ctx context.Context, content string) *OracleResult {
	if p.oracle == nil {
		return nil
	}
	res, err := p.oracle.Analyze(ctx, content)
	if err != nil {
		log.WithError(err).Warn("Deep analyzer unavailable, using heuristics")
		return nil
	}
	if res == nil || res.Category == "" || res.Title == "" || len(res.Tags) == 0 {
		return nil
	}
	return res
}

// applyOverride replaces pipeline output with user-edited fields. Override
// precedence is absolute: an edited title, category or tag list wins over
// both the oracle and the heuristics.
func applyOverride(result *models.AnalysisResult, override *models.AnalysisOverride) {
	if override.Empty() {
		return
	}
	if override.Title != "" {
		result.Title = models.TitleResult{Title: override.Title, Method: "user", Confidence: 1.0}
	}
	if override.Category != "" {
		result.Category = models.CategoryResult{Name: override.Category, Confidence: 1.0, SpecialRule: "user"}
	}
	if len(override.Tags) > 0 {
		result.Tags = models.TagResult{Tags: normalizeTags(override.Tags), Method: "user"}
	}
}

func normalizeTags(tags []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !strings.HasPrefix(t, "#") {
			t = "#" + t
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func failedResult(msg string) models.AnalysisResult {
	return models.AnalysisResult{
		Success:   false,
		Error:     msg,
		Category:  models.CategoryResult{Name: "general", Confidence: 0},
		Title:     models.TitleResult{Title: "エラー", Method: "error"},
		Tags:      models.TagResult{Tags: []string{"#エラー"}, Method: "error"},
		Timestamp: time.Now(),
	}
}
