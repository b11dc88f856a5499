// Package services holds the orchestration layer between the analysis
// pipeline and its frontends. The CLI and the HTTP API both go through
// MemoService so saving and history recording behave identically.
package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"memofiler/internal/analyzer"
	"memofiler/internal/models"
	"memofiler/internal/store"
	"memofiler/internal/vault"
)

type MemoService struct {
	pipeline *analyzer.Pipeline
	corpus   analyzer.Corpus
	writer   *vault.Writer
	history  store.HistoryStore
}

type MemoServiceDeps struct {
	Pipeline *analyzer.Pipeline
	Corpus   analyzer.Corpus
	Writer   *vault.Writer
	History  store.HistoryStore
}

func NewMemoService(deps MemoServiceDeps) *MemoService {
	return &MemoService{
		pipeline: deps.Pipeline,
		corpus:   deps.Corpus,
		writer:   deps.Writer,
		history:  deps.History,
	}
}

// AnalyzeParams carries one analysis request.
type AnalyzeParams struct {
	Content  string
	Override *models.AnalysisOverride
	// SkipRelations drops the vault scan for callers that only need
	// category, title and tags.
	SkipRelations bool
}

// Analyze runs the pipeline without touching the vault.
func (s *MemoService) Analyze(ctx context.Context, params AnalyzeParams) models.AnalysisResult {
	corpus := s.corpus
	if params.SkipRelations {
		corpus = nil
	}
	result := s.pipeline.Analyze(ctx, params.Content, corpus, params.Override)
	s.record(ctx, result, false, "")
	return result
}

// Save analyzes the memo and writes it into the vault. The returned path is
// the created note.
func (s *MemoService) Save(ctx context.Context, params AnalyzeParams) (models.AnalysisResult, string, error) {
	corpus := s.corpus
	if params.SkipRelations {
		corpus = nil
	}
	result := s.pipeline.Analyze(ctx, params.Content, corpus, params.Override)
	if !result.Success {
		return result, "", fmt.Errorf("analysis failed: %s", result.Error)
	}

	path, err := s.writer.Save(result, params.Content)
	if err != nil {
		return result, "", fmt.Errorf("failed to save memo: %w", err)
	}

	s.record(ctx, result, true, path)
	return result, path, nil
}

func (s *MemoService) ListHistory(ctx context.Context, limit int) ([]*models.AnalysisRecord, error) {
	return s.history.ListAnalyses(ctx, limit)
}

func (s *MemoService) CategoryCounts(ctx context.Context) (map[string]int, error) {
	return s.history.CategoryCounts(ctx)
}

// record writes one history row. History failures are logged, never
// propagated: a broken history database must not block filing memos.
func (s *MemoService) record(ctx context.Context, result models.AnalysisResult, saved bool, path string) {
	if !result.Success {
		return
	}
	rec := &models.AnalysisRecord{
		Title:         result.Title.Title,
		Category:      result.Category.Name,
		Confidence:    result.Category.Confidence,
		TagCount:      len(result.Tags.Tags),
		RelationCount: len(result.Relations.Relations),
		Saved:         saved,
		FilePath:      path,
	}
	if err := s.history.RecordAnalysis(ctx, rec); err != nil {
		log.WithError(err).Warn("Failed to record analysis history")
	}
}
