// Package store persists the analysis history. Every analyze or save run
// leaves one row so past filing decisions stay inspectable from the CLI and
// the API.
package store

import (
	"context"
	"time"

	"memofiler/internal/models"
)

// HistoryStore records analysis runs and lists them back, newest first.
type HistoryStore interface {
	RecordAnalysis(ctx context.Context, record *models.AnalysisRecord) error
	ListAnalyses(ctx context.Context, limit int) ([]*models.AnalysisRecord, error)
	CategoryCounts(ctx context.Context) (map[string]int, error)
	PruneAnalyses(ctx context.Context, before time.Time) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}
