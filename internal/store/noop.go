package store

import (
	"context"
	"time"

	"memofiler/internal/models"
)

// NoopStore is the history store used when no DSN is configured. Writes are
// dropped, reads come back empty.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (NoopStore) RecordAnalysis(context.Context, *models.AnalysisRecord) error { return nil }

func (NoopStore) ListAnalyses(context.Context, int) ([]*models.AnalysisRecord, error) {
	return nil, nil
}

func (NoopStore) CategoryCounts(context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

func (NoopStore) PruneAnalyses(context.Context, time.Time) (int64, error) { return 0, nil }

func (NoopStore) Ping(context.Context) error { return nil }
func (NoopStore) Close() error               { return nil }

var _ HistoryStore = (*NoopStore)(nil)
