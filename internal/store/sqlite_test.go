package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memofiler/internal/models"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_RecordAndList(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := &models.AnalysisRecord{
		Title:         "対句法とリズム分析",
		Category:      "education",
		Confidence:    0.82,
		TagCount:      6,
		RelationCount: 2,
		Saved:         true,
		FilePath:      "/vault/02_Inbox/0_Education/note.md",
	}
	require.NoError(t, s.RecordAnalysis(ctx, rec))
	assert.NotEmpty(t, rec.ID, "an id is assigned on insert")
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := s.ListAnalyses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, "education", got[0].Category)
	assert.True(t, got[0].Saved)
}

func TestSQLiteStore_ListOrderAndLimit(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"古いメモ", "中間メモ", "新しいメモ"} {
		require.NoError(t, s.RecordAnalysis(ctx, &models.AnalysisRecord{
			Title:     title,
			Category:  "general",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := s.ListAnalyses(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "新しいメモ", got[0].Title, "newest first")
	assert.Equal(t, "中間メモ", got[1].Title)
}

func TestSQLiteStore_CategoryCounts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, cat := range []string{"tech", "tech", "education"} {
		require.NoError(t, s.RecordAnalysis(ctx, &models.AnalysisRecord{Title: "m", Category: cat}))
	}

	counts, err := s.CategoryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"tech": 2, "education": 1}, counts)
}

func TestSQLiteStore_PruneAnalyses(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	cutoff := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordAnalysis(ctx, &models.AnalysisRecord{
		Title: "古い", Category: "general", CreatedAt: cutoff.AddDate(0, -1, 0),
	}))
	require.NoError(t, s.RecordAnalysis(ctx, &models.AnalysisRecord{
		Title: "新しい", Category: "general", CreatedAt: cutoff.AddDate(0, 1, 0),
	}))

	n, err := s.PruneAnalyses(ctx, cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	left, err := s.ListAnalyses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "新しい", left[0].Title)
}

func TestSQLiteStore_RequiresDSN(t *testing.T) {
	_, err := NewSQLiteStore(context.Background(), "")
	assert.Error(t, err)
}
