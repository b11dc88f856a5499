package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"memofiler/internal/models"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS analysis_history (
	id             TEXT PRIMARY KEY,
	title          TEXT NOT NULL,
	category       TEXT NOT NULL,
	confidence     REAL NOT NULL,
	tag_count      INTEGER NOT NULL DEFAULT 0,
	relation_count INTEGER NOT NULL DEFAULT 0,
	saved          INTEGER NOT NULL DEFAULT 0,
	file_path      TEXT NOT NULL DEFAULT '',
	created_at     DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_history_created_at
	ON analysis_history (created_at DESC);
`

// SQLiteStore implements HistoryStore on a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the history database at dsn and ensures
// the schema exists.
func NewSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	if dsn == "" {
		return nil, errors.New("history DSN cannot be empty")
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open history database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping history database: %w", err)
	}
	if _, err := db.ExecContext(ctx, historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to create history schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) RecordAnalysis(ctx context.Context, record *models.AnalysisRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	const query = `
		INSERT INTO analysis_history
			(id, title, category, confidence, tag_count, relation_count, saved, file_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID, record.Title, record.Category, record.Confidence,
		record.TagCount, record.RelationCount, record.Saved, record.FilePath,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record analysis: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListAnalyses(ctx context.Context, limit int) ([]*models.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, title, category, confidence, tag_count, relation_count, saved, file_path, created_at
		FROM analysis_history
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []*models.AnalysisRecord
	for rows.Next() {
		r := &models.AnalysisRecord{}
		err := rows.Scan(
			&r.ID, &r.Title, &r.Category, &r.Confidence,
			&r.TagCount, &r.RelationCount, &r.Saved, &r.FilePath, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analysis rows: %w", err)
	}
	return records, nil
}

func (s *SQLiteStore) CategoryCounts(ctx context.Context) (map[string]int, error) {
	const query = `SELECT category, COUNT(*) FROM analysis_history GROUP BY category`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[category] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category counts: %w", err)
	}
	return counts, nil
}

// PruneAnalyses deletes rows older than the cutoff and reports how many went.
func (s *SQLiteStore) PruneAnalyses(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM analysis_history WHERE created_at < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune analyses: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned analyses: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ HistoryStore = (*SQLiteStore)(nil)
