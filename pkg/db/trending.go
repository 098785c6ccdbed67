package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// GetTrendingKeywords retrieves the current global trending record, nil if
// no aggregator run persisted one yet
func (db *DB) GetTrendingKeywords(ctx context.Context) (*TrendingKeywords, error) {
	var trending TrendingKeywords
	query := `SELECT keywords, window_hours, computed_at FROM trending_keywords WHERE id = 1`
	err := db.conn.GetContext(ctx, &trending, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get trending keywords: %w", err)
	}
	return &trending, nil
}

// ReplaceTrendingKeywords fully overwrites the global trending record
func (db *DB) ReplaceTrendingKeywords(ctx context.Context, keywords []string, windowHours int, computedAt time.Time) error {
	query := `
		INSERT INTO trending_keywords (id, keywords, window_hours, computed_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			keywords = excluded.keywords,
			window_hours = excluded.window_hours,
			computed_at = excluded.computed_at
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := db.conn.ExecContext(ctx, query, Strings(keywords), windowHours, computedAt.UTC()); err != nil {
			return fmt.Errorf("replace trending keywords: %w", err)
		}
		return nil
	})
}
