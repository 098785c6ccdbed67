package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// GetRecommendations retrieves the user's current recommendation set, nil if
// no generator run produced one yet
func (db *DB) GetRecommendations(ctx context.Context, userID string) (*Recommendation, error) {
	var rec Recommendation
	query := `SELECT * FROM recommendations WHERE user_id = ?`
	err := db.conn.GetContext(ctx, &rec, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recommendations: %w", err)
	}
	return &rec, nil
}

// ReplaceRecommendations fully overwrites the user's recommendation set
func (db *DB) ReplaceRecommendations(ctx context.Context, userID string, postIDs []string, mode string) error {
	if mode != ModePersonalized && mode != ModeColdStart {
		return fmt.Errorf("invalid recommendation mode %q", mode)
	}

	query := `
		INSERT INTO recommendations (user_id, post_ids, mode, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			post_ids = excluded.post_ids,
			mode = excluded.mode,
			updated_at = excluded.updated_at
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := db.conn.ExecContext(ctx, query, userID, Strings(postIDs), mode, time.Now().UTC()); err != nil {
			return fmt.Errorf("replace recommendations: %w", err)
		}
		return nil
	})
}
