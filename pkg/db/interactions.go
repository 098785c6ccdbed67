package db

import (
	"context"
	"fmt"
	"time"
)

// AddInteraction appends an interaction event. The timestamp is assigned at
// write time unless the caller pre-set it (tests do).
func (db *DB) AddInteraction(ctx context.Context, interaction *Interaction) error {
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO interactions (user_id, post_id, interaction_type, created_at)
		VALUES (:user_id, :post_id, :interaction_type, :created_at)
	`
	result, err := db.conn.NamedExecContext(ctx, query, interaction)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	interaction.ID = id
	return nil
}

// GetRecentInteractionPostIDs retrieves post IDs of interactions at or after
// the cutoff, newest first, capped at limit. Duplicates are kept, callers
// dedup as needed.
func (db *DB) GetRecentInteractionPostIDs(ctx context.Context, since time.Time, limit int) ([]string, error) {
	var ids []string
	query := `
		SELECT post_id FROM interactions
		WHERE created_at >= ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	if err := db.conn.SelectContext(ctx, &ids, query, since, limit); err != nil {
		return nil, fmt.Errorf("get recent interaction post ids: %w", err)
	}
	return ids, nil
}

// GetActiveUserIDs retrieves distinct user IDs with any interaction at or
// after the cutoff
func (db *DB) GetActiveUserIDs(ctx context.Context, since time.Time) ([]string, error) {
	var ids []string
	query := `SELECT DISTINCT user_id FROM interactions WHERE created_at >= ? ORDER BY user_id`
	if err := db.conn.SelectContext(ctx, &ids, query, since); err != nil {
		return nil, fmt.Errorf("get active user ids: %w", err)
	}
	return ids, nil
}

// GetUserInteractions retrieves a user's most recent interactions, newest
// first, capped at limit
func (db *DB) GetUserInteractions(ctx context.Context, userID string, limit int) ([]Interaction, error) {
	var interactions []Interaction
	query := `
		SELECT * FROM interactions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	if err := db.conn.SelectContext(ctx, &interactions, query, userID, limit); err != nil {
		return nil, fmt.Errorf("get user interactions: %w", err)
	}
	return interactions, nil
}
