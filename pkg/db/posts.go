package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// keywordFetchChunk bounds the number of post IDs per IN query, SQLite caps
// bound variables at 999
const keywordFetchChunk = 100

// CreatePost creates a new post, pending keyword extraction
func (db *DB) CreatePost(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO posts (id, author_id, title, description, content_url, created_at, updated_at)
		VALUES (:id, :author_id, :title, :description, :content_url, :created_at, :updated_at)
	`
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	post.UpdatedAt = post.CreatedAt

	if _, err := db.conn.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// UpdatePost updates a post's editable fields. If contentChanged is set the
// post goes back to the pending-extraction state, otherwise existing keywords
// are left alone.
func (db *DB) UpdatePost(ctx context.Context, post *Post, contentChanged bool) error {
	post.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE posts SET title = ?, description = ?, content_url = ?, updated_at = ?
		WHERE id = ?
	`
	if contentChanged {
		query = `
			UPDATE posts SET title = ?, description = ?, content_url = ?, updated_at = ?,
				extracted_at = NULL, extraction_error = ''
			WHERE id = ?
		`
	}

	result, err := db.conn.ExecContext(ctx, query, post.Title, post.Description, post.ContentURL, post.UpdatedAt, post.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("post not found")
	}
	return nil
}

// GetPost retrieves a post by ID with its keyword list
func (db *DB) GetPost(ctx context.Context, id string) (*Post, error) {
	var post Post
	query := `SELECT * FROM posts WHERE id = ?`
	if err := db.conn.GetContext(ctx, &post, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post not found")
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	keywords := db.GetKeywordsForPosts(ctx, []string{id})
	post.Keywords = keywords[id]
	return &post, nil
}

// GetRecentPosts retrieves the most recently created posts, newest first,
// without keyword lists
func (db *DB) GetRecentPosts(ctx context.Context, limit int) ([]Post, error) {
	var posts []Post
	query := `SELECT * FROM posts ORDER BY created_at DESC, id LIMIT ?`
	if err := db.conn.SelectContext(ctx, &posts, query, limit); err != nil {
		return nil, fmt.Errorf("get recent posts: %w", err)
	}
	return posts, nil
}

// GetPostsNeedingExtraction retrieves posts whose content changed since the
// last keyword extraction
func (db *DB) GetPostsNeedingExtraction(ctx context.Context, limit int) ([]Post, error) {
	var posts []Post
	query := `SELECT * FROM posts WHERE extracted_at IS NULL ORDER BY updated_at LIMIT ?`
	if err := db.conn.SelectContext(ctx, &posts, query, limit); err != nil {
		return nil, fmt.Errorf("get posts needing extraction: %w", err)
	}
	return posts, nil
}

// SetPostKeywords replaces a post's keyword list and marks extraction done.
// An empty list with a non-nil extractErr records a failed extraction, the
// post still leaves the pending state.
func (db *DB) SetPostKeywords(ctx context.Context, postID string, keywords []string, extractErr error) error {
	errMsg := ""
	if extractErr != nil {
		errMsg = extractErr.Error()
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		return db.InTransaction(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, `DELETE FROM post_keywords WHERE post_id = ?`, postID); err != nil {
				return fmt.Errorf("clear post keywords: %w", err)
			}

			for i, kw := range keywords {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO post_keywords (post_id, position, keyword) VALUES (?, ?, ?)`, postID, i, kw)
				if err != nil {
					return fmt.Errorf("insert post keyword: %w", err)
				}
			}

			_, err := tx.ExecContext(ctx,
				`UPDATE posts SET extracted_at = ?, extraction_error = ? WHERE id = ?`,
				time.Now().UTC(), errMsg, postID)
			if err != nil {
				return fmt.Errorf("mark post extracted: %w", err)
			}
			return nil
		})
	})
}

// GetKeywordsForPosts resolves keyword lists for a set of post IDs. Duplicate
// IDs are collapsed, missing posts and per-chunk query failures map to empty
// lists. Never fails, a degraded result is logged and returned as is.
func (db *DB) GetKeywordsForPosts(ctx context.Context, postIDs []string) map[string][]string {
	result := make(map[string][]string, len(postIDs))
	unique := make([]string, 0, len(postIDs))
	for _, id := range postIDs {
		if _, seen := result[id]; seen {
			continue
		}
		result[id] = []string{}
		unique = append(unique, id)
	}

	for start := 0; start < len(unique); start += keywordFetchChunk {
		end := min(start+keywordFetchChunk, len(unique))
		chunk := unique[start:end]

		query, args, err := sqlx.In(
			`SELECT post_id, keyword FROM post_keywords WHERE post_id IN (?) ORDER BY post_id, position`, chunk)
		if err != nil {
			log.Printf("[WARN] failed to build keyword query for %d posts: %v", len(chunk), err)
			continue
		}

		var rows []struct {
			PostID  string `db:"post_id"`
			Keyword string `db:"keyword"`
		}
		if err := db.conn.SelectContext(ctx, &rows, db.conn.Rebind(query), args...); err != nil {
			log.Printf("[WARN] failed to fetch keywords for %d posts: %v", len(chunk), err)
			continue
		}

		for _, row := range rows {
			result[row.PostID] = append(result[row.PostID], row.Keyword)
		}
	}

	return result
}

// FindRecentPostIDsByKeywords retrieves IDs of posts created at or after the
// cutoff whose keyword list overlaps any of the given keywords, newest first.
// Used by the cold-start recommendation path.
func (db *DB) FindRecentPostIDsByKeywords(ctx context.Context, keywords []string, since time.Time, limit int) ([]string, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT p.id FROM posts p
		JOIN post_keywords k ON k.post_id = p.id
		WHERE k.keyword IN (?) AND p.created_at >= ?
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id
		LIMIT ?`, keywords, since, limit)
	if err != nil {
		return nil, fmt.Errorf("build keyword match query: %w", err)
	}

	var ids []string
	if err := db.conn.SelectContext(ctx, &ids, db.conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find posts by keywords: %w", err)
	}
	return ids, nil
}
