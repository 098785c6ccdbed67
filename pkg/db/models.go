package db

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// interaction types recorded by user actions
const (
	InteractionView    = "view"
	InteractionLike    = "like"
	InteractionComment = "comment"
)

// recommendation set modes
const (
	ModePersonalized = "personalized"
	ModeColdStart    = "cold_start"
)

// Post represents a blog post. Keywords are produced by the extractor on
// content change and stay immutable until the next content update.
type Post struct {
	ID              string     `db:"id"`
	AuthorID        string     `db:"author_id"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	ContentURL      string     `db:"content_url"`
	ExtractedAt     *time.Time `db:"extracted_at"`
	ExtractionError string     `db:"extraction_error"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`

	// populated by keyword queries, not a posts column
	Keywords []string `db:"-"`
}

// Interaction is a single append-only user interaction event
type Interaction struct {
	ID              int64     `db:"id"`
	UserID          string    `db:"user_id"`
	PostID          string    `db:"post_id"`
	InteractionType string    `db:"interaction_type"`
	CreatedAt       time.Time `db:"created_at"`
}

// TrendingKeywords is the single global trending record
type TrendingKeywords struct {
	Keywords    Strings   `db:"keywords"`
	WindowHours int       `db:"window_hours"`
	ComputedAt  time.Time `db:"computed_at"`
}

// Recommendation is the per-user ranked post list
type Recommendation struct {
	UserID    string    `db:"user_id"`
	PostIDs   Strings   `db:"post_ids"`
	Mode      string    `db:"mode"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Strings is a JSON array of strings for SQL operations
type Strings []string

// Value implements driver.Valuer for database storage
func (s Strings) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *Strings) Scan(value interface{}) error {
	if value == nil {
		*s = Strings{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), s)
	}

	return json.Unmarshal(data, s)
}
