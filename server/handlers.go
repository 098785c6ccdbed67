package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pasival14/blog/pkg/db"
)

// postRequest is the ingest payload for creating or updating a post
type postRequest struct {
	AuthorID    string `json:"author_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentURL  string `json:"content_url"`
}

// interactionRequest is the ingest payload for one interaction event
type interactionRequest struct {
	UserID string `json:"user_id"`
	PostID string `json:"post_id"`
	Type   string `json:"type"`
}

// createPostHandler creates a post and leaves it pending keyword extraction
func (s *Server) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	if req.AuthorID == "" || req.Title == "" || req.ContentURL == "" {
		RenderError(w, r, fmt.Errorf("author_id, title and content_url are required"), http.StatusBadRequest)
		return
	}

	post := &db.Post{
		ID:          uuid.New().String(),
		AuthorID:    req.AuthorID,
		Title:       s.sanitizer.Sanitize(req.Title),
		Description: s.sanitizer.Sanitize(req.Description),
		ContentURL:  req.ContentURL,
	}

	if err := s.db.CreatePost(r.Context(), post); err != nil {
		RenderError(w, r, fmt.Errorf("failed to create post: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusCreated, post)
}

// updatePostHandler updates a post. A changed content URL sends the post
// back through keyword extraction, unchanged content keeps the existing
// keywords.
func (s *Server) updatePostHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	post, err := s.db.GetPost(r.Context(), id)
	if err != nil {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}

	if req.Title != "" {
		post.Title = s.sanitizer.Sanitize(req.Title)
	}
	if req.Description != "" {
		post.Description = s.sanitizer.Sanitize(req.Description)
	}

	contentChanged := false
	if req.ContentURL != "" && req.ContentURL != post.ContentURL {
		post.ContentURL = req.ContentURL
		contentChanged = true
	}

	if err := s.db.UpdatePost(r.Context(), post, contentChanged); err != nil {
		RenderError(w, r, fmt.Errorf("failed to update post: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, post)
}

// getPostHandler returns a post with its keyword list
func (s *Server) getPostHandler(w http.ResponseWriter, r *http.Request) {
	post, err := s.db.GetPost(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, post)
}

// listPostsHandler returns recent posts, newest first
func (s *Server) listPostsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 200 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	posts, err := s.db.GetRecentPosts(r.Context(), limit)
	if err != nil {
		RenderError(w, r, fmt.Errorf("failed to list posts: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, posts)
}

// addInteractionHandler appends one interaction event, timestamp assigned
// here at write time
func (s *Server) addInteractionHandler(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	if req.UserID == "" || req.PostID == "" {
		RenderError(w, r, fmt.Errorf("user_id and post_id are required"), http.StatusBadRequest)
		return
	}

	interactionType := strings.ToLower(req.Type)
	switch interactionType {
	case db.InteractionView, db.InteractionLike, db.InteractionComment:
	default:
		RenderError(w, r, fmt.Errorf("invalid interaction type %q", req.Type), http.StatusBadRequest)
		return
	}

	interaction := &db.Interaction{
		UserID:          req.UserID,
		PostID:          req.PostID,
		InteractionType: interactionType,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.db.AddInteraction(r.Context(), interaction); err != nil {
		RenderError(w, r, fmt.Errorf("failed to record interaction: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusCreated, interaction)
}

// trendingHandler returns the current global trending keyword set
func (s *Server) trendingHandler(w http.ResponseWriter, r *http.Request) {
	trending, err := s.db.GetTrendingKeywords(r.Context())
	if err != nil {
		RenderError(w, r, fmt.Errorf("failed to get trending keywords: %w", err), http.StatusInternalServerError)
		return
	}
	if trending == nil {
		RenderError(w, r, fmt.Errorf("no trending keywords computed yet"), http.StatusNotFound)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"keywords":     trending.Keywords,
		"window_hours": trending.WindowHours,
		"computed_at":  trending.ComputedAt,
	})
}

// recommendationsHandler returns the user's current recommendation set
func (s *Server) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")

	rec, err := s.db.GetRecommendations(r.Context(), userID)
	if err != nil {
		RenderError(w, r, fmt.Errorf("failed to get recommendations: %w", err), http.StatusInternalServerError)
		return
	}
	if rec == nil {
		RenderError(w, r, fmt.Errorf("no recommendations for user %s", userID), http.StatusNotFound)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"user_id":    rec.UserID,
		"post_ids":   rec.PostIDs,
		"mode":       rec.Mode,
		"updated_at": rec.UpdatedAt,
	})
}

// runJobHandler triggers a batch job on demand, an in-flight run of the same
// job reports conflict
func (s *Server) runJobHandler(w http.ResponseWriter, r *http.Request) {
	job := r.PathValue("job")

	var err error
	switch job {
	case "trending":
		err = s.scheduler.TrendingNow(r.Context())
	case "recommendations":
		err = s.scheduler.RecommendationsNow(r.Context())
	case "extraction":
		err = s.scheduler.ExtractNow(r.Context())
	default:
		RenderError(w, r, fmt.Errorf("unknown job %q", job), http.StatusNotFound)
		return
	}

	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "already running") {
			code = http.StatusConflict
		}
		RenderError(w, r, err, code)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]string{"job": job, "result": "completed"})
}

// rssHandler serves the RSS feed of recent posts
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := s.db.GetRecentPosts(r.Context(), 50)
	if err != nil {
		RenderError(w, r, fmt.Errorf("failed to load posts: %w", err), http.StatusInternalServerError)
		return
	}

	// keyword lists become item categories
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	keywords := s.db.GetKeywordsForPosts(r.Context(), ids)
	for i := range posts {
		posts[i].Keywords = keywords[posts[i].ID]
	}

	rss, err := s.feed.GenerateRSS(posts)
	if err != nil {
		RenderError(w, r, fmt.Errorf("failed to generate RSS: %w", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[WARN] failed to write RSS response: %v", err)
	}
}
