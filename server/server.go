// Package server exposes the JSON API: post and interaction ingest, the
// trending and recommendation read surface, operator job triggers, metrics
// and the RSS feed.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pasival14/blog/pkg/db"
	"github.com/pasival14/blog/pkg/metrics"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    Config
	db        Database
	scheduler Scheduler
	feed      FeedGenerator
	sanitizer *bluemonday.Policy

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Config holds server settings
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// Database interface for server operations
type Database interface {
	CreatePost(ctx context.Context, post *db.Post) error
	UpdatePost(ctx context.Context, post *db.Post, contentChanged bool) error
	GetPost(ctx context.Context, id string) (*db.Post, error)
	GetRecentPosts(ctx context.Context, limit int) ([]db.Post, error)
	GetKeywordsForPosts(ctx context.Context, postIDs []string) map[string][]string
	AddInteraction(ctx context.Context, interaction *db.Interaction) error
	GetTrendingKeywords(ctx context.Context) (*db.TrendingKeywords, error)
	GetRecommendations(ctx context.Context, userID string) (*db.Recommendation, error)
}

// Scheduler interface for on-demand job triggers
type Scheduler interface {
	TrendingNow(ctx context.Context) error
	RecommendationsNow(ctx context.Context) error
	ExtractNow(ctx context.Context) error
}

// FeedGenerator renders the RSS feed
type FeedGenerator interface {
	GenerateRSS(posts []db.Post) (string, error)
}

// New initializes a new server instance
func New(cfg Config, database Database, scheduler Scheduler, feedGen FeedGenerator) *Server {
	s := &Server{
		config:    cfg,
		db:        database,
		scheduler: scheduler,
		feed:      feedGen,
		sanitizer: bluemonday.StrictPolicy(),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("blog", "pasival14", s.config.Version))
	s.router.Use(rest.Ping)

	if s.config.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /posts", s.createPostHandler)
		r.HandleFunc("PUT /posts/{id}", s.updatePostHandler)
		r.HandleFunc("GET /posts/{id}", s.getPostHandler)
		r.HandleFunc("GET /posts", s.listPostsHandler)

		r.HandleFunc("POST /interactions", s.addInteractionHandler)

		r.HandleFunc("GET /trending", s.trendingHandler)
		r.HandleFunc("GET /recommendations/{user}", s.recommendationsHandler)

		r.HandleFunc("POST /jobs/{job}", s.runJobHandler)
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.Handle("GET /metrics", metrics.Handler())
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.config.Version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
