// Package scheduler drives the periodic batch jobs: keyword extraction for
// changed posts, hourly trending aggregation and recommendation generation.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pasival14/blog/pkg/db"
	"github.com/pasival14/blog/pkg/metrics"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . ContentFetcher
//go:generate moq -out mocks/job.go -pkg mocks -skip-ensure -fmt goimports . Job

// Job is a batch job run on a schedule
type Job interface {
	Run(ctx context.Context) error
}

// Database interface for the keyword extraction worker
type Database interface {
	GetPostsNeedingExtraction(ctx context.Context, limit int) ([]db.Post, error)
	SetPostKeywords(ctx context.Context, postID string, keywords []string, extractErr error) error
}

// ContentFetcher retrieves a post's published content as plain text
type ContentFetcher interface {
	Extract(ctx context.Context, url string) (string, error)
}

// KeywordRanker produces a ranked keyword list from plain text
type KeywordRanker interface {
	Extract(text string) []string
}

// Params holds scheduler dependencies and intervals
type Params struct {
	DB          Database
	Fetcher     ContentFetcher
	Ranker      KeywordRanker
	Trending    Job
	Recommender Job

	ExtractInterval   time.Duration
	TrendingInterval  time.Duration
	RecommendInterval time.Duration
	ExtractBatch      int
	MinTextLength     int
}

// Scheduler manages the periodic jobs
type Scheduler struct {
	db          Database
	fetcher     ContentFetcher
	ranker      KeywordRanker
	trending    Job
	recommender Job

	extractInterval   time.Duration
	trendingInterval  time.Duration
	recommendInterval time.Duration
	extractBatch      int
	minTextLength     int

	wg     sync.WaitGroup
	cancel context.CancelFunc

	// overlapping runs are skipped, not queued
	extractMu   sync.Mutex
	trendingMu  sync.Mutex
	recommendMu sync.Mutex
}

// NewScheduler creates a new scheduler instance
func NewScheduler(p Params) *Scheduler {
	if p.ExtractInterval == 0 {
		p.ExtractInterval = 5 * time.Minute
	}
	if p.TrendingInterval == 0 {
		p.TrendingInterval = time.Hour
	}
	if p.RecommendInterval == 0 {
		p.RecommendInterval = 5 * time.Hour
	}
	if p.ExtractBatch == 0 {
		p.ExtractBatch = 20
	}

	return &Scheduler{
		db:                p.DB,
		fetcher:           p.Fetcher,
		ranker:            p.Ranker,
		trending:          p.Trending,
		recommender:       p.Recommender,
		extractInterval:   p.ExtractInterval,
		trendingInterval:  p.TrendingInterval,
		recommendInterval: p.RecommendInterval,
		extractBatch:      p.ExtractBatch,
		minTextLength:     p.MinTextLength,
	}
}

// Start begins the scheduler workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.worker(ctx, "extraction", s.extractInterval, func(ctx context.Context) {
		if err := s.ExtractNow(ctx); err != nil {
			log.Printf("[WARN] extraction pass skipped: %v", err)
		}
	})

	s.wg.Add(1)
	go s.worker(ctx, "trending", s.trendingInterval, func(ctx context.Context) {
		if err := s.TrendingNow(ctx); err != nil {
			log.Printf("[ERROR] trending aggregation failed: %v", err)
		}
	})

	s.wg.Add(1)
	go s.worker(ctx, "recommendations", s.recommendInterval, func(ctx context.Context) {
		if err := s.RecommendationsNow(ctx); err != nil {
			log.Printf("[ERROR] recommendation generation failed: %v", err)
		}
	})

	log.Printf("[INFO] scheduler started, extraction every %v, trending every %v, recommendations every %v",
		s.extractInterval, s.trendingInterval, s.recommendInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	log.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	log.Printf("[INFO] scheduler stopped")
}

// worker runs fn immediately and then on every tick until ctx is done
func (s *Scheduler) worker(ctx context.Context, name string, interval time.Duration, fn func(context.Context)) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[DEBUG] %s worker stopped", name)
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

// TrendingNow runs the trending aggregation once. A run already in flight is
// skipped rather than queued.
func (s *Scheduler) TrendingNow(ctx context.Context) error {
	if !s.trendingMu.TryLock() {
		return fmt.Errorf("trending aggregation already running")
	}
	defer s.trendingMu.Unlock()
	return s.trending.Run(ctx)
}

// RecommendationsNow runs the recommendation generation once. A run already
// in flight is skipped rather than queued.
func (s *Scheduler) RecommendationsNow(ctx context.Context) error {
	if !s.recommendMu.TryLock() {
		return fmt.Errorf("recommendation generation already running")
	}
	defer s.recommendMu.Unlock()
	return s.recommender.Run(ctx)
}

// ExtractNow processes one batch of posts pending keyword extraction
func (s *Scheduler) ExtractNow(ctx context.Context) error {
	if !s.extractMu.TryLock() {
		return fmt.Errorf("extraction pass already running")
	}
	defer s.extractMu.Unlock()
	return s.processPendingPosts(ctx)
}

// processPendingPosts analyzes every post whose content changed since the
// last extraction. A failed post records the error and an empty keyword
// list, it never blocks the rest of the batch.
func (s *Scheduler) processPendingPosts(ctx context.Context) error {
	posts, err := s.db.GetPostsNeedingExtraction(ctx, s.extractBatch)
	if err != nil {
		return fmt.Errorf("fetch posts needing extraction: %w", err)
	}
	if len(posts) == 0 {
		return nil
	}

	log.Printf("[INFO] analyzing %d posts for keywords", len(posts))

	for _, post := range posts {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.analyzePost(ctx, post)
	}
	return nil
}

// analyzePost fetches a post's content, ranks its keywords and stores the
// result. Unusable content writes an empty keyword list rather than failing
// the post.
func (s *Scheduler) analyzePost(ctx context.Context, post db.Post) {
	text, err := s.fetcher.Extract(ctx, post.ContentURL)
	if err != nil {
		log.Printf("[WARN] content extraction failed for post %s: %v", post.ID, err)
		if serr := s.db.SetPostKeywords(ctx, post.ID, nil, err); serr != nil {
			log.Printf("[ERROR] failed to record extraction error for post %s: %v", post.ID, serr)
		}
		metrics.PostsAnalyzed.WithLabelValues("error").Inc()
		return
	}

	var kws []string
	if len(text) >= s.minTextLength {
		kws = s.ranker.Extract(text)
	} else {
		log.Printf("[DEBUG] post %s content too short (%d chars), storing empty keywords", post.ID, len(text))
	}

	if err := s.db.SetPostKeywords(ctx, post.ID, kws, nil); err != nil {
		log.Printf("[ERROR] failed to store keywords for post %s: %v", post.ID, err)
		metrics.PostsAnalyzed.WithLabelValues("error").Inc()
		return
	}

	log.Printf("[DEBUG] stored %d keywords for post %s", len(kws), post.ID)
	metrics.PostsAnalyzed.WithLabelValues("ok").Inc()
}
