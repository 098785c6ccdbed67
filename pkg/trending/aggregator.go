// Package trending computes the global trending keyword list from recent
// interaction activity.
package trending

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/pasival14/blog/pkg/metrics"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the storage surface the aggregator needs
type Store interface {
	GetRecentInteractionPostIDs(ctx context.Context, since time.Time, limit int) ([]string, error)
	GetKeywordsForPosts(ctx context.Context, postIDs []string) map[string][]string
	ReplaceTrendingKeywords(ctx context.Context, keywords []string, windowHours int, computedAt time.Time) error
}

// Config holds aggregator tunables
type Config struct {
	WindowHours     int // lookback window for interactions
	MaxInteractions int // cap on events scanned per run
	TopKeywords     int // size of the persisted trending list
}

// Aggregator is the hourly trending keyword job
type Aggregator struct {
	store Store
	cfg   Config
}

// NewAggregator creates a trending keyword aggregator
func NewAggregator(store Store, cfg Config) *Aggregator {
	if cfg.WindowHours == 0 {
		cfg.WindowHours = 24
	}
	if cfg.MaxInteractions == 0 {
		cfg.MaxInteractions = 10000
	}
	if cfg.TopKeywords == 0 {
		cfg.TopKeywords = 20
	}
	return &Aggregator{store: store, cfg: cfg}
}

// Run executes one aggregation pass. An empty interaction window is a no-op,
// the previously stored trending list stays intact. A failed interaction
// query is fatal to the run and nothing is persisted.
func (a *Aggregator) Run(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveJob("trending", start, err) }()

	cutoff := time.Now().UTC().Add(-time.Duration(a.cfg.WindowHours) * time.Hour)

	postIDs, err := a.store.GetRecentInteractionPostIDs(ctx, cutoff, a.cfg.MaxInteractions)
	if err != nil {
		return fmt.Errorf("fetch recent interactions: %w", err)
	}
	if len(postIDs) == 0 {
		log.Printf("[INFO] no interactions in the last %dh, keeping previous trending list", a.cfg.WindowHours)
		return nil
	}

	// each post contributes once no matter how many interactions hit it
	unique := dedup(postIDs)
	log.Printf("[DEBUG] %d interactions over %d unique posts in trending window", len(postIDs), len(unique))

	keywordsByPost := a.store.GetKeywordsForPosts(ctx, unique)

	counts := make(map[string]int)
	for _, keywords := range keywordsByPost {
		for _, kw := range keywords {
			counts[kw]++
		}
	}
	if len(counts) == 0 {
		log.Printf("[INFO] no keywords resolved for %d trending posts, keeping previous trending list", len(unique))
		return nil
	}

	top := rankKeywords(counts, a.cfg.TopKeywords)

	if err := a.store.ReplaceTrendingKeywords(ctx, top, a.cfg.WindowHours, time.Now().UTC()); err != nil {
		return fmt.Errorf("store trending keywords: %w", err)
	}

	log.Printf("[INFO] stored %d trending keywords from %d posts", len(top), len(unique))
	return nil
}

// rankKeywords orders keywords by descending frequency, ties broken
// lexicographically for deterministic output, and truncates to topN
func rankKeywords(counts map[string]int, topN int) []string {
	ranked := make([]string, 0, len(counts))
	for kw := range counts {
		ranked = append(ranked, kw)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func dedup(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
