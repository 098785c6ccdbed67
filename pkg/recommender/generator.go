// Package recommender builds per-user post recommendations. Users with
// enough recent history get a personalized ranking scored against their
// weighted keyword interest profile, thin-history users fall back to
// trending-keyword-matched recent posts.
package recommender

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pasival14/blog/pkg/db"
	"github.com/pasival14/blog/pkg/metrics"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the storage surface the generator needs
type Store interface {
	GetActiveUserIDs(ctx context.Context, since time.Time) ([]string, error)
	GetTrendingKeywords(ctx context.Context) (*db.TrendingKeywords, error)
	GetUserInteractions(ctx context.Context, userID string, limit int) ([]db.Interaction, error)
	GetKeywordsForPosts(ctx context.Context, postIDs []string) map[string][]string
	GetRecentPosts(ctx context.Context, limit int) ([]db.Post, error)
	FindRecentPostIDsByKeywords(ctx context.Context, keywords []string, since time.Time, limit int) ([]string, error)
	ReplaceRecommendations(ctx context.Context, userID string, postIDs []string, mode string) error
}

// Config holds generator tunables
type Config struct {
	Weights                map[string]int // interaction type -> weight
	MinInteractions        int            // below this count the user takes the cold-start branch
	ActiveWindowDays       int            // lookback for active-user detection
	InteractionFetchCap    int            // max interactions loaded per user
	CandidatePool          int            // recent posts considered for personalized ranking
	ListSize               int            // persisted recommendation list size
	ColdStartDays          int            // recency window for cold-start posts
	ColdStartLimit         int            // cold-start pool size
	ColdStartQueryKeywords int            // bounded subset of trending keywords used in the overlap query
	MaxWorkers             int            // concurrent per-user workers
}

// Generator is the periodic recommendation job
type Generator struct {
	store Store
	cfg   Config
}

// NewGenerator creates a recommendation generator
func NewGenerator(store Store, cfg Config) *Generator {
	if cfg.Weights == nil {
		cfg.Weights = map[string]int{db.InteractionLike: 3, db.InteractionComment: 2, db.InteractionView: 1}
	}
	if cfg.MinInteractions == 0 {
		cfg.MinInteractions = 5
	}
	if cfg.ActiveWindowDays == 0 {
		cfg.ActiveWindowDays = 7
	}
	if cfg.InteractionFetchCap == 0 {
		cfg.InteractionFetchCap = 100
	}
	if cfg.CandidatePool == 0 {
		cfg.CandidatePool = 200
	}
	if cfg.ListSize == 0 {
		cfg.ListSize = 30
	}
	if cfg.ColdStartDays == 0 {
		cfg.ColdStartDays = 7
	}
	if cfg.ColdStartLimit == 0 {
		cfg.ColdStartLimit = 30
	}
	if cfg.ColdStartQueryKeywords == 0 {
		cfg.ColdStartQueryKeywords = 10
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 4
	}
	return &Generator{store: store, cfg: cfg}
}

// Run executes one generation pass over all active users. Per-user failures
// are logged and never abort the batch, only a failed active-user query is
// fatal to the run.
func (g *Generator) Run(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveJob("recommendations", start, err) }()

	cutoff := time.Now().UTC().AddDate(0, 0, -g.cfg.ActiveWindowDays)
	users, err := g.store.GetActiveUserIDs(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("fetch active users: %w", err)
	}
	if len(users) == 0 {
		log.Printf("[INFO] no active users in the last %d days, nothing to recommend", g.cfg.ActiveWindowDays)
		return nil
	}

	// single trending snapshot shared by every cold-start user this run,
	// absence is non-fatal
	var trending []string
	if t, terr := g.store.GetTrendingKeywords(ctx); terr != nil {
		log.Printf("[WARN] failed to load trending keywords, cold-start disabled for this run: %v", terr)
	} else if t != nil {
		trending = t.Keywords
	}

	log.Printf("[INFO] generating recommendations for %d active users", len(users))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.MaxWorkers)
	for _, userID := range users {
		eg.Go(func() error {
			if uerr := g.processUser(egCtx, userID, trending); uerr != nil {
				// one user's failure never aborts the batch
				log.Printf("[WARN] recommendations for user %s failed: %v", userID, uerr)
				metrics.RecommendationUsers.WithLabelValues("failed").Inc()
			}
			return nil
		})
	}
	_ = eg.Wait() // workers swallow their own errors

	log.Printf("[INFO] recommendation generation completed for %d users", len(users))
	return nil
}

// processUser builds and persists one user's recommendation set, or leaves
// the previous set untouched when nothing qualifies
func (g *Generator) processUser(ctx context.Context, userID string, trending []string) error {
	interactions, err := g.store.GetUserInteractions(ctx, userID, g.cfg.InteractionFetchCap)
	if err != nil {
		return fmt.Errorf("fetch interactions: %w", err)
	}

	if len(interactions) < g.cfg.MinInteractions {
		return g.coldStart(ctx, userID, trending)
	}

	// distinct interaction types per post, repeated identical interactions
	// with the same post count that type's weight once
	grouped := groupInteractions(interactions, g.cfg.Weights)
	if len(grouped) == 0 {
		log.Printf("[DEBUG] user %s has no weighted interactions, keeping previous set", userID)
		metrics.RecommendationUsers.WithLabelValues("skipped").Inc()
		return nil
	}

	interactedIDs := make([]string, 0, len(grouped))
	for postID := range grouped {
		interactedIDs = append(interactedIDs, postID)
	}
	keywordsByPost := g.store.GetKeywordsForPosts(ctx, interactedIDs)

	profile := buildProfile(grouped, keywordsByPost, g.cfg.Weights)
	if len(profile) == 0 {
		log.Printf("[DEBUG] user %s has an empty interest profile, keeping previous set", userID)
		metrics.RecommendationUsers.WithLabelValues("skipped").Inc()
		return nil
	}

	candidates, err := g.candidatePool(ctx, grouped)
	if err != nil {
		return err
	}

	ranked := scoreCandidates(profile, candidates)
	if len(ranked) == 0 {
		log.Printf("[DEBUG] no candidates matched profile for user %s, keeping previous set", userID)
		metrics.RecommendationUsers.WithLabelValues("skipped").Inc()
		return nil
	}
	if len(ranked) > g.cfg.ListSize {
		ranked = ranked[:g.cfg.ListSize]
	}

	ids := make([]string, len(ranked))
	for i, c := range ranked {
		ids[i] = c.id
	}
	if err := g.store.ReplaceRecommendations(ctx, userID, ids, db.ModePersonalized); err != nil {
		return fmt.Errorf("store personalized recommendations: %w", err)
	}

	log.Printf("[DEBUG] stored %d personalized recommendations for user %s", len(ids), userID)
	metrics.RecommendationUsers.WithLabelValues("personalized").Inc()
	return nil
}

// coldStart recommends recent posts overlapping the trending keyword set.
// Missing trending data or an empty match is a no-op, not an error.
func (g *Generator) coldStart(ctx context.Context, userID string, trending []string) error {
	if len(trending) == 0 {
		log.Printf("[DEBUG] no trending keywords for cold-start user %s, keeping previous set", userID)
		metrics.RecommendationUsers.WithLabelValues("skipped").Inc()
		return nil
	}

	// bounded subset keeps the set-membership query small
	if len(trending) > g.cfg.ColdStartQueryKeywords {
		trending = trending[:g.cfg.ColdStartQueryKeywords]
	}

	since := time.Now().UTC().AddDate(0, 0, -g.cfg.ColdStartDays)
	ids, err := g.store.FindRecentPostIDsByKeywords(ctx, trending, since, g.cfg.ColdStartLimit)
	if err != nil {
		return fmt.Errorf("cold-start post query: %w", err)
	}
	if len(ids) == 0 {
		log.Printf("[DEBUG] no recent posts match trending keywords for user %s, keeping previous set", userID)
		metrics.RecommendationUsers.WithLabelValues("skipped").Inc()
		return nil
	}

	if err := g.store.ReplaceRecommendations(ctx, userID, ids, db.ModeColdStart); err != nil {
		return fmt.Errorf("store cold-start recommendations: %w", err)
	}

	log.Printf("[DEBUG] stored %d cold-start recommendations for user %s", len(ids), userID)
	metrics.RecommendationUsers.WithLabelValues("cold_start").Inc()
	return nil
}

// candidatePool loads the freshest posts, drops already-interacted ones and
// posts without keywords, preserving creation-time order
func (g *Generator) candidatePool(ctx context.Context, interacted map[string]map[string]struct{}) ([]candidate, error) {
	posts, err := g.store.GetRecentPosts(ctx, g.cfg.CandidatePool)
	if err != nil {
		return nil, fmt.Errorf("fetch candidate posts: %w", err)
	}

	fresh := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, seen := interacted[p.ID]; !seen {
			fresh = append(fresh, p.ID)
		}
	}

	keywordsByPost := g.store.GetKeywordsForPosts(ctx, fresh)

	candidates := make([]candidate, 0, len(fresh))
	for _, id := range fresh {
		if kws := keywordsByPost[id]; len(kws) > 0 {
			candidates = append(candidates, candidate{id: id, keywords: kws})
		}
	}
	return candidates, nil
}
