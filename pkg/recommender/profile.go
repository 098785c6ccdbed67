package recommender

import (
	"sort"

	"github.com/pasival14/blog/pkg/db"
)

// candidate is a post considered for personalized ranking
type candidate struct {
	id       string
	keywords []string
}

// scoredCandidate carries a candidate's interest-profile score
type scoredCandidate struct {
	id    string
	score int
}

// groupInteractions collapses a user's interactions into the set of distinct
// interaction types seen per post. Types without a configured weight are
// ignored.
func groupInteractions(interactions []db.Interaction, weights map[string]int) map[string]map[string]struct{} {
	grouped := make(map[string]map[string]struct{})
	for _, in := range interactions {
		if _, weighted := weights[in.InteractionType]; !weighted {
			continue
		}
		types, ok := grouped[in.PostID]
		if !ok {
			types = make(map[string]struct{})
			grouped[in.PostID] = types
		}
		types[in.InteractionType] = struct{}{}
	}
	return grouped
}

// buildProfile accumulates keyword weights into the user's interest profile.
// Each post contributes the sum of its distinct interaction-type weights to
// every one of its keywords, posts with zero weight or no keywords add
// nothing.
func buildProfile(grouped map[string]map[string]struct{}, keywordsByPost map[string][]string, weights map[string]int) map[string]int {
	profile := make(map[string]int)
	for postID, types := range grouped {
		keywords := keywordsByPost[postID]
		if len(keywords) == 0 {
			continue
		}

		postWeight := 0
		for t := range types {
			postWeight += weights[t]
		}
		if postWeight <= 0 {
			continue
		}

		for _, kw := range keywords {
			profile[kw] += postWeight
		}
	}
	return profile
}

// scoreCandidates sums interest-profile weights over each candidate's
// keywords and ranks by descending score. Candidates scoring zero are
// dropped, ties keep the original candidate order (stable sort over the
// creation-time-desc pool).
func scoreCandidates(profile map[string]int, candidates []candidate) []scoredCandidate {
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		score := 0
		for _, kw := range c.keywords {
			score += profile[kw]
		}
		if score > 0 {
			scored = append(scored, scoredCandidate{id: c.id, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	return scored
}
