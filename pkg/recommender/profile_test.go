package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pasival14/blog/pkg/db"
)

var testWeights = map[string]int{db.InteractionLike: 3, db.InteractionComment: 2, db.InteractionView: 1}

func TestGroupInteractions(t *testing.T) {
	interactions := []db.Interaction{
		{PostID: "A", InteractionType: db.InteractionLike},
		{PostID: "A", InteractionType: db.InteractionLike}, // duplicate type collapses
		{PostID: "A", InteractionType: db.InteractionView},
		{PostID: "B", InteractionType: db.InteractionComment},
		{PostID: "B", InteractionType: "share"}, // unweighted type ignored
	}

	grouped := groupInteractions(interactions, testWeights)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["A"], 2, "like and view")
	assert.Len(t, grouped["B"], 1, "comment only, share dropped")
}

func TestBuildProfile(t *testing.T) {
	grouped := map[string]map[string]struct{}{
		"A": {db.InteractionLike: {}, db.InteractionView: {}}, // weight 4
		"B": {db.InteractionView: {}},                         // weight 1
		"C": {db.InteractionComment: {}},                      // no keywords
	}
	keywords := map[string][]string{
		"A": {"x", "y"},
		"B": {"y", "z"},
	}

	profile := buildProfile(grouped, keywords, testWeights)
	assert.Equal(t, map[string]int{"x": 4, "y": 5, "z": 1}, profile)
}

func TestScoreCandidates(t *testing.T) {
	profile := map[string]int{"x": 4, "y": 5, "z": 1}

	candidates := []candidate{
		{id: "P2", keywords: []string{"y", "z"}},         // 6
		{id: "P1", keywords: []string{"x", "y"}},         // 9
		{id: "P3", keywords: []string{"unrelated"}},      // 0, dropped
		{id: "P4", keywords: []string{"z"}},              // 1
		{id: "P5", keywords: []string{"y", "unrelated"}}, // 5
	}

	scored := scoreCandidates(profile, candidates)
	ids := make([]string, len(scored))
	for i, s := range scored {
		ids[i] = s.id
	}
	assert.Equal(t, []string{"P1", "P2", "P5", "P4"}, ids)
	assert.Equal(t, 9, scored[0].score)

	t.Run("ties keep input order", func(t *testing.T) {
		tied := []candidate{
			{id: "first", keywords: []string{"x"}},
			{id: "second", keywords: []string{"x"}},
		}
		scored := scoreCandidates(profile, tied)
		assert.Equal(t, "first", scored[0].id)
		assert.Equal(t, "second", scored[1].id)
	})

	t.Run("empty profile drops everything", func(t *testing.T) {
		scored := scoreCandidates(map[string]int{}, candidates)
		assert.Empty(t, scored)
	})
}
