package feed

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasival14/blog/pkg/db"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	g := NewGenerator("https://blog.example.com/", "Example Blog")

	posts := []db.Post{
		{
			ID:          "p1",
			Title:       "Go Concurrency Patterns",
			Description: "channels and goroutines",
			CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Keywords:    []string{"golang", "concurrency"},
		},
		{
			ID:        "p2",
			Title:     "SQLite in Production",
			CreatedAt: time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC),
		},
	}

	out, err := g.GenerateRSS(posts)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, "<title>Example Blog</title>")
	assert.Contains(t, out, "<title>Go Concurrency Patterns</title>")
	assert.Contains(t, out, "<link>https://blog.example.com/posts/p1</link>", "trailing base slash trimmed")
	assert.Contains(t, out, "<guid>p1</guid>")
	assert.Contains(t, out, "<category>golang</category>")
	assert.Contains(t, out, "<category>concurrency</category>")
	assert.Contains(t, out, "Sun, 01 Jun 2025 12:00:00 +0000")

	// parse back to make sure the document is well formed
	var doc RSS
	require.NoError(t, xml.Unmarshal([]byte(strings.TrimPrefix(out, xml.Header)), &doc))
	require.NotNil(t, doc.Channel)
	assert.Len(t, doc.Channel.Items, 2)
	assert.Empty(t, doc.Channel.Items[1].Categories, "post without keywords has no categories")
}

func TestGenerator_GenerateRSS_Empty(t *testing.T) {
	g := NewGenerator("https://blog.example.com", "")

	out, err := g.GenerateRSS(nil)
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Blog</title>", "default title")
	assert.NotContains(t, out, "<item>")
}
