package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 24, cfg.Trending.WindowHours)
		assert.Equal(t, 10000, cfg.Trending.MaxInteractions)
		assert.Equal(t, 20, cfg.Trending.TopKeywords)
		assert.Equal(t, 3, cfg.Recommend.Weights.Like)
		assert.Equal(t, 2, cfg.Recommend.Weights.Comment)
		assert.Equal(t, 1, cfg.Recommend.Weights.View)
		assert.Equal(t, 5, cfg.Recommend.MinInteractions)
		assert.Equal(t, 200, cfg.Recommend.CandidatePool)
		assert.Equal(t, 30, cfg.Recommend.ListSize)
		assert.Equal(t, 10, cfg.Extraction.MaxKeywords)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
trending:
  window_hours: 48
  top_keywords: 5
recommend:
  weights:
    like: 10
  min_interactions: 3
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 48, cfg.Trending.WindowHours)
		assert.Equal(t, 5, cfg.Trending.TopKeywords)
		assert.Equal(t, 10, cfg.Recommend.Weights.Like)
		assert.Equal(t, 3, cfg.Recommend.MinInteractions)
		// untouched settings still default
		assert.Equal(t, 2, cfg.Recommend.Weights.Comment)
		assert.Equal(t, 10000, cfg.Trending.MaxInteractions)
	})

	t.Run("environment variables expanded", func(t *testing.T) {
		t.Setenv("TEST_BLOG_DSN", "file:custom.db")
		path := writeConfig(t, `
database:
  dsn: "${TEST_BLOG_DSN}"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file:custom.db", cfg.Database.DSN)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [broken")
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestInteractionWeights(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	weights := cfg.InteractionWeights()
	assert.Equal(t, map[string]int{"like": 3, "comment": 2, "view": 1}, weights)
}

func TestVerify(t *testing.T) {
	valid := func(t *testing.T) *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		require.NoError(t, Verify(valid(t)))
	})

	t.Run("missing listen address", func(t *testing.T) {
		cfg := valid(t)
		cfg.Server.Listen = ""
		require.Error(t, Verify(cfg))
	})

	t.Run("negative window", func(t *testing.T) {
		cfg := valid(t)
		cfg.Trending.WindowHours = -1
		require.Error(t, Verify(cfg))
	})

	t.Run("negative weight", func(t *testing.T) {
		cfg := valid(t)
		cfg.Recommend.Weights.Like = -1
		require.Error(t, Verify(cfg))
	})

	t.Run("all weights zero", func(t *testing.T) {
		cfg := valid(t)
		cfg.Recommend.Weights.Like = 0
		cfg.Recommend.Weights.Comment = 0
		cfg.Recommend.Weights.View = 0
		require.Error(t, Verify(cfg))
	})

	t.Run("max keywords out of range", func(t *testing.T) {
		cfg := valid(t)
		cfg.Extraction.MaxKeywords = 11
		require.Error(t, Verify(cfg))
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
