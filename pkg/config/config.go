// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in generated feeds"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:blog.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Trending TrendingConfig `yaml:"trending" json:"trending" jsonschema:"description=Trending keyword aggregation settings"`

	Recommend RecommendConfig `yaml:"recommend" json:"recommend" jsonschema:"description=Recommendation generation settings"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Keyword extraction settings"`
}

// TrendingConfig holds trending aggregation settings
type TrendingConfig struct {
	Interval        time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=Aggregation schedule"`
	WindowHours     int           `yaml:"window_hours" json:"window_hours" jsonschema:"default=24,description=Interaction lookback window in hours"`
	MaxInteractions int           `yaml:"max_interactions" json:"max_interactions" jsonschema:"default=10000,description=Cap on interaction events scanned per run"`
	TopKeywords     int           `yaml:"top_keywords" json:"top_keywords" jsonschema:"default=20,description=Size of the stored trending list"`
}

// RecommendConfig holds recommendation generation settings
type RecommendConfig struct {
	Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"default=5h,description=Generation schedule"`

	Weights struct {
		Like    int `yaml:"like" json:"like" jsonschema:"default=3,description=Weight of a like interaction"`
		Comment int `yaml:"comment" json:"comment" jsonschema:"default=2,description=Weight of a comment interaction"`
		View    int `yaml:"view" json:"view" jsonschema:"default=1,description=Weight of a view interaction"`
	} `yaml:"weights" json:"weights" jsonschema:"description=Interaction type weights"`

	MinInteractions        int `yaml:"min_interactions" json:"min_interactions" jsonschema:"default=5,description=Interactions needed to skip the cold-start branch"`
	ActiveWindowDays       int `yaml:"active_window_days" json:"active_window_days" jsonschema:"default=7,description=Lookback window for active-user detection in days"`
	InteractionFetchCap    int `yaml:"interaction_fetch_cap" json:"interaction_fetch_cap" jsonschema:"default=100,description=Most recent interactions loaded per user"`
	CandidatePool          int `yaml:"candidate_pool" json:"candidate_pool" jsonschema:"default=200,description=Recent posts considered for personalized ranking"`
	ListSize               int `yaml:"list_size" json:"list_size" jsonschema:"default=30,description=Persisted recommendation list size"`
	ColdStartDays          int `yaml:"cold_start_days" json:"cold_start_days" jsonschema:"default=7,description=Recency window for cold-start posts in days"`
	ColdStartLimit         int `yaml:"cold_start_limit" json:"cold_start_limit" jsonschema:"default=30,description=Cold-start pool size"`
	ColdStartQueryKeywords int `yaml:"cold_start_query_keywords" json:"cold_start_query_keywords" jsonschema:"default=10,description=Trending keywords used in the cold-start overlap query"`
	MaxWorkers             int `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Concurrent per-user workers"`
}

// ExtractionConfig holds keyword extraction settings
type ExtractionConfig struct {
	Interval      time.Duration `yaml:"interval" json:"interval" jsonschema:"default=5m,description=Pending-post scan schedule"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Content fetch timeout per post"`
	BatchSize     int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=20,description=Posts analyzed per pass"`
	MaxKeywords   int           `yaml:"max_keywords" json:"max_keywords" jsonschema:"default=10,description=Keywords stored per post"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to analyze"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Blog/1.0,description=User agent for content fetches"`
}

// Load reads configuration from a YAML file, an empty path yields defaults
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:blog.db?cache=shared&mode=rwc"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Trending.Interval == 0 {
		c.Trending.Interval = time.Hour
	}
	if c.Trending.WindowHours == 0 {
		c.Trending.WindowHours = 24
	}
	if c.Trending.MaxInteractions == 0 {
		c.Trending.MaxInteractions = 10000
	}
	if c.Trending.TopKeywords == 0 {
		c.Trending.TopKeywords = 20
	}

	if c.Recommend.Interval == 0 {
		c.Recommend.Interval = 5 * time.Hour
	}
	if c.Recommend.Weights.Like == 0 {
		c.Recommend.Weights.Like = 3
	}
	if c.Recommend.Weights.Comment == 0 {
		c.Recommend.Weights.Comment = 2
	}
	if c.Recommend.Weights.View == 0 {
		c.Recommend.Weights.View = 1
	}
	if c.Recommend.MinInteractions == 0 {
		c.Recommend.MinInteractions = 5
	}
	if c.Recommend.ActiveWindowDays == 0 {
		c.Recommend.ActiveWindowDays = 7
	}
	if c.Recommend.InteractionFetchCap == 0 {
		c.Recommend.InteractionFetchCap = 100
	}
	if c.Recommend.CandidatePool == 0 {
		c.Recommend.CandidatePool = 200
	}
	if c.Recommend.ListSize == 0 {
		c.Recommend.ListSize = 30
	}
	if c.Recommend.ColdStartDays == 0 {
		c.Recommend.ColdStartDays = 7
	}
	if c.Recommend.ColdStartLimit == 0 {
		c.Recommend.ColdStartLimit = 30
	}
	if c.Recommend.ColdStartQueryKeywords == 0 {
		c.Recommend.ColdStartQueryKeywords = 10
	}
	if c.Recommend.MaxWorkers == 0 {
		c.Recommend.MaxWorkers = 4
	}

	if c.Extraction.Interval == 0 {
		c.Extraction.Interval = 5 * time.Minute
	}
	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.BatchSize == 0 {
		c.Extraction.BatchSize = 20
	}
	if c.Extraction.MaxKeywords == 0 {
		c.Extraction.MaxKeywords = 10
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 100
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Blog/1.0"
	}
}

// InteractionWeights returns the configured weight table keyed by
// interaction type
func (c *Config) InteractionWeights() map[string]int {
	return map[string]int{
		"like":    c.Recommend.Weights.Like,
		"comment": c.Recommend.Weights.Comment,
		"view":    c.Recommend.Weights.View,
	}
}
