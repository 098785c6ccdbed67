package config

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Verify checks the loaded configuration for values the jobs cannot work
// with. Defaults are already applied by Load, so zero values here mean the
// operator set something explicitly wrong.
func Verify(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}

	if cfg.Trending.WindowHours < 1 {
		return fmt.Errorf("trending.window_hours must be positive")
	}
	if cfg.Trending.MaxInteractions < 1 {
		return fmt.Errorf("trending.max_interactions must be positive")
	}
	if cfg.Trending.TopKeywords < 1 {
		return fmt.Errorf("trending.top_keywords must be positive")
	}

	if cfg.Recommend.Weights.Like < 0 || cfg.Recommend.Weights.Comment < 0 || cfg.Recommend.Weights.View < 0 {
		return fmt.Errorf("recommend.weights must be non-negative")
	}
	if cfg.Recommend.Weights.Like+cfg.Recommend.Weights.Comment+cfg.Recommend.Weights.View == 0 {
		return fmt.Errorf("at least one recommend.weights entry must be positive")
	}
	if cfg.Recommend.MinInteractions < 1 {
		return fmt.Errorf("recommend.min_interactions must be positive")
	}
	if cfg.Recommend.ListSize < 1 {
		return fmt.Errorf("recommend.list_size must be positive")
	}
	if cfg.Recommend.ColdStartLimit < 1 {
		return fmt.Errorf("recommend.cold_start_limit must be positive")
	}
	if cfg.Recommend.MaxWorkers < 1 {
		return fmt.Errorf("recommend.max_workers must be positive")
	}

	if cfg.Extraction.MaxKeywords < 1 || cfg.Extraction.MaxKeywords > 10 {
		return fmt.Errorf("extraction.max_keywords must be between 1 and 10")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
