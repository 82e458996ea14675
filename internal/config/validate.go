package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if err := c.Library.validate(); err != nil {
		return fmt.Errorf("library: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	if c.DefaultMaxResults < 1 || c.DefaultMaxResults > 40 {
		return fmt.Errorf("default_max_results must be in [1, 40] (got %d)", c.DefaultMaxResults)
	}
	return nil
}

func (l *LibraryConfig) validate() error {
	if l.RecommendationGenres < 1 {
		return fmt.Errorf("recommendation_genres must be >= 1 (got %d)", l.RecommendationGenres)
	}
	if l.RecommendationsPerGenre < 1 {
		return fmt.Errorf("recommendations_per_genre must be >= 1 (got %d)", l.RecommendationsPerGenre)
	}
	if l.RecommendationsMax < 1 {
		return fmt.Errorf("recommendations_max must be >= 1 (got %d)", l.RecommendationsMax)
	}
	if l.RecommendationMinRating < 1 || l.RecommendationMinRating > 5 {
		return fmt.Errorf("recommendation_min_rating must be in [1, 5] (got %d)", l.RecommendationMinRating)
	}
	if l.StatsTopGenres < 1 {
		return fmt.Errorf("stats_top_genres must be >= 1 (got %d)", l.StatsTopGenres)
	}
	return nil
}
