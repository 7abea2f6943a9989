package config

import (
	"fmt"

	"github.com/neolog/site-api/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Access.validate(); err != nil {
		return fmt.Errorf("access: %w", err)
	}
	if err := c.Gemini.validate(); err != nil {
		return fmt.Errorf("gemini: %w", err)
	}
	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}
	if !domain.ValidTodoLimit(c.Todo.DefaultLimit) {
		return fmt.Errorf("todo: default_limit must be in [%d,%d] (got %d)",
			domain.MinTodoLimit, domain.MaxTodoLimit, c.Todo.DefaultLimit)
	}
	return nil
}

func (a *AccessConfig) validate() error {
	if a.Audience == "" {
		return fmt.Errorf("audience is required")
	}
	if a.JWKSURL() == "" {
		return fmt.Errorf("team_domain or certs_url is required")
	}
	if a.AdminEmail == "" && len(a.Subjects()) == 0 {
		return fmt.Errorf("admin_email or allowed_subjects must be set")
	}
	if a.Header == "" {
		return fmt.Errorf("header must not be empty")
	}
	if a.KeyTTL <= 0 {
		return fmt.Errorf("key_ttl must be > 0 (got %v)", a.KeyTTL)
	}
	return nil
}

func (g *GeminiConfig) validate() error {
	if g.Model == "" {
		return fmt.Errorf("model is required")
	}
	if g.ReviewTimeout <= 0 || g.MergeTimeout <= 0 || g.DraftTimeout <= 0 {
		return fmt.Errorf("timeouts must be > 0")
	}
	return nil
}

func (r *ReviewConfig) validate() error {
	if r.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be >= 1 (got %d)", r.MaxConcurrency)
	}
	if r.DefaultConcurrency < 1 || r.DefaultConcurrency > r.MaxConcurrency {
		return fmt.Errorf("default_concurrency must be in [1,%d] (got %d)", r.MaxConcurrency, r.DefaultConcurrency)
	}
	if r.MaxLinks < 0 {
		return fmt.Errorf("max_links must be >= 0 (got %d)", r.MaxLinks)
	}
	if r.LinkTimeout <= 0 {
		return fmt.Errorf("link_timeout must be > 0 (got %v)", r.LinkTimeout)
	}
	if r.LinkMaxChars <= 0 {
		return fmt.Errorf("link_max_chars must be > 0 (got %d)", r.LinkMaxChars)
	}
	if r.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must be >= 0 (got %d)", r.RateLimitPerMinute)
	}
	return nil
}
