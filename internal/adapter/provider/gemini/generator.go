// Package gemini calls the Gemini generateContent API for JSON responses.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/internal/provider"
)

// ErrNoAPIKey is returned when neither the request nor the configuration
// carries an API key.
var ErrNoAPIKey = errors.New("gemini: api key required")

// Options configures a Generator.
type Options struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint (for testing).
	BaseURL    string
	HTTPClient *http.Client
}

// Generator issues single-turn JSON generation calls. The client for the
// configured key is created lazily and reused; a per-request key gets a
// client of its own that is not retained.
type Generator struct {
	opts Options
	log  *slog.Logger

	mu     sync.Mutex
	shared *genai.Client
}

// NewGenerator creates a Generator. No network call is made.
func NewGenerator(opts Options, logger *slog.Logger) *Generator {
	return &Generator{
		opts: opts,
		log:  logger.With("adapter", "gemini"),
	}
}

// HasDefaultKey reports whether a configured API key is available.
func (g *Generator) HasDefaultKey() bool { return g.opts.APIKey != "" }

// Generate sends req and returns the raw text of the first candidate.
// Transport and API failures are wrapped with domain.ErrUpstream.
func (g *Generator) Generate(ctx context.Context, req provider.GenerationRequest) (string, error) {
	key := req.APIKey
	if key == "" {
		key = g.opts.APIKey
	}
	if key == "" {
		return "", ErrNoAPIKey
	}

	client, err := g.client(ctx, key)
	if err != nil {
		return "", err
	}

	parts := make([]*genai.Part, 0, len(req.System))
	for _, s := range req.System {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, genai.NewPartFromText(s))
		}
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(req.Temperature),
		ResponseMIMEType: "application/json",
	}
	if len(parts) > 0 {
		cfg.SystemInstruction = genai.NewContentFromParts(parts, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, g.opts.Model,
		[]*genai.Content{genai.NewContentFromText(req.User, genai.RoleUser)},
		cfg,
	)
	if err != nil {
		g.log.ErrorContext(ctx, "generate content failed", slog.String("model", g.opts.Model), slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: gemini generate: %w", domain.ErrUpstream, err)
	}

	text := resp.Text()
	g.log.DebugContext(ctx, "generate content", slog.String("model", g.opts.Model), slog.Int("chars", len(text)))
	return text, nil
}

func (g *Generator) client(ctx context.Context, key string) (*genai.Client, error) {
	if key != g.opts.APIKey {
		return g.newClient(ctx, key)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.shared == nil {
		c, err := g.newClient(ctx, key)
		if err != nil {
			return nil, err
		}
		g.shared = c
	}
	return g.shared, nil
}

func (g *Generator) newClient(ctx context.Context, key string) (*genai.Client, error) {
	cc := &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.opts.HTTPClient,
	}
	if g.opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.opts.BaseURL}
	}

	c, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return c, nil
}
