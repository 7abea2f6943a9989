package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/internal/provider"
)

type generator interface {
	Generate(ctx context.Context, req provider.GenerationRequest) (string, error)
}

type snippetFetcher interface {
	Fetch(ctx context.Context, entries []domain.LogEntry) []domain.LinkSnippet
}

type advisorSource interface {
	Snapshot(ctx context.Context, ids []uuid.UUID) ([]domain.Advisor, error)
}

type todoSource interface {
	List(ctx context.Context) ([]*domain.ActionItem, error)
	Limit(ctx context.Context) (int, error)
}

// Options tunes the review fan-out. Zero values fall back to defaults.
type Options struct {
	DefaultConcurrency int
	MaxConcurrency     int
	ReviewTimeout      time.Duration
	MergeTimeout       time.Duration
	ReviewTemperature  float32
	MergeTemperature   float32
	// KeyConfigured reports that the generator has an API key of its own,
	// so requests may omit one.
	KeyConfigured bool
}

const (
	defaultConcurrency   = 3
	maxConcurrency       = 6
	defaultReviewTimeout = 60 * time.Second
	defaultMergeTimeout  = 30 * time.Second
)

// Service runs advisor reviews over the work log and merges their
// suggestions into a short todo list.
type Service struct {
	gen      generator
	links    snippetFetcher
	advisors advisorSource
	todos    todoSource
	opts     Options
	log      *slog.Logger
}

// NewService creates a new review service.
func NewService(
	log *slog.Logger,
	gen generator,
	links snippetFetcher,
	advisors advisorSource,
	todos todoSource,
	opts Options,
) *Service {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = maxConcurrency
	}
	if opts.DefaultConcurrency <= 0 {
		opts.DefaultConcurrency = defaultConcurrency
	}
	if opts.ReviewTimeout <= 0 {
		opts.ReviewTimeout = defaultReviewTimeout
	}
	if opts.MergeTimeout <= 0 {
		opts.MergeTimeout = defaultMergeTimeout
	}
	return &Service{
		gen:      gen,
		links:    links,
		advisors: advisors,
		todos:    todos,
		opts:     opts,
		log:      log.With("service", "review"),
	}
}

// clampConcurrency resolves the requested worker count into [1, max].
func (s *Service) clampConcurrency(requested *int) int {
	n := s.opts.DefaultConcurrency
	if requested != nil {
		n = *requested
	}
	return max(1, min(n, s.opts.MaxConcurrency))
}
