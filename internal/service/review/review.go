package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/internal/provider"
	"github.com/neolog/site-api/pkg/parallel"
)

// Review fans the work log out to every selected advisor and merges their
// suggestions. Any failing advisor call fails the whole review with an
// error wrapping domain.ErrUpstream; link fetching and merging never do.
func (s *Service) Review(ctx context.Context, input ReviewInput) (*ReviewResult, error) {
	rng, err := input.validate(s.opts.KeyConfigured)
	if err != nil {
		return nil, err
	}

	advisors, err := s.advisors.Snapshot(ctx, input.AdvisorIDs)
	if err != nil {
		return nil, fmt.Errorf("snapshot advisors: %w", err)
	}
	if len(advisors) == 0 {
		return nil, domain.NewValidationError("advisors", "required")
	}

	entries := inRange(input.Entries, rng)
	snippets := s.links.Fetch(ctx, entries)

	payload, err := reviewUserPayload(rng, entries, snippets)
	if err != nil {
		return nil, err
	}

	apiKey := strings.TrimSpace(input.APIKey)
	limit := s.clampConcurrency(input.Concurrency)

	tasks := make([]parallel.Task[domain.Finding], len(advisors))
	for i, a := range advisors {
		tasks[i] = func(ctx context.Context) (domain.Finding, error) {
			return s.consult(ctx, a, payload, apiKey)
		}
	}

	start := time.Now()
	all, err := parallel.Run(ctx, tasks, limit)
	if err != nil {
		s.log.ErrorContext(ctx, "review failed",
			slog.Int("advisors", len(advisors)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	findings := make([]domain.Finding, 0, len(all))
	for _, f := range all {
		if !f.Abstained() {
			findings = append(findings, f)
		}
	}

	s.log.InfoContext(ctx, "review completed",
		slog.String("start", rng.StartString()),
		slog.String("end", rng.EndString()),
		slog.Int("entries", len(entries)),
		slog.Int("snippets", len(snippets)),
		slog.Int("advisors", len(advisors)),
		slog.Int("findings", len(findings)),
		slog.Int("concurrency", limit),
		slog.Duration("took", time.Since(start)),
	)

	final := s.MergeTodos(ctx, MergeInput{Range: rng, Findings: findings, APIKey: apiKey})

	return &ReviewResult{Findings: findings, FinalTodo: final}, nil
}

func (s *Service) consult(ctx context.Context, a domain.Advisor, payload, apiKey string) (domain.Finding, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ReviewTimeout)
	defer cancel()

	raw, err := s.gen.Generate(ctx, provider.GenerationRequest{
		APIKey:      apiKey,
		System:      reviewSystem(a),
		User:        payload,
		Temperature: s.opts.ReviewTemperature,
	})
	if err != nil {
		return domain.Finding{}, fmt.Errorf("%w: advisor %s: %w", domain.ErrUpstream, a.ID, err)
	}
	return parseFinding(a, raw), nil
}

// parseFinding reads {commentary, suggestions} from untrusted output. Any
// field of the wrong shape is treated as empty.
func parseFinding(a domain.Advisor, raw string) domain.Finding {
	f := domain.Finding{
		AdvisorID:   a.ID,
		AdvisorName: a.Name,
		Suggestions: []string{},
	}
	if !gjson.Valid(raw) {
		return f
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return f
	}
	if c := doc.Get("commentary"); c.Type == gjson.String {
		f.Commentary = strings.TrimSpace(c.String())
	}
	f.Suggestions = stringList(doc.Get("suggestions"))
	return f
}

// stringList returns the trimmed non-empty strings of a JSON array.
// Non-string elements are dropped; a non-array yields an empty list.
func stringList(r gjson.Result) []string {
	out := []string{}
	if !r.IsArray() {
		return out
	}
	for _, v := range r.Array() {
		if v.Type != gjson.String {
			continue
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
