package review

import (
	"context"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/internal/provider"
)

// MergeTodos asks the generator to condense the findings' suggestions and
// the open backlog into at most L items, where L is the open item limit.
// It never fails: any problem yields an empty list.
func (s *Service) MergeTodos(ctx context.Context, input MergeInput) []string {
	items, err := s.todos.List(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "merge skipped: list action items", slog.String("error", err.Error()))
		return []string{}
	}
	limit, err := s.todos.Limit(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "merge skipped: read todo limit", slog.String("error", err.Error()))
		return []string{}
	}

	p := mergePayload{
		StartDate: input.Range.StartString(),
		EndDate:   input.Range.EndString(),
		Limit:     limit,
		Backlog:   []string{},
		Completed: []completedItem{},
		Reviews:   input.Findings,
	}
	for _, it := range items {
		if it.Done {
			p.Completed = append(p.Completed, completedItem{Text: it.Text, Note: it.CompletionNote})
		} else {
			p.Backlog = append(p.Backlog, it.Text)
		}
	}
	if p.Reviews == nil {
		p.Reviews = []domain.Finding{}
	}

	suggested := 0
	for _, f := range input.Findings {
		suggested += len(f.Suggestions)
	}
	if suggested == 0 && len(p.Backlog) == 0 {
		return []string{}
	}

	payload, err := mergeUserPayload(p)
	if err != nil {
		s.log.WarnContext(ctx, "merge skipped", slog.String("error", err.Error()))
		return []string{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.MergeTimeout)
	defer cancel()

	raw, err := s.gen.Generate(ctx, provider.GenerationRequest{
		APIKey:      input.APIKey,
		System:      []string{mergeSystem(limit)},
		User:        payload,
		Temperature: s.opts.MergeTemperature,
	})
	if err != nil {
		s.log.WarnContext(ctx, "merge call failed", slog.String("error", err.Error()))
		return []string{}
	}

	return parseTodo(raw, limit)
}

// parseTodo reads {todo: string[]} from untrusted output, dropping blanks and
// duplicates and keeping at most limit items.
func parseTodo(raw string, limit int) []string {
	if !gjson.Valid(raw) {
		return []string{}
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return []string{}
	}

	seen := make(map[string]struct{})
	out := []string{}
	for _, s := range stringList(doc.Get("todo")) {
		key := domain.NormalizeText(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}
