package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/neolog/site-api/internal/domain"
	"github.com/neolog/site-api/internal/provider"
)

//go:generate moq -out generator_mock_test.go -pkg advisor . generator

type generator interface {
	Generate(ctx context.Context, req provider.GenerationRequest) (string, error)
}

// DraftOptions tunes advisor drafting. Zero values fall back to defaults.
type DraftOptions struct {
	Timeout     time.Duration
	Temperature float32
	// KeyConfigured reports that the generator has an API key of its own.
	KeyConfigured bool
}

const (
	maxDraftExamples    = 6
	defaultDraftTimeout = 30 * time.Second
)

const draftSystem = `You help the owner design advisors that review their personal work log.
Given an advisor name and a few existing advisors as style examples, write the new advisor's topic preferences and instructions.
Topic preferences are a short comma-separated list of what the advisor cares about. Instructions describe the advisor's voice and how it reviews the log, in the second person.
Do not copy the examples. Reply with strict JSON containing only {"topicPrefs": string, "instructions": string}.`

// WithDrafter enables Draft. Without it Draft reports domain.ErrUpstream.
func (s *Service) WithDrafter(gen generator, opts DraftOptions) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultDraftTimeout
	}
	s.gen = gen
	s.draft = opts
	return s
}

// Draft asks the generator for a new advisor profile named input.Name. The
// draft is returned for review and never stored. When no examples are given
// the stored advisors serve as examples.
func (s *Service) Draft(ctx context.Context, input DraftInput) (*Draft, error) {
	if err := input.Validate(s.draft.KeyConfigured); err != nil {
		return nil, err
	}
	if s.gen == nil {
		return nil, fmt.Errorf("%w: advisor drafting is not configured", domain.ErrUpstream)
	}

	examples := input.Examples
	if examples == nil {
		stored, err := s.advisors.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list advisors: %w", err)
		}
		examples = make([]DraftExample, 0, len(stored))
		for _, a := range stored {
			examples = append(examples, DraftExample{Name: a.Name, TopicPrefs: a.TopicPrefs, Instructions: a.Instructions})
		}
	}

	payload, err := json.Marshal(draftPayload{
		Name:     strings.TrimSpace(input.Name),
		Examples: usableExamples(examples),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal draft payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.draft.Timeout)
	defer cancel()

	raw, err := s.gen.Generate(ctx, provider.GenerationRequest{
		APIKey:      strings.TrimSpace(input.APIKey),
		System:      []string{draftSystem},
		User:        string(payload),
		Temperature: s.draft.Temperature,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "advisor draft failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: draft advisor: %w", domain.ErrUpstream, err)
	}
	return parseDraft(raw), nil
}

type draftPayload struct {
	Name     string         `json:"name"`
	Examples []DraftExample `json:"examples"`
}

// usableExamples keeps named examples that carry some content, at most
// maxDraftExamples of them.
func usableExamples(in []DraftExample) []DraftExample {
	out := make([]DraftExample, 0, min(len(in), maxDraftExamples))
	for _, e := range in {
		e = DraftExample{
			Name:         strings.TrimSpace(e.Name),
			TopicPrefs:   strings.TrimSpace(e.TopicPrefs),
			Instructions: strings.TrimSpace(e.Instructions),
		}
		if e.Name == "" || (e.TopicPrefs == "" && e.Instructions == "") {
			continue
		}
		out = append(out, e)
		if len(out) == maxDraftExamples {
			break
		}
	}
	return out
}

// parseDraft reads {topicPrefs, instructions} from untrusted output. Fields
// of the wrong shape are empty; long fields are cut to what Create accepts.
func parseDraft(raw string) *Draft {
	d := &Draft{}
	if !gjson.Valid(raw) {
		return d
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return d
	}
	if v := doc.Get("topicPrefs"); v.Type == gjson.String {
		d.TopicPrefs = truncate(strings.TrimSpace(v.String()), maxTopicPrefsLen)
	}
	instr := doc.Get("instructions")
	if instr.Type != gjson.String {
		instr = doc.Get("systemPrompt")
	}
	if instr.Type == gjson.String {
		d.Instructions = truncate(strings.TrimSpace(instr.String()), maxInstructionsLen)
	}
	return d
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
