package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
)

// Create stores a new advisor profile.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Advisor, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.advisors.Create(ctx, &domain.Advisor{
		Name:         strings.TrimSpace(input.Name),
		Enabled:      input.Enabled,
		TopicPrefs:   strings.TrimSpace(input.TopicPrefs),
		Instructions: strings.TrimSpace(input.Instructions),
	})
	if err != nil {
		return nil, fmt.Errorf("create advisor: %w", err)
	}

	s.log.InfoContext(ctx, "advisor created",
		slog.String("advisor_id", created.ID.String()),
		slog.String("name", created.Name),
	)
	return created, nil
}

// Get returns one advisor profile.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Advisor, error) {
	a, err := s.advisors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get advisor: %w", err)
	}
	return a, nil
}

// Update applies a partial update to an advisor profile.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Advisor, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.advisors.Update(ctx, input.ID, domain.AdvisorUpdateParams{
		Name:         trimPtr(input.Name),
		Enabled:      input.Enabled,
		TopicPrefs:   trimPtr(input.TopicPrefs),
		Instructions: trimPtr(input.Instructions),
	})
	if err != nil {
		return nil, fmt.Errorf("update advisor: %w", err)
	}

	s.log.InfoContext(ctx, "advisor updated",
		slog.String("advisor_id", updated.ID.String()),
		slog.Bool("enabled", updated.Enabled),
	)
	return updated, nil
}

// Delete removes an advisor profile. Reviews already running keep their
// snapshot.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.advisors.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete advisor: %w", err)
	}

	s.log.InfoContext(ctx, "advisor deleted", slog.String("advisor_id", id.String()))
	return nil
}

// List returns every advisor profile ordered by name.
func (s *Service) List(ctx context.Context) ([]*domain.Advisor, error) {
	list, err := s.advisors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list advisors: %w", err)
	}
	return list, nil
}

// Snapshot returns copies of the enabled advisors. When ids is non-empty
// only those advisors are kept, in the order the store returned them.
func (s *Service) Snapshot(ctx context.Context, ids []uuid.UUID) ([]domain.Advisor, error) {
	list, err := s.advisors.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled advisors: %w", err)
	}

	var want map[uuid.UUID]struct{}
	if len(ids) > 0 {
		want = make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			want[id] = struct{}{}
		}
	}

	out := make([]domain.Advisor, 0, len(list))
	for _, a := range list {
		if !a.Enabled {
			continue
		}
		if want != nil {
			if _, ok := want[a.ID]; !ok {
				continue
			}
		}
		out = append(out, *a)
	}
	return out, nil
}
