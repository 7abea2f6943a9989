package todo

import (
	"context"
	"fmt"

	"github.com/neolog/site-api/internal/domain"
)

// List returns all items, open ones first, most recently updated first
// within each group.
func (s *Service) List(ctx context.Context) ([]*domain.ActionItem, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}
	return items, nil
}
