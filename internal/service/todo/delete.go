package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
)

// Delete removes an item. Deleting an unknown id is not an error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete action item: %w", err)
	}

	s.log.InfoContext(ctx, "action item deleted", slog.String("item_id", id.String()))
	return nil
}
