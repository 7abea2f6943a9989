package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/neolog/site-api/internal/domain"
)

// Update applies a partial update. A new text must not belong to another
// item, and reopening a completed item counts against the limit.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.ActionItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	params := input.params()

	var updated *domain.ActionItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.items.Lock(txCtx); err != nil {
			return fmt.Errorf("lock action items: %w", err)
		}

		current, err := s.items.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get action item: %w", err)
		}

		if params.Text != nil && *params.Text != current.Text {
			other, err := s.items.GetByText(txCtx, *params.Text)
			switch {
			case err == nil && other.ID != current.ID:
				return domain.ErrTextDuplicated
			case err != nil && !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("get action item by text: %w", err)
			}
		}

		if params.Done != nil && !*params.Done && current.Done {
			limit, err := s.Limit(txCtx)
			if err != nil {
				return err
			}
			open, err := s.items.CountOpen(txCtx)
			if err != nil {
				return fmt.Errorf("count open action items: %w", err)
			}
			if open >= limit {
				return domain.ErrLimitReached
			}
		}

		updated, err = s.items.Update(txCtx, input.ID, params)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrTextDuplicated
			}
			return fmt.Errorf("update action item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "action item updated",
		slog.String("item_id", updated.ID.String()),
		slog.Bool("done", updated.Done),
	)

	return updated, nil
}
