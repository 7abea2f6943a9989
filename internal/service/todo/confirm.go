package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neolog/site-api/internal/domain"
)

// Confirm persists a suggested item. An item with the same text is returned
// unchanged; otherwise a new open item is created unless the open count has
// reached the limit.
//
// Lookup, count and insert run in one transaction behind the store lock, so
// two concurrent confirmations cannot both pass the limit check.
func (s *Service) Confirm(ctx context.Context, input ConfirmInput) (*domain.ActionItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(input.Text)

	limit := input.Limit
	if limit == 0 {
		var err error
		if limit, err = s.Limit(ctx); err != nil {
			return nil, err
		}
	}

	var (
		item    *domain.ActionItem
		created bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.items.Lock(txCtx); err != nil {
			return fmt.Errorf("lock action items: %w", err)
		}

		existing, err := s.items.GetByText(txCtx, text)
		if err == nil {
			item = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get action item by text: %w", err)
		}

		open, err := s.items.CountOpen(txCtx)
		if err != nil {
			return fmt.Errorf("count open action items: %w", err)
		}
		if open >= limit {
			return domain.ErrLimitReached
		}

		item, err = s.items.Create(txCtx, text)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrTextDuplicated
			}
			return fmt.Errorf("create action item: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.log.InfoContext(ctx, "action item confirmed",
			slog.String("item_id", item.ID.String()),
			slog.Int("limit", limit),
		)
	}

	return item, nil
}
