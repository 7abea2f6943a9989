package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/neolog/site-api/internal/domain"
)

// Limit returns the stored open item limit, or the default when none is
// stored. An unreadable stored value is clamped into range.
func (s *Service) Limit(ctx context.Context) (int, error) {
	raw, err := s.settings.Get(ctx, LimitSettingKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.defaultLimit, nil
		}
		return 0, fmt.Errorf("get todo limit: %w", err)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		s.log.WarnContext(ctx, "stored todo limit is not a number", slog.String("value", raw))
		return s.defaultLimit, nil
	}
	return domain.ClampTodoLimit(n), nil
}

// SetLimit stores a new open item limit. Items already open above the new
// limit are kept; the limit only blocks new confirmations.
func (s *Service) SetLimit(ctx context.Context, limit int) error {
	if !domain.ValidTodoLimit(limit) {
		return domain.NewValidationError("limit", "invalid")
	}

	if err := s.settings.Set(ctx, LimitSettingKey, strconv.Itoa(limit)); err != nil {
		return fmt.Errorf("set todo limit: %w", err)
	}

	s.log.InfoContext(ctx, "todo limit changed", slog.Int("limit", limit))
	return nil
}
