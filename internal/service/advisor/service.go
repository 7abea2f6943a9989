package advisor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
)

type advisorRepo interface {
	Create(ctx context.Context, a *domain.Advisor) (*domain.Advisor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Advisor, error)
	Update(ctx context.Context, id uuid.UUID, params domain.AdvisorUpdateParams) (*domain.Advisor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.Advisor, error)
	ListEnabled(ctx context.Context) ([]*domain.Advisor, error)
}

// Service provides advisor profile management.
type Service struct {
	advisors advisorRepo
	gen      generator
	draft    DraftOptions
	log      *slog.Logger
}

// NewService creates a new advisor service.
func NewService(log *slog.Logger, advisors advisorRepo) *Service {
	return &Service{
		advisors: advisors,
		log:      log.With("service", "advisor"),
	}
}
