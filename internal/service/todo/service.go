package todo

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
)

// LimitSettingKey is the settings key holding the open item limit.
const LimitSettingKey = "todo_limit"

type itemRepo interface {
	// Lock serializes writers for the rest of the current transaction.
	Lock(ctx context.Context) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ActionItem, error)
	GetByText(ctx context.Context, text string) (*domain.ActionItem, error)
	CountOpen(ctx context.Context) (int, error)
	Create(ctx context.Context, text string) (*domain.ActionItem, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ActionItemUpdateParams) (*domain.ActionItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.ActionItem, error)
}

type settingRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the action item list and its open item limit.
type Service struct {
	items        itemRepo
	settings     settingRepo
	tx           txManager
	defaultLimit int
	log          *slog.Logger
}

// NewService creates a new todo service. defaultLimit applies until the
// admin stores a limit of their own.
func NewService(
	log *slog.Logger,
	items itemRepo,
	settings settingRepo,
	tx txManager,
	defaultLimit int,
) *Service {
	if !domain.ValidTodoLimit(defaultLimit) {
		defaultLimit = domain.DefaultTodoLimit
	}
	return &Service{
		items:        items,
		settings:     settings,
		tx:           tx,
		defaultLimit: defaultLimit,
		log:          log.With("service", "todo"),
	}
}
