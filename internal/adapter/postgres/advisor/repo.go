// Package advisor implements the advisor profile repository using PostgreSQL.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/neolog/site-api/internal/adapter/postgres"
	"github.com/neolog/site-api/internal/domain"
)

const table = "advisors"

var columns = []string{"id", "name", "enabled", "topic_prefs", "instructions", "created_at", "updated_at"}

// Repo provides advisor persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new advisor repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an advisor by primary key.
// Returns domain.ErrNotFound if the advisor does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Advisor, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	a, err := scanAdvisor(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "advisor", id)
	}
	return a, nil
}

// List returns all advisors ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Advisor, error) {
	return r.list(ctx, nil)
}

// ListEnabled returns the enabled advisors ordered by name.
func (r *Repo) ListEnabled(ctx context.Context) ([]*domain.Advisor, error) {
	return r.list(ctx, squirrel.Eq{"enabled": true})
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Advisor, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("name", "created_at")
	if where != nil {
		b = b.Where(where)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list advisors: %w", err)
	}
	defer rows.Close()

	out := []*domain.Advisor{}
	for rows.Next() {
		a, err := scanAdvisor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan advisor: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list advisors: %w", err)
	}
	return out, nil
}

// Create inserts a new advisor and returns the stored row.
func (r *Repo) Create(ctx context.Context, a *domain.Advisor) (*domain.Advisor, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "enabled", "topic_prefs", "instructions").
		Values(a.Name, a.Enabled, a.TopicPrefs, a.Instructions).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanAdvisor(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "advisor", uuid.Nil)
	}
	return created, nil
}

// Update applies the non-nil fields and bumps updated_at.
// Returns domain.ErrNotFound if the advisor does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.AdvisorUpdateParams) (*domain.Advisor, error) {
	b := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Enabled != nil {
		b = b.Set("enabled", *params.Enabled)
	}
	if params.TopicPrefs != nil {
		b = b.Set("topic_prefs", *params.TopicPrefs)
	}
	if params.Instructions != nil {
		b = b.Set("instructions", *params.Instructions)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	updated, err := scanAdvisor(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "advisor", id)
	}
	return updated, nil
}

// Delete removes an advisor.
// Returns domain.ErrNotFound if the advisor does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "advisor", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("advisor %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanAdvisor(row pgx.Row) (*domain.Advisor, error) {
	var a domain.Advisor
	if err := row.Scan(&a.ID, &a.Name, &a.Enabled, &a.TopicPrefs, &a.Instructions, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
