// Package setting implements a key/value settings store using PostgreSQL.
package setting

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/neolog/site-api/internal/adapter/postgres"
	"github.com/neolog/site-api/internal/domain"
)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key was never set.
func (r *Repo) Get(ctx context.Context, key string) (string, error) {
	sql, args, err := postgres.Builder().
		Select("value").
		From("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	var value string
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("setting %q: %w", key, domain.ErrNotFound)
		}
		return "", fmt.Errorf("setting %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (r *Repo) Set(ctx context.Context, key, value string) error {
	sql, args, err := postgres.Builder().
		Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}
