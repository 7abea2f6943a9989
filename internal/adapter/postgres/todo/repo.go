// Package todo implements the action item repository using PostgreSQL.
package todo

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

const table = "action_items"

// lockKey identifies the transaction-scoped advisory lock that serializes
// writers of the action item list.
const lockKey int64 = 0x746f646f // "todo"

var columns = []string{"id", "text", "done", "completion_note", "created_at", "updated_at"}

// Repo provides action item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new action item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Locking
// ---------------------------------------------------------------------------

// Lock takes the advisory lock for the rest of the current transaction.
// Outside a transaction the lock would be released immediately, so callers
// must run inside TxManager.RunInTx.
func (r *Repo) Lock(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActionItem, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByText returns the item with exactly this text.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) GetByText(ctx context.Context, text string) (*domain.ActionItem, error) {
	return r.getOne(ctx, squirrel.Eq{"text": text}, uuid.Nil)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) (*domain.ActionItem, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	item, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "action_item", id)
	}
	return item, nil
}

// CountOpen returns the number of items with done = false.
func (r *Repo) CountOpen(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"done": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count open action_items: %w", err)
	}
	return n, nil
}

// List returns all items, open first, most recently updated first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.ActionItem, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("done ASC", "updated_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list action_items: %w", err)
	}
	defer rows.Close()

	items := []*domain.ActionItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan action_item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list action_items: %w", err)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new open item.
// Returns domain.ErrAlreadyExists if the text is taken.
func (r *Repo) Create(ctx context.Context, text string) (*domain.ActionItem, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("text").
		Values(text).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	item, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "action_item", uuid.Nil)
	}
	return item, nil
}

// Update applies the non-nil fields and bumps updated_at.
// Returns domain.ErrNotFound for an unknown id and domain.ErrAlreadyExists
// if the new text is taken.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ActionItemUpdateParams) (*domain.ActionItem, error) {
	b := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())

	if params.Text != nil {
		b = b.Set("text", *params.Text)
	}
	if params.Done != nil {
		b = b.Set("done", *params.Done)
	}
	if params.CompletionNote != nil {
		b = b.Set("completion_note", *params.CompletionNote)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	item, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "action_item", id)
	}
	return item, nil
}

// Delete removes an item. Deleting an absent id is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "action_item", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func scanItem(row pgx.Row) (*domain.ActionItem, error) {
	var it domain.ActionItem
	if err := row.Scan(&it.ID, &it.Text, &it.Done, &it.CompletionNote, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}
