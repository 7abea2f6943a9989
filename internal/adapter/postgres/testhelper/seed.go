package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neolog/site-api/internal/domain"
)

// UniqueText returns prefix with a short random suffix, so tests sharing the
// container never collide on the unique text index.
func UniqueText(prefix string) string {
	return prefix + " " + uuid.New().String()[:8]
}

// SeedActionItem inserts an action item with the given text and state.
func SeedActionItem(t *testing.T, pool *pgxpool.Pool, text string, done bool) domain.ActionItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.ActionItem{
		ID:        uuid.New(),
		Text:      text,
		Done:      done,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO action_items (id, text, done, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.Text, item.Done, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActionItem: %v", err)
	}
	return item
}

// SeedAdvisor inserts an advisor profile.
func SeedAdvisor(t *testing.T, pool *pgxpool.Pool, name string, enabled bool) domain.Advisor {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Advisor{
		ID:           uuid.New(),
		Name:         name,
		Enabled:      enabled,
		Instructions: "review " + name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO advisors (id, name, enabled, instructions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Name, a.Enabled, a.Instructions, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdvisor: %v", err)
	}
	return a
}
