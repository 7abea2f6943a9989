package domain

import (
	"time"

	"github.com/google/uuid"
)

// Limits on the number of open action items.
const (
	DefaultTodoLimit = 3
	MinTodoLimit     = 1
	MaxTodoLimit     = 10
)

// ActionItem is a persisted todo. Text is unique across all items and the
// number of items with Done=false never exceeds the configured limit.
type ActionItem struct {
	ID             uuid.UUID
	Text           string
	Done           bool
	CompletionNote string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ActionItemUpdateParams holds a partial update. Nil fields are left unchanged.
type ActionItemUpdateParams struct {
	Text           *string
	Done           *bool
	CompletionNote *string
}

// IsEmpty reports whether no field is set.
func (p ActionItemUpdateParams) IsEmpty() bool {
	return p.Text == nil && p.Done == nil && p.CompletionNote == nil
}

// ValidTodoLimit reports whether n is inside [MinTodoLimit, MaxTodoLimit].
func ValidTodoLimit(n int) bool {
	return n >= MinTodoLimit && n <= MaxTodoLimit
}

// ClampTodoLimit forces n into [MinTodoLimit, MaxTodoLimit].
func ClampTodoLimit(n int) int {
	return max(MinTodoLimit, min(n, MaxTodoLimit))
}
