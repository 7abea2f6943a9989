package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Advisor is an admin-configured persona. Behavior differences between
// advisors are pure data: the topic preferences and instructions sent to
// the generation service.
type Advisor struct {
	ID           uuid.UUID
	Name         string
	Enabled      bool
	TopicPrefs   string
	Instructions string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdvisorUpdateParams holds a partial update. Nil fields are left unchanged.
type AdvisorUpdateParams struct {
	Name         *string
	Enabled      *bool
	TopicPrefs   *string
	Instructions *string
}

// Finding is one advisor's output for one review invocation.
type Finding struct {
	AdvisorID   uuid.UUID `json:"advisorId"`
	AdvisorName string    `json:"advisorName"`
	Commentary  string    `json:"commentary"`
	Suggestions []string  `json:"suggestions"`
}

// Abstained reports whether the advisor chose to say nothing.
func (f Finding) Abstained() bool {
	return strings.TrimSpace(f.Commentary) == "" && len(f.Suggestions) == 0
}
