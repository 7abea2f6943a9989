package review

import (
	"strings"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
)

// ReviewInput holds the parameters of one review run.
type ReviewInput struct {
	StartDate string
	EndDate   string
	// Entries is the work log; nil means the field was missing.
	Entries []domain.LogEntry
	// Concurrency is the requested number of parallel advisor calls.
	Concurrency *int
	// AdvisorIDs restricts the run to these enabled advisors.
	AdvisorIDs []uuid.UUID
	// APIKey overrides the configured generation key.
	APIKey string
}

// validate checks the input in a fixed order and returns the first problem.
func (i ReviewInput) validate(keyConfigured bool) (domain.DateRange, error) {
	if strings.TrimSpace(i.APIKey) == "" && !keyConfigured {
		return domain.DateRange{}, domain.NewValidationError("gemini_key", "required")
	}
	rng, err := domain.ParseDateRange(i.StartDate, i.EndDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	if i.Entries == nil {
		return domain.DateRange{}, domain.NewValidationError("entries", "required")
	}
	return rng, nil
}

// ReviewResult is the outcome of a review run.
type ReviewResult struct {
	Findings  []domain.Finding
	FinalTodo []string
}

// MergeInput holds the parameters of a merge call.
type MergeInput struct {
	Range    domain.DateRange
	Findings []domain.Finding
	APIKey   string
}

func inRange(entries []domain.LogEntry, rng domain.DateRange) []domain.LogEntry {
	out := make([]domain.LogEntry, 0, len(entries))
	for _, e := range entries {
		if rng.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}
