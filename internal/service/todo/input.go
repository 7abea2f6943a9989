package todo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
)

// ConfirmInput holds the parameters for confirming a suggested item.
type ConfirmInput struct {
	Text string
	// Limit overrides the stored open item limit when non-zero.
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ConfirmInput) Validate() error {
	if strings.TrimSpace(i.Text) == "" {
		return domain.ErrTextRequired
	}
	if i.Limit != 0 && !domain.ValidTodoLimit(i.Limit) {
		return domain.NewValidationError("limit", "invalid")
	}
	return nil
}

// UpdateInput holds a partial update of one item.
type UpdateInput struct {
	ID             uuid.UUID
	Text           *string
	Done           *bool
	CompletionNote *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Text == nil && i.Done == nil && i.CompletionNote == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "empty"})
	}
	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) params() domain.ActionItemUpdateParams {
	p := domain.ActionItemUpdateParams{Done: i.Done}
	if i.Text != nil {
		t := strings.TrimSpace(*i.Text)
		p.Text = &t
	}
	if i.CompletionNote != nil {
		n := strings.TrimSpace(*i.CompletionNote)
		p.CompletionNote = &n
	}
	return p
}
