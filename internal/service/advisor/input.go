package advisor

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/neolog/site-api/internal/domain"
)

const (
	maxNameLen         = 100
	maxTopicPrefsLen   = 2000
	maxInstructionsLen = 8000
)

// CreateInput holds the parameters for creating an advisor.
type CreateInput struct {
	Name         string
	Enabled      bool
	TopicPrefs   string
	Instructions string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = appendTooLong(errs, "name", name, maxNameLen)
	errs = appendTooLong(errs, "topic_prefs", i.TopicPrefs, maxTopicPrefsLen)
	errs = appendTooLong(errs, "instructions", i.Instructions, maxInstructionsLen)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial update of an advisor.
type UpdateInput struct {
	ID           uuid.UUID
	Name         *string
	Enabled      *bool
	TopicPrefs   *string
	Instructions *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Enabled == nil && i.TopicPrefs == nil && i.Instructions == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "empty"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		errs = appendTooLong(errs, "name", name, maxNameLen)
	}
	if i.TopicPrefs != nil {
		errs = appendTooLong(errs, "topic_prefs", *i.TopicPrefs, maxTopicPrefsLen)
	}
	if i.Instructions != nil {
		errs = appendTooLong(errs, "instructions", *i.Instructions, maxInstructionsLen)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DraftExample is an existing advisor shown to the generator as a style
// reference.
type DraftExample struct {
	Name         string `json:"name"`
	TopicPrefs   string `json:"topicPrefs"`
	Instructions string `json:"instructions"`
}

// DraftInput holds the parameters for drafting an advisor. A nil Examples
// means the stored advisors are used.
type DraftInput struct {
	Name     string
	APIKey   string
	Examples []DraftExample
}

// Validate checks the key first, then the name.
func (i DraftInput) Validate(keyConfigured bool) error {
	if strings.TrimSpace(i.APIKey) == "" && !keyConfigured {
		return domain.NewValidationError("gemini_key", "required")
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return domain.NewValidationError("name", "too_long")
	}
	return nil
}

// Draft is a generated advisor profile that has not been stored.
type Draft struct {
	TopicPrefs   string
	Instructions string
}

func appendTooLong(errs []domain.FieldError, field, value string, limit int) []domain.FieldError {
	if utf8.RuneCountInString(value) > limit {
		return append(errs, domain.FieldError{Field: field, Message: "too_long"})
	}
	return errs
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
