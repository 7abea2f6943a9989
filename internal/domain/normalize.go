package domain

import (
	"strings"
)

// NormalizeText builds the comparison key for suggested action items:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses any run of whitespace (tabs, newlines) into one space
//
// Punctuation is preserved. Stored item text is never normalized; the
// uniqueness of persisted items is on the exact text.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
