package validation

import (
	"quiz-forge/internal/domain"
	"strings"
	"unicode/utf8"
)

// MaxTextLen bounds the request body; anything larger is almost certainly a
// misdirected upload rather than a document.
const MaxTextLen = 50000

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest validates the content generation request. Blank
// text is rejected here, at the presentation boundary; the core itself
// accepts any string.
func (v *Validator) ValidateGenerateRequest(text string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	} else if utf8.RuneCountInString(text) > MaxTextLen {
		errors = append(errors, domain.NewOutOfRangeError("text", utf8.RuneCountInString(text), 1, MaxTextLen))
	}

	return errors
}
