package handlers

import (
	"errors"
	"fmt"

	"github.com/strokesecure/stroke-records/internal/validation"
)

// ErrorResponse is the uniform error body for every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// asFieldError extracts a validation failure from an error chain.
func asFieldError(err error) (*validation.FieldError, bool) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}

// fieldErrorMessage renders a field-level validation failure for the client.
func fieldErrorMessage(e *validation.FieldError) string {
	switch e.Rule {
	case validation.RuleInvalidUsername:
		return "Username must be 3-20 characters: letters, digits, underscore"
	case validation.RuleWeakPassword:
		return "Password must be at least 6 characters long"
	case validation.RuleInvalidName:
		return "Name can only contain letters, spaces, hyphens, and apostrophes"
	case validation.RuleInvalidAge:
		return "Age must be between 0 and 150"
	case validation.RuleInvalidID:
		return "Invalid patient ID format"
	case validation.RuleInvalidCategory:
		return fmt.Sprintf("Invalid value for %s", e.Field)
	case validation.RuleInvalidNumeric:
		return fmt.Sprintf("%s must be a valid non-negative number", e.Field)
	default:
		return fmt.Sprintf("Invalid value for %s", e.Field)
	}
}
