package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is
	ErrValidation = goerr.New("validation failed")
	// ErrInvalidRisk is returned by a store asked to persist an inconsistent risk
	ErrInvalidRisk = goerr.New("invalid risk")
)

// User-facing validation messages
const (
	MsgInvalidHazard     = "Hazard is required and must be at least 3 characters"
	MsgInvalidLikelihood = "Likelihood must be between 1 and 5"
	MsgInvalidImpact     = "Impact must be between 1 and 5"
)

// Fields of a risk input
const (
	FieldHazard     = "hazard"
	FieldLikelihood = "likelihood"
	FieldImpact     = "impact"
)

// Context keys for error values
const (
	RiskIDKey = "risk_id"
)

// ValidationError is a client-caused input error with a message safe to show to the user
type ValidationError struct {
	Field   string
	Message string
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports ErrValidation as a match
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationMessage returns the user-facing message of a validation error in err's chain
func ValidationMessage(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	return "", false
}
