package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the stable, client-visible classification of an error
type Kind string

const (
	KindValidation   Kind = "validation_error"
	KindConflict     Kind = "uniqueness_conflict"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindCascade      Kind = "cascade_failure"
	KindPersistence  Kind = "persistence_error"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("name already exists")
	ErrUnauthorized  = errors.New("authentication required")
	ErrForbidden     = errors.New("access denied")
	ErrCascadeFailed = errors.New("failed to remove dependent records")

	ErrHospitalNotFound    = fmt.Errorf("hospital %w", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)

	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("invalid or expired token: %w", ErrUnauthorized)
	ErrUsernameTaken      = fmt.Errorf("username %w", ErrDuplicateName)
)

// FieldError describes one failed rule on one field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every field-level failure of a payload
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// HasField reports whether the given field failed validation
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// KindOf classifies err. Unknown errors are persistence errors.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrDuplicateName):
		return KindConflict
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrCascadeFailed):
		return KindCascade
	default:
		return KindPersistence
	}
}
