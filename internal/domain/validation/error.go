// Package validation defines how domain entities report rule violations.
//
// Validators report each violation as an Error to a Handler. The Handler
// decides the outcome: ThrowsHandler fails on the first report, while
// Notification collects every report for later inspection.
//
//	n := validation.NewNotification()
//	_ = c.Validate(n)
//	if n.HasErrors() {
//	    return n.Err()
//	}
package validation

import (
	"strings"

	"github.com/jsamuelsen11/catalog-admin/internal/domain"
)

// Error describes a single validation failure.
type Error struct {
	Message string
}

// NewError returns an Error carrying msg.
func NewError(msg string) Error {
	return Error{Message: msg}
}

// DomainError is the terminal failure raised when validation does not pass.
// Errors is authoritative; Message is only set when the failure was built
// from a single Error.
//
// Use errors.Is(err, domain.ErrValidation) for simple checks, or
// errors.As(err, &derr) to reach derr.Errors.
type DomainError struct {
	Message string
	Errors  []Error
}

// With builds a DomainError from a single Error, inheriting its message.
func With(err Error) *DomainError {
	return &DomainError{
		Message: err.Message,
		Errors:  []Error{err},
	}
}

// WithErrors builds a DomainError from a list of errors. Message stays empty.
func WithErrors(errs []Error) *DomainError {
	out := make([]Error, len(errs))
	copy(out, errs)
	return &DomainError{Errors: out}
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return domain.ErrValidation.Error() + ": " + e.Message
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Message)
	}
	return domain.ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *DomainError) Unwrap() error {
	return domain.ErrValidation
}

// FirstError returns the first collected error, or false when there are none.
func (e *DomainError) FirstError() (Error, bool) {
	if len(e.Errors) == 0 {
		return Error{}, false
	}
	return e.Errors[0], true
}
