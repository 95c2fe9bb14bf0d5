package services

import (
	"errors"
	"fmt"

	"github.com/diewo77/go-billing/validation"
)

// ErrNotFound is returned when a record does not exist or is not owned by
// the requesting user. The two cases are deliberately indistinguishable so
// callers cannot probe for other tenants' data.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when a referenced client or product belongs to
// another user. The HTTP layer collapses it to not found as well.
var ErrForbidden = errors.New("forbidden")

// ValidationError reports malformed or missing input fields. The caller must
// correct the input; retrying the same request cannot succeed.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d violation(s)", len(e.Violations))
}

// PersistenceError wraps a storage failure. By the time it is returned the
// enclosing transaction has been rolled back, so the whole operation may be
// retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// classify wraps errors that escaped a transaction unclassified, such as a
// failing commit, so callers only ever see the taxonomy above.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	var pe *PersistenceError
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden) ||
		errors.As(err, &ve) || errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
