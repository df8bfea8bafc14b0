package errors

import "fmt"

// NilArgumentError reports a nil collaborator passed to a constructor.
type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

// InvalidStateError reports an entity that violates its own invariants,
// e.g. a database row with required columns missing.
type InvalidStateError struct {
	message string
}

func NewInvalidStateError(message string) *InvalidStateError {
	return &InvalidStateError{message: message}
}

func (e *InvalidStateError) Error() string {
	return e.message
}
