package sqlstore

import (
	"errors"
	"fmt"
)

// ErrUndecodable marks a scan failure caused by a stored value that cannot be
// decoded into its Go type. Scanner implementations report it through an Is
// method so the store can classify the failure without knowing entity types.
var ErrUndecodable = errors.New("sqlstore: undecodable value")

// InitError is returned when the store or its statements cannot be set up.
// It is fatal for the store instance.
type InitError struct {
	Stage string
	Query QueryID
	Err   error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	if e.Query != 0 {
		return fmt.Sprintf("sqlstore: init %s (%s): %v", e.Stage, e.Query, e.Err)
	}
	return fmt.Sprintf("sqlstore: init %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// QueryError is returned when a statement fails to bind, execute or iterate.
type QueryError struct {
	Query QueryID
	Err   error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("sqlstore: query %s: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// DecodeError is returned when a row was read but a column could not be
// decoded into the destination record.
type DecodeError struct {
	Query QueryID
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("sqlstore: decode %s: %v", e.Query, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsInitError reports whether err wraps an *InitError.
func IsInitError(err error) bool {
	var target *InitError
	return errors.As(err, &target)
}

// IsQueryError reports whether err wraps a *QueryError.
func IsQueryError(err error) bool {
	var target *QueryError
	return errors.As(err, &target)
}

// IsDecodeError reports whether err wraps a *DecodeError.
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}
