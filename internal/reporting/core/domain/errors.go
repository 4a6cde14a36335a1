package domain

import "fmt"

// QueryFailure is returned when the store could not answer a catalog query
// (transport, auth, syntax or scan problems).
type QueryFailure struct {
	Query   QueryID
	Message string
	Err     error
}

func (e *QueryFailure) Error() string {
	return fmt.Sprintf("query %s failed: %s", e.Query, e.Message)
}

func (e *QueryFailure) Unwrap() error { return e.Err }

// DerivationFailure is returned when a table required for derivation is
// missing because its query failed.
type DerivationFailure struct {
	Cause error
}

func (e *DerivationFailure) Error() string {
	return fmt.Sprintf("derivation failed: %v", e.Cause)
}

func (e *DerivationFailure) Unwrap() error { return e.Cause }
