package schema

import "fmt"

// StoreError wraps any connectivity, permission, or transport failure from
// the remote analysis store. It is never cached; callers treat it as "no data
// available" and render an empty board rather than crashing.
type StoreError struct {
	Table string
	Err   error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store scan of %q failed: %v", e.Table, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *StoreError) Unwrap() error {
	return e.Err
}
