package trips

import (
	"errors"
	"fmt"
)

// ErrTripNotFound reports a delete against an id the store does not hold.
var ErrTripNotFound = errors.New("trip not found")

// StoreError wraps a persistence failure with the operation that failed.
type StoreError struct {
	Op  string // save / list / delete
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("trips: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
