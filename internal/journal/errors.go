package journal

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned by every service operation invoked without a
// current user id. Callers surface a sign-in prompt; there is no retry.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrVersionConflict is returned by StreakStore.Update when the stored record
// version no longer matches the one that was read.
var ErrVersionConflict = errors.New("streak record version conflict")

// ErrEntryNotFound is returned when an entry id does not exist for the user.
var ErrEntryNotFound = errors.New("entry not found")

// PersistenceError wraps an underlying store failure. The service never
// retries these automatically; retries are the caller's call.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
