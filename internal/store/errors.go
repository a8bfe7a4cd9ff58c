package store

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable is returned by every operation of a Store built
	// without a backend. Reads also return a nil slice, so callers that only
	// want "no data" can treat it as empty.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptData matches any *CorruptDataError
	ErrCorruptData = errors.New("stored data is corrupt")

	// ErrUnknownList is returned when reference checks are on and a task
	// names a list that does not exist
	ErrUnknownList = errors.New("unknown list")

	// ErrUnknownTag is returned when reference checks are on and a task
	// names a tag that does not exist
	ErrUnknownTag = errors.New("unknown tag")
)

// CorruptDataError reports a storage slot whose content is not a valid
// JSON array of the expected entity. The slot is left untouched.
type CorruptDataError struct {
	Key string
	Err error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data in %s: %v", e.Key, e.Err)
}

func (e *CorruptDataError) Unwrap() []error {
	return []error{ErrCorruptData, e.Err}
}
