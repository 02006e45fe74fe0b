package persist

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptState marks a stored blob that cannot be decoded into a valid
	// field collection. Callers recover by starting from an empty collection.
	ErrCorruptState = errors.New("persist: corrupt state")
	// ErrInvalidKey rejects slot keys that are empty or escape the store.
	ErrInvalidKey = errors.New("persist: invalid key")
	// ErrUnknownFormat rejects codec formats other than json and yaml.
	ErrUnknownFormat = errors.New("persist: unknown format")
)

// CorruptStateError describes why a blob was rejected.
type CorruptStateError struct {
	Reason string
	Err    error
}

func (e *CorruptStateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("persist: corrupt state: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("persist: corrupt state: %s", e.Reason)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

func (e *CorruptStateError) Is(target error) bool {
	return target == ErrCorruptState
}

func corrupt(reason string, err error) error {
	return &CorruptStateError{Reason: reason, Err: err}
}
