package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrStatePrecondition means the observed state does not permit the
	// requested transition. No side effect has happened.
	ErrStatePrecondition = errors.New("server state does not permit the transition")
	// ErrUnknownServerState means the observed state is outside the
	// lifecycle enumeration.
	ErrUnknownServerState = errors.New("unknown server state")
	// ErrStateConflict means a conditional write found the record no longer
	// in the expected state.
	ErrStateConflict = errors.New("server state changed concurrently")
)

func PreconditionError(observed string, action string) error {
	return fmt.Errorf("state %q does not permit %s: %w", observed, action, ErrStatePrecondition)
}

func UnknownStateError(state string) error {
	return fmt.Errorf("state %q: %w", state, ErrUnknownServerState)
}
