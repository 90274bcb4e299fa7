package timer

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/tock/internal/models"
)

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrInvalidDuration   = errors.New("duration must be positive")
)

// TransitionError reports a transition that failed or was not allowed from
// the timer's current state.
type TransitionError struct {
	Op   string
	From models.StateKind
	Err  error
}

func (e *TransitionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s from %s: %v", e.Op, e.From, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

func invalid(op string, from models.StateKind) error {
	return &TransitionError{Op: op, From: from, Err: ErrInvalidTransition}
}
