package forecast

import (
	"errors"
	"fmt"
)

var (
	ErrReservedName      = errors.New("transformer type is a built in transformer")
	ErrAlreadyRegistered = errors.New("transformer type is already defined")
	ErrTypeMismatch      = errors.New("field does not provide a sequence")
	ErrUnresolvedTarget  = errors.New("target could not be resolved")
	ErrInvalidCondition  = errors.New("condition function cannot be called with the record")
)

// FieldError reports a failed Cast or CastAll call.
type FieldError struct {
	// Op is "cast", "cast_all" or "when".
	Op     string
	Source string
	Output string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Source == "" && e.Output == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s -> %s: %v", e.Op, e.Source, e.Output, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
