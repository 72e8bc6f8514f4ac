package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkerFailed indicates a force-pass worker did not complete. The
	// frame is discarded and the system is left as it was before the step.
	ErrWorkerFailed = errors.New("engine: force pass worker failed")

	// ErrInvalidParams indicates a physics parameter outside its valid range.
	ErrInvalidParams = errors.New("engine: invalid physics parameters")
)

// StepError wraps a worker failure with the frame it happened in.
type StepError struct {
	Frame  int
	Worker int
	Cause  any
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: worker %d, frame %d: %v", ErrWorkerFailed, e.Worker, e.Frame, e.Cause)
}

func (e *StepError) Unwrap() error {
	return ErrWorkerFailed
}
