package calculation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInsufficientInputs signals that a record is missing the fields needed
// to compute a result. Callers match it with errors.Is and phrase their own
// "needs more info" message; the engine never formats user-facing text.
var ErrInsufficientInputs = errors.New("insufficient inputs")

// CalcError reports a domain violation (non-positive loan, zero term,
// negative rate) from one of the calculation entry points.
type CalcError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *CalcError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

// InsufficientInputsError carries the list of missing fields so the calling
// layer can tell the user exactly what to add. It matches
// ErrInsufficientInputs under errors.Is.
type InsufficientInputsError struct {
	Missing []string
}

func (e *InsufficientInputsError) Error() string {
	return fmt.Sprintf("insufficient inputs: missing %s", strings.Join(e.Missing, ", "))
}

func (e *InsufficientInputsError) Is(target error) bool {
	return target == ErrInsufficientInputs
}
