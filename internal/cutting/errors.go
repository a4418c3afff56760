package cutting

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a calculation rejected because a required field is
	// missing, non-numeric or out of range. Callers surface it as a
	// "fill in required fields" state.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTable marks a malformed feed table. It is a configuration
	// defect and should stop the process at startup.
	ErrInvalidTable = errors.New("invalid feed table")

	// ErrUnknownMaterial is returned when a material key is not in a catalog.
	ErrUnknownMaterial = fmt.Errorf("%w: unknown material", ErrInvalidInput)
)

// InputError names the field that caused a validation reject.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func mustBePositive(field string, v float64) error {
	if !(v > 0) {
		return &InputError{Field: field, Reason: "must be greater than zero"}
	}
	return nil
}

// RequirePositive returns an *InputError for the first field whose value is
// zero, negative or NaN. Fields are checked in the order given.
func RequirePositive(fields ...Field) error {
	for _, f := range fields {
		if err := mustBePositive(f.Name, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// Field is a named numeric input used by RequirePositive.
type Field struct {
	Name  string
	Value float64
}
