package choice

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOptionsAvailable is returned when a non-editable field has an empty
	// options list.
	ErrNoOptionsAvailable = errors.New("choice: cannot set a value for a choice field with no options")
	// ErrValueNotAnOption matches every *ValueNotAnOptionError via errors.Is.
	ErrValueNotAnOption = errors.New("choice: value is not an available option")
	// ErrNilField is returned when Resolve receives a nil field.
	ErrNilField = errors.New("choice: field is nil")
)

// ValueNotAnOptionError reports a candidate rejected by a non-editable field.
type ValueNotAnOptionError struct {
	Value string
}

func (e *ValueNotAnOptionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("choice: %q was not an available option", e.Value)
}

// Is lets errors.Is(err, ErrValueNotAnOption) hold for any rejected value.
func (e *ValueNotAnOptionError) Is(target error) bool {
	return target == ErrValueNotAnOption
}

// RejectedValue extracts the candidate carried by a ValueNotAnOptionError.
func RejectedValue(err error) (string, bool) {
	var notOption *ValueNotAnOptionError
	if errors.As(err, &notOption) && notOption != nil {
		return notOption.Value, true
	}
	return "", false
}
