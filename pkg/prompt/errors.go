package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrTooManyAttempts is returned once a session runs out of retries.
	ErrTooManyAttempts = errors.New("prompt: too many rejected values")
	// ErrNilField is returned when Run receives no field.
	ErrNilField = errors.New("prompt: field is nil")
)
