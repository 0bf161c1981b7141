// Package appearance computes the visible text drawn for a field value. It
// stands in for the appearance stream a document writer would regenerate and
// is the failure source behind appearance errors surfaced by the resolver.
package appearance

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ErrValueTooLong is wrapped when a value exceeds the field's MaxLen.
	ErrValueTooLong = errors.New("appearance: value exceeds max length")
	// ErrUnprintable is wrapped when a value contains control characters
	// that a single-line appearance cannot draw.
	ErrUnprintable = errors.New("appearance: value contains control characters")
)

// ComputationError reports a value whose appearance could not be computed.
type ComputationError struct {
	Value string
	Err   error
}

func (e *ComputationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("appearance: compute %q: %v", e.Value, e.Err)
}

func (e *ComputationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Generator turns a display value into appearance content.
type Generator interface {
	Compute(value string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(string) (string, error)

// Compute implements Generator.
func (f GeneratorFunc) Compute(value string) (string, error) {
	return f(value)
}

// Text draws a value as single-line, markup-free text. MaxLen limits the
// value length in runes; zero or negative disables the limit.
type Text struct {
	MaxLen int
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Compute implements Generator. The returned text has markup stripped and is
// safe to embed in HTML previews.
func (t Text) Compute(value string) (string, error) {
	if t.MaxLen > 0 && utf8.RuneCountInString(value) > t.MaxLen {
		return "", &ComputationError{
			Value: value,
			Err:   fmt.Errorf("%w (%d > %d)", ErrValueTooLong, utf8.RuneCountInString(value), t.MaxLen),
		}
	}
	if strings.IndexFunc(value, unicode.IsControl) >= 0 {
		return "", &ComputationError{Value: value, Err: ErrUnprintable}
	}
	return strings.TrimSpace(textSanitizer().Sanitize(value)), nil
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
