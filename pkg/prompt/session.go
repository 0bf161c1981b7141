package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-acroform/pkg/acroform"
	"github.com/goliatone/go-acroform/pkg/appearance"
	"github.com/goliatone/go-acroform/pkg/choice"
)

const defaultMaxAttempts = 3

// Session asks for choice field values until one is accepted.
type Session struct {
	driver      Driver
	maxAttempts int
	pageSize    int
}

// Option configures a Session.
type Option func(*Session)

// WithDriver overrides the survey driver.
func WithDriver(driver Driver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithMaxAttempts bounds how many values are asked for before giving up.
// Zero or negative means retry until the user aborts.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		s.maxAttempts = n
	}
}

// WithPageSize sets how many options a select prompt shows at once.
func WithPageSize(n int) Option {
	return func(s *Session) {
		s.pageSize = n
	}
}

// NewSession builds a Session. Without WithDriver it talks to the terminal.
func NewSession(options ...Option) *Session {
	s := &Session{maxAttempts: defaultMaxAttempts}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// Run prompts for field's value and stores it. Rejected values and
// appearance failures are reported through the driver and asked again.
//
// A selected option is submitted by its export key. The resolver still keeps
// the first option matching that key by key or display value, so a key that
// equals an earlier option's display value resolves to the earlier option.
func (s *Session) Run(ctx context.Context, field *acroform.ChoiceField) error {
	if field == nil {
		return ErrNilField
	}
	labels := displays(field)
	if len(labels) == 0 && !field.IsEditable() {
		return choice.ErrNoOptionsAvailable
	}

	for attempt := 1; s.maxAttempts <= 0 || attempt <= s.maxAttempts; attempt++ {
		candidate, err := s.ask(ctx, field, labels)
		if err != nil {
			return err
		}
		err = field.SetValue(candidate)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if infoErr := s.driver.Info(ctx, err.Error()); infoErr != nil {
			return infoErr
		}
	}
	return fmt.Errorf("%w: %s after %d attempts", ErrTooManyAttempts, field.Name(), s.maxAttempts)
}

// RunForm prompts for every field of form in order.
func (s *Session) RunForm(ctx context.Context, form *acroform.Form) error {
	if form == nil {
		return nil
	}
	for _, field := range form.Fields() {
		if err := s.Run(ctx, field); err != nil {
			return fmt.Errorf("prompt: field %s: %w", field.Name(), err)
		}
	}
	return nil
}

func (s *Session) ask(ctx context.Context, field *acroform.ChoiceField, labels []string) (string, error) {
	message := fieldMessage(field)
	if field.IsEditable() {
		return s.driver.Input(ctx, InputConfig{
			Message:     message,
			Default:     field.Display(),
			Help:        "Pick a listed value or type your own",
			Suggestions: labels,
		})
	}

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      labels,
		DefaultIndex: currentIndex(field, len(labels)),
		PageSize:     s.pageSize,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(labels) {
		return "", fmt.Errorf("prompt: selection %d out of range", idx)
	}
	return field.Options()[idx].Export(), nil
}

func retryable(err error) bool {
	if _, ok := choice.RejectedValue(err); ok {
		return true
	}
	var computeErr *appearance.ComputationError
	return errors.As(err, &computeErr)
}

func displays(field *acroform.ChoiceField) []string {
	options := field.Options()
	out := make([]string, 0, len(options))
	for _, option := range options {
		out = append(out, option.Display())
	}
	return out
}

func currentIndex(field *acroform.ChoiceField, n int) int {
	if values := field.SelectedIndex().Values(); len(values) > 0 && values[0] >= 0 && values[0] < n {
		return values[0]
	}
	return -1
}

func fieldMessage(field *acroform.ChoiceField) string {
	if label := field.Label(); label != "" {
		return label
	}
	return field.Name()
}
