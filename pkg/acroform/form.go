package acroform

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFieldNotFound is wrapped when a name does not resolve to a field.
	ErrFieldNotFound = errors.New("acroform: field not found")
	// ErrDuplicateField is wrapped when a name is registered twice.
	ErrDuplicateField = errors.New("acroform: duplicate field")
)

// Form is an ordered collection of choice fields keyed by name.
type Form struct {
	fields []*ChoiceField
	byName map[string]*ChoiceField
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{byName: make(map[string]*ChoiceField)}
}

// Add registers fields in order. Names must be non-empty and unique.
func (f *Form) Add(fields ...*ChoiceField) error {
	for _, field := range fields {
		if field == nil {
			continue
		}
		name := strings.TrimSpace(field.Name())
		if name == "" {
			return errors.New("acroform: field name is required")
		}
		if _, exists := f.byName[name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		f.byName[name] = field
		f.fields = append(f.fields, field)
	}
	return nil
}

// Field looks up a field by name.
func (f *Form) Field(name string) (*ChoiceField, bool) {
	if f == nil {
		return nil, false
	}
	field, ok := f.byName[strings.TrimSpace(name)]
	return field, ok
}

// Fields returns the fields in registration order.
func (f *Form) Fields() []*ChoiceField {
	if f == nil {
		return nil
	}
	return append([]*ChoiceField(nil), f.fields...)
}

// Names returns the registered field names in order.
func (f *Form) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		names = append(names, field.Name())
	}
	return names
}

// SetValue resolves value on the named field.
func (f *Form) SetValue(name, value string) error {
	field, ok := f.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return field.SetValue(value)
}
