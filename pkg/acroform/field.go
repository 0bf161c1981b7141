package acroform

import (
	"github.com/goliatone/go-acroform/pkg/appearance"
	"github.com/goliatone/go-acroform/pkg/choice"
	"github.com/goliatone/go-acroform/pkg/model"
)

// Dictionary is the backing store of a choice field.
type Dictionary struct {
	Name   string
	Label  string
	Opt    []model.Option
	Ff     model.Flags
	V      string
	DV     string
	I      *model.IndexList
	MaxLen int

	// Display is the value the appearance was last drawn for and Appearance
	// the computed text. For paired options V holds the export key instead.
	Display    string
	Appearance string
}

// ChoiceField is a combo box or list box backed by a Dictionary.
type ChoiceField struct {
	dict       *Dictionary
	appearance appearance.Generator
	resolver   *choice.Resolver
}

var _ choice.Field = (*ChoiceField)(nil)

// Option configures a ChoiceField.
type Option func(*ChoiceField)

// WithAppearance overrides the appearance generator. The default draws plain
// text limited to the dictionary's MaxLen.
func WithAppearance(gen appearance.Generator) Option {
	return func(f *ChoiceField) {
		if gen != nil {
			f.appearance = gen
		}
	}
}

// WithResolver shares a configured resolver across fields.
func WithResolver(resolver *choice.Resolver) Option {
	return func(f *ChoiceField) {
		if resolver != nil {
			f.resolver = resolver
		}
	}
}

// NewChoiceField wraps dict. A nil dict yields an empty list box.
func NewChoiceField(dict *Dictionary, options ...Option) *ChoiceField {
	if dict == nil {
		dict = &Dictionary{}
	}
	f := &ChoiceField{dict: dict}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.appearance == nil {
		f.appearance = appearance.Text{MaxLen: dict.MaxLen}
	}
	if f.resolver == nil {
		f.resolver = choice.New()
	}
	return f
}

// SetValue resolves value against the options list and stores the result.
// Errors come straight from the resolver or the appearance generator.
func (f *ChoiceField) SetValue(value string) error {
	return f.resolver.Resolve(f, value)
}

// Reset restores the default value. Without a default the stored value,
// display and appearance are cleared along with any selected index.
func (f *ChoiceField) Reset() error {
	if f.dict.DV != "" {
		return f.SetValue(f.dict.DV)
	}
	f.dict.V = ""
	f.dict.Display = ""
	f.dict.Appearance = ""
	f.dict.I.Clear()
	return nil
}

// Options implements choice.Field. The slice is shared with the dictionary.
func (f *ChoiceField) Options() []model.Option { return f.dict.Opt }

// Flags implements choice.Field.
func (f *ChoiceField) Flags() model.Flags { return f.dict.Ff }

// SetDisplayValue implements choice.Field. The appearance is computed first so
// a failure leaves the dictionary untouched.
func (f *ChoiceField) SetDisplayValue(value string) error {
	text, err := f.appearance.Compute(value)
	if err != nil {
		return err
	}
	f.dict.V = value
	f.dict.Display = value
	f.dict.Appearance = text
	return nil
}

// SetStoredKey implements choice.Field.
func (f *ChoiceField) SetStoredKey(key string) { f.dict.V = key }

// SelectedIndex implements choice.Field.
func (f *ChoiceField) SelectedIndex() *model.IndexList { return f.dict.I }

// Name returns the field name.
func (f *ChoiceField) Name() string { return f.dict.Name }

// Label returns the alternate name shown to users.
func (f *ChoiceField) Label() string { return f.dict.Label }

// Value returns the stored value (the export key for paired options).
func (f *ChoiceField) Value() string { return f.dict.V }

// Display returns the value the appearance was drawn for.
func (f *ChoiceField) Display() string { return f.dict.Display }

// AppearanceText returns the last computed appearance text.
func (f *ChoiceField) AppearanceText() string { return f.dict.Appearance }

// Kind reports whether the field is a list box or a combo box.
func (f *ChoiceField) Kind() model.Kind { return f.dict.Ff.Kind() }

// IsCombo reports whether the combo bit is set.
func (f *ChoiceField) IsCombo() bool { return f.dict.Ff.Has(model.FlagCombo) }

// IsEditable reports whether the field accepts free text.
func (f *ChoiceField) IsEditable() bool { return f.dict.Ff.Editable() }

// SelectedOption returns the option the index record points at. It reports
// false when no record exists, the record is empty or out of range.
func (f *ChoiceField) SelectedOption() (model.Option, bool) {
	indices := f.dict.I.Values()
	if len(indices) == 0 {
		return model.Option{}, false
	}
	idx := indices[0]
	if idx < 0 || idx >= len(f.dict.Opt) {
		return model.Option{}, false
	}
	return f.dict.Opt[idx], true
}

// Dictionary exposes the backing store.
func (f *ChoiceField) Dictionary() *Dictionary { return f.dict }
