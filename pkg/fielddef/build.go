package fielddef

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-acroform/pkg/acroform"
	"github.com/goliatone/go-acroform/pkg/appearance"
	"github.com/goliatone/go-acroform/pkg/choice"
	"github.com/goliatone/go-acroform/pkg/model"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	resolver   *choice.Resolver
	appearance appearance.Generator
}

// WithResolver shares resolver across every built field.
func WithResolver(resolver *choice.Resolver) BuildOption {
	return func(cfg *buildConfig) {
		cfg.resolver = resolver
	}
}

// WithAppearance overrides the per-field appearance generator.
func WithAppearance(gen appearance.Generator) BuildOption {
	return func(cfg *buildConfig) {
		cfg.appearance = gen
	}
}

// Build turns definitions into a form. Initial values are stored as loaded,
// without resolving them against the options list.
func Build(doc Document, options ...BuildOption) (*acroform.Form, error) {
	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("fielddef: %w", err)
	}

	cfg := &buildConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	form := acroform.NewForm()
	for _, def := range doc.Fields {
		field := acroform.NewChoiceField(Dictionary(def),
			acroform.WithResolver(cfg.resolver),
			acroform.WithAppearance(cfg.appearance),
		)
		if err := form.Add(field); err != nil {
			return nil, fmt.Errorf("fielddef: %w", err)
		}
	}
	return form, nil
}

// Dictionary converts a single definition into a field dictionary.
func Dictionary(def Definition) *acroform.Dictionary {
	opts := make([]model.Option, 0, len(def.Options))
	for _, option := range def.Options {
		opts = append(opts, option.Option())
	}

	dict := &acroform.Dictionary{
		Name:    strings.TrimSpace(def.Name),
		Label:   def.Label,
		Opt:     opts,
		Ff:      model.FlagsFor(def.kind(), def.Editable),
		V:       def.Value,
		DV:      def.Default,
		MaxLen:  def.MaxLen,
		Display: displayFor(opts, def.Value),
	}
	if def.SelectedIndex != nil {
		dict.I = model.NewIndexList(*def.SelectedIndex...)
	}
	return dict
}

// Definitions converts a form back into its definition document.
func Definitions(form *acroform.Form) Document {
	var doc Document
	for _, field := range form.Fields() {
		dict := field.Dictionary()
		def := Definition{
			Name:     dict.Name,
			Label:    dict.Label,
			Kind:     dict.Ff.Kind(),
			Editable: dict.Ff.Editable(),
			MaxLen:   dict.MaxLen,
			Value:    dict.V,
			Default:  dict.DV,
		}
		for _, option := range dict.Opt {
			def.Options = append(def.Options, OptionDefFrom(option))
		}
		if dict.I != nil {
			indices := dict.I.Values()
			if indices == nil {
				indices = []int{}
			}
			def.SelectedIndex = &indices
		}
		doc.Fields = append(doc.Fields, def)
	}
	return doc
}

// displayFor maps a stored export key back to its display string.
func displayFor(opts []model.Option, value string) string {
	for _, option := range opts {
		if option.Paired() && option.Export() == value {
			return option.Display()
		}
	}
	return value
}
