// Package report renders the state of choice fields as JSON, YAML or text.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-acroform/pkg/acroform"
	"github.com/goliatone/go-acroform/pkg/model"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ErrUnknownFormat is returned for formats other than json, yaml and text.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat normalises raw. An empty value selects text.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, raw)
	}
}

// Report is the serialised form of a set of fields.
type Report struct {
	Fields []Entry `json:"fields" yaml:"fields"`
}

// Entry describes one field. SelectedIndex is nil when the field has no
// index record, which is different from an empty one.
type Entry struct {
	Name          string        `json:"name" yaml:"name"`
	Label         string        `json:"label,omitempty" yaml:"label,omitempty"`
	Kind          model.Kind    `json:"kind" yaml:"kind"`
	Editable      bool          `json:"editable" yaml:"editable"`
	Value         string        `json:"value" yaml:"value"`
	Display       string        `json:"display" yaml:"display"`
	Appearance    string        `json:"appearance,omitempty" yaml:"appearance,omitempty"`
	SelectedIndex *[]int        `json:"selectedIndex" yaml:"selectedIndex"`
	Options       []OptionEntry `json:"options" yaml:"options"`
}

// OptionEntry is one entry of a field's option list.
type OptionEntry struct {
	Export  string `json:"export" yaml:"export"`
	Display string `json:"display" yaml:"display"`
	Paired  bool   `json:"paired,omitempty" yaml:"paired,omitempty"`
}

// Entries snapshots fields. Nil fields are skipped.
func Entries(fields []*acroform.ChoiceField) []Entry {
	out := make([]Entry, 0, len(fields))
	for _, field := range fields {
		if field == nil {
			continue
		}
		entry := Entry{
			Name:       field.Name(),
			Label:      field.Label(),
			Kind:       field.Kind(),
			Editable:   field.IsEditable(),
			Value:      field.Value(),
			Display:    field.Display(),
			Appearance: field.AppearanceText(),
			Options:    make([]OptionEntry, 0, len(field.Options())),
		}
		if index := field.SelectedIndex(); index != nil {
			values := index.Values()
			if values == nil {
				values = []int{}
			}
			entry.SelectedIndex = &values
		}
		for _, option := range field.Options() {
			entry.Options = append(entry.Options, OptionEntry{
				Export:  option.Export(),
				Display: option.Display(),
				Paired:  option.Paired(),
			})
		}
		out = append(out, entry)
	}
	return out
}

// Render writes fields to w in format.
func Render(w io.Writer, fields []*acroform.ChoiceField, format Format) error {
	if w == nil {
		return errors.New("report: writer is nil")
	}
	rep := Report{Fields: Entries(fields)}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return nil
	case FormatText, "":
		return renderText(w, rep.Fields)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
