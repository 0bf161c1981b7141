package fielddef

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-acroform/pkg/model"
)

// ErrInvalidDefinition is wrapped by every validation failure.
var ErrInvalidDefinition = errors.New("invalid field definition")

// Validate checks names, kinds and selected indices.
func Validate(doc Document) error {
	seen := make(map[string]struct{}, len(doc.Fields))
	for i, def := range doc.Fields {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidDefinition, i)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidDefinition, name)
		}
		seen[name] = struct{}{}

		switch def.kind() {
		case "", model.KindList:
			if def.Editable {
				return fmt.Errorf("%w: field %q: only combo boxes can be editable", ErrInvalidDefinition, name)
			}
		case model.KindCombo:
		default:
			return fmt.Errorf("%w: field %q: unknown kind %q", ErrInvalidDefinition, name, def.Kind)
		}

		if def.MaxLen < 0 {
			return fmt.Errorf("%w: field %q: maxLen must not be negative", ErrInvalidDefinition, name)
		}
		if def.SelectedIndex != nil {
			for _, idx := range *def.SelectedIndex {
				if idx < 0 || idx >= len(def.Options) {
					return fmt.Errorf("%w: field %q: selected index %d out of range", ErrInvalidDefinition, name, idx)
				}
			}
		}
	}
	return nil
}
