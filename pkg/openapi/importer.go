package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-acroform/pkg/fielddef"
	"github.com/goliatone/go-acroform/pkg/model"
)

const (
	labelsExtensionKey   = "x-enum-labels"
	kindExtensionKey     = "x-acroform-kind"
	editableExtensionKey = "x-acroform-editable"
)

// Import loads an OpenAPI document and returns a definition for every enum
// property of its component schemas, plus component schemas that are enums
// themselves. Definitions are sorted by name.
func Import(ctx context.Context, data []byte) (fielddef.Document, error) {
	if err := ctx.Err(); err != nil {
		return fielddef.Document{}, err
	}
	if len(data) == 0 {
		return fielddef.Document{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return fielddef.Document{}, fmt.Errorf("openapi: load document: %w", err)
	}

	var doc fielddef.Document
	if spec.Components == nil {
		return doc, nil
	}
	for schemaName, ref := range spec.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		if len(ref.Value.Enum) > 0 {
			def, err := definitionFromSchema(schemaName, ref.Value)
			if err != nil {
				return fielddef.Document{}, err
			}
			doc.Fields = append(doc.Fields, def)
		}
		for propName, prop := range ref.Value.Properties {
			if prop == nil || prop.Value == nil || len(prop.Value.Enum) == 0 {
				continue
			}
			def, err := definitionFromSchema(schemaName+"."+propName, prop.Value)
			if err != nil {
				return fielddef.Document{}, err
			}
			if prop.Value.Title == "" {
				def.Label = model.Label(propName)
			}
			doc.Fields = append(doc.Fields, def)
		}
	}

	sort.Slice(doc.Fields, func(i, j int) bool {
		return doc.Fields[i].Name < doc.Fields[j].Name
	})
	if err := fielddef.Validate(doc); err != nil {
		return fielddef.Document{}, fmt.Errorf("openapi: %w", err)
	}
	return doc, nil
}

// ImportSource loads src with loader and imports it.
func ImportSource(ctx context.Context, loader *Loader, src Source) (fielddef.Document, error) {
	if loader == nil {
		loader = NewLoader()
	}
	data, err := loader.Load(ctx, src)
	if err != nil {
		return fielddef.Document{}, err
	}
	return Import(ctx, data)
}

func definitionFromSchema(name string, schema *openapi3.Schema) (fielddef.Definition, error) {
	def := fielddef.Definition{
		Name:  name,
		Label: schema.Title,
		Kind:  model.KindList,
	}
	if schema.MaxLength != nil {
		def.MaxLen = int(*schema.MaxLength)
	}
	if schema.Default != nil {
		def.Default = fmt.Sprint(schema.Default)
	}

	if raw, ok := schema.Extensions[kindExtensionKey]; ok {
		kind, _ := raw.(string)
		switch model.Kind(strings.ToLower(strings.TrimSpace(kind))) {
		case model.KindCombo:
			def.Kind = model.KindCombo
		case model.KindList:
		default:
			return def, fmt.Errorf("openapi: schema %s: %s must be %q or %q", name, kindExtensionKey, model.KindList, model.KindCombo)
		}
	}
	if raw, ok := schema.Extensions[editableExtensionKey]; ok {
		editable, isBool := raw.(bool)
		if !isBool {
			return def, fmt.Errorf("openapi: schema %s: %s must be a boolean", name, editableExtensionKey)
		}
		if editable {
			// Free-text entry only exists on combo boxes.
			def.Kind = model.KindCombo
			def.Editable = true
		}
	}

	labels, err := enumLabels(name, schema)
	if err != nil {
		return def, err
	}
	for i, value := range schema.Enum {
		// Nullable enums list null as a member; it is not a selectable option.
		if value == nil {
			continue
		}
		key := fmt.Sprint(value)
		if labels != nil {
			def.Options = append(def.Options, fielddef.OptionDef{Key: key, Value: labels[i], Paired: true})
			continue
		}
		def.Options = append(def.Options, fielddef.OptionDef{Value: key})
	}
	return def, nil
}

func enumLabels(name string, schema *openapi3.Schema) ([]string, error) {
	raw, ok := schema.Extensions[labelsExtensionKey]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("openapi: schema %s: %s must be an array", name, labelsExtensionKey)
	}
	if len(items) != len(schema.Enum) {
		return nil, fmt.Errorf("openapi: schema %s: %s has %d labels for %d enum values", name, labelsExtensionKey, len(items), len(schema.Enum))
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = fmt.Sprint(item)
	}
	return labels, nil
}
