package fielddef

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-acroform/pkg/model"
)

// Document is the on-disk shape of a definitions file.
type Document struct {
	Fields []Definition `json:"fields" yaml:"fields"`
}

// Definition describes one choice field. SelectedIndex distinguishes an
// absent record (nil) from a present, empty one.
type Definition struct {
	Name          string      `json:"name" yaml:"name"`
	Label         string      `json:"label,omitempty" yaml:"label,omitempty"`
	Kind          model.Kind  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Editable      bool        `json:"editable,omitempty" yaml:"editable,omitempty"`
	MaxLen        int         `json:"maxLen,omitempty" yaml:"maxLen,omitempty"`
	Options       []OptionDef `json:"options,omitempty" yaml:"options,omitempty"`
	Value         string      `json:"value,omitempty" yaml:"value,omitempty"`
	Default       string      `json:"default,omitempty" yaml:"default,omitempty"`
	SelectedIndex *[]int      `json:"selectedIndex,omitempty" yaml:"selectedIndex,omitempty"`
}

// OptionDef is a plain option (a scalar) or a paired option written as a
// two-element sequence [key, value] or a {key, value} mapping.
type OptionDef struct {
	Key    string
	Value  string
	Paired bool
}

// Option converts the definition into a model option.
func (o OptionDef) Option() model.Option {
	if o.Paired {
		return model.Pair(o.Key, o.Value)
	}
	return model.Plain(o.Value)
}

// OptionDefFrom converts a model option back into its definition form.
func OptionDefFrom(option model.Option) OptionDef {
	if option.Paired() {
		return OptionDef{Key: option.Export(), Value: option.Display(), Paired: true}
	}
	return OptionDef{Value: option.Display()}
}

type pairMapping struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// UnmarshalJSON accepts "plain", ["key", "value"] or {"key": .., "value": ..}.
func (o *OptionDef) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch typed := raw.(type) {
	case map[string]any:
		var pair pairMapping
		if err := json.Unmarshal(data, &pair); err != nil {
			return fmt.Errorf("fielddef: option pair: %w", err)
		}
		*o = OptionDef{Key: pair.Key, Value: pair.Value, Paired: true}
		return nil
	case []any:
		if len(typed) != 2 {
			return fmt.Errorf("fielddef: option pair must have 2 elements, got %d", len(typed))
		}
		key, err := scalarString(typed[0])
		if err != nil {
			return err
		}
		value, err := scalarString(typed[1])
		if err != nil {
			return err
		}
		*o = OptionDef{Key: key, Value: value, Paired: true}
		return nil
	default:
		value, err := scalarString(typed)
		if err != nil {
			return err
		}
		*o = OptionDef{Value: value}
		return nil
	}
}

// MarshalJSON writes plain options as strings and pairs as [key, value].
func (o OptionDef) MarshalJSON() ([]byte, error) {
	if o.Paired {
		return json.Marshal([]string{o.Key, o.Value})
	}
	return json.Marshal(o.Value)
}

// UnmarshalYAML decodes a definition. Options are decoded node by node so a
// null entry keeps its position in the list.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	type rawDefinition Definition

	rest := node
	var optionsNode *yaml.Node
	if node.Kind == yaml.MappingNode {
		rest = &yaml.Node{Kind: node.Kind, Tag: node.Tag, Line: node.Line, Column: node.Column}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "options" {
				optionsNode = node.Content[i+1]
				continue
			}
			rest.Content = append(rest.Content, node.Content[i], node.Content[i+1])
		}
	}

	var raw rawDefinition
	if err := rest.Decode(&raw); err != nil {
		return err
	}
	if optionsNode != nil {
		options, err := decodeYAMLOptions(optionsNode)
		if err != nil {
			return err
		}
		raw.Options = options
	}
	*d = Definition(raw)
	return nil
}

func decodeYAMLOptions(node *yaml.Node) ([]OptionDef, error) {
	node = resolveAlias(node)
	if isYAMLNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("fielddef: line %d: options must be a sequence", node.Line)
	}
	options := make([]OptionDef, 0, len(node.Content))
	for _, item := range node.Content {
		var option OptionDef
		if err := option.UnmarshalYAML(resolveAlias(item)); err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// yamlScalar returns the node value, with null read as "" as in JSON.
func yamlScalar(node *yaml.Node) string {
	if isYAMLNull(node) {
		return ""
	}
	return node.Value
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML nodes. A null entry is a plain
// option with an empty value.
func (o *OptionDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*o = OptionDef{Value: yamlScalar(node)}
		return nil
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("fielddef: line %d: option pair must have 2 elements, got %d", node.Line, len(node.Content))
		}
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("fielddef: line %d: option pair elements must be scalars", item.Line)
			}
		}
		*o = OptionDef{Key: yamlScalar(node.Content[0]), Value: yamlScalar(node.Content[1]), Paired: true}
		return nil
	case yaml.MappingNode:
		var pair pairMapping
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("fielddef: line %d: option pair: %w", node.Line, err)
		}
		*o = OptionDef{Key: pair.Key, Value: pair.Value, Paired: true}
		return nil
	default:
		return fmt.Errorf("fielddef: line %d: unsupported option", node.Line)
	}
}

// MarshalYAML writes pairs in flow style so they read as [key, value].
func (o OptionDef) MarshalYAML() (any, error) {
	if !o.Paired {
		return o.Value, nil
	}
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: o.Key},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: o.Value},
		},
	}, nil
}

func scalarString(value any) (string, error) {
	switch typed := value.(type) {
	case string:
		return typed, nil
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(typed), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("fielddef: unsupported option value %T", value)
	}
}

func (d Definition) kind() model.Kind {
	return model.Kind(strings.ToLower(strings.TrimSpace(string(d.Kind))))
}
