package fielddef

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a JSON or YAML definitions document and validates it. source
// names the document in error messages.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("fielddef: file %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return Document{}, fmt.Errorf("fielddef: parse %s: invalid JSON or YAML: %w", source, yamlErr)
		}
	}

	if err := Validate(doc); err != nil {
		return Document{}, fmt.Errorf("fielddef: %s: %w", source, err)
	}
	return doc, nil
}

// LoadFile reads a single definitions file.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("fielddef: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS walks fsys and merges every JSON/YAML definitions file in lexical
// path order. Field names must be unique across files. A nil fsys yields an
// empty document.
func LoadFS(fsys fs.FS) (Document, error) {
	var merged Document
	if fsys == nil {
		return merged, nil
	}

	origin := make(map[string]string)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fielddef: read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return err
		}
		for _, def := range doc.Fields {
			name := strings.TrimSpace(def.Name)
			if prev, exists := origin[name]; exists {
				return fmt.Errorf("fielddef: duplicate field %q (files %s and %s)", name, prev, path)
			}
			origin[name] = path
			merged.Fields = append(merged.Fields, def)
		}
		return nil
	})
	if err != nil {
		return Document{}, err
	}
	return merged, nil
}

// Load reads path as a single file or, for directories, walks it with LoadFS.
func Load(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("fielddef: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path))
	}
	return LoadFile(path)
}

// Marshal encodes doc as YAML.
func Marshal(doc Document) ([]byte, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("fielddef: marshal: %w", err)
	}
	return out, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
