package attrs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Presets holds named attribute sets loaded from YAML. Attribute order
// follows the document, so preset bags render in authoring order.
type Presets struct {
	names []string
	sets  map[string][]Pair
}

// LoadPresets parses a YAML document of named attribute sets:
//
//	button:
//	  class: "btn"
//	  data_role: "action"
//	link:
//	  class: "btn-link"
//
// Preset keys are name-derived, so underscores normalize to hyphens when a
// bag is built. Values must be scalars; nested structures are rejected.
func LoadPresets(r io.Reader) (*Presets, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Presets{sets: make(map[string][]Pair)}, nil
		}
		return nil, fmt.Errorf("attrs: parse presets: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return &Presets{sets: make(map[string][]Pair)}, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("attrs: presets document must be a mapping (line %d)", root.Line)
	}

	presets := &Presets{sets: make(map[string][]Pair)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		nameNode, setNode := root.Content[i], root.Content[i+1]
		name := strings.TrimSpace(nameNode.Value)
		if name == "" {
			return nil, fmt.Errorf("attrs: preset with empty name (line %d)", nameNode.Line)
		}
		if _, exists := presets.sets[name]; exists {
			return nil, fmt.Errorf("attrs: duplicate preset %q (line %d)", name, nameNode.Line)
		}
		if setNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("attrs: preset %q must be a mapping (line %d)", name, setNode.Line)
		}

		pairs := make([]Pair, 0, len(setNode.Content)/2)
		for j := 0; j+1 < len(setNode.Content); j += 2 {
			keyNode, valueNode := setNode.Content[j], setNode.Content[j+1]
			key := strings.TrimSpace(keyNode.Value)
			if key == "" {
				return nil, fmt.Errorf("attrs: preset %q has an empty attribute key (line %d)", name, keyNode.Line)
			}
			if valueNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("attrs: preset %q key %q: nested values are not supported (line %d)", name, key, valueNode.Line)
			}
			pairs = append(pairs, Pair{Key: key, Value: valueNode.Value})
		}

		presets.names = append(presets.names, name)
		presets.sets[name] = pairs
	}
	return presets, nil
}

// LoadPresetsFS reads and parses a presets file from fsys.
func LoadPresetsFS(fsys fs.FS, path string) (*Presets, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("attrs: open presets %s: %w", path, err)
	}
	defer file.Close()
	return LoadPresets(file)
}

// Names lists preset names in document order.
func (p *Presets) Names() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.names...)
}

// Bag materializes the named preset as a fresh bag. The second return is
// false when the preset does not exist.
func (p *Presets) Bag(name string) (*Bag, bool) {
	if p == nil {
		return nil, false
	}
	pairs, ok := p.sets[name]
	if !ok {
		return nil, false
	}
	return FromPairs(pairs...), true
}
