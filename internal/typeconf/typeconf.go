// Package typeconf loads extension data type definitions from a YAML
// file so deployments can register vendor-specific sensor types without
// writing code.
package typeconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind selects the generic big-endian integer interpretation of a
// defined type.
type Kind string

const (
	KindUnsigned Kind = "unsigned"
	KindSigned   Kind = "signed"
)

// Definition is one validated extension type.
type Definition struct {
	ID    byte
	Name  string
	Width int
	Kind  Kind
	Scale float64
}

type document struct {
	Types []entry `yaml:"types"`
}

type entry struct {
	ID    int     `yaml:"id"`
	Name  string  `yaml:"name"`
	Width int     `yaml:"width"`
	Kind  string  `yaml:"kind"`
	Scale float64 `yaml:"scale"`
}

// Load reads and validates a definitions file.
func Load(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read types file %s: %w", path, err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse types file %s: %w", path, err)
	}
	defs := make([]Definition, 0, len(doc.Types))
	seen := make(map[int]bool, len(doc.Types))
	for idx, e := range doc.Types {
		def, err := e.validate()
		if err != nil {
			return nil, fmt.Errorf("types file %s entry %d: %w", path, idx, err)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("types file %s entry %d: duplicate id 0x%02X", path, idx, e.ID)
		}
		seen[e.ID] = true
		defs = append(defs, def)
	}
	return defs, nil
}

func (e entry) validate() (Definition, error) {
	if e.ID < 0 || e.ID > 0xFF {
		return Definition{}, fmt.Errorf("id %d outside byte range", e.ID)
	}
	if e.Name == "" {
		return Definition{}, fmt.Errorf("id 0x%02X has no name", e.ID)
	}
	if e.Width < 1 || e.Width > 8 {
		return Definition{}, fmt.Errorf("id 0x%02X width %d outside 1-8", e.ID, e.Width)
	}
	kind := Kind(e.Kind)
	if kind == "" {
		kind = KindUnsigned
	}
	if kind != KindUnsigned && kind != KindSigned {
		return Definition{}, fmt.Errorf("id 0x%02X has unsupported kind %q", e.ID, e.Kind)
	}
	scale := e.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return Definition{}, fmt.Errorf("id 0x%02X has negative scale %v", e.ID, e.Scale)
	}
	return Definition{
		ID:    byte(e.ID),
		Name:  e.Name,
		Width: e.Width,
		Kind:  kind,
		Scale: scale,
	}, nil
}
