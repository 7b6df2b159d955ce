// Package layout loads the layout overrides that tell the mod how cards of
// a given layout are arranged on the table.
//
// The file is a YAML sequence:
//
//	- name: split
//	  type: split
//	  sides: 2
//	  rotation: 90
//	- name: sheet
//	  type: grid
//	  sides: 1
//	  aspect: "1.4"
//	  grid: {x: 3, y: 3}
//
// A mapping with a top-level "layouts" key holding the same sequence is
// accepted as well.
package layout

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout is one override entry. Optional keys are pointers so that an
// absent key is not confused with a zero value.
type Layout struct {
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
	Sides    int     `yaml:"sides"`
	Aspect   *string `yaml:"aspect,omitempty"`
	Rotation *int    `yaml:"rotation,omitempty"`
	Grid     *Grid   `yaml:"grid,omitempty"`
}

// Grid is the column and row count of a sheet layout
type Grid struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type document struct {
	Layouts []Layout `yaml:"layouts"`
}

// LoadFile loads and parses a layout file from disk.
func LoadFile(path string) ([]Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadFS is LoadFile over an fs.FS
func LoadFS(fsys fs.FS, path string) ([]Layout, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML layout overrides.
func Parse(data []byte) ([]Layout, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	// empty document
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var layouts []Layout
		if err := root.Decode(&layouts); err != nil {
			return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
		}
		return layouts, nil
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
		}
		return doc.Layouts, nil
	default:
		return nil, fmt.Errorf("failed to parse layout YAML: expected a sequence of layouts, line %d", root.Line)
	}
}
