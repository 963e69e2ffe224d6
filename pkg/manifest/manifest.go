package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Component is one generated component entry in the manifest.
type Component struct {
	Name   string   `yaml:"name" json:"name"`
	File   string   `yaml:"file" json:"file"`
	Topics []string `yaml:"topics,omitempty" json:"topics,omitempty"`
}

// Manifest tracks what a generation run produced for a module.
type Manifest struct {
	Module      string      `yaml:"module" json:"module"`
	DataObjects []string    `yaml:"data_objects,omitempty" json:"data_objects,omitempty"`
	Components  []Component `yaml:"components,omitempty" json:"components,omitempty"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories
// as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// AddComponent records a component, replacing an existing entry with the
// same name.
func (m *Manifest) AddComponent(c Component) {
	for i := range m.Components {
		if m.Components[i].Name == c.Name {
			m.Components[i] = c
			return
		}
	}
	m.Components = append(m.Components, c)
}

// AddDataObject records a generated data object's qualified name once.
func (m *Manifest) AddDataObject(name string) {
	for _, d := range m.DataObjects {
		if d == name {
			return
		}
	}
	m.DataObjects = append(m.DataObjects, name)
}

// ComponentFile returns the file associated with the named component.
func (m *Manifest) ComponentFile(name string) string {
	for _, c := range m.Components {
		if c.Name == name {
			return c.File
		}
	}
	return ""
}
