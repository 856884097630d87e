package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is the only seed file version understood by this package.
const SchemaVersion = 1

// File is the on-disk seed structure.
type File struct {
	SchemaVersion int    `json:"schema_version" yaml:"schema_version"`
	Tasks         []Task `json:"tasks" yaml:"tasks"`
}

// DefaultSeed returns the demo list used when no seed file exists.
func DefaultSeed() *File {
	return &File{
		SchemaVersion: SchemaVersion,
		Tasks: []Task{
			{ID: "todo-0", Name: "Eat", Completed: true},
			{ID: "todo-1", Name: "Sleep"},
			{ID: "todo-2", Name: "Repeat"},
		},
	}
}

// LoadSeed reads and parses a seed file from path.
func LoadSeed(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f *File
	if isYAML(path) {
		f, err = parseYAML(data)
	} else {
		f, err = parseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}

// LoadSeedOrDefault loads path, falling back to DefaultSeed when the file does not exist.
// The boolean result reports whether the default was used.
func LoadSeedOrDefault(path string) (*File, bool, error) {
	if path == "" {
		return DefaultSeed(), true, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultSeed(), true, nil
	}
	f, err := LoadSeed(path)
	if err != nil {
		return nil, false, err
	}
	return f, false, nil
}

func parseJSON(data []byte) (*File, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tasks []Task
		if err := json.Unmarshal(trimmed, &tasks); err != nil {
			return nil, err
		}
		return &File{SchemaVersion: SchemaVersion, Tasks: tasks}, nil
	}

	var f File
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func parseYAML(data []byte) (*File, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) > 0 && root.Content[0].Kind == yaml.SequenceNode {
		var tasks []Task
		if err := root.Content[0].Decode(&tasks); err != nil {
			return nil, err
		}
		return &File{SchemaVersion: SchemaVersion, Tasks: tasks}, nil
	}

	var f File
	if err := root.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Save writes the seed file to path. JSON output uses 2-space indentation
// and a trailing newline; .yaml and .yml paths are written as YAML.
func (f *File) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(f)
	} else {
		data, err = json.MarshalIndent(f, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal seed file: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
