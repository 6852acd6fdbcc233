package dialectfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"oes-harmonize/internal/registry"
)

// LoadFile loads and parses a YAML dialect file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// LoadDir loads every *.yaml and *.yml file in dir, in name order, and
// returns their dialects as one file.
func LoadDir(dir string) (*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect directory %s: %w", dir, err)
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() || !IsDialectFile(e.Name()) {
			continue
		}

		names = append(names, e.Name())
	}

	slices.Sort(names)

	all := &File{Version: CurrentVersion}

	for _, name := range names {
		f, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		all.Dialects = append(all.Dialects, f.Dialects...)
	}

	return all, nil
}

// IsDialectFile reports whether name has a YAML extension.
func IsDialectFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse dialect YAML: %w", err)
	}

	applyDefaults(&f)

	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported dialect file version %q", f.Version)
	}

	return &f, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal dialects: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dialect file %s: %w", path, err)
	}

	return nil
}

// FromDialects builds a File holding dialects in the given order.
func FromDialects(dialects ...*registry.Dialect) *File {
	f := &File{Version: CurrentVersion}
	for _, d := range dialects {
		f.Dialects = append(f.Dialects, FromDialect(d))
	}

	return f
}

// RegisterAll converts and registers every dialect of f in order. It stops
// at the first failure; dialects registered before it stay registered.
func RegisterAll(reg *registry.Registry, f *File) error {
	for i := range f.Dialects {
		d, err := f.Dialects[i].Dialect()
		if err != nil {
			return err
		}

		if err := reg.Register(d); err != nil {
			return err
		}
	}

	return nil
}

// RegisterDir loads every dialect file in dir and registers its dialects.
func RegisterDir(reg *registry.Registry, dir string) error {
	f, err := LoadDir(dir)
	if err != nil {
		return err
	}

	return RegisterAll(reg, f)
}
