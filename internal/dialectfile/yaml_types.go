package dialectfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"oes-harmonize/internal/common"
	"oes-harmonize/internal/registry"
	"oes-harmonize/internal/table"
)

// CurrentVersion is the only file format version understood by Parse.
const CurrentVersion = "1"

// File is the top-level structure of a dialect file.
type File struct {
	Version  string        `yaml:"version"`
	Dialects []DialectSpec `yaml:"dialects"`
}

// DialectSpec is the YAML form of a registry.Dialect.
type DialectSpec struct {
	ID          string              `yaml:"id"`
	Description string              `yaml:"description,omitempty"`
	Rename      map[string]string   `yaml:"rename,omitempty"`
	Identity    StringOrArray       `yaml:"identity,omitempty,flow"`
	Fill        map[string]FillSpec `yaml:"fill,omitempty"`
}

// FillSpec is the YAML form of a registry.FillPolicy. The zero value, which
// a YAML null decodes to, is the Null policy.
type FillSpec struct {
	Constant *string
	Computed string
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or list, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise a list.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// UnmarshalYAML accepts {constant: value} or {computed: rule}. A bare null
// never reaches this method and leaves the zero value.
func (f *FillSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*f = FillSpec{}

		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fill policy must be null, {constant: v} or {computed: rule}", node.Line)
	}

	if len(node.Content) != 2 {
		return fmt.Errorf("line %d: fill policy needs exactly one of constant or computed", node.Line)
	}

	key, val := node.Content[0], node.Content[1]

	switch key.Value {
	case "constant":
		if val.Kind != yaml.ScalarNode || val.Tag == "!!null" {
			return fmt.Errorf("line %d: constant must be a non-null scalar", val.Line)
		}

		v := val.Value
		*f = FillSpec{Constant: &v}

	case "computed":
		var rule string
		if err := val.Decode(&rule); err != nil {
			return err
		}

		if rule == "" {
			return fmt.Errorf("line %d: computed needs a rule name", val.Line)
		}

		*f = FillSpec{Computed: rule}

	default:
		return fmt.Errorf("line %d: unknown fill policy %q", key.Line, key.Value)
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for FillSpec.
func (f FillSpec) MarshalYAML() (any, error) {
	switch {
	case f.Computed != "":
		return map[string]string{"computed": f.Computed}, nil
	case f.Constant != nil:
		return map[string]string{"constant": *f.Constant}, nil
	default:
		return nil, nil
	}
}

// Policy converts f to a registry policy.
func (f FillSpec) Policy() registry.FillPolicy {
	switch {
	case f.Computed != "":
		return registry.Computed(f.Computed)
	case f.Constant != nil:
		return registry.Constant(*f.Constant)
	default:
		return registry.Null()
	}
}

// Dialect converts d to a registry dialect. A column listed under
// identity may not also be renamed.
func (d *DialectSpec) Dialect() (*registry.Dialect, error) {
	rename := make(map[string]string, len(d.Rename)+len(d.Identity))

	for raw, canonical := range d.Rename {
		rename[raw] = canonical
	}

	for _, col := range d.Identity {
		if target, ok := d.Rename[col]; ok && target != col {
			return nil, fmt.Errorf("dialect %q: column %s is listed under identity and renamed to %s",
				d.ID, col, target)
		}

		rename[col] = col
	}

	fill := make(map[string]registry.FillPolicy, len(d.Fill))
	for col, spec := range d.Fill {
		fill[col] = spec.Policy()
	}

	return &registry.Dialect{
		ID:          d.ID,
		Description: d.Description,
		Rename:      rename,
		Fill:        fill,
	}, nil
}

// FromDialect converts a registry dialect to its YAML form. Identity
// renames are listed under identity.
func FromDialect(d *registry.Dialect) DialectSpec {
	spec := DialectSpec{ID: d.ID, Description: d.Description}

	for _, raw := range d.RawColumns() {
		canonical := d.Rename[raw]
		if raw == canonical {
			spec.Identity = append(spec.Identity, raw)

			continue
		}

		if spec.Rename == nil {
			spec.Rename = make(map[string]string)
		}

		spec.Rename[raw] = canonical
	}

	if len(d.Fill) > 0 {
		spec.Fill = make(map[string]FillSpec, len(d.Fill))
	}

	for col, policy := range d.Fill {
		switch policy.Kind {
		case registry.FillConstant:
			v := table.FormatValue(policy.Value)
			spec.Fill[col] = FillSpec{Constant: &v}
		case registry.FillComputed:
			spec.Fill[col] = FillSpec{Computed: policy.Rule}
		default:
			spec.Fill[col] = FillSpec{}
		}
	}

	return spec
}
