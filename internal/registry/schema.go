package registry

import (
	"slices"
)

// Schema is the ordered sequence of canonical column names.
type Schema []string

// Index returns the position of name in the schema, or -1.
func (s Schema) Index(name string) int {
	return slices.Index(s, name)
}

// Contains reports whether name is a canonical column.
func (s Schema) Contains(name string) bool {
	return s.Index(name) >= 0
}

// Clone returns a copy of the schema.
func (s Schema) Clone() Schema {
	return slices.Clone(s)
}

// duplicates returns the names appearing more than once, in first-repeat order.
func (s Schema) duplicates() []string {
	seen := make(map[string]struct{}, len(s))

	var dups []string

	for _, c := range s {
		if _, ok := seen[c]; ok {
			dups = append(dups, c)
			continue
		}

		seen[c] = struct{}{}
	}

	return dups
}
