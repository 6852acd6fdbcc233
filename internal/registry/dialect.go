package registry

import (
	"maps"
	"sort"
)

// Dialect is a named source-year schema variant.
type Dialect struct {
	// ID identifies the dialect, e.g. "2011" or "2018-i-o-group".
	ID string
	// Description is an optional human-readable note.
	Description string
	// Rename maps raw column names to canonical column names.
	Rename map[string]string
	// Fill maps canonical columns absent from the raw data to their policy.
	Fill map[string]FillPolicy
}

// Clone returns a copy that shares nothing mutable with d.
func (d *Dialect) Clone() *Dialect {
	return &Dialect{
		ID:          d.ID,
		Description: d.Description,
		Rename:      maps.Clone(d.Rename),
		Fill:        maps.Clone(d.Fill),
	}
}

// RawColumns returns the rename table keys, sorted.
func (d *Dialect) RawColumns() []string {
	return sortedKeys(d.Rename)
}

// Identity returns a rename table mapping each column to itself.
func Identity(columns ...string) map[string]string {
	m := make(map[string]string, len(columns))
	for _, c := range columns {
		m[c] = c
	}

	return m
}

// Merge returns a new rename table holding every entry of tables. Later
// tables win on key collisions.
func Merge(tables ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, t := range tables {
		maps.Copy(out, t)
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
