package registry

import (
	"fmt"
	"sort"
)

// Registry holds the canonical schema, the computed rules and every
// registered dialect.
type Registry struct {
	schema   Schema
	rules    *RuleSet
	dialects map[string]*entry
}

type entry struct {
	dialect *Dialect
	plan    *Plan
}

// Plan is the precomputed resolution order of one dialect.
type Plan struct {
	// Dialect is the dialect id.
	Dialect string
	// Columns is the canonical schema.
	Columns Schema
	// Renames in canonical order.
	Renames []RenameStep
	// Fills in canonical order.
	Fills []FillStep
}

// RenameStep copies one raw column into one canonical column.
type RenameStep struct {
	Raw       string
	Canonical string
}

// FillStep populates one canonical column from its policy.
type FillStep struct {
	Column string
	Policy FillPolicy
	// Rule is set for FillComputed policies.
	Rule *Rule
}

// New creates an empty registry for schema. rules may be nil when no
// dialect uses Computed policies.
func New(schema Schema, rules *RuleSet) (*Registry, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("canonical schema is empty")
	}

	if dups := schema.duplicates(); len(dups) > 0 {
		return nil, fmt.Errorf("canonical schema repeats columns %v", dups)
	}

	if rules == nil {
		rules, _ = NewRuleSet()
	}

	return &Registry{
		schema:   schema.Clone(),
		rules:    rules,
		dialects: make(map[string]*entry),
	}, nil
}

// Register validates d and stores a private copy of it.
// It fails with *DuplicateDialectError if the id exists and with
// *SchemaConflictError if d does not resolve the canonical schema.
func (r *Registry) Register(d *Dialect) error {
	if d != nil {
		if _, ok := r.dialects[d.ID]; ok {
			return &DuplicateDialectError{Dialect: d.ID}
		}
	}

	diags := r.Validate(d)
	if diags.HasErrors() {
		id := ""
		if d != nil {
			id = d.ID
		}

		return &SchemaConflictError{Dialect: id, Diagnostics: *diags}
	}

	stored := d.Clone()
	r.dialects[stored.ID] = &entry{dialect: stored, plan: r.compile(stored)}

	return nil
}

// RegisterDialect is the table-level form of Register.
func (r *Registry) RegisterDialect(id string, rename map[string]string, fill map[string]FillPolicy) error {
	return r.Register(&Dialect{ID: id, Rename: rename, Fill: fill})
}

// Lookup returns a copy of the dialect registered under id.
func (r *Registry) Lookup(id string) (*Dialect, error) {
	e, ok := r.dialects[id]
	if !ok {
		return nil, &UnknownDialectError{Dialect: id, Known: r.Dialects()}
	}

	return e.dialect.Clone(), nil
}

// Plan returns the resolution plan of the dialect registered under id.
// The plan is shared and must not be modified.
func (r *Registry) Plan(id string) (*Plan, error) {
	e, ok := r.dialects[id]
	if !ok {
		return nil, &UnknownDialectError{Dialect: id, Known: r.Dialects()}
	}

	return e.plan, nil
}

// CanonicalSchema returns the ordered canonical columns.
func (r *Registry) CanonicalSchema() Schema {
	return r.schema.Clone()
}

// Rules returns the rule set computed policies resolve against.
func (r *Registry) Rules() *RuleSet {
	return r.rules
}

// Dialects returns all registered ids, sorted.
func (r *Registry) Dialects() []string {
	return sortedKeys(r.dialects)
}

// Has returns true if id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.dialects[id]
	return ok
}

func (r *Registry) compile(d *Dialect) *Plan {
	p := &Plan{
		Dialect: d.ID,
		Columns: r.schema,
		Renames: make([]RenameStep, 0, len(d.Rename)),
		Fills:   make([]FillStep, 0, len(d.Fill)),
	}

	for raw, canon := range d.Rename {
		p.Renames = append(p.Renames, RenameStep{Raw: raw, Canonical: canon})
	}

	sort.Slice(p.Renames, func(i, j int) bool {
		return r.schema.Index(p.Renames[i].Canonical) < r.schema.Index(p.Renames[j].Canonical)
	})

	for _, col := range r.schema {
		policy, ok := d.Fill[col]
		if !ok {
			continue
		}

		step := FillStep{Column: col, Policy: policy}
		if policy.Kind == FillComputed {
			step.Rule = r.rules.Get(policy.Rule)
		}

		p.Fills = append(p.Fills, step)
	}

	return p
}
