package registry

import (
	"fmt"
	"slices"
	"sort"
)

// RuleFunc computes a canonical value from its declared inputs. args holds
// the input values in Rule.Inputs order; absent inputs are table.Null.
// Implementations must be deterministic and free of side effects.
type RuleFunc func(args []any) (any, error)

// Rule is a named computed-fill rule.
type Rule struct {
	// Name is the identifier used by Computed fill policies.
	Name string
	// Inputs are the canonical columns the rule reads.
	Inputs []string
	// Description is an optional human-readable description.
	Description string
	// Func evaluates the rule.
	Func RuleFunc
}

// Eval runs the rule over args.
func (r *Rule) Eval(args []any) (any, error) {
	return r.Func(args)
}

// RuleSet holds computed rules and provides lookup by name.
type RuleSet struct {
	rules map[string]*Rule
}

// NewRuleSet creates a rule set holding rules. It fails on duplicate or
// incomplete rules.
func NewRuleSet(rules ...Rule) (*RuleSet, error) {
	rs := &RuleSet{rules: make(map[string]*Rule, len(rules))}

	for _, r := range rules {
		if err := rs.Add(r); err != nil {
			return nil, err
		}
	}

	return rs, nil
}

// Add adds a rule to the set.
func (rs *RuleSet) Add(r Rule) error {
	if r.Name == "" {
		return fmt.Errorf("rule has no name")
	}

	if r.Func == nil {
		return fmt.Errorf("rule %q has no func", r.Name)
	}

	if rs.Has(r.Name) {
		return fmt.Errorf("duplicate rule %q", r.Name)
	}

	r.Inputs = slices.Clone(r.Inputs)
	rs.rules[r.Name] = &r

	return nil
}

// Get returns a rule by name, or nil if not found.
func (rs *RuleSet) Get(name string) *Rule {
	if rs == nil {
		return nil
	}

	return rs.rules[name]
}

// Has returns true if a rule with the given name exists.
func (rs *RuleSet) Has(name string) bool {
	return rs.Get(name) != nil
}

// Names returns all rule names, sorted.
func (rs *RuleSet) Names() []string {
	if rs == nil {
		return nil
	}

	names := make([]string, 0, len(rs.rules))
	for name := range rs.rules {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
