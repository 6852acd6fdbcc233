package registry

import (
	"fmt"

	"oes-harmonize/internal/diagnostic"
)

// Validate checks d against the registry's schema and rules without
// registering it.
func (r *Registry) Validate(d *Dialect) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if d == nil {
		res.AddError(diagnostic.CodeEmptyID, "dialect is nil", "", "")
		return res
	}

	id := d.ID
	if id == "" {
		res.AddError(diagnostic.CodeEmptyID, "dialect id is empty", "", "")
	}

	renamed := r.validateRename(res, d)
	r.validateFill(res, d, renamed)

	for _, col := range r.schema {
		_, byRename := renamed[col]
		_, byFill := d.Fill[col]

		if !byRename && !byFill {
			res.AddError(diagnostic.CodeUnresolvedColumn,
				"canonical column is covered by neither the rename nor the fill table", id, col)
		}
	}

	return res
}

// validateRename checks rename targets and returns canonical -> raw for the
// valid entries.
func (r *Registry) validateRename(res *diagnostic.Diagnostics, d *Dialect) map[string]string {
	renamed := make(map[string]string, len(d.Rename))

	for _, raw := range sortedKeys(d.Rename) {
		canon := d.Rename[raw]

		if !r.schema.Contains(canon) {
			res.AddError(diagnostic.CodeUnknownCanonical,
				fmt.Sprintf("raw column %q maps to %q which is not a canonical column", raw, canon), d.ID, canon)

			continue
		}

		if prev, ok := renamed[canon]; ok {
			res.AddError(diagnostic.CodeAmbiguousRename,
				fmt.Sprintf("raw columns %q and %q both map to %q", prev, raw, canon), d.ID, canon)

			continue
		}

		renamed[canon] = raw
	}

	return renamed
}

func (r *Registry) validateFill(res *diagnostic.Diagnostics, d *Dialect, renamed map[string]string) {
	for _, col := range sortedKeys(d.Fill) {
		policy := d.Fill[col]
		pos := r.schema.Index(col)

		if pos < 0 {
			res.AddError(diagnostic.CodeUnknownCanonical,
				fmt.Sprintf("fill column %q is not a canonical column", col), d.ID, col)

			continue
		}

		if raw, ok := renamed[col]; ok {
			res.AddError(diagnostic.CodeDoubleCoverage,
				fmt.Sprintf("column is renamed from %q and also has a fill policy", raw), d.ID, col)

			continue
		}

		if !policy.IsValid() {
			res.AddError(diagnostic.CodeInvalidFillPolicy,
				fmt.Sprintf("fill policy %s is incomplete", policy), d.ID, col)

			continue
		}

		if policy.Kind == FillComputed {
			r.validateRuleInputs(res, d, col, pos, policy.Rule, renamed)
		}
	}
}

func (r *Registry) validateRuleInputs(
	res *diagnostic.Diagnostics,
	d *Dialect,
	col string,
	pos int,
	ruleName string,
	renamed map[string]string,
) {
	rule := r.rules.Get(ruleName)
	if rule == nil {
		res.AddError(diagnostic.CodeUnknownRule, fmt.Sprintf("unknown rule %q", ruleName), d.ID, col)
		return
	}

	for _, in := range rule.Inputs {
		if _, ok := renamed[in]; ok {
			continue
		}

		if _, ok := d.Fill[in]; ok {
			if ip := r.schema.Index(in); ip >= 0 && ip < pos {
				continue
			}
		}

		res.AddError(diagnostic.CodeRuleInputUnresolved,
			fmt.Sprintf("rule %q reads %q which is not resolved before %q", ruleName, in, col), d.ID, col)
	}
}
