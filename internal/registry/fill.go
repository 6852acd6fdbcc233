package registry

import (
	"fmt"

	"oes-harmonize/internal/table"
)

//go:generate go tool stringer -type=FillKind -trimprefix=Fill -output=fill_kind_string.go

// FillKind tags the variant of a FillPolicy.
type FillKind int

const (
	_ FillKind = iota // zero value is an unset policy

	FillConstant
	FillNull
	FillComputed
)

// FillPolicy describes how a canonical column absent from a dialect's raw
// data is populated.
type FillPolicy struct {
	Kind FillKind
	// Value is the literal for FillConstant.
	Value any
	// Rule names the computed rule for FillComputed.
	Rule string
}

// Constant returns a policy assigning v to every row.
func Constant(v any) FillPolicy {
	return FillPolicy{Kind: FillConstant, Value: v}
}

// Null returns a policy assigning the absent marker to every row.
func Null() FillPolicy {
	return FillPolicy{Kind: FillNull}
}

// Computed returns a policy evaluating the named rule for every row.
func Computed(rule string) FillPolicy {
	return FillPolicy{Kind: FillComputed, Rule: rule}
}

// IsValid returns true if the policy carries what its kind needs.
func (p FillPolicy) IsValid() bool {
	switch p.Kind {
	case FillConstant:
		return !table.IsNull(p.Value)
	case FillNull:
		return true
	case FillComputed:
		return p.Rule != ""
	default:
		return false
	}
}

// String returns a readable form, e.g. Constant("cross-industry").
func (p FillPolicy) String() string {
	switch p.Kind {
	case FillConstant:
		return fmt.Sprintf("Constant(%q)", table.FormatValue(p.Value))
	case FillNull:
		return "Null"
	case FillComputed:
		return fmt.Sprintf("Computed(%s)", p.Rule)
	default:
		return p.Kind.String()
	}
}
