package harmonize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is matched by *InvariantError.
	ErrInvariant = errors.New("harmonization invariant violated")
	// ErrNilTable is returned when no raw table is given.
	ErrNilTable = errors.New("raw table is nil")
)

// InvariantError reports an emitted row that does not hold exactly the
// canonical columns. It indicates a registry defect, not a data defect.
type InvariantError struct {
	Dialect string
	Row     int
	Missing []string
	Extra   []string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("dialect %q row %d: %v: missing %v, extra %v",
		e.Dialect, e.Row, ErrInvariant, e.Missing, e.Extra)
}

// Is matches ErrInvariant.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// RuleError reports a computed rule that failed for one row.
type RuleError struct {
	Dialect string
	Row     int
	Column  string
	Rule    string
	Err     error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("dialect %q row %d: computing %s with rule %q: %v",
		e.Dialect, e.Row, e.Column, e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
