package registry

import (
	"errors"
	"fmt"

	"oes-harmonize/internal/diagnostic"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrSchemaConflict   = errors.New("schema conflict")
	ErrDuplicateDialect = errors.New("duplicate dialect")
	ErrUnknownDialect   = errors.New("unknown dialect")
)

// SchemaConflictError reports a dialect whose tables are ambiguous or do not
// resolve every canonical column. The dialect was not registered.
type SchemaConflictError struct {
	Dialect     string
	Diagnostics diagnostic.Diagnostics
}

func (e *SchemaConflictError) Error() string {
	return fmt.Sprintf("dialect %q: %v: %v", e.Dialect, ErrSchemaConflict, e.Diagnostics.Error())
}

// Is matches ErrSchemaConflict.
func (e *SchemaConflictError) Is(target error) bool {
	return target == ErrSchemaConflict
}

// DuplicateDialectError reports an id that is already registered.
type DuplicateDialectError struct {
	Dialect string
}

func (e *DuplicateDialectError) Error() string {
	return fmt.Sprintf("dialect %q: %v", e.Dialect, ErrDuplicateDialect)
}

// Is matches ErrDuplicateDialect.
func (e *DuplicateDialectError) Is(target error) bool {
	return target == ErrDuplicateDialect
}

// UnknownDialectError reports a lookup of an id that was never registered.
type UnknownDialectError struct {
	Dialect string
	// Known lists the registered ids at lookup time.
	Known []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("dialect %q: %v (known: %v)", e.Dialect, ErrUnknownDialect, e.Known)
}

// Is matches ErrUnknownDialect.
func (e *UnknownDialectError) Is(target error) bool {
	return target == ErrUnknownDialect
}
