// Package registry is the single source of truth for how each source-year
// dialect maps onto the canonical schema.
//
// A dialect is declared as two tables:
//
//	rename: raw column -> canonical column   (GROUP -> O_GROUP)
//	fill:   canonical column -> fill policy  (I_GROUP = Constant("cross-industry"))
//
// # Coverage
//
// Every canonical column must be resolved by exactly one of the two tables.
// Coverage is checked when the dialect is registered, never when data is
// harmonized: a dialect that cannot fully resolve the canonical schema is
// rejected with a SchemaConflictError and is never stored.
//
// # Fill policies
//
//   - Constant: the literal value is assigned to every row
//   - Null: the table.Null marker is assigned
//   - Computed: a named Rule from the registry's RuleSet is evaluated over
//     already-resolved canonical values
//
// Resolution order is renamed columns first, then fill columns in canonical
// order. A Computed rule may read any renamed column and any fill column
// that precedes its own column in canonical order.
//
// # Lifecycle
//
// Dialects are registered once at startup. Registration is not safe for
// concurrent use; after the last Register call a Registry is read-only and may
// be shared freely between goroutines.
package registry
