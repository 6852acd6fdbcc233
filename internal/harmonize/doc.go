// Package harmonize turns a raw table of a registered dialect into a table
// in the canonical schema.
//
// Pipeline, per row:
//  1. Rename: copy every raw column listed in the dialect's rename table
//     into its canonical column; other raw columns are dropped.
//  2. Fill: populate the remaining canonical columns from their fill
//     policies, in canonical order.
//  3. Validate: the row must hold exactly the canonical columns.
//
// The transformation is pure. The raw table is never modified and no partial
// result is returned on error.
package harmonize
