// Package diagnostic provides structured errors, warnings and notes
// collected while checking dialect definitions and raw tables.
//
// Key capabilities:
//   - Ambiguous rename and coverage gap reports
//   - Unmapped raw column warnings with canonical name suggestions
//   - A single combined error for multi-problem validation passes
package diagnostic
