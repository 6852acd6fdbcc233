// Package match provides column-name normalization, Levenshtein distance
// calculation and candidate ranking for spreadsheet headers.
//
// Key functions:
//   - NormalizeColumn: folds case and separators ("loc_q" == "LOC_Q")
//   - NormalizeColumnExpanded: also expands OES abbreviations ("LOC_Q" == "LOC_QUOTIENT")
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks canonical columns as candidates for a raw column
package match
