package match

import (
	"strings"
	"unicode"
)

// abbreviations expands header tokens that releases spell differently.
var abbreviations = map[string]string{
	"q":     "quotient",
	"quot":  "quotient",
	"tot":   "total",
	"emp":   "employment",
	"empl":  "employment",
	"occ":   "occupation",
	"pct":   "percent",
	"prcnt": "percent",
	"grp":   "group",
	"med":   "median",
	"ann":   "annual",
	"hr":    "hourly",
	"hrly":  "hourly",
	"st":    "state",
}

// NormalizeColumn normalizes a header for comparison.
// The normalization pipeline:
// 1. Trim surrounding whitespace.
// 2. Tokenize on separators and CamelCase boundaries.
// 3. Case-fold to lower and join without separators.
func NormalizeColumn(s string) string {
	return strings.Join(TokenizeColumn(s), "")
}

// NormalizeColumnExpanded normalizes a header and expands known
// abbreviations token by token.
func NormalizeColumnExpanded(s string) string {
	tokens := TokenizeColumn(s)
	for i, t := range tokens {
		if full, ok := abbreviations[t]; ok {
			tokens[i] = full
		}
	}

	return strings.Join(tokens, "")
}

// TokenizeColumn splits a header into lowercase tokens.
// Examples:
//   - "LOC_Q" -> ["loc", "q"]
//   - "h_pct10" -> ["h", "pct10"]
//   - "AreaTitle" -> ["area", "title"]
//   - "OCC GROUP" -> ["occ", "group"]
func TokenizeColumn(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator returns true if the rune separates header words.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// startsToken determines if a new token starts at position i.
func startsToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if isSeparator(prev) {
		return false
	}

	// "areaTitle" -> split before 'T'
	if unicode.IsUpper(r) && unicode.IsLower(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	return unicode.IsUpper(r) && unicode.IsUpper(prev) &&
		i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
