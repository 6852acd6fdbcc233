package match

import (
	"testing"
)

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Case folding
		{"LOC_Q", "locq"},
		{"loc_q", "locq"},
		{"Loc_Q", "locq"},

		// Separators
		{"AREA TITLE", "areatitle"},
		{"area-title", "areatitle"},
		{"area.title", "areatitle"},
		{"  OCC_CODE ", "occcode"},

		// CamelCase headers
		{"AreaTitle", "areatitle"},
		{"occCode", "occcode"},

		// Digits stay attached
		{"H_PCT10", "hpct10"},
		{"JOBS_1000", "jobs1000"},

		// Edge cases
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeColumn(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeColumn(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeColumnExpanded(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"LOC_Q", "locquotient"},
		{"LOC_QUOTIENT", "locquotient"},
		{"PCT_TOT", "percenttotal"},
		{"PCT_TOTAL", "percenttotal"},
		{"OCC_GROUP", "occupationgroup"},
		{"GROUP", "group"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeColumnExpanded(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeColumnExpanded(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeColumn(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"LOC_Q", []string{"loc", "q"}},
		{"h_pct10", []string{"h", "pct10"}},
		{"AreaTitle", []string{"area", "title"}},
		{"OCC GROUP", []string{"occ", "group"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"ALLCAPS", []string{"allcaps"}},
		{"a__b", []string{"a", "b"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TokenizeColumn(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("TokenizeColumn(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
