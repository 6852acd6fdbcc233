package oes

import (
	"fmt"
	"strings"
	"unicode"

	"oes-harmonize/internal/registry"
	"oes-harmonize/internal/table"
)

// Rule names usable in Computed fill policies.
const (
	RuleAreaType      = "area_type"
	RuleIGroup        = "i_group_from_naics"
	RulePrimStateFrom = "prim_state_from_area_title"
)

// OES area type codes.
const (
	AreaTypeNational  = "1"
	AreaTypeState     = "2"
	AreaTypeTerritory = "3"
	AreaTypeMSA       = "4"
	AreaTypeNonMetro  = "6"
)

// CrossIndustry is the I_GROUP value of cross-industry estimates.
const CrossIndustry = "cross-industry"

// Rules returns the rule set every built-in dialect resolves against.
func Rules() *registry.RuleSet {
	rs, err := registry.NewRuleSet(
		registry.Rule{
			Name:        RuleAreaType,
			Inputs:      []string{Area},
			Description: "derives the OES area type code from the area code",
			Func:        areaType,
		},
		registry.Rule{
			Name:        RuleIGroup,
			Inputs:      []string{NAICS},
			Description: "derives the industry aggregation level from the NAICS code",
			Func:        industryGroup,
		},
		registry.Rule{
			Name:        RulePrimStateFrom,
			Inputs:      []string{AreaTitle},
			Description: "derives the primary state from an area title",
			Func:        primaryState,
		},
	)
	if err != nil {
		panic(err) // static rule table
	}

	return rs
}

var territories = map[string]bool{"66": true, "72": true, "78": true}

func areaType(args []any) (any, error) {
	if table.IsBlank(args[0]) {
		return table.Null, nil
	}

	code := strings.TrimSpace(table.FormatValue(args[0]))

	switch {
	case code == "99" || code == "0000000":
		return AreaTypeNational, nil
	case territories[code]:
		return AreaTypeTerritory, nil
	case len(code) <= 2:
		return AreaTypeState, nil
	case len(code) == 7:
		return AreaTypeNonMetro, nil
	default:
		return AreaTypeMSA, nil
	}
}

// industryGroup classifies a NAICS code: "000000" is cross-industry, a
// hyphenated range ("31-330") is a sector, and otherwise the count of
// significant digits decides. Codes with a letter suffix ("3250A1") are OES
// aggregations classified by the full numeric prefix.
func industryGroup(args []any) (any, error) {
	if table.IsBlank(args[0]) {
		return table.Null, nil
	}

	code := strings.TrimSpace(table.FormatValue(args[0]))

	if strings.Trim(code, "0") == "" {
		return CrossIndustry, nil
	}

	if strings.Contains(code, "-") {
		return "sector", nil
	}

	var digits string
	if i := strings.IndexFunc(code, unicode.IsLetter); i >= 0 {
		digits = code[:i]
	} else {
		digits = strings.TrimRight(code, "0")
	}

	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return nil, fmt.Errorf("invalid NAICS code %q", code)
	}

	switch n := len(digits); {
	case n <= 2:
		return "sector", nil
	case n >= 6:
		return "6-digit", nil
	default:
		return fmt.Sprintf("%d-digit", n), nil
	}
}

// primaryState returns the first state of an area title. MSA titles end in
// state codes ("Allentown-Bethlehem-Easton, PA-NJ"); state titles are full
// names.
func primaryState(args []any) (any, error) {
	if table.IsBlank(args[0]) {
		return table.Null, nil
	}

	title := strings.TrimSpace(table.FormatValue(args[0]))

	if abbr, ok := stateAbbrev[strings.ToLower(title)]; ok {
		return abbr, nil
	}

	if i := strings.LastIndex(title, ","); i >= 0 {
		states := strings.TrimSpace(title[i+1:])
		first, _, _ := strings.Cut(states, "-")

		if len(first) == 2 && strings.ToUpper(first) == first {
			return first, nil
		}
	}

	return table.Null, nil
}

var stateAbbrev = map[string]string{
	"u.s.": "US", "united states": "US", "national": "US",
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"district of columbia": "DC", "florida": "FL", "georgia": "GA", "hawaii": "HI",
	"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
	"maryland": "MD", "massachusetts": "MA", "michigan": "MI", "minnesota": "MN",
	"mississippi": "MS", "missouri": "MO", "montana": "MT", "nebraska": "NE",
	"nevada": "NV", "new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
	"new york": "NY", "north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA", "rhode island": "RI",
	"south carolina": "SC", "south dakota": "SD", "tennessee": "TN", "texas": "TX",
	"utah": "UT", "vermont": "VT", "virginia": "VA", "washington": "WA",
	"west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
	"guam": "GU", "puerto rico": "PR", "virgin islands": "VI",
}
