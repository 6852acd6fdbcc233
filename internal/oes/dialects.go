package oes

import (
	"fmt"

	"oes-harmonize/internal/registry"
)

// Built-in dialect ids.
const (
	Dialect2011 = "2011"
	Dialect2014 = "2014"
	Dialect2018 = "2018"
)

// Cross-industry constants for releases that publish no industry columns.
const (
	CrossIndustryNAICS      = "000000"
	CrossIndustryNAICSTitle = "Cross-industry"
	AllOwnerships           = "1235"
)

// Dialects returns the built-in release dialects.
func Dialects() []*registry.Dialect {
	return []*registry.Dialect{dialect2011(), dialect2014(), dialect2018()}
}

// dialect2011 covers the cross-industry national, state and MSA files up to
// 2013: GROUP, LOC_Q and PCT_TOT before their later renames, no industry
// columns, no PRIM_STATE or PCT_RPT.
func dialect2011() *registry.Dialect {
	return &registry.Dialect{
		ID:          Dialect2011,
		Description: "cross-industry area files, 2011-2013",
		Rename: registry.Merge(
			registry.Identity(Area, OccCode, OccTitle, TotEmp, EmpPRSE, Jobs1000),
			registry.Identity(wageColumns...),
			map[string]string{
				"AREA_NAME": AreaTitle,
				"GROUP":     OGroup,
				"LOC_Q":     LocQuotient,
				"PCT_TOT":   PctTotal,
			},
		),
		Fill: map[string]registry.FillPolicy{
			AreaType:   registry.Computed(RuleAreaType),
			PrimState:  registry.Null(),
			NAICS:      registry.Constant(CrossIndustryNAICS),
			NAICSTitle: registry.Constant(CrossIndustryNAICSTitle),
			IGroup:     registry.Constant(CrossIndustry),
			OwnCode:    registry.Constant(AllOwnerships),
			PctRpt:     registry.Null(),
		},
	}
}

// dialect2014 covers the national industry-specific files from 2014 to 2017:
// OCC_GROUP instead of O_GROUP, no area columns and no I_GROUP.
func dialect2014() *registry.Dialect {
	return &registry.Dialect{
		ID:          Dialect2014,
		Description: "national industry-specific files, 2014-2017",
		Rename: registry.Merge(
			registry.Identity(NAICS, NAICSTitle, OwnCode, OccCode, OccTitle, TotEmp, EmpPRSE, PctTotal, PctRpt),
			registry.Identity(wageColumns...),
			map[string]string{"OCC_GROUP": OGroup},
		),
		Fill: map[string]registry.FillPolicy{
			Area:        registry.Constant("99"),
			AreaTitle:   registry.Constant("U.S."),
			AreaType:    registry.Computed(RuleAreaType),
			PrimState:   registry.Computed(RulePrimStateFrom),
			IGroup:      registry.Computed(RuleIGroup),
			Jobs1000:    registry.Null(),
			LocQuotient: registry.Null(),
		},
	}
}

// dialect2018 is the all-data layout from 2018 on, which already carries
// every canonical column.
func dialect2018() *registry.Dialect {
	return &registry.Dialect{
		ID:          Dialect2018,
		Description: "all-data files, 2018 onwards",
		Rename:      registry.Identity(Schema()...),
		Fill:        map[string]registry.FillPolicy{},
	}
}

// NewRegistry returns a registry holding the canonical schema, the built-in
// rules, the built-in dialects and then extra, in order.
func NewRegistry(extra ...*registry.Dialect) (*registry.Registry, error) {
	reg, err := registry.New(Schema(), Rules())
	if err != nil {
		return nil, err
	}

	for _, d := range append(Dialects(), extra...) {
		if err := reg.Register(d); err != nil {
			return nil, fmt.Errorf("registering dialects: %w", err)
		}
	}

	return reg, nil
}
