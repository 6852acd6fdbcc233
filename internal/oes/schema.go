package oes

import "oes-harmonize/internal/registry"

// Canonical column names referenced by rules and dialects.
const (
	Area        = "AREA"
	AreaTitle   = "AREA_TITLE"
	AreaType    = "AREA_TYPE"
	PrimState   = "PRIM_STATE"
	NAICS       = "NAICS"
	NAICSTitle  = "NAICS_TITLE"
	IGroup      = "I_GROUP"
	OwnCode     = "OWN_CODE"
	OccCode     = "OCC_CODE"
	OccTitle    = "OCC_TITLE"
	OGroup      = "O_GROUP"
	TotEmp      = "TOT_EMP"
	EmpPRSE     = "EMP_PRSE"
	Jobs1000    = "JOBS_1000"
	LocQuotient = "LOC_QUOTIENT"
	PctTotal    = "PCT_TOTAL"
	PctRpt      = "PCT_RPT"
)

// wageColumns are identical in every release.
var wageColumns = []string{
	"H_MEAN", "A_MEAN", "MEAN_PRSE",
	"H_PCT10", "H_PCT25", "H_MEDIAN", "H_PCT75", "H_PCT90",
	"A_PCT10", "A_PCT25", "A_MEDIAN", "A_PCT75", "A_PCT90",
	"ANNUAL", "HOURLY",
}

// Schema returns the canonical column order.
func Schema() registry.Schema {
	s := registry.Schema{
		Area, AreaTitle, AreaType, PrimState,
		NAICS, NAICSTitle, IGroup, OwnCode,
		OccCode, OccTitle, OGroup,
		TotEmp, EmpPRSE, Jobs1000, LocQuotient, PctTotal, PctRpt,
	}

	return append(s, wageColumns...)
}
