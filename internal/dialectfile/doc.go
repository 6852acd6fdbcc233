// Package dialectfile reads and writes dialect definitions as YAML, so new
// releases can be supported without recompiling.
//
// # File format
//
//	version: "1"
//	dialects:
//	  - id: "2011"
//	    description: cross-industry area files
//	    # Raw columns renamed to canonical columns.
//	    rename:
//	      GROUP: O_GROUP
//	      LOC_Q: LOC_QUOTIENT
//	    # Raw columns that already carry their canonical name.
//	    identity: [AREA, OCC_CODE, OCC_TITLE]
//	    # Canonical columns absent from the raw data.
//	    fill:
//	      I_GROUP: {constant: cross-industry}
//	      PRIM_STATE: null
//	      AREA_TYPE: {computed: area_type}
//
// Constants are kept as strings, matching how tabular readers load cells.
// Computed rules are referenced by name and must exist in the registry the
// file is registered against.
package dialectfile
