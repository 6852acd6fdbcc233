// Package tabular loads OES spreadsheets into tables and writes harmonized
// tables back out as CSV, XLSX or JSON.
//
// Cells are read as strings so codes such as AREA "01" or NAICS "000000"
// keep their leading zeros. Blank cells become table.Null unless
// ReadOptions.BlankAsNull is false.
package tabular
