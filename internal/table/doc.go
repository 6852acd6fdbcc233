// Package table holds the in-memory tabular values exchanged between the
// spreadsheet readers, the harmonizer and the inspectors.
//
// A Table is an ordered header plus ordered rows. Rows are maps keyed by
// column name so that raw tables from different releases can carry whatever
// columns their source file had. Cells with no value are the Null marker.
package table
