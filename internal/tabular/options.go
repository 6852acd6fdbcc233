package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a file encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatCSV, FormatTSV, FormatXLSX, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported table format %q", name)
	}
}

// ReadOptions controls how raw files are loaded.
type ReadOptions struct {
	// Sheet selects the XLSX worksheet. Empty picks the first sheet whose
	// name looks like an OES data sheet, else the first sheet.
	Sheet string
	// Delimiter separates CSV fields. Zero means ',' (or '\t' for TSV).
	Delimiter rune
	// UpperHeaders uppercases header names; some releases use lower case.
	UpperHeaders bool
	// BlankAsNull turns blank cells into table.Null.
	BlankAsNull bool
}

// DefaultReadOptions returns the options used by the CLI and server.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		UpperHeaders: true,
		BlankAsNull:  true,
	}
}
