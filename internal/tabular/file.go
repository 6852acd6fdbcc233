package tabular

import (
	"fmt"
	"io"
	"os"

	"oes-harmonize/internal/table"
)

// Read reads a table in format from r.
func Read(r io.Reader, format Format, opts ReadOptions) (*table.Table, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r, opts)
	case FormatTSV:
		if opts.Delimiter == 0 {
			opts.Delimiter = '\t'
		}

		return ReadCSV(r, opts)
	case FormatXLSX:
		return ReadXLSX(r, opts)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return nil, fmt.Errorf("unsupported table format %q", format)
	}
}

// ReadFile reads the table at path, choosing the format by extension.
func ReadFile(path string, opts ReadOptions) (*table.Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f, format, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Write writes t to w in format.
func Write(w io.Writer, format Format, t *table.Table) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, t, ',')
	case FormatTSV:
		return WriteCSV(w, t, '\t')
	case FormatXLSX:
		return WriteXLSX(w, t)
	case FormatJSON:
		return WriteJSON(w, t)
	default:
		return fmt.Errorf("unsupported table format %q", format)
	}
}

// WriteFile writes t to path, choosing the format by extension.
func WriteFile(path string, t *table.Table) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, format, t); err != nil {
		f.Close()

		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}
