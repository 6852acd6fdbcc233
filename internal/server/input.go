package server

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"oes-harmonize/internal/table"
	"oes-harmonize/internal/tabular"
)

// readInput loads the request table from the multipart "file" field or the
// "source" form value. The optional "sheet" query parameter selects the
// XLSX worksheet.
func (s *Server) readInput(c *gin.Context) (*table.Table, error) {
	opts := s.config.Read
	if sheet := c.Query("sheet"); sheet != "" {
		opts.Sheet = sheet
	}

	fh, err := c.FormFile("file")

	switch {
	case err == nil:
		format, err := tabular.FormatFromPath(fh.Filename)
		if err != nil {
			return nil, badInput(err)
		}

		f, err := fh.Open()
		if err != nil {
			return nil, badInput(err)
		}
		defer f.Close()

		t, err := tabular.Read(f, format, opts)
		if err != nil {
			return nil, badInput(fmt.Errorf("%s: %w", fh.Filename, err))
		}

		return t, nil

	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return s.readSource(c.PostForm("source"), opts)

	default:
		return nil, badInput(err)
	}
}

func (s *Server) readSource(source string, opts tabular.ReadOptions) (*table.Table, error) {
	if source == "" {
		return nil, badInput(errors.New(`request needs a "file" upload or a "source" value`))
	}

	if s.config.DataDir == "" {
		return nil, badInput(errors.New("sourced input is disabled"))
	}

	if !filepath.IsLocal(source) {
		return nil, badInput(fmt.Errorf("source %q escapes the data directory", source))
	}

	t, err := tabular.ReadFile(filepath.Join(s.config.DataDir, source), opts)
	if err != nil {
		return nil, badInput(err)
	}

	return t, nil
}
