package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"oes-harmonize/internal/harmonize"
	"oes-harmonize/internal/inspect"
	"oes-harmonize/internal/registry"
	"oes-harmonize/internal/table"
	"oes-harmonize/internal/tabular"
)

// AutoDialect asks the server to detect the dialect from the header.
const AutoDialect = "auto"

// DialectHeader reports the dialect a table was harmonized with.
const DialectHeader = "X-Dialect"

var contentTypes = map[tabular.Format]string{
	tabular.FormatJSON: "application/json",
	tabular.FormatCSV:  "text/csv; charset=utf-8",
	tabular.FormatTSV:  "text/tab-separated-values; charset=utf-8",
	tabular.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type dialectInfo struct {
	ID          string            `json:"id"`
	Description string            `json:"description,omitempty"`
	RawColumns  []string          `json:"raw_columns"`
	Fill        map[string]string `json:"fill"`
}

func (s *Server) handleDialects(c *gin.Context) {
	reg := s.Registry()

	dialects := make([]dialectInfo, 0, len(reg.Dialects()))

	for _, id := range reg.Dialects() {
		d, err := reg.Lookup(id)
		if err != nil {
			abort(c, err, nil)

			return
		}

		fill := make(map[string]string, len(d.Fill))
		for col, p := range d.Fill {
			fill[col] = p.String()
		}

		dialects = append(dialects, dialectInfo{
			ID:          d.ID,
			Description: d.Description,
			RawColumns:  d.RawColumns(),
			Fill:        fill,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"canonical": reg.CanonicalSchema(),
		"rules":     reg.Rules().Names(),
		"dialects":  dialects,
	})
}

func (s *Server) handleHarmonize(c *gin.Context) {
	format, err := tabular.ParseFormat(c.DefaultQuery("format", string(tabular.FormatJSON)))
	if err != nil {
		abort(c, badInput(err), nil)

		return
	}

	dialect := c.Query("dialect")
	if dialect == "" {
		abort(c, badInput(fmt.Errorf("missing dialect parameter")), nil)

		return
	}

	raw, err := s.readInput(c)
	if err != nil {
		abort(c, err, nil)

		return
	}

	reg := s.Registry()

	if dialect == AutoDialect {
		detections := reg.Detect(raw.Columns)

		best := detections.Best(registry.DefaultMinDetectScore)
		if best == nil {
			abort(c, errDetect, gin.H{"candidates": detections})

			return
		}

		dialect = best.Dialect
	}

	out, err := harmonize.New(reg, s.config.Harmonize).HarmonizeParallel(c.Request.Context(), raw, dialect)
	if err != nil {
		abort(c, err, nil)

		return
	}

	c.Header(DialectHeader, dialect)
	s.writeTable(c, format, out)
}

func (s *Server) writeTable(c *gin.Context, format tabular.Format, t *table.Table) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", contentTypes[format])

	if format == tabular.FormatXLSX {
		c.Header("Content-Disposition", `attachment; filename="harmonized.xlsx"`)
	}

	if err := tabular.Write(c.Writer, format, t); err != nil {
		// Headers are gone; record the failure for the access log.
		_ = c.Error(err)
	}
}

func (s *Server) handleInspect(c *gin.Context) {
	raw, err := s.readInput(c)
	if err != nil {
		abort(c, err, nil)

		return
	}

	reg := s.Registry()
	opts := inspect.DefaultOptions(reg.CanonicalSchema())

	if id := c.Query("dialect"); id != "" {
		d, err := reg.Lookup(id)
		if err != nil {
			abort(c, err, nil)

			return
		}

		opts.Dialect = d
	}

	c.JSON(http.StatusOK, gin.H{
		"report":     inspect.Inspect(raw, opts),
		"detections": reg.Detect(raw.Columns),
	})
}
