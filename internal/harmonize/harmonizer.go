package harmonize

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"oes-harmonize/internal/registry"
	"oes-harmonize/internal/table"
)

// Config controls partitioned harmonization.
type Config struct {
	// PartitionSize is the number of rows per parallel partition.
	PartitionSize int
	// Workers bounds the number of partitions processed at once.
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PartitionSize: 10000,
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// Harmonizer applies registered dialects to raw tables.
type Harmonizer struct {
	reg    *registry.Registry
	config Config
}

// New creates a Harmonizer over a fully populated registry.
func New(reg *registry.Registry, config Config) *Harmonizer {
	if config.PartitionSize <= 0 {
		config.PartitionSize = DefaultConfig().PartitionSize
	}

	if config.Workers <= 0 {
		config.Workers = 1
	}

	return &Harmonizer{reg: reg, config: config}
}

// Registry returns the registry the harmonizer resolves dialects against.
func (h *Harmonizer) Registry() *registry.Registry {
	return h.reg
}

// Harmonize converts raw, written in dialect, to the canonical schema.
func (h *Harmonizer) Harmonize(raw *table.Table, dialect string) (*table.Table, error) {
	if raw == nil {
		return nil, ErrNilTable
	}

	plan, err := h.reg.Plan(dialect)
	if err != nil {
		return nil, err
	}

	rows, err := harmonizeRows(plan, raw.Rows, 0)
	if err != nil {
		return nil, err
	}

	return &table.Table{Columns: plan.Columns.Clone(), Rows: rows}, nil
}

// HarmonizeParallel is Harmonize over contiguous row partitions processed
// concurrently. The result is identical to Harmonize; the first failing
// partition cancels the ones not yet started.
func (h *Harmonizer) HarmonizeParallel(ctx context.Context, raw *table.Table, dialect string) (*table.Table, error) {
	if raw == nil {
		return nil, ErrNilTable
	}

	plan, err := h.reg.Plan(dialect)
	if err != nil {
		return nil, err
	}

	size := h.config.PartitionSize
	if len(raw.Rows) <= size {
		return h.Harmonize(raw, dialect)
	}

	out := make([]table.Row, len(raw.Rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.config.Workers)

	for start := 0; start < len(raw.Rows); start += size {
		end := min(start+size, len(raw.Rows))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rows, err := harmonizeRows(plan, raw.Slice(start, end).Rows, start)
			if err != nil {
				return err
			}

			copy(out[start:end], rows)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &table.Table{Columns: plan.Columns.Clone(), Rows: out}, nil
}

// harmonizeRows converts rows; offset is the index of rows[0] in the raw
// table and is used in error reports.
func harmonizeRows(plan *registry.Plan, rows []table.Row, offset int) ([]table.Row, error) {
	out := make([]table.Row, len(rows))

	for i, raw := range rows {
		row, err := harmonizeRow(plan, raw, offset+i)
		if err != nil {
			return nil, err
		}

		out[i] = row
	}

	return out, nil
}

func harmonizeRow(plan *registry.Plan, raw table.Row, index int) (table.Row, error) {
	row := make(table.Row, len(plan.Columns))

	for _, step := range plan.Renames {
		v, ok := raw[step.Raw]
		if !ok || v == nil {
			v = table.Null
		}

		row[step.Canonical] = v
	}

	for _, step := range plan.Fills {
		v, err := fill(step, row)
		if err != nil {
			return nil, &RuleError{
				Dialect: plan.Dialect,
				Row:     index,
				Column:  step.Column,
				Rule:    step.Policy.Rule,
				Err:     err,
			}
		}

		row[step.Column] = v
	}

	if err := checkRow(plan, row, index); err != nil {
		return nil, err
	}

	return row, nil
}

func fill(step registry.FillStep, row table.Row) (any, error) {
	switch step.Policy.Kind {
	case registry.FillConstant:
		return step.Policy.Value, nil
	case registry.FillComputed:
		args := make([]any, len(step.Rule.Inputs))
		for i, in := range step.Rule.Inputs {
			v, ok := row[in]
			if !ok {
				v = table.Null
			}

			args[i] = v
		}

		v, err := step.Rule.Eval(args)
		if err != nil {
			return nil, err
		}

		if v == nil {
			v = table.Null
		}

		return v, nil
	default:
		return table.Null, nil
	}
}

// checkRow verifies the row holds exactly the canonical columns.
func checkRow(plan *registry.Plan, row table.Row, index int) error {
	var missing []string

	for _, col := range plan.Columns {
		if _, ok := row[col]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) == 0 && len(row) == len(plan.Columns) {
		return nil
	}

	var extra []string

	for col := range row {
		if !plan.Columns.Contains(col) {
			extra = append(extra, col)
		}
	}

	slices.Sort(extra)

	return &InvariantError{Dialect: plan.Dialect, Row: index, Missing: missing, Extra: extra}
}
