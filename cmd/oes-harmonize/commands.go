package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"oes-harmonize/internal/common"
	"oes-harmonize/internal/dialectfile"
	"oes-harmonize/internal/harmonize"
	"oes-harmonize/internal/inspect"
	"oes-harmonize/internal/registry"
	"oes-harmonize/internal/server"
	"oes-harmonize/internal/table"
	"oes-harmonize/internal/tabular"
)

func runDialects(_ context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("dialects", flag.ContinueOnError)

	var (
		cf     commonFlags
		export string
	)

	cf.register(fs)
	fs.StringVar(&export, "export", "", "write the registered dialects to this YAML file (- for stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := cf.setup()
	if err != nil {
		return err
	}

	dialects := make([]*registry.Dialect, 0, len(reg.Dialects()))

	for _, id := range reg.Dialects() {
		d, err := reg.Lookup(id)
		if err != nil {
			return err
		}

		dialects = append(dialects, d)
	}

	if export != "" {
		f := dialectfile.FromDialects(dialects...)
		if export == "-" {
			data, err := dialectfile.Marshal(f)
			if err != nil {
				return err
			}

			_, err = stdout.Write(data)

			return err
		}

		if err := dialectfile.WriteFile(f, export); err != nil {
			return err
		}

		slog.Info("exported dialects", slog.String("file", export), slog.Int("count", len(dialects)))

		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRAW COLUMNS\tFILLS\tDESCRIPTION")

	for _, d := range dialects {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", d.ID, len(d.Rename), len(d.Fill), d.Description)
	}

	return tw.Flush()
}

func runDetect(_ context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)

	var (
		cf     commonFlags
		read   readFlags
		asJSON bool
	)

	cf.register(fs)
	read.register(fs)
	fs.BoolVar(&asJSON, "json", false, "print detections as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := singleFile(fs)
	if err != nil {
		return err
	}

	reg, err := cf.setup()
	if err != nil {
		return err
	}

	raw, err := readTable(path, read)
	if err != nil {
		return err
	}

	detections := reg.Detect(raw.Columns)

	if asJSON {
		return writeJSON(stdout, detections)
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DIALECT\tSCORE\tMATCHED\tMISSING\tUNKNOWN")

	for _, d := range detections {
		fmt.Fprintf(tw, "%s\t%.3f\t%d\t%s\t%s\n",
			d.Dialect, d.Score, len(d.Matched), list(d.Missing), list(d.Unknown))
	}

	return tw.Flush()
}

func runInspect(_ context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)

	var (
		cf      commonFlags
		read    readFlags
		asJSON  bool
		samples int
		dialect string
	)

	cf.register(fs)
	read.register(fs)
	fs.BoolVar(&asJSON, "json", false, "print the report as JSON")
	fs.IntVar(&samples, "samples", 5, "distinct sample values per column")
	fs.StringVar(&dialect, "dialect", "", "report the header columns this dialect would drop")

	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := singleFile(fs)
	if err != nil {
		return err
	}

	reg, err := cf.setup()
	if err != nil {
		return err
	}

	raw, err := readTable(path, read)
	if err != nil {
		return err
	}

	opts := inspect.DefaultOptions(reg.CanonicalSchema())
	opts.SampleSize = samples

	if dialect != "" {
		if opts.Dialect, err = reg.Lookup(dialect); err != nil {
			return err
		}
	}

	rep := inspect.Inspect(raw, opts)

	if asJSON {
		return rep.WriteJSON(stdout)
	}

	return rep.WriteText(stdout)
}

func runHarmonize(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("harmonize", flag.ContinueOnError)

	var (
		cf      commonFlags
		read    readFlags
		dialect string
		out     string
		format  string
	)

	config := harmonize.DefaultConfig()

	cf.register(fs)
	read.register(fs)
	fs.StringVar(&dialect, "dialect", server.AutoDialect, "dialect id, or auto to detect it per file")
	fs.StringVar(&out, "out", "", "output file; format follows the extension (default stdout)")
	fs.StringVar(&format, "format", string(tabular.FormatCSV), "stdout format: csv, tsv, json or xlsx")
	fs.IntVar(&config.PartitionSize, "partition", config.PartitionSize, "rows per parallel partition")
	fs.IntVar(&config.Workers, "workers", config.Workers, "partitions processed at once")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if common.IsEmpty(fs.Args()) {
		return errors.New("harmonize needs at least one input file")
	}

	reg, err := cf.setup()
	if err != nil {
		return err
	}

	h := harmonize.New(reg, config)
	parts := make([]*table.Table, 0, fs.NArg())

	for _, path := range fs.Args() {
		raw, err := readTable(path, read)
		if err != nil {
			return err
		}

		id, err := resolveDialect(reg, raw, dialect)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		t, err := h.HarmonizeParallel(ctx, raw, id)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		slog.Info("harmonized", slog.String("file", path), slog.String("dialect", id), slog.Int("rows", t.Len()))

		parts = append(parts, t)
	}

	all, err := table.Concat(parts...)
	if err != nil {
		return err
	}

	if out != "" {
		return tabular.WriteFile(out, all)
	}

	f, err := tabular.ParseFormat(format)
	if err != nil {
		return err
	}

	return tabular.Write(stdout, f, all)
}

func runServe(ctx context.Context, args []string, _ io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)

	var (
		cf   commonFlags
		read readFlags
	)

	config := server.DefaultConfig()

	cf.register(fs)
	read.register(fs)
	fs.StringVar(&config.Addr, "addr", config.Addr, "listen address")
	fs.StringVar(&config.DataDir, "data", "", "directory of files addressable by the source form value")
	fs.BoolVar(&config.Watch, "watch", config.Watch, "reload dialects when the dialect directory changes")
	fs.Int64Var(&config.MaxUploadBytes, "max-upload", config.MaxUploadBytes, "maximum request body size in bytes")
	fs.IntVar(&config.Harmonize.PartitionSize, "partition", config.Harmonize.PartitionSize, "rows per parallel partition")
	fs.IntVar(&config.Harmonize.Workers, "workers", config.Harmonize.Workers, "partitions processed at once")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := setupLogger(cf.logLevel); err != nil {
		return err
	}

	opts, err := read.options()
	if err != nil {
		return err
	}

	config.Read = opts
	config.DialectDir = cf.dialectDir

	s, err := server.New(config, slog.Default())
	if err != nil {
		return err
	}

	return s.Run(ctx)
}

// resolveDialect returns id, or the detected dialect when id is auto.
func resolveDialect(reg *registry.Registry, raw *table.Table, id string) (string, error) {
	if id != server.AutoDialect {
		return id, nil
	}

	detections := reg.Detect(raw.Columns)

	best := detections.Best(registry.DefaultMinDetectScore)
	if best == nil {
		if top := detections.Best(0); top != nil {
			return "", fmt.Errorf("no dialect matches the header (closest %s, score %.2f)", top.Dialect, top.Score)
		}

		return "", errors.New("no dialect matches the header")
	}

	slog.Debug("detected dialect", slog.String("dialect", best.Dialect), slog.Float64("score", best.Score))

	return best.Dialect, nil
}

func readTable(path string, read readFlags) (*table.Table, error) {
	opts, err := read.options()
	if err != nil {
		return nil, err
	}

	return tabular.ReadFile(path, opts)
}

func singleFile(fs *flag.FlagSet) (string, error) {
	if !common.IsSingle(fs.Args()) {
		return "", fmt.Errorf("%s needs exactly one input file", fs.Name())
	}

	return fs.Arg(0), nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))

	return err
}

func list(values []string) string {
	if len(values) == 0 {
		return "-"
	}

	return strings.Join(values, ",")
}
