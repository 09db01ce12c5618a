package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"vgdash/internal/config"
	"vgdash/internal/engine"
	"vgdash/internal/log"
	"vgdash/internal/output"
)

// options holds the parsed command line.
type options struct {
	data     string
	from     string
	to       string
	platform string
	genre    string
	preset   string
	groupBy  string
	colorBy  string
	hoverBy  string
	columns  string
	view     string
	format   string
	limit    int
	noSort   bool
	verbose  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.data, "data", "", "Dataset file, .csv or .parquet (default $VGSALES_DATASET or vgsales.csv)")
	flag.StringVar(&opts.from, "from", "", "First year, YYYY or YYYY-MM-DD (default: earliest in dataset)")
	flag.StringVar(&opts.to, "to", "", "Last year, YYYY or YYYY-MM-DD (default: latest in dataset)")
	flag.StringVar(&opts.platform, "platform", "", "Comma separated platforms (default: all)")
	flag.StringVar(&opts.genre, "genre", "", "Comma separated genres (default: all)")
	flag.StringVar(&opts.preset, "preset", "", "Dashboard preset: "+strings.Join(engine.PresetNames(), ", "))
	flag.StringVar(&opts.groupBy, "group-by", "", "Grouping dimension: platform, genre, publisher, year")
	flag.StringVar(&opts.colorBy, "color-by", "", "Split each box by this dimension")
	flag.StringVar(&opts.hoverBy, "hover-by", "", "Dimension shown next to each point's name")
	flag.StringVar(&opts.columns, "columns", "", "Comma separated table columns")
	flag.StringVar(&opts.view, "view", "table", "What to print: table, sales, distribution, facets")
	flag.StringVar(&opts.format, "format", "table", "Output format: table, csv, json")
	flag.IntVar(&opts.limit, "limit", 0, "Limit number of table rows (0 = unlimited)")
	flag.BoolVar(&opts.noSort, "no-sort", false, "Keep dataset order instead of sorting by sales")
	flag.BoolVar(&opts.verbose, "v", false, "Log loading details to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Query the video game sales dataset.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -platform Wii -from 2008 -to 2009\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -preset yearly -platform PS2 -view distribution\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -view sales -group-by genre -format csv\n", os.Args[0])
	}
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = slog.LevelWarn
	if opts.verbose {
		logCfg.Level = slog.LevelInfo
	}
	logCfg.Component = log.ComponentCLI
	logCfg.Output = os.Stderr
	log.SetDefault(log.New(logCfg))

	path := cfg.DatasetPath
	if opts.data != "" {
		path = opts.data
	}

	formatter, err := output.New(opts.format, os.Stdout)
	if err != nil {
		return err
	}

	table, _, err := engine.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("dataset '%s' not found", path)
		}
		return err
	}
	return render(formatter, table, opts)
}

// render runs the selected view against table and writes it out.
func render(formatter output.Formatter, table *engine.Table, opts options) error {
	slog.Info("Running query", log.FieldOperation, opts.view, log.FieldPreset, opts.preset)

	if opts.view == "facets" {
		return formatter.Format(output.FromFacets(table.Facets()))
	}

	req, err := opts.params().Request(table)
	if err != nil {
		return err
	}
	view := engine.Filter(table, req.Criteria)

	switch opts.view {
	case "table":
		p := engine.ProjectAndSort(view, req.Columns, req.BySales)
		if opts.limit > 0 && len(p.Rows) > opts.limit {
			p.Rows = p.Rows[:opts.limit]
		}
		return formatter.Format(output.FromProjection(p))
	case "sales":
		totals := engine.GroupedSum(view, req.GroupBy)
		return formatter.Format(output.FromTotals(string(req.GroupBy), totals))
	case "distribution":
		boxes := engine.Distribution(view, req.Box)
		return formatter.Format(output.FromBoxes(string(req.Box.GroupBy), string(req.Box.ColorBy), boxes))
	}
	return fmt.Errorf("unknown view %q: must be one of [table sales distribution facets]", opts.view)
}

func (o options) params() engine.Params {
	p := engine.Params{
		Preset:    o.preset,
		StartDate: o.from,
		EndDate:   o.to,
		GroupBy:   o.groupBy,
		ColorBy:   o.colorBy,
		HoverBy:   o.hoverBy,
		Columns:   engine.ParseSelection([]string{o.columns}),
	}
	if o.platform != "" {
		sel := engine.ParseSelection([]string{o.platform})
		p.Platforms = &sel
	}
	if o.genre != "" {
		sel := engine.ParseSelection([]string{o.genre})
		p.Genres = &sel
	}
	if o.noSort {
		p.Sort = "none"
	}
	return p
}
