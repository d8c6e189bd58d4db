package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vegasq/onehotsql/encode"
	"github.com/vegasq/onehotsql/frame"
	"github.com/vegasq/onehotsql/output"
	"github.com/vegasq/onehotsql/reader"
)

var (
	metaFlag        = flag.String("meta", "", "Catalog YAML to encode against (omit to capture a fresh catalog)")
	metaOutFlag     = flag.String("meta-out", "", "Write the (captured or reused) catalog YAML to this path")
	sepFlag         = flag.String("sep", encode.DefaultSeparator, "Separator between column name and level in output names")
	noNormalizeFlag = flag.Bool("no-normalize", false, "Keep whitespace/punctuation in level names")
	subFlag         = flag.String("sub", encode.DefaultSubstitute, "Replacement for whitespace/punctuation in level names")
	rowKeyFlag      = flag.String("row-key", "", "Unique-id identifier selected first in the generated SQL")
	tableFlag       = flag.String("table", "", "Source table name in the generated SQL")
	sqlFlag         = flag.String("sql", "", "Write the generated SQL to this path (\"-\" = stdout)")
	formatFlag      = flag.String("f", "csv", "Matrix output format: csv, jsonl, table, none")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.parquet|file.csv>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "One-hot encode a dataset and emit the SQL that reproduces the encoding.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the file argument.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s diamonds.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -meta-out meta.yaml -sql train.sql diamonds.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -meta meta.yaml -f jsonl scoring.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -meta meta.yaml -table diamonds -row-key id -sql - -f none scoring.csv\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one input file\n\n")
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	rows, err := loadRows(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", filename, err)
		os.Exit(1)
	}

	f, err := frame.FromRows(rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building frame: %v\n", err)
		os.Exit(1)
	}

	opts, cleanup, err := buildOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	res, err := encode.Encode(f, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding: %v\n", err)
		os.Exit(1)
	}
	reportWarnings(res)

	if *metaOutFlag != "" {
		if err := saveCatalog(*metaOutFlag, res.Catalog); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing catalog: %v\n", err)
			os.Exit(1)
		}
	}

	if err := formatMatrix(res.Matrix, *formatFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing matrix: %v\n", err)
		os.Exit(1)
	}
}

// loadRows dispatches on file extension.
func loadRows(path string) ([]map[string]interface{}, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet", ".pq":
		return reader.ReadParquet(path)
	case ".csv":
		return reader.ReadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file extension (want .parquet or .csv)")
	}
}

// buildOptions translates flags into encode options. The returned cleanup
// closes any file opened for the SQL sink.
func buildOptions() ([]encode.Option, func(), error) {
	cleanup := func() {}
	var opts []encode.Option

	if *metaFlag != "" {
		mf, err := os.Open(*metaFlag)
		if err != nil {
			return nil, cleanup, fmt.Errorf("opening catalog: %w", err)
		}
		cat, err := encode.LoadCatalog(mf)
		_ = mf.Close()
		if err != nil {
			return nil, cleanup, err
		}
		opts = append(opts, encode.WithCatalog(cat))
	}

	opts = append(opts, encode.WithSeparator(*sepFlag))
	if *noNormalizeFlag {
		opts = append(opts, encode.WithoutNormalize())
	} else if *subFlag != encode.DefaultSubstitute {
		opts = append(opts, encode.WithSubstitute(*subFlag))
	}
	if *rowKeyFlag != "" {
		opts = append(opts, encode.WithRowKey(*rowKeyFlag))
	}
	if *tableFlag != "" {
		opts = append(opts, encode.WithTable(*tableFlag))
	}

	if *sqlFlag != "" {
		if *sqlFlag == "-" {
			opts = append(opts, encode.WithSQLWriter(os.Stdout))
		} else {
			sf, err := os.Create(*sqlFlag)
			if err != nil {
				return nil, cleanup, fmt.Errorf("creating SQL output: %w", err)
			}
			cleanup = func() { _ = sf.Close() }
			opts = append(opts, encode.WithSQLWriter(sf))
		}
	}
	return opts, cleanup, nil
}

// reportWarnings prints the non-fatal signals an encoding can raise.
func reportWarnings(res *encode.Result) {
	if len(res.MissingColumns) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: columns missing from input, filled with NA: %s\n",
			strings.Join(res.MissingColumns, ", "))
	}
	for _, col := range sortedKeys(res.Unseen) {
		fmt.Fprintf(os.Stderr, "Warning: column %q has levels outside the catalog (encoded as all-zero): %s\n",
			col, strings.Join(res.Unseen[col], ", "))
	}
	for _, note := range res.Notes {
		fmt.Fprintf(os.Stderr, "Note: %s\n", note)
	}
}

// sortedKeys returns map keys in deterministic order for stable output.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func saveCatalog(path string, cat *encode.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode.SaveCatalog(f, cat); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func formatMatrix(m *encode.Matrix, format string) error {
	var formatter output.Formatter
	switch format {
	case "csv":
		formatter = output.NewCSVFormatter(os.Stdout)
	case "jsonl":
		formatter = output.NewJSONFormatter(os.Stdout)
	case "table":
		formatter = output.NewTableFormatter(os.Stdout)
	case "none":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want csv, jsonl, table, or none)", format)
	}
	return formatter.Format(m)
}
