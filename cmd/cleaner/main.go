package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cleantab/internal/config"
	"cleantab/internal/session"
	"cleantab/internal/transform"
)

func main() {
	inFile := flag.String("in", "", "data file to load (csv, xlsx, json, parquet)")
	outFile := flag.String("out", "", "destination file (defaults to overwriting the input)")
	normalize := flag.Bool("normalize", false, "rewrite column headers to lower snake_case before saving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger(os.Stderr)

	paths, err := config.NewPaths(cfg)
	if err != nil {
		logger.Error("Failed to initialize paths", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sess := session.New(logger, session.Config{
		CurrencySymbol:    cfg.CurrencySymbol,
		NumericSampleSize: cfg.NumericSampleSize,
	})

	// Without an input file, show what the engine can do and what it can
	// see, then exit.
	if *inFile == "" {
		printCatalog()
		listDataFiles(paths, logger)
		return
	}

	logger.Info("Starting table cleaning",
		slog.String("input", *inFile),
		slog.Bool("normalize", *normalize))

	if err := sess.Load(*inFile); err != nil {
		logger.Error("Failed to load table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	summaries, err := sess.Describe()
	if err != nil {
		logger.Error("Failed to describe table", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, s := range summaries {
		logger.Info("Column summary",
			slog.String("column", s.Name),
			slog.String("kind", string(s.Kind)),
			slog.Int("nulls", s.NullCount),
			slog.Int("unique", s.UniqueCount))
	}

	if *normalize {
		names, err := sess.NormalizeColumnNames()
		if err != nil {
			logger.Error("Failed to normalize column names", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Column names normalized", slog.Int("columns", len(names)))
	}

	dest := *outFile
	if dest == "" {
		dest = *inFile
	}
	if err := sess.SaveAs(dest); err != nil {
		logger.Error("Failed to save table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Cleaning complete",
		slog.String("output", dest),
		slog.Int("rows", sess.Table().RowCount()))
}

func printCatalog() {
	fmt.Println("Available transformations:")
	for _, d := range transform.Catalog() {
		fmt.Printf("  %-10s %-14s %s\n", d.Family, d.Type, d.Description)
	}
}

func listDataFiles(paths *config.Paths, logger *slog.Logger) {
	names, err := paths.ListDataFiles()
	if err != nil {
		logger.Warn("Could not list data directory", slog.String("error", err.Error()))
		return
	}

	fmt.Printf("\nData files in %s:\n", paths.DataDir)
	if len(names) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}
