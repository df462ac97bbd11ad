// Package main provides the inspect command-line tool for examining a single
// tabular source without cleaning it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"newsprep/internal/loader"
	"newsprep/internal/report"
)

func main() {
	inputPath := flag.String("input", "", "Path to input CSV file")
	head := flag.Int("head", 5, "Number of preview rows")
	unique := flag.String("unique", "", "Column to list unique values for (optional)")
	limit := flag.Int("limit", 20, "Maximum unique values to list")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: inspect -input <table.csv> [-head N] [-unique column]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	name := strings.TrimSuffix(filepath.Base(*inputPath), filepath.Ext(*inputPath))

	t, err := loader.LoadCSV(*inputPath, name, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("📂 %s: %d rows, %d columns\n\n", *inputPath, t.Len(), len(t.Columns))

	fmt.Printf("Column summary:\n%s\n", report.RenderSummary(t))

	if *head > 0 {
		fmt.Printf("Head:\n%s\n", report.Head(t, *head))
	}

	if *unique != "" {
		values := report.UniqueValues(t, *unique, *limit)
		if values == nil {
			fmt.Fprintf(os.Stderr, "No such column: %s\n", *unique)
			os.Exit(1)
		}

		fmt.Printf("Unique values in %q (first %d):\n", *unique, *limit)

		for _, v := range values {
			fmt.Printf("  %s\n", v)
		}
	}
}
