// Package main provides the cleaner command that loads the three source
// datasets, runs the cleaning pipeline, and writes the cleaned tables.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"newsprep/internal/cleaner"
	"newsprep/internal/config"
	"newsprep/internal/loader"
	"newsprep/internal/logger"
	"newsprep/internal/report"
	"newsprep/internal/table"
)

func main() {
	// 1. Define Command-Line Flags
	// ---------------------------
	articlesPath := flag.String("articles", "", "Path to the articles CSV")
	domainsPath := flag.String("domains", "", "Path to the domains-location CSV")
	trafficPath := flag.String("traffic", "", "Path to the traffic CSV")
	configPath := flag.String("config", "", "Path to YAML config (optional, built-in rules by default)")
	outDir := flag.String("out", "cleaned", "Directory for the cleaned CSVs")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")

	flag.Parse()

	if *articlesPath == "" || *domainsPath == "" || *trafficPath == "" {
		fmt.Println("Usage: cleaner -articles <data.csv> -domains <domains_location.csv> -traffic <traffic.csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load Configuration
	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}

	log := logger.NewLogger(level)

	log.Info("🚀 Starting dataset cleaning pipeline")

	startTime := time.Now()

	// 2. Ingestion (Loader)
	// ---------------------
	log.Info("Phase 1: Loading sources...")

	ds, err := loader.LoadDatasets(cfg, *articlesPath, *domainsPath, *trafficPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Load failed: %v", err))
		os.Exit(1)
	}

	rowsIn := map[string]int{
		ds.Articles.Name: ds.Articles.Len(),
		ds.Domains.Name:  ds.Domains.Len(),
		ds.Traffic.Name:  ds.Traffic.Len(),
	}

	log.Info(fmt.Sprintf("✅ Loaded %d article, %d domain, %d traffic rows in %v",
		ds.Articles.Len(), ds.Domains.Len(), ds.Traffic.Len(), time.Since(startTime)))

	// 3. Cleaning (Pipeline)
	// ----------------------
	log.Info("Phase 2: Cleaning...")

	cleanStart := time.Now()

	articles, domains, traffic, err := cleaner.Clean(cfg, log, ds.Articles, ds.Domains, ds.Traffic)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Cleaning failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Cleaned all tables in %v", time.Since(cleanStart)))

	if log.DebugEnabled() {
		for _, t := range []*table.Table{articles, domains, traffic} {
			fmt.Printf("\nSummary of %s:\n%s", t.Name, report.RenderSummary(t))
			fmt.Printf("\nHead of %s:\n%s", t.Name, report.Head(t, 5))
		}
	}

	// 4. Output (Writer)
	// ------------------
	log.Info("Phase 3: Writing cleaned tables...")

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Error(fmt.Sprintf("❌ Output directory: %v", err))
		os.Exit(1)
	}

	for _, t := range []*table.Table{articles, domains, traffic} {
		path := filepath.Join(*outDir, t.Name+".csv")
		if err := loader.WriteCSV(path, t); err != nil {
			log.Error(fmt.Sprintf("❌ Write failed: %v", err))
			os.Exit(1)
		}

		log.Info(fmt.Sprintf("✅ Wrote %s (%d rows)", path, t.Len()))
	}

	// 5. Final Report
	// ---------------
	log.Info("✨ Pipeline Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")

	for _, t := range []*table.Table{articles, domains, traffic} {
		fmt.Printf("%s: %d rows in, %d rows out\n", t.Name, rowsIn[t.Name], t.Len())
	}

	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}
