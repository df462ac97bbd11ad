// Package loader reads the three tabular sources into tables and writes
// cleaned tables back out. It performs no row filtering and no type
// coercion; cells arrive as strings, with empty fields mapped to the null
// marker so the cleaning stages see missing data uniformly.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"newsprep/internal/config"
	"newsprep/internal/table"
)

// Loading errors.
var (
	ErrEmptySource   = errors.New("source contains no header row")
	ErrMissingColumn = errors.New("missing required column")
)

// Table names used in logs, reports and error messages.
const (
	ArticlesName = "articles"
	DomainsName  = "domains_location"
	TrafficName  = "traffic"
)

// LoadCSV reads a CSV file into a table. The first record is the header and
// becomes the column schema; every required column must appear in it. Empty
// fields become null cells.
func LoadCSV(path, name string, required []string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s source: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s source: %w", name, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, name)
	}

	t := table.New(name, records[0])

	for _, col := range required {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q in %s", ErrMissingColumn, col, name)
		}
	}

	for _, record := range records[1:] {
		row := make(table.Row, len(t.Columns))
		for i := range t.Columns {
			if i < len(record) && record[i] != "" {
				row[i] = table.NewString(record[i])
			} else {
				row[i] = table.Null()
			}
		}

		if err := t.AppendRow(row); err != nil {
			return nil, fmt.Errorf("failed to load %s source: %w", name, err)
		}
	}

	return t, nil
}

// Datasets bundles the three loaded source tables.
type Datasets struct {
	Articles *table.Table
	Domains  *table.Table
	Traffic  *table.Table
}

// LoadDatasets reads the three sources, checking each against the required
// columns of the given rule tables. Any failure aborts the whole load.
func LoadDatasets(cfg *config.Config, articlesPath, domainsPath, trafficPath string) (*Datasets, error) {
	articles, err := LoadCSV(articlesPath, ArticlesName, cfg.Articles.RequiredColumns)
	if err != nil {
		return nil, err
	}

	domains, err := LoadCSV(domainsPath, DomainsName, cfg.Domains.RequiredColumns)
	if err != nil {
		return nil, err
	}

	traffic, err := LoadCSV(trafficPath, TrafficName, cfg.Traffic.RequiredColumns)
	if err != nil {
		return nil, err
	}

	return &Datasets{Articles: articles, Domains: domains, Traffic: traffic}, nil
}

// WriteCSV writes a table as CSV, header first. Null cells render as empty
// fields, so a written table loads back with the same null cells.
func WriteCSV(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output for %s: %w", t.Name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write %s header: %w", t.Name, err)
	}

	record := make([]string, len(t.Columns))

	for _, row := range t.Rows {
		for i, cell := range row {
			record[i] = cell.Render()
		}

		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write %s row: %w", t.Name, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s output: %w", t.Name, err)
	}

	return nil
}
