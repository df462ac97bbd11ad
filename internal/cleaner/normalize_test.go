package cleaner

import (
	"testing"

	"newsprep/internal/config"
	"newsprep/internal/table"
)

func TestNormalizer_TextColumns(t *testing.T) {
	n := NewNormalizer(config.Default())

	ds := emptyDataset()
	ds.Articles = buildTable(t, "articles",
		[]string{"source_name", "domain", "content"},
		table.Row{str("  Fox-News! "), str("FOX.com"), str("Untouched CONTENT.")},
	)

	if err := n.Apply(ds); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if got := ds.Articles.Cell(0, "source_name").Render(); got != "foxnews" {
		t.Errorf("source_name = %q, want %q", got, "foxnews")
	}

	if got := ds.Articles.Cell(0, "domain").Render(); got != "foxcom" {
		t.Errorf("domain = %q, want %q", got, "foxcom")
	}

	// content is not a text-normalization column.
	if got := ds.Articles.Cell(0, "content").Render(); got != "Untouched CONTENT." {
		t.Errorf("content = %q, want untouched", got)
	}
}

func TestNormalizer_NullPassesThrough(t *testing.T) {
	n := NewNormalizer(config.Default())

	ds := emptyDataset()
	ds.Traffic = buildTable(t, "traffic",
		[]string{"Domain", "GlobalRank"},
		table.Row{null(), table.NewNumber(5)},
	)

	if err := n.Apply(ds); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !ds.Traffic.Cell(0, "Domain").IsNull() {
		t.Error("Expected null to pass through normalization unchanged")
	}

	if num, ok := ds.Traffic.Cell(0, "GlobalRank").Number(); !ok || num != 5 {
		t.Errorf("GlobalRank = %v (number=%v), want untouched 5", num, ok)
	}
}

func TestNormalizer_CountryStandardization(t *testing.T) {
	n := NewNormalizer(config.Default())

	ds := emptyDataset()
	ds.Domains = buildTable(t, "domains_location",
		[]string{"SourceCommonName", "location", "Country"},
		table.Row{str("CNN"), str("Atlanta"), str("USA")},
		table.Row{str("BBC"), str("London"), str("U.K.")},
		table.Row{str("DW"), str("Berlin"), str("Germany")},
	)

	if err := n.Apply(ds); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Normalization first (USA -> usa), then the lookup.
	if got := ds.Domains.Cell(0, "Country").Render(); got != "united states" {
		t.Errorf("Country = %q, want %q", got, "united states")
	}

	// Depunctuated U.K. matches the uk key.
	if got := ds.Domains.Cell(1, "Country").Render(); got != "united kingdom" {
		t.Errorf("Country = %q, want %q", got, "united kingdom")
	}

	// Entries not in the lookup stay at their normalized form.
	if got := ds.Domains.Cell(2, "Country").Render(); got != "germany" {
		t.Errorf("Country = %q, want %q", got, "germany")
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := NewNormalizer(config.Default())

	ds := emptyDataset()
	ds.Articles = buildTable(t, "articles",
		[]string{"source_name", "domain"},
		table.Row{str("Fox News!"), null()},
	)
	ds.Domains = buildTable(t, "domains_location",
		[]string{"SourceCommonName", "location", "Country"},
		table.Row{str("CNN"), str("Atlanta, GA"), str("USA")},
	)
	ds.Traffic = buildTable(t, "traffic",
		[]string{"Domain", "TLD"},
		table.Row{str("Example.COM"), str("com")},
	)

	if err := n.Apply(ds); err != nil {
		t.Fatalf("First Apply failed: %v", err)
	}

	snapshot := &Dataset{
		Articles: ds.Articles.Clone(),
		Domains:  ds.Domains.Clone(),
		Traffic:  ds.Traffic.Clone(),
	}

	if err := n.Apply(ds); err != nil {
		t.Fatalf("Second Apply failed: %v", err)
	}

	pairs := []struct {
		name   string
		before *table.Table
		after  *table.Table
	}{
		{"articles", snapshot.Articles, ds.Articles},
		{"domains", snapshot.Domains, ds.Domains},
		{"traffic", snapshot.Traffic, ds.Traffic},
	}

	for _, pair := range pairs {
		for r, row := range pair.after.Rows {
			for c, cell := range row {
				if !cell.Equal(pair.before.Rows[r][c]) {
					t.Errorf("%s cell (%d, %s) changed on second pass: %q -> %q",
						pair.name, r, pair.after.Columns[c],
						pair.before.Rows[r][c].Render(), cell.Render())
				}
			}
		}
	}
}
