package cleaner

import (
	"newsprep/internal/config"
	"newsprep/internal/table"
	"newsprep/pkg/textnorm"
)

// Normalizer lowercases, depunctuates and trims the configured text columns,
// then standardizes country spellings through the lookup table. Both passes
// are per-cell pure functions: nulls pass through untouched and the stage is
// idempotent.
type Normalizer struct {
	articleCols []string
	domainCols  []string
	trafficCols []string
	countries   map[string]string
}

// NewNormalizer creates the normalization stage.
func NewNormalizer(cfg *config.Config) *Normalizer {
	return &Normalizer{
		articleCols: cfg.Articles.TextColumns,
		domainCols:  cfg.Domains.TextColumns,
		trafficCols: cfg.Traffic.TextColumns,
		countries:   cfg.Countries,
	}
}

// Name identifies the stage in logs.
func (n *Normalizer) Name() string {
	return "normalization"
}

// Apply normalizes text columns on all three tables, then standardizes
// DomainLocation country values. Standardization must run second: the lookup
// keys are in normalized form.
func (n *Normalizer) Apply(ds *Dataset) error {
	normalizeColumns(ds.Articles, n.articleCols)
	normalizeColumns(ds.Domains, n.domainCols)
	normalizeColumns(ds.Traffic, n.trafficCols)

	ds.Domains.UpdateColumn("Country", func(v table.Value) table.Value {
		s, ok := v.Text()
		if !ok {
			return v
		}

		if canonical, found := n.countries[s]; found {
			return table.NewString(canonical)
		}

		return v
	})

	return nil
}

func normalizeColumns(t *table.Table, columns []string) {
	for _, col := range columns {
		t.UpdateColumn(col, func(v table.Value) table.Value {
			s, ok := v.Text()
			if !ok {
				return v
			}

			return table.NewString(textnorm.Normalize(s))
		})
	}
}
