package cleaner

import (
	"newsprep/internal/config"
	"newsprep/internal/logger"
	"newsprep/internal/report"
	"newsprep/internal/table"
)

// MissingValueHandler drops or fills cells with missing data per the rule
// tables. Rules apply in a fixed order: row drops for each drop_rows_missing
// column, the require_any_of drop, fills, then column projection. Only the
// article and domain tables carry missing-value rules; traffic is untouched.
type MissingValueHandler struct {
	articles config.TableRules
	domains  config.TableRules
	token    string
	log      *logger.Logger
}

// NewMissingValueHandler creates the missing-value stage.
func NewMissingValueHandler(cfg *config.Config, log *logger.Logger) *MissingValueHandler {
	return &MissingValueHandler{
		articles: cfg.Articles,
		domains:  cfg.Domains,
		token:    cfg.MissingToken,
		log:      log,
	}
}

// Name identifies the stage in logs.
func (h *MissingValueHandler) Name() string {
	return "missing-values"
}

// Apply establishes the post-clean row invariants on the article and domain
// tables and logs the remaining missing counts per column.
func (h *MissingValueHandler) Apply(ds *Dataset) error {
	h.applyRules(ds.Articles, h.articles)
	h.applyRules(ds.Domains, h.domains)

	for _, t := range []*table.Table{ds.Articles, ds.Domains} {
		for _, stat := range report.MissingCounts(t) {
			h.log.Info("missing values after cleaning",
				"table", t.Name, "column", stat.Column, "missing", stat.Missing)
		}
	}

	return nil
}

func (h *MissingValueHandler) applyRules(t *table.Table, rules config.TableRules) {
	for _, col := range rules.DropRowsMissing {
		idx := t.ColumnIndex(col)
		if idx < 0 {
			continue
		}

		dropped := t.FilterRows(func(row table.Row) bool {
			return !row[idx].IsNull()
		})
		if dropped > 0 {
			h.log.Info("dropped rows with missing value",
				"table", t.Name, "column", col, "rows", dropped)
		}
	}

	if indexes := presentIndexes(t, rules.RequireAnyOf); len(indexes) > 0 {
		dropped := t.FilterRows(func(row table.Row) bool {
			for _, idx := range indexes {
				if !row[idx].IsNull() {
					return true
				}
			}

			return false
		})
		if dropped > 0 {
			h.log.Info("dropped rows missing all alternatives",
				"table", t.Name, "columns", rules.RequireAnyOf, "rows", dropped)
		}
	}

	for _, col := range rules.FillUnknown {
		t.UpdateColumn(col, func(v table.Value) table.Value {
			if v.IsNull() {
				return table.NewString(h.token)
			}

			return v
		})
	}

	if len(rules.DropColumns) > 0 {
		t.DropColumns(rules.DropColumns...)
	}
}

// presentIndexes resolves column names to indexes, skipping absent columns.
func presentIndexes(t *table.Table, columns []string) []int {
	var indexes []int

	for _, col := range columns {
		if idx := t.ColumnIndex(col); idx >= 0 {
			indexes = append(indexes, idx)
		}
	}

	return indexes
}
