package cleaner

import (
	"strings"
	"time"

	"github.com/spf13/cast"

	"newsprep/internal/config"
	"newsprep/internal/table"
)

// TypeCoercer casts columns to their semantic types. Coercion is lenient:
// an unparsable cell becomes the null marker, never an error, and no row is
// ever dropped. Columns absent from a table are silently skipped.
type TypeCoercer struct {
	articles config.TableRules
	domains  config.TableRules
	traffic  config.TableRules
	layouts  []string
	token    string
}

// NewTypeCoercer creates the type coercion stage.
func NewTypeCoercer(cfg *config.Config) *TypeCoercer {
	return &TypeCoercer{
		articles: cfg.Articles,
		domains:  cfg.Domains,
		traffic:  cfg.Traffic,
		layouts:  cfg.Timestamps.Layouts,
		token:    cfg.MissingToken,
	}
}

// Name identifies the stage in logs.
func (c *TypeCoercer) Name() string {
	return "type-coercion"
}

// Apply rewrites cells in place on all three tables.
func (c *TypeCoercer) Apply(ds *Dataset) error {
	c.coerceTable(ds.Articles, c.articles)
	c.coerceTable(ds.Domains, c.domains)
	c.coerceTable(ds.Traffic, c.traffic)

	return nil
}

func (c *TypeCoercer) coerceTable(t *table.Table, rules config.TableRules) {
	for _, col := range rules.TimestampColumns {
		t.UpdateColumn(col, c.coerceTimestamp)
	}

	for _, col := range rules.NumericColumns {
		t.UpdateColumn(col, c.coerceNumber)
	}

	for _, col := range rules.CategoricalColumns {
		t.UpdateColumn(col, c.forceString)
	}
}

// coerceTimestamp parses string cells against the configured layouts in
// order. Unparsable cells degrade to null; already-typed cells pass through.
func (c *TypeCoercer) coerceTimestamp(v table.Value) table.Value {
	s, ok := v.Text()
	if !ok {
		return v
	}

	s = strings.TrimSpace(s)

	for _, layout := range c.layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return table.NewTime(ts)
		}
	}

	return table.Null()
}

// coerceNumber parses string cells as numbers. Unparsable cells degrade to
// null; already-typed cells pass through.
func (c *TypeCoercer) coerceNumber(v table.Value) table.Value {
	s, ok := v.Text()
	if !ok {
		return v
	}

	n, err := cast.ToFloat64E(strings.TrimSpace(s))
	if err != nil {
		return table.Null()
	}

	return table.NewNumber(n)
}

// forceString rewrites any cell to string kind. Nulls become the missing
// token, so categorical columns carry no nulls after this stage.
func (c *TypeCoercer) forceString(v table.Value) table.Value {
	if v.IsNull() {
		return table.NewString(c.token)
	}

	if _, ok := v.Text(); ok {
		return v
	}

	return table.NewString(v.Render())
}
