package report

import (
	"strings"
	"testing"
	"time"

	"newsprep/internal/table"
)

func buildTable(t *testing.T, columns []string, rows ...table.Row) *table.Table {
	t.Helper()

	tb := table.New("test", columns)
	for _, row := range rows {
		if err := tb.AppendRow(row); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}

	return tb
}

func TestMissingCounts(t *testing.T) {
	tb := buildTable(t, []string{"a", "b"},
		table.Row{table.NewString("x"), table.Null()},
		table.Row{table.Null(), table.Null()},
	)

	stats := MissingCounts(tb)
	if len(stats) != 2 {
		t.Fatalf("Expected 2 stats, got %d", len(stats))
	}

	if stats[0].Column != "a" || stats[0].Missing != 1 {
		t.Errorf("Column a: %+v, want Missing 1", stats[0])
	}

	if stats[1].Column != "b" || stats[1].Missing != 2 {
		t.Errorf("Column b: %+v, want Missing 2", stats[1])
	}
}

func TestSummarize_Kinds(t *testing.T) {
	tb := buildTable(t, []string{"str", "num", "mixed", "empty"},
		table.Row{table.NewString("x"), table.NewNumber(1), table.NewString("x"), table.Null()},
		table.Row{table.NewString("y"), table.NewNumber(2), table.NewTime(time.Now()), table.Null()},
	)

	stats := Summarize(tb)

	expected := map[string]string{
		"str":   "string",
		"num":   "number",
		"mixed": "mixed",
		"empty": "null",
	}

	for _, s := range stats {
		if want := expected[s.Column]; s.Kind != want {
			t.Errorf("Kind of %s = %q, want %q", s.Column, s.Kind, want)
		}
	}
}

func TestUniqueValues(t *testing.T) {
	tb := buildTable(t, []string{"a"},
		table.Row{table.NewString("x")},
		table.Row{table.NewString("y")},
		table.Row{table.NewString("x")},
		table.Row{table.Null()},
	)

	values := UniqueValues(tb, "a", 0)

	want := []string{"x", "y", "<null>"}
	if len(values) != len(want) {
		t.Fatalf("Expected %d unique values, got %d: %v", len(want), len(values), values)
	}

	for i, v := range want {
		if values[i] != v {
			t.Errorf("values[%d] = %q, want %q", i, values[i], v)
		}
	}
}

func TestUniqueValues_Limit(t *testing.T) {
	tb := buildTable(t, []string{"a"},
		table.Row{table.NewString("x")},
		table.Row{table.NewString("y")},
		table.Row{table.NewString("z")},
	)

	if values := UniqueValues(tb, "a", 2); len(values) != 2 {
		t.Errorf("Expected 2 values with limit, got %d", len(values))
	}
}

func TestUniqueValues_AbsentColumn(t *testing.T) {
	tb := buildTable(t, []string{"a"})

	if values := UniqueValues(tb, "missing", 0); values != nil {
		t.Errorf("Expected nil for absent column, got %v", values)
	}
}

func TestHead(t *testing.T) {
	tb := buildTable(t, []string{"name", "rank"},
		table.Row{table.NewString("cnn"), table.NewNumber(1)},
		table.Row{table.NewString("bbc"), table.Null()},
		table.Row{table.NewString("dw"), table.NewNumber(3)},
	)

	out := Head(tb, 2)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, and two preview rows.
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "name") || !strings.Contains(lines[0], "rank") {
		t.Errorf("Header missing column names: %q", lines[0])
	}

	if !strings.Contains(out, "<null>") {
		t.Error("Expected null cell to render as <null>")
	}

	if strings.Contains(out, "dw") {
		t.Error("Expected preview to stop after 2 rows")
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"col", "k"}, [][]string{
		{"x", "yy"},
		{"longer", "z"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}

	// Every line has the same rendered width.
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("Line %d width %d != header width %d", i, len(lines[i]), len(lines[0]))
		}
	}
}

func TestRenderSummary(t *testing.T) {
	tb := buildTable(t, []string{"a"},
		table.Row{table.Null()},
	)

	out := RenderSummary(tb)

	if !strings.Contains(out, "column") || !strings.Contains(out, "missing") {
		t.Errorf("Expected summary headers, got:\n%s", out)
	}

	if !strings.Contains(out, "| a") {
		t.Errorf("Expected column row, got:\n%s", out)
	}
}
