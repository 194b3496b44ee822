package render

import (
	"strings"
	"testing"

	"plantdash/internal/table"
)

func renderFixture(t *testing.T) table.View {
	t.Helper()

	tbl := table.New()

	mustAdd := func(name string, values []table.Value) {
		t.Helper()

		if err := tbl.AddColumn(name, values); err != nil {
			t.Fatalf("AddColumn(%q) failed: %v", name, err)
		}
	}

	mustAdd("Owner", []table.Value{table.Text("Acme"), table.Text("Borgundy Steel")})
	mustAdd("Capacity", []table.Value{table.Number(100), table.Missing()})

	return tbl.View()
}

func TestTable_AlignsColumns(t *testing.T) {
	var buf strings.Builder

	if err := Table(&buf, renderFixture(t), nil, 0); err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4 (header, rule, 2 rows)", len(lines))
	}

	// Both data rows start their second column at the same offset.
	if strings.Index(lines[0], "Capacity") != strings.Index(lines[2], "100") {
		t.Errorf("columns not aligned:\n%s", buf.String())
	}
}

func TestTable_LimitAddsFooter(t *testing.T) {
	var buf strings.Builder

	if err := Table(&buf, renderFixture(t), nil, 1); err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	if !strings.Contains(buf.String(), "... 1 more rows") {
		t.Errorf("missing truncation footer:\n%s", buf.String())
	}
}

func TestTable_ColumnSubset(t *testing.T) {
	var buf strings.Builder

	if err := Table(&buf, renderFixture(t), []string{"Owner"}, 0); err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	if strings.Contains(buf.String(), "Capacity") {
		t.Errorf("unselected column rendered:\n%s", buf.String())
	}
}

func TestDefaultColumns(t *testing.T) {
	v := renderFixture(t)

	got := DefaultColumns(v, []string{"Capacity", "Ghost", "Owner"})
	if len(got) != 2 || got[0] != "Capacity" || got[1] != "Owner" {
		t.Errorf("DefaultColumns = %v, want [Capacity Owner]", got)
	}

	// No preferred column present falls back to everything.
	if got := DefaultColumns(v, []string{"Ghost"}); len(got) != 2 {
		t.Errorf("fallback DefaultColumns = %v, want all columns", got)
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1234, "1,234"},
		{1234567.4, "1,234,567"},
		{-5000, "-5,000"},
	}

	for _, tt := range tests {
		if got := formatThousands(tt.in); got != tt.want {
			t.Errorf("formatThousands(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
