package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDataset(t *testing.T) string {
	t.Helper()

	content := `Plant ID,Owner,Country/Area,Crude steel capacity (ttpa),latitude,longitude
P1,Acme,Germany,1000,51.5,7.4
P2,Borg,France,2000,43.3,5.4
`

	path := filepath.Join(t.TempDir(), "plants_processed.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	return path
}

// run executes the command tree and captures stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()

	var buf strings.Builder

	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()

	return buf.String(), err
}

func TestSummaryCommand(t *testing.T) {
	out, err := run(t, "summary", "--data", writeDataset(t))
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if !strings.Contains(out, "Total plants:") || !strings.Contains(out, "2") {
		t.Errorf("unexpected summary output:\n%s", out)
	}
}

func TestSummaryCommand_Filtered(t *testing.T) {
	out, err := run(t, "summary", "--data", writeDataset(t), "--country", "Germany")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if !strings.Contains(out, "1,000 ttpa") {
		t.Errorf("expected filtered capacity 1,000 ttpa:\n%s", out)
	}
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "table", "--data", writeDataset(t))
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}

	if !strings.Contains(out, "Acme") || !strings.Contains(out, "Borg") {
		t.Errorf("table output missing rows:\n%s", out)
	}
}

func TestTableCommand_Limit(t *testing.T) {
	out, err := run(t, "table", "--data", writeDataset(t), "--limit", "1")
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}

	if !strings.Contains(out, "more rows") {
		t.Errorf("expected truncation footer:\n%s", out)
	}
}

func TestMapCommand(t *testing.T) {
	out, err := run(t, "map", "--data", writeDataset(t))
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}

	if !strings.Contains(out, "2 plants plotted") {
		t.Errorf("unexpected map output:\n%s", out)
	}
}

func TestColumnsCommand(t *testing.T) {
	out, err := run(t, "columns", "--data", writeDataset(t))
	if err != nil {
		t.Fatalf("columns failed: %v", err)
	}

	if !strings.Contains(out, "Total capacity (ttpa)") {
		t.Errorf("columns output missing derived column:\n%s", out)
	}
}

func TestMissingDatasetFailsBeforeRendering(t *testing.T) {
	out, err := run(t, "summary", "--data", filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}

	if strings.Contains(out, "Total plants:") {
		t.Errorf("nothing should render after a load failure:\n%s", out)
	}
}
