package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants_processed.csv")

	_, err := Load(path)

	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingInputError, got %v", err)
	}

	if missing.Path != path {
		t.Errorf("error path = %q, want %q", missing.Path, path)
	}
}

func TestLoad_ReadsHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.csv")

	content := "Plant ID,Owner\nP1,Acme\nP2,\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.Len())
	}

	if got := tbl.Value(0, "Owner").String(); got != "Acme" {
		t.Errorf("owner = %q, want Acme", got)
	}

	// Empty cells read as missing, not empty text.
	if !tbl.Value(1, "Owner").IsMissing() {
		t.Error("empty cell should be missing")
	}
}

func TestRead_RaggedRowsPadWithMissing(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b,c\n1,2\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if !tbl.Value(0, "c").IsMissing() {
		t.Error("short row should pad with missing values")
	}
}

func TestRead_DuplicateHeaderKeepsFirst(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,a\n1,2\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if got := tbl.Value(0, "a").String(); got != "1" {
		t.Errorf("duplicate header value = %q, want 1", got)
	}
}

func TestRead_EmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestStat_Fingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.csv")
	if err := os.WriteFile(path, []byte("a\n1\n"), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	fp, err := Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if fp.Size != 4 || fp.Path != path {
		t.Errorf("unexpected fingerprint: %+v", fp)
	}
}
