package excel

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadDatasetCSV(t *testing.T) {
	path := writeTempCSV(t, "amount,region\n10.5,east\n3,west\n,south\n")

	reader := NewDataReader(DefaultConfig(path))
	ds, err := reader.ReadDataset()
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}

	if len(ds) != 3 {
		t.Fatalf("expected 3 records, got %d", len(ds))
	}

	if v, ok := ds[0]["amount"].(float64); !ok || v != 10.5 {
		t.Errorf("expected numeric cell 10.5, got %T %v", ds[0]["amount"], ds[0]["amount"])
	}
	if v, ok := ds[1]["amount"].(float64); !ok || v != 3 {
		t.Errorf("expected numeric cell 3, got %T %v", ds[1]["amount"], ds[1]["amount"])
	}
	if ds[2]["amount"] != nil {
		t.Errorf("expected empty cell to be nil, got %v", ds[2]["amount"])
	}
	if v, ok := ds[0]["region"].(string); !ok || v != "east" {
		t.Errorf("expected string cell east, got %T %v", ds[0]["region"], ds[0]["region"])
	}
}

func TestReadDatasetRequiresHeaderAndData(t *testing.T) {
	path := writeTempCSV(t, "only,header\n")

	_, err := NewDataReader(DefaultConfig(path)).ReadDataset()
	if err == nil {
		t.Fatal("expected error for header-only file")
	}
}

func TestReadDatasetMissingFile(t *testing.T) {
	_, err := NewDataReader(DefaultConfig("/nonexistent/data.csv")).ReadDataset()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadDatasetRaggedRows(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1,2\n3\n")

	ds, err := NewDataReader(DefaultConfig(path)).ReadDataset()
	if err != nil {
		t.Fatalf("read dataset: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("expected 2 records, got %d", len(ds))
	}
	if _, ok := ds[1]["b"]; ok {
		t.Errorf("short row must not carry the missing column, got %v", ds[1])
	}
}
