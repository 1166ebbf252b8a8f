package drift

import (
	"testing"

	"driftwatch/domain/core"
	"driftwatch/domain/dataset"
)

func referenceDataset() dataset.Dataset {
	return dataset.Dataset{
		{"amount": 10.0, "region": "east"},
		{"amount": 12.5, "region": "west"},
		{"amount": 9.0, "region": "east"},
		{"amount": nil, "region": "east"},
		{"amount": 11.0, "region": "south"},
	}
}

func TestCreateBaselineClassifiesColumns(t *testing.T) {
	baseline, err := CreateBaseline(referenceDataset())
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	if baseline.ID.String() == "" {
		t.Error("baseline should carry an ID")
	}
	if baseline.RowCount != 5 {
		t.Errorf("expected row count 5, got %d", baseline.RowCount)
	}
	if baseline.Fingerprint.IsEmpty() {
		t.Error("baseline should carry a fingerprint")
	}

	amount, ok := baseline.Column("amount")
	if !ok {
		t.Fatal("missing amount column")
	}
	if amount.Kind != KindNumeric {
		t.Fatalf("expected amount numeric, got %s", amount.Kind)
	}
	if amount.Numeric == nil || amount.Categorical != nil {
		t.Fatal("numeric column must carry exactly the numeric payload")
	}
	if len(amount.Numeric.Values) != 4 {
		t.Errorf("expected 4 retained values (nulls excluded), got %d", len(amount.Numeric.Values))
	}
	if amount.Numeric.Mean != 10.625 {
		t.Errorf("expected mean 10.625, got %f", amount.Numeric.Mean)
	}

	region, ok := baseline.Column("region")
	if !ok {
		t.Fatal("missing region column")
	}
	if region.Kind != KindCategorical {
		t.Fatalf("expected region categorical, got %s", region.Kind)
	}
	if region.Categorical.Total != 5 {
		t.Errorf("expected total 5, got %d", region.Categorical.Total)
	}
	if region.Categorical.Frequencies["east"] != 3 {
		t.Errorf("expected 3 east, got %d", region.Categorical.Frequencies["east"])
	}
}

func TestCreateBaselineClassificationUsesLeadingSample(t *testing.T) {
	// First ten non-null values numeric, a string appears later: the column
	// is classified numeric and the stray string is a structural error.
	ds := dataset.Dataset{}
	for i := 0; i < 10; i++ {
		ds = append(ds, dataset.Record{"v": float64(i)})
	}
	ds = append(ds, dataset.Record{"v": "oops"})

	_, err := CreateBaseline(ds)
	if err == nil {
		t.Fatal("expected structural mismatch error")
	}
	if !core.IsStructuralError(err) {
		t.Errorf("expected structural error, got %v", err)
	}
}

func TestCreateBaselineMixedLeadingSampleIsCategorical(t *testing.T) {
	ds := dataset.Dataset{
		{"v": 1.0},
		{"v": "two"},
		{"v": 3.0},
	}

	baseline, err := CreateBaseline(ds)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	col := baseline.Columns["v"]
	if col.Kind != KindCategorical {
		t.Fatalf("expected categorical, got %s", col.Kind)
	}
	// Numeric values become category keys by their default formatting
	if col.Categorical.Frequencies["1"] != 1 || col.Categorical.Frequencies["two"] != 1 {
		t.Errorf("unexpected frequencies: %v", col.Categorical.Frequencies)
	}
}

func TestCreateBaselineAllNullColumnIsCategorical(t *testing.T) {
	ds := dataset.Dataset{
		{"v": nil},
		{"v": nil},
	}

	baseline, err := CreateBaseline(ds)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	col := baseline.Columns["v"]
	if col.Kind != KindCategorical {
		t.Fatalf("expected categorical for all-null column, got %s", col.Kind)
	}
	if col.Categorical.Total != 0 {
		t.Errorf("expected empty frequency table, got %v", col.Categorical.Frequencies)
	}
}

func TestBaselineColumnKeysSorted(t *testing.T) {
	baseline, err := CreateBaseline(referenceDataset())
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	keys := baseline.ColumnKeys()
	if len(keys) != 2 || keys[0] != "amount" || keys[1] != "region" {
		t.Errorf("unexpected key order: %v", keys)
	}
}
