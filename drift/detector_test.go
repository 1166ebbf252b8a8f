package drift

import (
	"reflect"
	"testing"

	"driftwatch/domain/core"
	"driftwatch/domain/dataset"
	"driftwatch/internal/testkit"
)

func TestDetectSameDistributionNoDrift(t *testing.T) {
	gen := testkit.NewGenerator(42)

	reference := testkit.NumericDataset("metric", gen.Normal(4000, 50, 10))
	baseline, err := CreateBaseline(reference)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	fresh := testkit.NumericDataset("metric", gen.Normal(4000, 50, 10))
	result, err := Detect(fresh, baseline, DefaultOptions())
	if err != nil {
		t.Fatalf("detect: %v", err)
	}

	if result.Drifted {
		t.Errorf("expected no drift for same distribution, got score %f", result.Scores["metric"])
	}
	if len(result.ColumnsDrifted) != 0 {
		t.Errorf("expected no drifted columns, got %v", result.ColumnsDrifted)
	}
}

func TestDetectShiftedDistributionDrifts(t *testing.T) {
	gen := testkit.NewGenerator(42)

	reference := testkit.NumericDataset("metric", gen.Normal(1000, 50, 10))
	baseline, err := CreateBaseline(reference)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	shifted := testkit.NumericDataset("metric", gen.Normal(500, 70, 15))
	result, err := Detect(shifted, baseline, DefaultOptions())
	if err != nil {
		t.Fatalf("detect: %v", err)
	}

	if !result.Drifted {
		t.Fatalf("expected drift for shifted distribution, score %f", result.Scores["metric"])
	}
	if len(result.ColumnsDrifted) != 1 || result.ColumnsDrifted[0] != "metric" {
		t.Errorf("expected metric drifted, got %v", result.ColumnsDrifted)
	}

	detail := result.Details["metric"]
	if detail.Kind != KindNumeric {
		t.Errorf("expected numeric detail, got %s", detail.Kind)
	}
	if detail.BaselineSize != 1000 || detail.CurrentSize != 500 {
		t.Errorf("unexpected sizes: %+v", detail)
	}
}

func TestDetectCategoricalShiftUsesPSI(t *testing.T) {
	gen := testkit.NewGenerator(7)

	reference := testkit.CategoricalDataset("tier", gen.Categories(2000, map[string]float64{"free": 0.5, "pro": 0.5}))
	baseline, err := CreateBaseline(reference)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	shifted := testkit.CategoricalDataset("tier", gen.Categories(1000, map[string]float64{"free": 0.2, "pro": 0.8}))
	result, err := Detect(shifted, baseline, DefaultOptions())
	if err != nil {
		t.Fatalf("detect: %v", err)
	}

	if !result.Drifted {
		t.Fatalf("expected categorical drift, score %f", result.Scores["tier"])
	}
	if result.Details["tier"].Kind != KindCategorical {
		t.Errorf("expected categorical detail, got %s", result.Details["tier"].Kind)
	}
}

func TestDetectMethodOnlyAffectsLabel(t *testing.T) {
	gen := testkit.NewGenerator(3)

	reference := testkit.MergeColumns(
		testkit.NumericDataset("metric", gen.Normal(400, 0, 1)),
		testkit.CategoricalDataset("tier", gen.Categories(400, map[string]float64{"a": 0.5, "b": 0.5})),
	)
	baseline, err := CreateBaseline(reference)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	current := testkit.MergeColumns(
		testkit.NumericDataset("metric", gen.Normal(200, 0, 1)),
		testkit.CategoricalDataset("tier", gen.Categories(200, map[string]float64{"a": 0.5, "b": 0.5})),
	)

	auto, err := Detect(current, baseline, Options{Threshold: 0.05, Method: MethodAuto})
	if err != nil {
		t.Fatalf("detect auto: %v", err)
	}
	psi, err := Detect(current, baseline, Options{Threshold: 0.05, Method: MethodPSI})
	if err != nil {
		t.Fatalf("detect psi: %v", err)
	}

	// Per-column dispatch stays kind-driven regardless of the requested method
	if !reflect.DeepEqual(auto.Scores, psi.Scores) {
		t.Errorf("scores changed with method label: %v vs %v", auto.Scores, psi.Scores)
	}
	if auto.Method != MethodAuto || psi.Method != MethodPSI {
		t.Errorf("method labels wrong: %s, %s", auto.Method, psi.Method)
	}
	if auto.Details["metric"].Kind != KindNumeric || auto.Details["tier"].Kind != KindCategorical {
		t.Errorf("kind dispatch broken: %+v", auto.Details)
	}
}

func TestDetectIdempotent(t *testing.T) {
	gen := testkit.NewGenerator(99)

	reference := testkit.NumericDataset("metric", gen.Normal(300, 10, 2))
	baseline, err := CreateBaseline(reference)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}
	current := testkit.NumericDataset("metric", gen.Normal(300, 11, 2))

	first, err := Detect(current, baseline, DefaultOptions())
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	second, err := Detect(current, baseline, DefaultOptions())
	if err != nil {
		t.Fatalf("detect: %v", err)
	}

	if !reflect.DeepEqual(first.Scores, second.Scores) {
		t.Errorf("scores not idempotent: %v vs %v", first.Scores, second.Scores)
	}
	if !reflect.DeepEqual(first.ColumnsDrifted, second.ColumnsDrifted) {
		t.Errorf("drifted columns not idempotent: %v vs %v", first.ColumnsDrifted, second.ColumnsDrifted)
	}
}

func TestDetectMissingColumnIsPartialFailure(t *testing.T) {
	reference := dataset.Dataset{
		{"a": 1.0, "b": "x"},
		{"a": 2.0, "b": "y"},
	}
	baseline, err := CreateBaseline(reference)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	// New batch carries only column a
	current := dataset.Dataset{
		{"a": 1.5},
		{"a": 2.5},
	}

	result, err := Detect(current, baseline, DefaultOptions())
	if err != nil {
		t.Fatalf("detect must not abort on missing column: %v", err)
	}

	if _, scored := result.Scores["b"]; scored {
		t.Error("missing column must not receive a score")
	}
	if result.ColumnErrors["b"] == "" {
		t.Error("missing column must be reported in ColumnErrors")
	}
	if _, scored := result.Scores["a"]; !scored {
		t.Error("remaining columns must still complete")
	}
}

func TestDetectTypeMismatchIsPartialFailure(t *testing.T) {
	reference := testkit.NumericDataset("metric", []float64{1, 2, 3, 4, 5})
	baseline, err := CreateBaseline(reference)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	current := dataset.Dataset{
		{"metric": 1.0},
		{"metric": "not a number"},
	}

	result, err := Detect(current, baseline, DefaultOptions())
	if err != nil {
		t.Fatalf("detect must not abort on mismatched column: %v", err)
	}
	if result.ColumnErrors["metric"] == "" {
		t.Error("type mismatch must be reported in ColumnErrors")
	}
	if result.Drifted {
		t.Error("errored column must not count as drifted")
	}
}

func TestDetectNilBaseline(t *testing.T) {
	_, err := Detect(dataset.Dataset{}, nil, DefaultOptions())
	if err == nil {
		t.Fatal("expected error for nil baseline")
	}
	if !core.IsNotFoundError(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestResultInvariant(t *testing.T) {
	gen := testkit.NewGenerator(5)

	reference := testkit.MergeColumns(
		testkit.NumericDataset("stable", gen.Normal(500, 0, 1)),
		testkit.NumericDataset("moved", gen.Normal(500, 0, 1)),
	)
	baseline, err := CreateBaseline(reference)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}

	current := testkit.MergeColumns(
		testkit.NumericDataset("stable", gen.Normal(400, 0, 1)),
		testkit.NumericDataset("moved", gen.Normal(400, 5, 1)),
	)

	result, err := Detect(current, baseline, DefaultOptions())
	if err != nil {
		t.Fatalf("detect: %v", err)
	}

	if result.Drifted != (len(result.ColumnsDrifted) > 0) {
		t.Errorf("drifted flag inconsistent with column list: %+v", result)
	}
	for _, col := range result.ColumnsDrifted {
		if result.Scores[col] <= result.Threshold {
			t.Errorf("column %s listed but score %f <= threshold %f", col, result.Scores[col], result.Threshold)
		}
	}
	for col, score := range result.Scores {
		listed := false
		for _, c := range result.ColumnsDrifted {
			if c == col {
				listed = true
			}
		}
		if (score > result.Threshold) != listed {
			t.Errorf("column %s score %f listing mismatch", col, score)
		}
	}
}
