package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"gopkg.in/guregu/null.v3"

	"github.com/isaacbmichael/vdh-chr-evaluation/tabulate"
)

func sampleRows() []tabulate.SummaryRow {
	return []tabulate.SummaryRow{
		{QuestionID: "Q1", Question: "Helpfulness: syringe services", Subgroup: "region", Level: "Central", TotalN: 3, PositiveN: 1, PercentPositive: null.FloatFrom(33.3)},
		{QuestionID: "Q1", Question: "Helpfulness: syringe services", Subgroup: "region", Level: "Southwest", TotalN: 2, PositiveN: 2, PercentPositive: null.FloatFrom(100)},
		{QuestionID: "Q1", Question: "Helpfulness: syringe services", Subgroup: "region", Level: "Unknown", TotalN: 0, PositiveN: 0, PercentPositive: null.Float{}},
	}
}

func TestSummaryCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")

	if err := WriteSummaryCSV(path, sampleRows()); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadSummaryCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].PercentPositive.Float64 != 33.3 || !rows[0].PercentPositive.Valid {
		t.Errorf("row 0 percent mismatch: %+v", rows[0].PercentPositive)
	}

	// The undefined percentage must survive as undefined, not as 0.
	if rows[2].PercentPositive.Valid {
		t.Errorf("zero-denominator percent came back defined: %+v", rows[2].PercentPositive)
	}
	if rows[2].TotalN != 0 || rows[2].Level != "Unknown" {
		t.Errorf("row 2 mismatch: %+v", rows[2])
	}
}

func TestRespondentMix(t *testing.T) {
	mix := RespondentMix(sampleRows())

	want := map[string]int{"Central": 3, "Southwest": 2, "Unknown": 0}
	for level, n := range want {
		if mix[level] != n {
			t.Errorf("level %q: got %d, want %d", level, mix[level], n)
		}
	}
}

func TestBarChartRenders(t *testing.T) {
	var buf bytes.Buffer
	if err := BarChart(&buf, "Helpfulness: syringe services by region", sampleRows()); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("chart render produced no bytes")
	}

	if err := BarChart(&bytes.Buffer{}, "empty", nil); err == nil {
		t.Error("expected an error for an empty row set")
	}
}

func TestPieChartRenders(t *testing.T) {
	var buf bytes.Buffer
	if err := PieChart(&buf, "Respondents by region", map[string]int{"Central": 3, "Southwest": 2}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("chart render produced no bytes")
	}
}
