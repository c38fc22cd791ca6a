package surveyparser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHeaderNormalization(t *testing.T) {
	header, err := NewHeader([]string{"Age", " GENDER ", "Ethnicity Hispanic", "Race White", "Site Location", "Q1", "q20", "ignored_extra"})
	if err != nil {
		t.Fatal(err)
	}

	record := header.ParseRow([]string{"29", "Female", "No", "Yes", "Health Brigade - Richmond ", "4", "1", "junk"})
	if record.Age != "29" ||
		record.Gender != "Female" ||
		record.EthnHisp != "No" ||
		record.RaceWhite != "Yes" ||
		record.SiteLocation != "Health Brigade - Richmond" ||
		record.Responses["Q1"] != "4" ||
		record.Responses["Q20"] != "1" {
		t.Errorf("parsed record mismatch: %+v", record)
	}

	// Columns absent from the extract stay blank, as does anything past
	// the end of a short row.
	if record.RaceBlack != "" || record.Responses["Q2"] != "" {
		t.Errorf("absent columns should be blank: %+v", record)
	}

	short := header.ParseRow([]string{"40"})
	if short.Age != "40" || short.Gender != "" {
		t.Errorf("short row mismatch: %+v", short)
	}
}

func TestHeaderRejectsNonSurveyFile(t *testing.T) {
	if _, err := NewHeader([]string{"foo", "bar", "baz"}); err == nil {
		t.Error("expected an error for a header with no recognized columns")
	}
}

func TestReadCSVSniffsDelimiter(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"comma.csv": "age,gender,site_location,q1,q6\n20,Female,Health Brigade - Richmond,5,2\n,,Nowhere,,0\n",
		"tab.csv":   "age\tgender\tsite_location\tq1\tq6\n20\tFemale\tHealth Brigade - Richmond\t5\t2\n\t\tNowhere\t\t0\n",
	}

	for name, contents := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}

		records, err := ReadCSV(path)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if len(records) != 2 {
			t.Errorf("%s: got %d records, want 2", name, len(records))
			continue
		}
		if records[0].Age != "20" || records[0].Responses["Q1"] != "5" {
			t.Errorf("%s: first record mismatch: %+v", name, records[0])
		}
		if records[1].Age != "" || records[1].SiteLocation != "Nowhere" {
			t.Errorf("%s: second record mismatch: %+v", name, records[1])
		}
	}
}

func TestReadUnknownFormat(t *testing.T) {
	if _, err := Read("whatever.csv", "parquet"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
