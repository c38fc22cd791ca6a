package survey

import (
	"reflect"
	"testing"
)

func TestAgeGroupBoundaries(t *testing.T) {
	cases := map[string]string{
		"17":  Unknown,
		"18":  Age18To34,
		"34":  Age18To34,
		"35":  Age35To44,
		"44":  Age35To44,
		"45":  Age45Up,
		"83":  Age45Up,
		"":    Unknown,
		"abc": Unknown,
		" 20": Age18To34,
	}

	for rawAge, want := range cases {
		got := Recode(Record{Age: rawAge}).AgeGroup
		if got != want {
			t.Errorf("age %q: got %q, want %q", rawAge, got, want)
		}
	}
}

func TestRaceEthnicityPriority(t *testing.T) {
	// The Hispanic flag wins even when a race flag is also set.
	r := Recode(Record{EthnHisp: "Yes", RaceWhite: "Yes"})
	if r.RaceEthnicity != Hispanic {
		t.Errorf("got %q, want %q", r.RaceEthnicity, Hispanic)
	}

	cases := []struct {
		record Record
		want   string
	}{
		{Record{EthnHisp: "yes"}, Hispanic},
		{Record{RaceWhite: "YES"}, NHWhite},
		{Record{RaceBlack: "Yes", RaceBiMulti: "Yes"}, NHBlack},
		{Record{RaceBiMulti: "Yes "}, NHBiMulti},
		{Record{EthnHisp: "No", RaceWhite: "No"}, OtherUnknown},
		{Record{}, OtherUnknown},
	}

	for _, c := range cases {
		if got := Recode(c.record).RaceEthnicity; got != c.want {
			t.Errorf("%+v: got %q, want %q", c.record, got, c.want)
		}
	}
}

func TestSiteAndRegion(t *testing.T) {
	r := Recode(Record{SiteLocation: "Health Brigade - Richmond"})
	if r.SiteCode != "HB" || r.Region != "Central" {
		t.Errorf("got (%q, %q), want (HB, Central)", r.SiteCode, r.Region)
	}

	r = Recode(Record{SiteLocation: "Some Pop-Up Site"})
	if r.SiteCode != Unknown || r.Region != Unknown {
		t.Errorf("got (%q, %q), want (Unknown, Unknown)", r.SiteCode, r.Region)
	}

	// Every known site must map to a region.
	for name, code := range SiteCodes {
		if Region(code) == Unknown {
			t.Errorf("site %q (code %q) has no region", name, code)
		}
	}
	if len(SiteCodes) != 8 {
		t.Errorf("expected 8 sites, found %d", len(SiteCodes))
	}
}

func TestResponseLabels(t *testing.T) {
	cases := []struct {
		questionID, code, want string
	}{
		{"Q1", "1", "Not at all helpful"},
		{"Q5", "5", "Extremely helpful"},
		{"Q7", "3", "Neutral"},
		{"Q10", "4", "Satisfied"},
		{"Q13", "2", "Slightly concerned"},
		{"Q17", "5", "A great deal"},
		{"Q1", "6", NASkip},
		{"Q1", "", NASkip},
		{"Q1", "x", NASkip},
		// Count questions label themselves.
		{"Q6", "0", "0"},
		{"Q11", " 5+ ", "5+"},
		{"Q12", "", NASkip},
	}

	for _, c := range cases {
		if got := ResponseLabel(c.questionID, c.code); got != c.want {
			t.Errorf("%s code %q: got %q, want %q", c.questionID, c.code, got, c.want)
		}
	}
}

func TestRecodeIdempotentAndPure(t *testing.T) {
	original := Record{
		Age:          "29",
		Gender:       "Female",
		EthnHisp:     "No",
		RaceBlack:    "Yes",
		SiteLocation: "Lenowisco HD - Wise",
		Responses:    map[string]string{"Q1": "4", "Q6": "2"},
	}

	first := Recode(original)
	second := Recode(original)
	if !reflect.DeepEqual(first, second) {
		t.Error("recoding the same record twice produced different results")
	}

	// Mutating the recoded copy must not reach back into the input.
	first.Responses["Q1"] = "1"
	if original.Responses["Q1"] != "4" {
		t.Error("recode aliases the input record's responses")
	}
}

func TestBlankGenderBecomesUnknown(t *testing.T) {
	if got := Recode(Record{Gender: "  "}).Gender; got != Unknown {
		t.Errorf("got %q, want %q", got, Unknown)
	}
	if got := Recode(Record{Gender: "Male"}).Gender; got != "Male" {
		t.Errorf("got %q, want Male", got)
	}
}
