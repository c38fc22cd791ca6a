package tabulate

import "testing"

func TestDefaultRule(t *testing.T) {
	rule, err := NewRule("DEFAULT")
	if err != nil {
		t.Error(err)
	}

	for _, code := range []string{"3", "4", "5"} {
		if !rule.IsPositive(code) {
			t.Errorf("DEFAULT should count %q as positive", code)
		}
	}
	for _, code := range []string{"1", "2", "NA/Skip", "", "6", "0"} {
		if rule.IsPositive(code) {
			t.Errorf("DEFAULT should not count %q as positive", code)
		}
	}
}

func TestAnyPosRule(t *testing.T) {
	rule, err := NewRule("ANYPOS")
	if err != nil {
		t.Error(err)
	}

	for _, code := range []string{"1", "2", "5+", "3"} {
		if !rule.IsPositive(code) {
			t.Errorf("ANYPOS should count %q as positive", code)
		}
	}
	for _, code := range []string{"0", "", "na/skip", "NA/Skip", " 0 "} {
		if rule.IsPositive(code) {
			t.Errorf("ANYPOS should not count %q as positive", code)
		}
	}
}

func TestUnknownRuleIsError(t *testing.T) {
	if _, err := NewRule("MEDIAN"); err == nil {
		t.Error("expected an error for an unknown rule name")
	}
}

func TestBattery(t *testing.T) {
	questions, err := Battery()
	if err != nil {
		t.Error(err)
	}
	if len(questions) != 20 {
		t.Errorf("expected 20 questions, got %d", len(questions))
	}

	anypos := map[string]bool{"Q6": true, "Q11": true, "Q12": true}
	for _, q := range questions {
		want := "DEFAULT"
		if anypos[q.ID] {
			want = "ANYPOS"
		}
		if q.Rule.Name != want {
			t.Errorf("%s uses rule %s, want %s", q.ID, q.Rule.Name, want)
		}
		if q.Label == "" {
			t.Errorf("%s has no display label", q.ID)
		}
	}
}

func TestUnknownDimensionIsError(t *testing.T) {
	if _, err := NewDimensions("gender", "zipcode"); err == nil {
		t.Error("expected an error for an unknown dimension name")
	}

	dims, err := NewDimensions(DefaultDimensionNames...)
	if err != nil {
		t.Error(err)
	}
	if len(dims) != 5 {
		t.Errorf("expected 5 dimensions, got %d", len(dims))
	}
}
