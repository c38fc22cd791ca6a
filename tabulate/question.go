package tabulate

import "fmt"

// A Question binds one instrument question to its display label and
// positivity rule.
type Question struct {
	ID    string
	Label string
	Rule  Rule
}

// batteryTable is the fixed instrument battery. Q6, Q11, and Q12 are
// bucketed-count questions and use ANYPOS; every 5-point question uses the
// DEFAULT 3-5 threshold.
var batteryTable = []struct {
	id, label, rule string
}{
	{"Q1", "Helpfulness: syringe services", "DEFAULT"},
	{"Q2", "Helpfulness: naloxone training", "DEFAULT"},
	{"Q3", "Helpfulness: wound care supplies", "DEFAULT"},
	{"Q4", "Helpfulness: safer-use education", "DEFAULT"},
	{"Q5", "Helpfulness: treatment referrals", "DEFAULT"},
	{"Q6", "Times offered PrEP or PEP", "ANYPOS"},
	{"Q7", "Satisfaction: staff respect", "DEFAULT"},
	{"Q8", "Satisfaction: hours and location", "DEFAULT"},
	{"Q9", "Satisfaction: supply availability", "DEFAULT"},
	{"Q10", "Satisfaction: services overall", "DEFAULT"},
	{"Q11", "HIV tests taken", "ANYPOS"},
	{"Q12", "Times NARCAN used", "ANYPOS"},
	{"Q13", "Concern: overdose", "DEFAULT"},
	{"Q14", "Concern: HIV", "DEFAULT"},
	{"Q15", "Concern: hepatitis C", "DEFAULT"},
	{"Q16", "Concern: wound infection", "DEFAULT"},
	{"Q17", "Considering: any treatment", "DEFAULT"},
	{"Q18", "Considering: medication for opioid use", "DEFAULT"},
	{"Q19", "Considering: counseling", "DEFAULT"},
	{"Q20", "Considering: reducing use", "DEFAULT"},
}

// Battery returns the fixed 20-question battery with each question's rule
// resolved. It errors on an unknown rule name or a duplicate question ID so
// that a misconfigured battery fails at setup, never mid-aggregation.
func Battery() ([]Question, error) {
	seen := make(map[string]struct{}, len(batteryTable))
	questions := make([]Question, 0, len(batteryTable))

	for _, entry := range batteryTable {
		if _, dup := seen[entry.id]; dup {
			return nil, fmt.Errorf("duplicate question ID %q in battery", entry.id)
		}
		seen[entry.id] = struct{}{}

		rule, err := NewRule(entry.rule)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", entry.id, err)
		}

		questions = append(questions, Question{ID: entry.id, Label: entry.label, Rule: rule})
	}

	return questions, nil
}
