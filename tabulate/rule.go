// Package tabulate computes the percent-positive summary table: for each
// question in the instrument and each subgroup dimension, how many records
// fall in each level and how many of those answered positively.
package tabulate

import (
	"fmt"
	"strings"
)

// A Rule decides whether one raw response code counts toward the positive
// numerator.
type Rule struct {
	Name       string
	IsPositive func(code string) bool
}

// Rules holds the named positivity rules. DEFAULT is the 3-5 threshold on
// the 5-point scale; ANYPOS counts any selected nonzero response and applies
// to the bucketed-count questions.
var Rules = map[string]Rule{
	"DEFAULT": {
		Name: "DEFAULT",
		IsPositive: func(code string) bool {
			// String compare on the ordinal code: a blank or junk code
			// simply matches nothing.
			return code == "3" || code == "4" || code == "5"
		},
	},
	"ANYPOS": {
		Name: "ANYPOS",
		IsPositive: func(code string) bool {
			switch strings.ToUpper(strings.TrimSpace(code)) {
			case "", "0", "NA/SKIP":
				return false
			}
			return true
		},
	},
}

// NewRule looks up a positivity rule by name. An unknown name is a
// configuration error, not a data problem, and must stop the run before any
// records are processed.
func NewRule(name string) (Rule, error) {
	rule, exists := Rules[name]
	if !exists {
		return Rule{}, fmt.Errorf("unknown positivity rule %q. Known rules: %s", name, RuleNames())
	}

	return rule, nil
}

// RuleNames lists the known rule names for error messages.
func RuleNames() string {
	b := strings.Builder{}
	i := 0
	for name := range Rules {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		i++
	}

	return b.String()
}
