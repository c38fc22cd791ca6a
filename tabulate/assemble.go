package tabulate

import "sort"

// Assemble puts the summary rows into the stable reporting order: by
// subgroup dimension, then question label, then level. It returns a new
// slice and leaves the input untouched.
func Assemble(rows []SummaryRow) []SummaryRow {
	out := make([]SummaryRow, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Subgroup != out[j].Subgroup {
			return out[i].Subgroup < out[j].Subgroup
		}
		if out[i].Question != out[j].Question {
			return out[i].Question < out[j].Question
		}
		return out[i].Level < out[j].Level
	})

	return out
}

// FilterSubgroup returns the assembled rows belonging to one subgroup
// dimension, preserving order. The reporting layer renders one table per
// dimension from this.
func FilterSubgroup(rows []SummaryRow, subgroup string) []SummaryRow {
	out := make([]SummaryRow, 0, len(rows))
	for _, row := range rows {
		if row.Subgroup == subgroup {
			out = append(out, row)
		}
	}

	return out
}
