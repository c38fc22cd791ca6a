package tabulate

import (
	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"

	"github.com/isaacbmichael/vdh-chr-evaluation/survey"
)

// SummaryRow is one line of the long-form summary table: one (question,
// dimension, level) combination actually observed in the data. The csv tags
// match the column names legacy consumers expect; the positive count is
// exported as high_n.
type SummaryRow struct {
	QuestionID      string     `csv:"question_id"`
	Question        string     `csv:"question"`
	Subgroup        string     `csv:"subgroup"`
	Level           string     `csv:"level"`
	TotalN          int        `csv:"total_n"`
	PositiveN       int        `csv:"high_n"`
	PercentPositive null.Float `csv:"percent_high"`
}

// Aggregate produces one SummaryRow per (question, dimension, level) triple
// observed in the dataset. Every record contributes to total_n of exactly
// one level per dimension; a record with a missing or unrecognized response
// contributes to total_n but never to positive_n. Aggregation never fails on
// data: unrecognized sites, blank demographics, and junk codes have already
// been recoded to their Unknown levels.
//
// The returned rows are in map-iteration order; use Assemble for the
// reporting sort.
func Aggregate(records []survey.Recoded, questions []Question, dims []Dimension) []SummaryRow {
	rows := make([]SummaryRow, 0, len(questions)*len(dims)*4)

	for _, dim := range dims {
		// Group once per dimension and reuse the grouping for all 20
		// questions.
		groups := make(map[string][]survey.Recoded)
		for _, r := range records {
			level := dim.Level(r)
			groups[level] = append(groups[level], r)
		}

		for _, q := range questions {
			for level, members := range groups {
				row := SummaryRow{
					QuestionID: q.ID,
					Question:   q.Label,
					Subgroup:   dim.Name,
					Level:      level,
					TotalN:     len(members),
				}

				for _, r := range members {
					if q.Rule.IsPositive(r.Response(q.ID)) {
						row.PositiveN++
					}
				}

				row.PercentPositive = Percent(row.PositiveN, row.TotalN)
				rows = append(rows, row)
			}
		}
	}

	return rows
}

// Percent returns 100*positive/total rounded to one decimal place. A zero
// denominator yields an invalid null.Float, never zero and never a panic.
// Rounding is half-away-from-zero, matching the source system's
// conventional rounding.
func Percent(positive, total int) null.Float {
	if total == 0 {
		return null.Float{}
	}

	pct, err := stats.Round(100*float64(positive)/float64(total), 1)
	if err != nil {
		// stats.Round only errors on NaN input, which a ratio of two
		// ints cannot produce once total != 0.
		return null.Float{}
	}

	return null.FloatFrom(pct)
}
