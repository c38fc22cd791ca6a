package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/isaacbmichael/vdh-chr-evaluation/tabulate"
)

// BarChart renders one question's percent-positive by level as a PNG bar
// chart. The rows must all belong to one (question, subgroup) pair; a level
// with an undefined percentage is drawn at zero height with an n/a suffix so
// it stays visible in the legend.
func BarChart(w io.Writer, title string, rows []tabulate.SummaryRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to chart for %q", title)
	}

	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		label := fmt.Sprintf("%s (n=%d)", row.Level, row.TotalN)
		value := 0.0
		if row.PercentPositive.Valid {
			value = row.PercentPositive.Float64
		} else {
			label += " n/a"
		}

		bars = append(bars, chart.Value{Value: value, Label: label})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// PieChart renders the respondent mix across one dimension's levels as a
// PNG pie chart.
func PieChart(w io.Writer, title string, mix map[string]int) error {
	if len(mix) == 0 {
		return fmt.Errorf("no respondents to chart for %q", title)
	}

	levels := make([]string, 0, len(mix))
	for level := range mix {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	values := make([]chart.Value, 0, len(levels))
	for _, level := range levels {
		if mix[level] == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(mix[level]),
			Label: fmt.Sprintf("%s (%d)", level, mix[level]),
		})
	}

	graph := chart.PieChart{
		Title:  title,
		Width:  768,
		Height: 768,
		Values: values,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// RespondentMix tallies total_n by level for one question within one
// dimension's rows. Any question works: the levels partition the dataset
// identically for all of them.
func RespondentMix(rows []tabulate.SummaryRow) map[string]int {
	mix := make(map[string]int)
	if len(rows) == 0 {
		return mix
	}

	questionID := rows[0].QuestionID
	for _, row := range rows {
		if row.QuestionID != questionID {
			continue
		}
		mix[row.Level] = row.TotalN
	}

	return mix
}
