// chrreport renders the print-ready deliverables from a long-form summary
// CSV produced by chrsummary: per-dimension bar charts (one per question), a
// respondent-mix pie chart per dimension, paginated table pages, and a cover
// page.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	chreval "github.com/isaacbmichael/vdh-chr-evaluation"
	"github.com/isaacbmichael/vdh-chr-evaluation/report"
	"github.com/isaacbmichael/vdh-chr-evaluation/tabulate"
)

func main() {
	var (
		summaryPath string
		outDir      string
		fontPath    string
		title       string
		charts      bool
		tables      bool
	)
	flag.StringVar(&summaryPath, "summary", "", "Path to the long-form summary CSV from chrsummary")
	flag.StringVar(&outDir, "out", "chr_report", "Directory for the rendered report files (created if absent)")
	flag.StringVar(&fontPath, "font", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", "TTF font for the table and cover pages")
	flag.StringVar(&title, "title", "CHR Client Survey Evaluation", "Report title for the cover page")
	flag.BoolVar(&charts, "charts", true, "Render bar and pie charts")
	flag.BoolVar(&tables, "tables", true, "Render table pages and the cover page")
	flag.Parse()

	if summaryPath == "" {
		log.Println("Please pass --summary with the path to the summary CSV.")
		flag.PrintDefaults()
		os.Exit(1)
	}

	summaryPath = chreval.ExpandHome(summaryPath)
	outDir = chreval.ExpandHome(outDir)
	fontPath = chreval.ExpandHome(fontPath)

	rows, err := report.ReadSummaryCSV(summaryPath)
	if err != nil {
		log.Fatalln(err)
	}
	if len(rows) == 0 {
		log.Fatalln("Fatal error: the summary contains no rows")
	}
	log.Println("Read", len(rows), "summary rows from", summaryPath)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalln(err)
	}

	dimensions := subgroupDimensions(rows)
	rendered := 0

	for _, dim := range dimensions {
		dimRows := tabulate.FilterSubgroup(rows, dim)

		if charts {
			if err := renderCharts(outDir, dim, dimRows); err != nil {
				log.Fatalln(err)
			}
			rendered += len(questionOrder(dimRows)) + 1
		}

		if tables {
			paths, err := report.TablePages(outDir, fontPath, dim, dimRows)
			if err != nil {
				log.Fatalln(err)
			}
			rendered += len(paths)
		}
	}

	if tables {
		n := totalRespondents(rows)
		subtitle := "Percent positive by " + strings.Join(dimensions, ", ")
		if err := report.CoverPage(filepath.Join(outDir, "cover.png"), fontPath, title, subtitle, n); err != nil {
			log.Fatalln(err)
		}
		rendered++
	}

	log.Println("Rendered", rendered, "files to", outDir)
}

// renderCharts writes one bar chart per question plus the respondent-mix pie
// for a single dimension.
func renderCharts(outDir, dim string, dimRows []tabulate.SummaryRow) error {
	for _, questionID := range questionOrder(dimRows) {
		var questionRows []tabulate.SummaryRow
		for _, row := range dimRows {
			if row.QuestionID == questionID {
				questionRows = append(questionRows, row)
			}
		}
		if len(questionRows) == 0 {
			continue
		}

		path := filepath.Join(outDir, fmt.Sprintf("bar_%s_%s.png", dim, questionID))
		f, err := os.Create(path)
		if err != nil {
			return err
		}

		err = report.BarChart(f, fmt.Sprintf("%s by %s", questionRows[0].Question, dim), questionRows)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return err
		}
	}

	path := filepath.Join(outDir, fmt.Sprintf("pie_%s.png", dim))
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = report.PieChart(f, "Respondents by "+dim, report.RespondentMix(dimRows))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	return err
}

func subgroupDimensions(rows []tabulate.SummaryRow) []string {
	seen := make(map[string]struct{})
	var dims []string
	for _, row := range rows {
		if _, exists := seen[row.Subgroup]; exists {
			continue
		}
		seen[row.Subgroup] = struct{}{}
		dims = append(dims, row.Subgroup)
	}
	sort.Strings(dims)

	return dims
}

func questionOrder(rows []tabulate.SummaryRow) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, row := range rows {
		if _, exists := seen[row.QuestionID]; exists {
			continue
		}
		seen[row.QuestionID] = struct{}{}
		ids = append(ids, row.QuestionID)
	}

	return ids
}

// totalRespondents recovers the dataset size from any one (question,
// dimension) combination, whose levels partition the dataset.
func totalRespondents(rows []tabulate.SummaryRow) int {
	if len(rows) == 0 {
		return 0
	}

	first := rows[0]
	n := 0
	for _, row := range rows {
		if row.Subgroup == first.Subgroup && row.QuestionID == first.QuestionID {
			n += row.TotalN
		}
	}

	return n
}
