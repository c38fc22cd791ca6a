// chrsummary ingests a CHR client-survey extract (CSV, XLS, or XLSX),
// recodes the demographic and categorical fields, tabulates percent positive
// for the 20-question battery across the five subgroup dimensions, and
// writes the long-form summary CSV.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	chreval "github.com/isaacbmichael/vdh-chr-evaluation"
	"github.com/isaacbmichael/vdh-chr-evaluation/report"
	"github.com/isaacbmichael/vdh-chr-evaluation/survey"
	"github.com/isaacbmichael/vdh-chr-evaluation/surveyparser"
	"github.com/isaacbmichael/vdh-chr-evaluation/tabulate"
)

func main() {
	var (
		input      string
		format     string
		output     string
		dimensions string
	)
	flag.StringVar(&input, "input", "", "Path to the survey extract (CSV, XLS, or XLSX)")
	flag.StringVar(&format, "format", "auto", "Extract format. Options: auto, csv, xls, xlsx")
	flag.StringVar(&output, "output", "chr_summary.csv", "Path for the long-form summary CSV")
	flag.StringVar(&dimensions, "dimensions", strings.Join(tabulate.DefaultDimensionNames, ","), "Comma-separated subgroup dimensions to tabulate")
	flag.Parse()

	if input == "" {
		log.Println("Please pass --input with the path to the survey extract.")
		flag.PrintDefaults()
		os.Exit(1)
	}

	input = chreval.ExpandHome(input)
	output = chreval.ExpandHome(output)

	if _, err := os.Stat(input); os.IsNotExist(err) {
		log.Fatalf("Fatal error: %v does not exist\n", input)
	} else if err != nil {
		log.Fatalf("Fatal error: %v (possibly disk or permissions issues?): %v\n", input, err)
	}

	// Configuration is validated before any record is touched: an unknown
	// rule or dimension name is a programming error, not bad data.
	questions, err := tabulate.Battery()
	if err != nil {
		log.Fatalln(err)
	}

	dimNames := strings.Split(dimensions, ",")
	for i := range dimNames {
		dimNames[i] = strings.TrimSpace(dimNames[i])
	}
	dims, err := tabulate.NewDimensions(dimNames...)
	if err != nil {
		log.Fatalln(err)
	}

	records, err := surveyparser.Read(input, format)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Read", len(records), "records from", input)

	recoded := survey.RecodeAll(records)

	unknownSites := 0
	for _, r := range recoded {
		if r.SiteCode == survey.Unknown {
			unknownSites++
		}
	}
	if unknownSites > 0 {
		log.Println(unknownSites, "records had an unrecognized site_location and were kept under the Unknown site")
	}

	rows := tabulate.Assemble(tabulate.Aggregate(recoded, questions, dims))

	if err := report.WriteSummaryCSV(output, rows); err != nil {
		log.Fatalln(err)
	}
	log.Println("Wrote", len(rows), "summary rows to", output)
}
