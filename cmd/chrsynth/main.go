// chrsynth generates a synthetic CHR client-survey extract for testing the
// pipeline without access to a restricted real extract. The output
// deliberately includes the messiness the recoder must absorb: blank ages,
// under-18 ages, unrecognized site strings, blank responses, and "5+" count
// buckets.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strings"

	chreval "github.com/isaacbmichael/vdh-chr-evaluation"
	"github.com/isaacbmichael/vdh-chr-evaluation/survey"
)

func main() {
	var (
		n      int
		seed   int64
		output string
	)
	flag.IntVar(&n, "n", 250, "Number of synthetic records to generate")
	flag.Int64Var(&seed, "seed", 1, "Random seed, for reproducible extracts")
	flag.StringVar(&output, "output", "chr_synthetic.csv", "Path for the generated CSV extract")
	flag.Parse()

	if n <= 0 {
		log.Println("Please pass --n a positive record count.")
		flag.PrintDefaults()
		os.Exit(1)
	}

	output = chreval.ExpandHome(output)
	rng := rand.New(rand.NewSource(seed))

	f, err := os.Create(output)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"age", "gender", "ethnicity_hispanic", "race_white", "race_black", "race_bi_multiracial", "site_location"}
	for _, questionID := range survey.QuestionIDs {
		header = append(header, strings.ToLower(questionID))
	}
	if err := w.Write(header); err != nil {
		log.Fatalln(err)
	}

	for i := 0; i < n; i++ {
		if err := w.Write(syntheticRow(rng)); err != nil {
			log.Fatalln(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalln(err)
	}

	log.Println("Wrote", n, "synthetic records to", output)
}

var (
	genders = []string{"Female", "Male", "Female", "Male", "Transgender", "Non-binary", ""}

	// Mostly real sites, with occasional free-text junk the recoder must
	// send to the Unknown site.
	siteJunk = []string{"Pop-up van", "richmond", "Mt Rogers", ""}

	countCodes = []string{"0", "0", "0", "1", "1", "2", "3", "4", "5+", ""}
)

func syntheticRow(rng *rand.Rand) []string {
	row := []string{
		syntheticAge(rng),
		genders[rng.Intn(len(genders))],
	}

	// Demographic flags: roughly one in five Hispanic, the rest spread
	// over the race flags, some with nothing set.
	hisp, white, black, bimulti := "No", "No", "No", "No"
	switch rng.Intn(10) {
	case 0, 1:
		hisp = "Yes"
	case 2, 3, 4:
		white = "Yes"
	case 5, 6:
		black = "Yes"
	case 7:
		bimulti = "Yes"
	case 8:
		// All flags unset: Other/Unknown.
	case 9:
		hisp, white = "Yes", "Yes"
	}
	row = append(row, hisp, white, black, bimulti, syntheticSite(rng))

	for _, questionID := range survey.QuestionIDs {
		switch questionID {
		case "Q6", "Q11", "Q12":
			row = append(row, countCodes[rng.Intn(len(countCodes))])
		default:
			// Skewed toward the upper scale, with some skips.
			if rng.Intn(8) == 0 {
				row = append(row, "")
			} else {
				row = append(row, fmt.Sprint(1+rng.Intn(5)))
			}
		}
	}

	return row
}

func syntheticAge(rng *rand.Rand) string {
	switch rng.Intn(20) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(15 + rng.Intn(3))
	}

	return fmt.Sprint(18 + rng.Intn(50))
}

func syntheticSite(rng *rand.Rand) string {
	if rng.Intn(12) == 0 {
		return siteJunk[rng.Intn(len(siteJunk))]
	}

	return siteNames[rng.Intn(len(siteNames))]
}

// siteNames is sorted so the same seed always yields the same extract.
var siteNames = func() []string {
	names := make([]string, 0, len(survey.SiteCodes))
	for name := range survey.SiteCodes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}()
