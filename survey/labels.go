package survey

import "strings"

// NASkip is the label for a missing or unrecognized response code.
const NASkip = "NA/Skip"

// The 5-point questions belong to one of four phrase families. Index 0 holds
// the phrase for code "1".
var (
	helpfulnessLabels = [5]string{
		"Not at all helpful",
		"Slightly helpful",
		"Moderately helpful",
		"Very helpful",
		"Extremely helpful",
	}

	satisfactionLabels = [5]string{
		"Very dissatisfied",
		"Dissatisfied",
		"Neutral",
		"Satisfied",
		"Very satisfied",
	}

	concernLabels = [5]string{
		"Not at all concerned",
		"Slightly concerned",
		"Moderately concerned",
		"Very concerned",
		"Extremely concerned",
	}

	considerationLabels = [5]string{
		"Not at all",
		"A little",
		"Somewhat",
		"Quite a bit",
		"A great deal",
	}
)

// questionFamilies assigns each 5-point question its phrase family. The
// count questions (Q6, Q11, Q12) are absent: their responses are bucketed
// counts ("0".."5+") that label themselves.
var questionFamilies = map[string]*[5]string{
	"Q1":  &helpfulnessLabels,
	"Q2":  &helpfulnessLabels,
	"Q3":  &helpfulnessLabels,
	"Q4":  &helpfulnessLabels,
	"Q5":  &helpfulnessLabels,
	"Q7":  &satisfactionLabels,
	"Q8":  &satisfactionLabels,
	"Q9":  &satisfactionLabels,
	"Q10": &satisfactionLabels,
	"Q13": &concernLabels,
	"Q14": &concernLabels,
	"Q15": &concernLabels,
	"Q16": &concernLabels,
	"Q17": &considerationLabels,
	"Q18": &considerationLabels,
	"Q19": &considerationLabels,
	"Q20": &considerationLabels,
}

// ResponseLabel maps one question's raw response code to its display phrase.
// For 5-point questions, codes "1".."5" map to the question's family phrase
// and anything else maps to NA/Skip. For count questions the stripped raw
// value is its own label.
func ResponseLabel(questionID, code string) string {
	family, is5Point := questionFamilies[questionID]
	if !is5Point {
		if stripped := strings.TrimSpace(code); stripped != "" {
			return stripped
		}

		return NASkip
	}

	switch code {
	case "1":
		return family[0]
	case "2":
		return family[1]
	case "3":
		return family[2]
	case "4":
		return family[3]
	case "5":
		return family[4]
	}

	return NASkip
}
