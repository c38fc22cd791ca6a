// Package survey defines the raw CHR client-survey record and the rules that
// recode it into the canonical categories used for tabulation.
package survey

// QuestionIDs lists the instrument's question identifiers in instrument
// order. Q6, Q11, and Q12 are bucketed-count questions; the rest are 5-point
// ordinal questions.
var QuestionIDs = []string{
	"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10",
	"Q11", "Q12", "Q13", "Q14", "Q15", "Q16", "Q17", "Q18", "Q19", "Q20",
}

// Record is one survey response as imported, before any recoding. Every
// field is kept as the string the extract carried; a blank string means the
// value was missing. Ordinal responses stay string-typed throughout, since
// converting to integers would silently change how blank and junk codes are
// handled downstream.
type Record struct {
	Age          string
	Gender       string
	EthnHisp     string
	RaceWhite    string
	RaceBlack    string
	RaceBiMulti  string
	SiteLocation string

	// Responses maps question ID ("Q1".."Q20") to the raw response code.
	Responses map[string]string
}

// Response returns the raw code for the given question ID, or "" if the
// question was skipped or absent from the extract.
func (r Record) Response(questionID string) string {
	return r.Responses[questionID]
}

// Recoded is a Record plus the derived categorical fields. Recode copies the
// underlying record, so a Recoded value never aliases mutable importer
// state.
type Recoded struct {
	Record

	AgeGroup      string
	RaceEthnicity string
	SiteCode      string
	Region        string

	// Labels maps question ID to the human-readable phrase for that
	// record's response code ("NA/Skip" when missing or unrecognized).
	Labels map[string]string
}
