package survey

import (
	"strconv"
	"strings"
)

// Age group and race/ethnicity levels.
const (
	Age18To34 = "18-34"
	Age35To44 = "35-44"
	Age45Up   = "45+"

	Hispanic     = "Hispanic"
	NHWhite      = "NH-White"
	NHBlack      = "NH-Black"
	NHBiMulti    = "NH-Bi/Multi"
	OtherUnknown = "Other/Unknown"
)

// Recode derives the canonical categorical fields for one record. It is a
// pure, total function: every input produces a valid Recoded value, with
// unresolvable fields mapped to the Unknown / Other/Unknown / NA/Skip
// sentinels rather than reported as errors. Recoding the same record twice
// yields identical derived fields.
func Recode(r Record) Recoded {
	out := Recoded{
		Record:        r,
		AgeGroup:      ageGroup(r.Age),
		RaceEthnicity: raceEthnicity(r),
		Labels:        make(map[string]string, len(QuestionIDs)),
	}

	// Responses is copied so the recoded dataset stays safe to share even
	// if the importer reuses its map.
	out.Responses = make(map[string]string, len(r.Responses))
	for questionID, code := range r.Responses {
		out.Responses[questionID] = code
	}

	out.SiteCode = SiteCode(r.SiteLocation)
	out.Region = Region(out.SiteCode)

	// A blank gender still needs to land in exactly one level of the
	// gender dimension, so it is normalized to Unknown here.
	out.Gender = strings.TrimSpace(r.Gender)
	if out.Gender == "" {
		out.Gender = Unknown
	}

	for _, questionID := range QuestionIDs {
		out.Labels[questionID] = ResponseLabel(questionID, r.Response(questionID))
	}

	return out
}

// RecodeAll recodes every record in order.
func RecodeAll(records []Record) []Recoded {
	out := make([]Recoded, 0, len(records))
	for _, r := range records {
		out = append(out, Recode(r))
	}

	return out
}

// ageGroup buckets a raw age string. A missing, non-numeric, or under-18 age
// is Unknown; under-18 responses are out of scope for the instrument and
// must not be folded into the 18-34 bucket.
func ageGroup(rawAge string) string {
	age, err := strconv.Atoi(strings.TrimSpace(rawAge))
	if err != nil {
		return Unknown
	}

	switch {
	case age >= 45:
		return Age45Up
	case age >= 35:
		return Age35To44
	case age >= 18:
		return Age18To34
	}

	return Unknown
}

// raceEthnicity resolves the demographic flags in fixed priority order:
// Hispanic wins over White over Black over Bi/Multi. The flags are mutually
// exclusive in well-formed data, but the priority order makes the outcome
// deterministic when they are not.
func raceEthnicity(r Record) string {
	switch {
	case flagSet(r.EthnHisp):
		return Hispanic
	case flagSet(r.RaceWhite):
		return NHWhite
	case flagSet(r.RaceBlack):
		return NHBlack
	case flagSet(r.RaceBiMulti):
		return NHBiMulti
	}

	return OtherUnknown
}

// flagSet reports whether a tri-state demographic flag is affirmatively set.
// Blank or missing means not set.
func flagSet(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "yes")
}
