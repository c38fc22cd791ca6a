package tabulate

import (
	"fmt"
	"strings"

	"github.com/isaacbmichael/vdh-chr-evaluation/survey"
)

// A Dimension is one categorical axis used to stratify aggregation. Level
// extracts a record's level on that axis; every recoded record has exactly
// one level per dimension, with Unknown standing in for anything that could
// not be resolved.
type Dimension struct {
	Name  string
	Level func(r survey.Recoded) string
}

// Dimensions holds the five subgroup dimensions by name.
var Dimensions = map[string]Dimension{
	"gender": {
		Name:  "gender",
		Level: func(r survey.Recoded) string { return r.Gender },
	},
	"age_group": {
		Name:  "age_group",
		Level: func(r survey.Recoded) string { return r.AgeGroup },
	},
	"race_ethnicity": {
		Name:  "race_ethnicity",
		Level: func(r survey.Recoded) string { return r.RaceEthnicity },
	},
	"region": {
		Name:  "region",
		Level: func(r survey.Recoded) string { return r.Region },
	},
	"site_code": {
		Name:  "site_code",
		Level: func(r survey.Recoded) string { return r.SiteCode },
	},
}

// DefaultDimensionNames is the standard stratification order for reports.
var DefaultDimensionNames = []string{"gender", "age_group", "race_ethnicity", "region", "site_code"}

// NewDimensions resolves dimension names in order. An unknown name is a
// configuration error and stops the run at setup.
func NewDimensions(names ...string) ([]Dimension, error) {
	dims := make([]Dimension, 0, len(names))
	for _, name := range names {
		dim, exists := Dimensions[name]
		if !exists {
			return nil, fmt.Errorf("unknown subgroup dimension %q. Known dimensions: %s", name, DimensionNames())
		}
		dims = append(dims, dim)
	}

	return dims, nil
}

// DimensionNames lists the known dimension names for error messages.
func DimensionNames() string {
	return strings.Join(DefaultDimensionNames, ", ")
}
