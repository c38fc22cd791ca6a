package surveyparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"

	chreval "github.com/isaacbmichael/vdh-chr-evaluation"
	"github.com/isaacbmichael/vdh-chr-evaluation/survey"
)

// ReadCSV reads a delimited survey extract. The delimiter is sniffed from
// the file contents, since the field sites export with commas, tabs, or
// semicolons depending on their tooling.
func ReadCSV(path string) ([]survey.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	delim := chreval.DetermineDelimiter(f)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, pfx.Err(err)
	}

	reader := csv.NewReader(f)
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("%s: no header row", path)
	}

	header, err := NewHeader(rows[0])
	if err != nil {
		return nil, pfx.Err(err)
	}

	return ParseRows(header, rows[1:]), nil
}
