// Package surveyparser reads raw CHR survey extracts (CSV, XLS, or XLSX)
// into survey.Record values. It is a thin import boundary: cells arrive as
// strings, a blank cell means missing, and a malformed cell degrades to
// missing rather than failing the batch. Only structural problems (an
// unreadable file, no header row) are errors.
package surveyparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/isaacbmichael/vdh-chr-evaluation/survey"
)

// Column keys after normalization (lowercased, spaces collapsed to
// underscores). Extracts from different sites disagree on capitalization and
// spacing but not on wording.
const (
	colAge         = "age"
	colGender      = "gender"
	colEthnHisp    = "ethnicity_hispanic"
	colRaceWhite   = "race_white"
	colRaceBlack   = "race_black"
	colRaceBiMulti = "race_bi_multiracial"
	colSite        = "site_location"
)

// Header maps normalized column names to their position in the extract.
// Unrecognized columns are ignored; a recognized column may be absent, in
// which case the field stays blank on every record.
type Header map[string]int

// NewHeader builds the column map from the extract's first row. It errors
// only when no recognized column is present at all, which means the file is
// not a survey extract.
func NewHeader(headerRow []string) (Header, error) {
	header := make(Header, len(headerRow))
	for i, name := range headerRow {
		key := normalizeColumn(name)
		if key == "" {
			continue
		}
		if _, dup := header[key]; dup {
			continue
		}
		header[key] = i
	}

	recognized := 0
	for _, key := range append([]string{colAge, colGender, colEthnHisp, colRaceWhite, colRaceBlack, colRaceBiMulti, colSite}, questionKeys()...) {
		if _, exists := header[key]; exists {
			recognized++
		}
	}
	if recognized == 0 {
		return nil, fmt.Errorf("no recognized survey columns in header %v", headerRow)
	}

	return header, nil
}

// ParseRow converts one data row into a Record using the header's column
// positions. Short rows and absent columns yield blank fields.
func (h Header) ParseRow(row []string) survey.Record {
	record := survey.Record{
		Age:          h.cell(row, colAge),
		Gender:       h.cell(row, colGender),
		EthnHisp:     h.cell(row, colEthnHisp),
		RaceWhite:    h.cell(row, colRaceWhite),
		RaceBlack:    h.cell(row, colRaceBlack),
		RaceBiMulti:  h.cell(row, colRaceBiMulti),
		SiteLocation: strings.TrimSpace(h.cell(row, colSite)),
		Responses:    make(map[string]string, len(survey.QuestionIDs)),
	}

	for _, questionID := range survey.QuestionIDs {
		record.Responses[questionID] = strings.TrimSpace(h.cell(row, strings.ToLower(questionID)))
	}

	return record
}

func (h Header) cell(row []string, key string) string {
	i, exists := h[key]
	if !exists || i >= len(row) {
		return ""
	}

	return row[i]
}

// ParseRows applies the header to every data row.
func ParseRows(header Header, rows [][]string) []survey.Record {
	records := make([]survey.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, header.ParseRow(row))
	}

	return records
}

// Read dispatches on the requested format, or on the file extension when
// format is "auto".
func Read(path, format string) ([]survey.Record, error) {
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xls":
			format = "xls"
		case ".xlsx":
			format = "xlsx"
		default:
			format = "csv"
		}
	}

	switch format {
	case "csv":
		return ReadCSV(path)
	case "xls":
		return ReadXLS(path)
	case "xlsx":
		return ReadXLSX(path)
	}

	return nil, pfx.Err(fmt.Errorf("unknown extract format %q. Known formats: auto, csv, xls, xlsx", format))
}

func normalizeColumn(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.Join(strings.Fields(key), "_")

	return key
}

func questionKeys() []string {
	keys := make([]string, 0, len(survey.QuestionIDs))
	for _, questionID := range survey.QuestionIDs {
		keys = append(keys, strings.ToLower(questionID))
	}

	return keys
}
