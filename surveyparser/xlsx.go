package surveyparser

import (
	"fmt"
	"log"

	"github.com/carbocation/pfx"
	"github.com/xuri/excelize/v2"

	"github.com/isaacbmichael/vdh-chr-evaluation/survey"
)

// ReadXLSX reads the first sheet of a .xlsx extract.
func ReadXLSX(path string) ([]survey.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Println(pfx.Err(err))
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
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
