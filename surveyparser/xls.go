package surveyparser

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"

	"github.com/isaacbmichael/vdh-chr-evaluation/survey"
)

// ReadXLS reads the first sheet of a legacy .xls extract.
func ReadXLS(path string) ([]survey.Record, error) {
	spreadsheet, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}

	sheet := spreadsheet.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("%s: no sheets", path)
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
		row := sheet.Row(rowID)
		if row == nil {
			continue
		}

		cells := make([]string, 0, row.LastCol()+1)
		for colID := 0; colID <= row.LastCol(); colID++ {
			cells = append(cells, row.Col(colID))
		}
		rows = append(rows, cells)
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
