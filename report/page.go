package report

import (
	"fmt"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"
	"github.com/montanaflynn/stats"

	"github.com/isaacbmichael/vdh-chr-evaluation/tabulate"
)

// Page geometry, US-letter proportions at 96dpi.
const (
	pageWidth  = 816
	pageHeight = 1056
	pageMargin = 48
	rowHeight  = 22
	headerBand = 84

	rowsPerPage = (pageHeight - headerBand - 3*pageMargin) / rowHeight
)

// Column x offsets within the table body.
var tableColumns = []struct {
	title string
	x     float64
}{
	{"Question", pageMargin},
	{"Level", pageMargin + 320},
	{"% Positive", pageMargin + 500},
	{"Total N", pageMargin + 590},
	{"High N", pageMargin + 660},
}

// TablePages renders one subgroup dimension's rows as paginated print-ready
// PNG pages and returns the paths written. The rows are expected in
// assembled order.
func TablePages(dir, fontPath, dimension string, rows []tabulate.SummaryRow) ([]string, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows for dimension %q", dimension)
	}

	var paths []string
	for page := 0; page*rowsPerPage < len(rows); page++ {
		start := page * rowsPerPage
		end := start + rowsPerPage
		if end > len(rows) {
			end = len(rows)
		}

		path := filepath.Join(dir, fmt.Sprintf("table_%s_p%d.png", dimension, page+1))
		if err := renderTablePage(path, fontPath, dimension, rows, start, end); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func renderTablePage(path, fontPath, dimension string, rows []tabulate.SummaryRow, start, end int) error {
	ctx := gg.NewContext(pageWidth, pageHeight)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	if err := ctx.LoadFontFace(fontPath, 12); err != nil {
		return pfx.Err(err)
	}

	// Header band.
	ctx.SetRGB255(31, 73, 125)
	ctx.DrawRectangle(0, 0, pageWidth, headerBand)
	ctx.Fill()
	ctx.SetRGB(1, 1, 1)
	ctx.DrawString("CHR Client Survey — Percent Positive by "+dimension, pageMargin, headerBand/2)
	ctx.DrawString(fmt.Sprintf("rows %d-%d of %d", start+1, end, len(rows)), pageMargin, headerBand/2+16)

	// Column headers.
	y := float64(headerBand + pageMargin)
	ctx.SetRGB(0, 0, 0)
	for _, col := range tableColumns {
		ctx.DrawString(col.title, col.x, y)
	}
	ctx.DrawLine(pageMargin, y+6, pageWidth-pageMargin, y+6)
	ctx.Stroke()

	// Body rows with zebra striping.
	for i, row := range rows[start:end] {
		y += rowHeight

		if i%2 == 1 {
			ctx.SetRGB255(237, 241, 247)
			ctx.DrawRectangle(pageMargin, y-rowHeight+8, pageWidth-2*pageMargin, rowHeight)
			ctx.Fill()
		}

		pct := "n/a"
		if row.PercentPositive.Valid {
			pct = fmt.Sprintf("%.1f", row.PercentPositive.Float64)
		}

		ctx.SetRGB(0, 0, 0)
		ctx.DrawString(truncate(row.Question, 52), tableColumns[0].x, y)
		ctx.DrawString(truncate(row.Level, 28), tableColumns[1].x, y)
		ctx.DrawString(pct, tableColumns[2].x, y)
		ctx.DrawString(fmt.Sprintf("%d", row.TotalN), tableColumns[3].x, y)
		ctx.DrawString(fmt.Sprintf("%d", row.PositiveN), tableColumns[4].x, y)
	}

	// Footer: central tendency of the defined percentages on this page.
	if mean, median, ok := percentSummary(rows[start:end]); ok {
		ctx.SetRGB255(89, 89, 89)
		ctx.DrawString(fmt.Sprintf("mean %% positive %.1f, median %.1f", mean, median), pageMargin, pageHeight-pageMargin)
	}

	if err := ctx.SavePNG(path); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// CoverPage renders the report's title page.
func CoverPage(path, fontPath, title, subtitle string, recordCount int) error {
	ctx := gg.NewContext(pageWidth, pageHeight)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	ctx.SetRGB255(31, 73, 125)
	ctx.DrawRectangle(0, pageHeight/3, pageWidth, 8)
	ctx.Fill()

	if err := ctx.LoadFontFace(fontPath, 28); err != nil {
		return pfx.Err(err)
	}
	ctx.SetRGB(0, 0, 0)
	ctx.DrawStringAnchored(title, pageWidth/2, pageHeight/3-48, 0.5, 0.5)

	if err := ctx.LoadFontFace(fontPath, 14); err != nil {
		return pfx.Err(err)
	}
	ctx.SetRGB255(89, 89, 89)
	ctx.DrawStringAnchored(subtitle, pageWidth/2, pageHeight/3+48, 0.5, 0.5)
	ctx.DrawStringAnchored(fmt.Sprintf("%d client responses", recordCount), pageWidth/2, pageHeight/3+76, 0.5, 0.5)

	if err := ctx.SavePNG(path); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func percentSummary(rows []tabulate.SummaryRow) (mean, median float64, ok bool) {
	defined := make([]float64, 0, len(rows))
	for _, row := range rows {
		if row.PercentPositive.Valid {
			defined = append(defined, row.PercentPositive.Float64)
		}
	}
	if len(defined) == 0 {
		return 0, 0, false
	}

	mean, err := stats.Mean(defined)
	if err != nil {
		return 0, 0, false
	}
	median, err = stats.Median(defined)
	if err != nil {
		return 0, 0, false
	}

	return mean, median, true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-1] + "…"
}
