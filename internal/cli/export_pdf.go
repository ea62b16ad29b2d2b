package cli

import (
	"fmt"
	"strings"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor  = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor   = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor    = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfHolidayColor = props.Color{Red: 180, Green: 60, Blue: 60}
)

// renderExportPDF generates a PDF of the exported days and saves it to the
// given path. Each day is a section: a header row with the date, then one
// row per non-empty column cell.
func renderExportPDF(data exportData, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, data.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s to %s", dateutil.Format(data.From), dateutil.Format(data.To)), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	// Day sections
	for _, day := range data.Days {
		dayLabel := fmt.Sprintf("%s, %s %d",
			day.Date.Weekday(), day.Date.Month(), day.Date.Day())
		headerColor := &pdfHeaderColor
		tag := ""
		if day.Holiday {
			headerColor = &pdfHolidayColor
			tag = "holiday"
		}

		// Day header row
		m.AddRow(8,
			text.NewCol(9, dayLabel, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: headerColor,
			}),
			text.NewCol(3, tag, props.Text{
				Size:  9,
				Align: align.Right,
				Color: &pdfMutedColor,
			}),
		)

		for i, col := range data.Columns {
			cell := day.Cells[i]
			if cell == "" {
				continue
			}
			m.AddRow(6,
				text.NewCol(12, "  "+col.Title, props.Text{
					Style: fontstyle.Bold,
					Size:  9,
				}),
			)
			for _, lineText := range strings.Split(cell, "\n") {
				m.AddRow(5,
					text.NewCol(12, "    "+lineText, props.Text{
						Size:  8,
						Color: &pdfMutedColor,
					}),
				)
			}
		}

		// Spacer between days
		m.AddRow(4)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(12, fmt.Sprintf("%d day(s)", len(data.Days)), props.Text{
			Style: fontstyle.Bold,
			Size:  10,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
