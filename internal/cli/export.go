package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/holiday"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/stringutil"
	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export recorded days as PDF or HTML",
	StrFlags: append(contextFlags(),
		StringFlag{Name: "format", Usage: "output format: pdf or html", Default: "pdf"},
		StringFlag{Name: "from", Usage: "earliest date to include"},
		StringFlag{Name: "to", Usage: "latest date to include"},
		StringFlag{Name: "out", Usage: "output file path"},
	),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		out, _ := cmd.Flags().GetString("out")
		return runExport(cmd, homeDir, settingsFlag, fileFlag, format, fromFlag, toFlag, out)
	},
}.Build()

// exportDay is one rendered day: the date, its display kind, and the cell
// text per column in column order (empty string for blank cells).
type exportDay struct {
	Date    time.Time
	Holiday bool
	Cells   []string
}

// exportData is everything the renderers need, independent of format.
type exportData struct {
	Title   string
	From    time.Time
	To      time.Time
	Columns []sheet.Column
	Days    []exportDay
}

func runExport(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, format, fromFlag, toFlag, out string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	dates := doc.Dates()
	if len(dates) == 0 {
		return fmt.Errorf("nothing to export: the document has no records")
	}

	from := dates[0]
	to := dates[len(dates)-1]
	if fromFlag != "" {
		if from, err = dateutil.ParseDate(fromFlag); err != nil {
			return err
		}
	}
	if toFlag != "" {
		if to, err = dateutil.ParseDate(toFlag); err != nil {
			return err
		}
	}
	if to.Before(from) {
		return fmt.Errorf("--to is before --from")
	}

	data := buildExportData(doc, ctx.holidayFunc(from, to), from, to)
	if len(data.Days) == 0 {
		return fmt.Errorf("no records between %s and %s", dateutil.Format(from), dateutil.Format(to))
	}

	switch format {
	case "pdf":
		if out == "" {
			out = defaultExportName(ctx.docPath, "pdf", from)
		}
		err = renderExportPDF(data, out)
	case "html":
		if out == "" {
			out = defaultExportName(ctx.docPath, "html", from)
		}
		err = renderExportHTML(data, out)
	default:
		return fmt.Errorf("unknown format '%s' (expected pdf or html)", format)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		Text("exported"), Silent(fmt.Sprintf("%d day(s) to", len(data.Days))), Primary(out))
	return nil
}

// defaultExportName derives the output filename from the document's base
// name, e.g. "team plans.json" exported from June becomes
// "team-plans-2025-06-01.pdf".
func defaultExportName(docPath, ext string, from time.Time) string {
	base := filepath.Base(docPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	slug := stringutil.Slugify(base)
	if slug == "" {
		slug = "d-scheduler"
	}
	return fmt.Sprintf("%s-%s.%s", slug, dateutil.Format(from), ext)
}

// buildExportData collects the recorded days inside [from, to] in date
// order, carrying each day's cells in column order.
func buildExportData(doc *sheet.Document, isHoliday holiday.Func, from, to time.Time) exportData {
	data := exportData{
		Title:   "Day Scheduler",
		From:    from,
		To:      to,
		Columns: doc.Columns,
	}

	for _, date := range doc.Dates() {
		if date.Before(from) || date.After(to) {
			continue
		}
		day := exportDay{
			Date:    date,
			Holiday: isHoliday != nil && isHoliday(date),
		}
		for _, col := range doc.Columns {
			day.Cells = append(day.Cells, doc.Cell(date, col.ID))
		}
		data.Days = append(data.Days, day)
	}
	return data
}
