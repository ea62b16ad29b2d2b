package cli

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlPageTmpl = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; color: #333; }
h1 { font-size: 1.4rem; }
.range { color: #777; margin-bottom: 1.5rem; }
.day { border-top: 1px solid #ddd; padding: 0.75rem 0; }
.day h2 { font-size: 1rem; margin: 0 0 0.5rem; }
.day.holiday h2 { color: #b43c3c; }
.cell h3 { font-size: 0.85rem; color: #777; margin: 0.5rem 0 0.15rem; }
.cell .md { margin-left: 0.75rem; }
.cell .md p { margin: 0.2rem 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="range">{{.From}} to {{.To}}</div>
{{range .Days}}<div class="day{{if .Holiday}} holiday{{end}}">
<h2>{{.Heading}}</h2>
{{range .Cells}}<div class="cell">
<h3>{{.Column}}</h3>
<div class="md">{{.Body}}</div>
</div>
{{end}}</div>
{{end}}</body>
</html>
`))

type htmlCell struct {
	Column string
	Body   template.HTML
}

type htmlDay struct {
	Heading string
	Holiday bool
	Cells   []htmlCell
}

type htmlPage struct {
	Title string
	From  string
	To    string
	Days  []htmlDay
}

// renderExportHTML writes the exported days as a standalone HTML page.
// Cell text is treated as Markdown, so lists and links in notes carry
// through to the output.
func renderExportHTML(data exportData, outputPath string) error {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify,
			extension.Strikethrough,
		),
	)

	page := htmlPage{
		Title: data.Title,
		From:  dateutil.Format(data.From),
		To:    dateutil.Format(data.To),
	}

	for _, day := range data.Days {
		hd := htmlDay{
			Heading: fmt.Sprintf("%s (%s)", dateutil.Format(day.Date), day.Date.Weekday()),
			Holiday: day.Holiday,
		}
		for i, col := range data.Columns {
			cell := day.Cells[i]
			if cell == "" {
				continue
			}
			var buf bytes.Buffer
			if err := md.Convert([]byte(cell), &buf); err != nil {
				return fmt.Errorf("rendering %s: %w", dateutil.Format(day.Date), err)
			}
			hd.Cells = append(hd.Cells, htmlCell{
				Column: col.Title,
				Body:   template.HTML(buf.String()),
			})
		}
		page.Days = append(page.Days, hd)
	}

	var out bytes.Buffer
	if err := htmlPageTmpl.Execute(&out, page); err != nil {
		return fmt.Errorf("generating HTML: %w", err)
	}
	return os.WriteFile(outputPath, out.Bytes(), 0644)
}
