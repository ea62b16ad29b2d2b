package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	"github.com/spf13/cobra"
)

// appContext is the resolved environment a command operates on: where the
// settings live, their loaded value, and which document file is in play.
type appContext struct {
	homeDir      string
	settingsPath string
	settings     settings.Settings
	docPath      string
}

// resolveContext loads settings (warning on corruption, never failing) and
// picks the document path: the --file flag, then the last-used file from
// settings, then the configured autosave path.
func resolveContext(cmd *cobra.Command, homeDir, settingsFlag, fileFlag string) appContext {
	settingsPath := settingsFlag
	if settingsPath == "" {
		settingsPath = settings.Path(homeDir)
	}

	cfg, err := settings.Load(settingsPath, homeDir)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n",
			Warning("Warning:"), Text("settings unreadable, using defaults ("+err.Error()+")"))
	}

	docPath := fileFlag
	if docPath == "" {
		docPath = cfg.LastFile
	}
	if docPath == "" {
		docPath = cfg.AutosavePath
	}
	if docPath == "" {
		docPath = settings.DefaultDocumentPath(homeDir)
	}

	return appContext{
		homeDir:      homeDir,
		settingsPath: settingsPath,
		settings:     cfg,
		docPath:      docPath,
	}
}

// loadDocument opens the context's document. A user-requested file that
// fails to load is an error; during automatic startup recovery the chain
// falls back silently to the configured autosave path and finally to an
// empty document seeded with the settings' template columns.
func loadDocument(ctx *appContext, userInitiated bool) (*sheet.Document, error) {
	doc, err := sheet.Load(ctx.docPath)
	if err == nil {
		return doc, nil
	}
	if userInitiated {
		return nil, fmt.Errorf("loading %s: %w", ctx.docPath, err)
	}

	fallback := ctx.settings.AutosavePath
	if fallback == "" {
		fallback = settings.DefaultDocumentPath(ctx.homeDir)
	}
	if ctx.docPath != fallback {
		if doc, err := sheet.Load(fallback); err == nil {
			ctx.docPath = fallback
			return doc, nil
		}
	}

	return sheet.New(ctx.settings.Columns), nil
}

// saveDocument writes the document, remembers the file as last-used, and
// mirrors the document's column set into settings as the template for new
// documents. Settings save failures are downgraded to a warning; the
// document write is the operation the caller cares about.
func saveDocument(cmd *cobra.Command, ctx *appContext, doc *sheet.Document, rangeStart time.Time) error {
	if err := sheet.Write(ctx.docPath, doc, rangeStart, time.Now()); err != nil {
		return err
	}
	doc.MarkClean()

	changed := false
	if ctx.settings.LastFile != ctx.docPath {
		ctx.settings.LastFile = ctx.docPath
		changed = true
	}
	if !columnsEqual(ctx.settings.Columns, doc.Columns) {
		ctx.settings.Columns = append([]sheet.Column(nil), doc.Columns...)
		changed = true
	}
	if changed {
		if err := settings.Save(ctx.settingsPath, ctx.settings); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n",
				Warning("Warning:"), Text("could not update settings: "+err.Error()))
		}
	}
	return nil
}

func columnsEqual(a, b []sheet.Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// holidayFunc builds the composed holiday predicate for a date window:
// the manual set plus recurring rules expanded over [from, to].
func (ctx *appContext) holidayFunc(from, to time.Time) func(time.Time) bool {
	return composedHolidayFunc(ctx.settings, from, to)
}

// firstRecordDate returns the earliest recorded date, falling back to
// today for empty documents. Used as the compatibility range start by
// one-shot commands that save without a view window.
func firstRecordDate(doc *sheet.Document, now time.Time) time.Time {
	dates := doc.Dates()
	if len(dates) > 0 {
		return dates[0]
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// getContextPaths resolves the home directory and the shared command flags.
func getContextPaths(cmd *cobra.Command) (homeDir, settingsFlag, fileFlag string, err error) {
	homeDir, err = os.UserHomeDir()
	if err != nil {
		return "", "", "", err
	}
	settingsFlag, _ = cmd.Flags().GetString("settings")
	fileFlag, _ = cmd.Flags().GetString("file")
	return homeDir, settingsFlag, fileFlag, nil
}

// contextFlags are the flags shared by every document-touching command.
func contextFlags() []StringFlag {
	return []StringFlag{
		{Name: "file", Usage: "document file (default: last used, then the autosave file)"},
		{Name: "settings", Usage: "settings file path (default: ~/.d-scheduler/settings.json)"},
	}
}
