package sheet

import (
	"sort"
	"strings"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
)

const snippetMax = 80

// Match is a single search hit: the date and column it was found in plus a
// flattened snippet of the cell text.
type Match struct {
	Date     time.Time
	ColumnID string
	Snippet  string
}

// Search scans day records for a case-insensitive substring match across
// all columns. When from/to are non-nil the scan is limited to that
// inclusive date range; otherwise the entire mapping is scanned. Results
// are ordered by date, then by column order within a date.
func (d *Document) Search(query string, from, to *time.Time) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	order := make(map[string]int, len(d.Columns))
	for i, c := range d.Columns {
		order[c.ID] = i
	}

	var matches []Match
	for key, rec := range d.Cells {
		date, err := dateutil.ParseISO(key)
		if err != nil {
			continue
		}
		if from != nil && date.Before(*from) {
			continue
		}
		if to != nil && date.After(*to) {
			continue
		}
		for col, text := range rec {
			if !strings.Contains(strings.ToLower(text), query) {
				continue
			}
			matches = append(matches, Match{
				Date:     date,
				ColumnID: col,
				Snippet:  flattenSnippet(text),
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.Before(matches[j].Date)
		}
		oi, oki := order[matches[i].ColumnID]
		oj, okj := order[matches[j].ColumnID]
		if oki && okj && oi != oj {
			return oi < oj
		}
		return matches[i].ColumnID < matches[j].ColumnID
	})
	return matches
}

// flattenSnippet collapses a multiline cell into a single display line,
// truncated to a readable length.
func flattenSnippet(text string) string {
	flat := strings.Join(strings.Fields(text), " ")
	runes := []rune(flat)
	if len(runes) <= snippetMax {
		return flat
	}
	return string(runes[:snippetMax-3]) + "..."
}
