package grid

import (
	"testing"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSource is a minimal record source backed by a date-keyed map.
type mapSource map[string]map[string]string

func (s mapSource) Fields(date time.Time) map[string]string {
	rec := s[date.Format("2006-01-02")]
	out := make(map[string]string, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewMaterializesFullSpan(t *testing.T) {
	w := New(mapSource{}, nil, date(2025, 1, 1), 61)

	assert.Equal(t, date(2025, 1, 1), w.Start())
	assert.Equal(t, date(2025, 3, 2), w.End(), "61 days after the start")
	assert.Equal(t, date(2025, 1, 1), w.Anchor())
	assert.Equal(t, 62, w.Len())
	assert.Equal(t, Idle, w.State())

	for i := 0; i < w.Len(); i++ {
		assert.Empty(t, w.Row(i).Fields, "empty store renders empty rows")
	}
}

func TestNewMaterializesStoredFields(t *testing.T) {
	src := mapSource{"2025-01-05": {"col-1": "meeting"}}
	w := New(src, nil, date(2025, 1, 1), 61)

	i := w.IndexOf(date(2025, 1, 5))
	require.Equal(t, 4, i)
	assert.Equal(t, "meeting", w.Row(i).Fields["col-1"])

	for j := 0; j < w.Len(); j++ {
		if j == i {
			continue
		}
		assert.Empty(t, w.Row(j).Fields)
	}
}

func TestIndexOfOutsideWindow(t *testing.T) {
	w := New(mapSource{}, nil, date(2025, 1, 1), 10)

	assert.Equal(t, -1, w.IndexOf(date(2024, 12, 31)))
	assert.Equal(t, -1, w.IndexOf(date(2025, 1, 12)))
	assert.Equal(t, 0, w.IndexOf(date(2025, 1, 1)))
	assert.Equal(t, 10, w.IndexOf(date(2025, 1, 11)))
}

func TestDateAtRoundTrip(t *testing.T) {
	w := New(mapSource{}, nil, date(2025, 1, 1), 30)

	for i := 0; i < w.Len(); i++ {
		assert.Equal(t, i, w.IndexOf(w.DateAt(i)))
	}
}

func TestExtendForward(t *testing.T) {
	src := mapSource{"2025-02-15": {"col-1": "later"}}
	w := New(src, nil, date(2025, 1, 1), 30)

	ok := w.Extend(Forward, 60)

	require.True(t, ok)
	assert.Equal(t, date(2025, 1, 1), w.Start())
	assert.Equal(t, date(2025, 4, 2), w.End())
	assert.Equal(t, 92, w.Len())
	assert.Equal(t, "later", w.Row(w.IndexOf(date(2025, 2, 15))).Fields["col-1"])
	assert.Equal(t, Idle, w.State())
}

func TestExtendBackwardShiftsIndexesByN(t *testing.T) {
	w := New(mapSource{}, nil, date(2025, 3, 1), 30)
	before := w.IndexOf(date(2025, 3, 10))

	ok := w.Extend(Backward, 60)

	require.True(t, ok)
	assert.Equal(t, date(2024, 12, 31), w.Start())
	assert.Equal(t, before+60, w.IndexOf(date(2025, 3, 10)),
		"existing dates shift by exactly n so the caller can restore the viewport")
}

func TestExtendLeavesExistingRowsUntouched(t *testing.T) {
	src := mapSource{"2025-01-10": {"col-1": "keep me"}}
	w := New(src, nil, date(2025, 1, 1), 30)

	// Mutating the source after materialization must not change old rows.
	src["2025-01-10"]["col-1"] = "changed"
	require.True(t, w.Extend(Backward, 10))
	require.True(t, w.Extend(Forward, 10))

	assert.Equal(t, "keep me", w.Row(w.IndexOf(date(2025, 1, 10))).Fields["col-1"])
}

func TestExtendForwardThenBackwardRestoresContent(t *testing.T) {
	src := mapSource{
		"2025-01-05": {"col-1": "a"},
		"2025-01-20": {"col-1": "b"},
	}
	w := New(src, nil, date(2025, 1, 1), 30)

	snapshot := make(map[string]string)
	for i := 0; i < w.Len(); i++ {
		snapshot[w.DateAt(i).Format("2006-01-02")] = w.Row(i).Fields["col-1"]
	}

	require.True(t, w.Extend(Forward, 15))
	require.True(t, w.Extend(Backward, 15))

	for key, text := range snapshot {
		d, _ := time.Parse("2006-01-02", key)
		assert.Equal(t, text, w.Row(w.IndexOf(d)).Fields["col-1"])
	}
}

func TestExtendRejectsNonPositiveN(t *testing.T) {
	w := New(mapSource{}, nil, date(2025, 1, 1), 10)

	assert.False(t, w.Extend(Forward, 0))
	assert.False(t, w.Extend(Backward, -3))
	assert.Equal(t, 11, w.Len())
}

func TestJumpToRebuildsAroundTarget(t *testing.T) {
	w := New(mapSource{}, nil, date(2025, 1, 1), 61)
	require.True(t, w.Extend(Forward, 60))

	ok := w.JumpTo(date(2026, 6, 15), 61)

	require.True(t, ok)
	assert.Equal(t, date(2026, 6, 15), w.Start(), "target is the first row")
	assert.Equal(t, date(2026, 6, 15), w.Anchor())
	assert.Equal(t, 0, w.IndexOf(date(2026, 6, 15)))
	assert.Equal(t, 62, w.Len(), "previous window is discarded, not merged")
}

func TestRefreshRematerializesSingleRow(t *testing.T) {
	src := mapSource{}
	w := New(src, nil, date(2025, 1, 1), 10)

	src["2025-01-03"] = map[string]string{"col-1": "edited"}
	w.Refresh(date(2025, 1, 3))

	assert.Equal(t, "edited", w.Row(2).Fields["col-1"])
	assert.Empty(t, w.Row(3).Fields)

	// Outside the window: ignored.
	w.Refresh(date(2030, 1, 1))
}

func TestClassifyWeekendAndHoliday(t *testing.T) {
	hset := holiday.ParseSet("2025-01-01")
	w := New(mapSource{}, hset.Func(), date(2025, 1, 1), 10)

	// Wed Jan 1 2025 is in the holiday set.
	assert.Equal(t, KindHoliday, w.Row(w.IndexOf(date(2025, 1, 1))).Kind)
	// Thu Jan 2.
	assert.Equal(t, KindWeekday, w.Row(w.IndexOf(date(2025, 1, 2))).Kind)
	// Sat Jan 4.
	assert.Equal(t, KindSaturday, w.Row(w.IndexOf(date(2025, 1, 4))).Kind)
	// Sun Jan 5.
	assert.Equal(t, KindSunday, w.Row(w.IndexOf(date(2025, 1, 5))).Kind)
}

func TestNearEdgeThresholdFloor(t *testing.T) {
	// 62 rows: 5% is 3, so the floor of 8 applies.
	w := New(mapSource{}, nil, date(2025, 1, 1), 61)

	dir, near := w.NearEdge(0, 10)
	assert.True(t, near)
	assert.Equal(t, Backward, dir)

	dir, near = w.NearEdge(50, 10)
	assert.True(t, near)
	assert.Equal(t, Forward, dir)

	_, near = w.NearEdge(20, 10)
	assert.False(t, near, "middle of the window is not near an edge")
}

func TestNearEdgeThresholdScales(t *testing.T) {
	// 401 rows: 5% is 20, above the floor.
	w := New(mapSource{}, nil, date(2025, 1, 1), 400)

	_, near := w.NearEdge(19, 10)
	assert.True(t, near)

	_, near = w.NearEdge(20, 10)
	assert.False(t, near)

	_, near = w.NearEdge(372, 10)
	assert.True(t, near)
}

// reentrantSource re-enters the window from inside materialization, the
// way a scroll handler fired by the extension itself would.
type reentrantSource struct {
	w       **Window
	results *[]bool
}

func (s reentrantSource) Fields(time.Time) map[string]string {
	if *s.w != nil {
		*s.results = append(*s.results, (*s.w).Extend(Forward, 5))
	}
	return map[string]string{}
}

func TestReentrantRequestsIgnoredWhileBusy(t *testing.T) {
	var w *Window
	var results []bool
	src := reentrantSource{w: &w, results: &results}

	w = New(src, nil, date(2025, 1, 1), 10)
	require.Equal(t, 11, w.Len())

	// The initial build ran before w was assigned; this extension's
	// materialization re-enters Extend on every new row.
	require.True(t, w.Extend(Backward, 4))

	assert.Len(t, results, 4)
	for _, ok := range results {
		assert.False(t, ok, "extension requests while busy are ignored")
	}
	assert.Equal(t, 15, w.Len(), "only the outer extension took effect")
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "extending", Extending.String())
	assert.Equal(t, "rebuilding", Rebuilding.String())
}
