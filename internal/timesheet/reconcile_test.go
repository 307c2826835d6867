package timesheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet/backend/internal/model"
	"timesheet/backend/internal/timesheet"
)

func TestDateRange_Normalised(t *testing.T) {
	r := timesheet.NewDateRange(
		time.Date(2025, 7, 1, 15, 30, 0, 0, time.UTC),
		time.Date(2025, 7, 3, 8, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, day(2025, 7, 1), r.Start)
	assert.Equal(t, 23, r.End.Hour())
	assert.True(t, r.Contains(time.Date(2025, 7, 3, 23, 59, 0, 0, time.UTC)))
	assert.True(t, r.Contains(day(2025, 7, 1)))
	assert.False(t, r.Contains(day(2025, 7, 4)))
	assert.False(t, r.Contains(time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)))
}

func TestDateRange_Days(t *testing.T) {
	r := timesheet.NewDateRange(day(2025, 6, 29), day(2025, 7, 2))
	days := r.Days()
	require.Len(t, days, 4)
	assert.Equal(t, day(2025, 6, 29), days[0])
	assert.Equal(t, day(2025, 7, 2), days[3])

	empty := timesheet.NewDateRange(day(2025, 7, 2), day(2025, 7, 1))
	assert.Empty(t, empty.Days())
}

func TestDateRange_DayCount(t *testing.T) {
	assert.Equal(t, 1, timesheet.NewDateRange(day(2025, 7, 1), day(2025, 7, 1)).DayCount())
	assert.Equal(t, 31, timesheet.NewDateRange(day(2025, 7, 1), day(2025, 7, 31)).DayCount())
	assert.Equal(t, 0, timesheet.NewDateRange(day(2025, 7, 2), day(2025, 7, 1)).DayCount())

	edge := timesheet.NewDateRange(day(2025, 1, 1), day(2025, 1, 1).AddDate(0, 0, timesheet.MaxRangeDays-1))
	assert.Equal(t, timesheet.MaxRangeDays, edge.DayCount())
	assert.True(t, edge.WithinLimit())

	over := timesheet.NewDateRange(day(2025, 1, 1), day(2025, 1, 1).AddDate(0, 0, timesheet.MaxRangeDays))
	assert.False(t, over.WithinLimit())

	// 超出 time.Duration 表示范围的跨度同样判为超限
	huge := timesheet.NewDateRange(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.False(t, huge.WithinLimit())
}

func TestDateRange_ContainsAcrossZones(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	r := timesheet.NewDateRange(time.Date(2025, 7, 1, 0, 0, 0, 0, shanghai), time.Date(2025, 7, 1, 0, 0, 0, 0, shanghai))
	// 数据库返回的 date 列为 UTC 零点，按日历日比较不应偏移
	assert.True(t, r.Contains(day(2025, 7, 1)))
	assert.False(t, r.Contains(day(2025, 6, 30)))
}

func TestReconcile_TableVariant(t *testing.T) {
	entries := []model.TimeEntry{entry("2", day(2025, 7, 2), "08:30", "17:00", "00:45")}
	r := timesheet.NewDateRange(day(2025, 7, 1), day(2025, 7, 3))

	got := timesheet.ReconcileForTable(entries, r)

	require.Len(t, got, 3)
	assert.Equal(t, "placeholder-2025-07-01", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "placeholder-2025-07-03", got[2].ID)
	for _, e := range []model.TimeEntry{got[0], got[2]} {
		assert.True(t, timesheet.IsPlaceholder(&e))
		assert.Empty(t, e.StartTime)
		assert.Empty(t, e.EndTime)
		assert.Empty(t, e.BreakDuration)
	}
}

func TestReconcile_ExportVariantDropsWeekdayGaps(t *testing.T) {
	entries := []model.TimeEntry{entry("2", day(2025, 7, 2), "08:30", "17:00", "00:45")}
	r := timesheet.NewDateRange(day(2025, 7, 1), day(2025, 7, 3))

	got := timesheet.ReconcileForExport(entries, r)

	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestReconcile_ExportVariantWeekendPlaceholders(t *testing.T) {
	r := timesheet.NewDateRange(day(2025, 7, 3), day(2025, 7, 8))

	got := timesheet.ReconcileForExport(julyEntries(), r)

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	// 7/3 周四无记录且非周末，不出现
	assert.Equal(t, []string{
		"4",
		"weekend-placeholder-2025-07-05",
		"weekend-placeholder-2025-07-06",
		"5",
		"6",
	}, ids)
}

func TestReconcile_LastEntryForDayWins(t *testing.T) {
	entries := []model.TimeEntry{
		entry("a", day(2025, 7, 1), "09:00", "10:00", "00:00"),
		entry("b", time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC), "09:00", "18:00", "00:00"),
	}
	got := timesheet.ReconcileForTable(entries, timesheet.NewDateRange(day(2025, 7, 1), day(2025, 7, 1)))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestReconcile_Idempotent(t *testing.T) {
	r := timesheet.NewDateRange(day(2025, 7, 1), day(2025, 7, 31))
	first := timesheet.ReconcileForTable(julyEntries(), r)
	second := timesheet.ReconcileForTable(julyEntries(), r)
	assert.Equal(t, first, second)

	// 对自身输出再次对齐，结果不变
	again := timesheet.ReconcileForTable(first, r)
	assert.Equal(t, first, again)
}

func TestFilterAndSpan(t *testing.T) {
	r := timesheet.NewDateRange(day(2025, 7, 7), day(2025, 7, 9))
	got := timesheet.Filter(julyEntries(), r)
	require.Len(t, got, 3)
	assert.Equal(t, "5", got[0].ID)
	assert.Equal(t, "7", got[2].ID)

	span, ok := timesheet.Span(julyEntries())
	require.True(t, ok)
	assert.Equal(t, day(2025, 7, 4), span.Start)
	assert.True(t, timesheet.SameDay(day(2025, 7, 14), span.End))

	_, ok = timesheet.Span(nil)
	assert.False(t, ok)
}

func TestSortByDate(t *testing.T) {
	entries := julyEntries()
	timesheet.SortByDate(entries, true)
	assert.Equal(t, "10", entries[0].ID)
	assert.Equal(t, "4", entries[len(entries)-1].ID)

	timesheet.SortByDate(entries, false)
	assert.Equal(t, "4", entries[0].ID)
}
