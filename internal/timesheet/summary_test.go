package timesheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet/backend/internal/model"
	"timesheet/backend/internal/timesheet"
)

func TestSummarize_ThisWeek(t *testing.T) {
	// 2025-07-09 周三，本周为 7/6(日) ~ 7/12(六)
	now := time.Date(2025, 7, 9, 10, 0, 0, 0, time.UTC)
	week := timesheet.ThisWeek(now)
	assert.Equal(t, day(2025, 7, 6), week.Start)
	assert.True(t, timesheet.SameDay(day(2025, 7, 12), week.End))

	entries := julyEntries()
	got := timesheet.Summarize(entries, &week)

	manual := 0
	for _, e := range entries {
		if week.Contains(e.Date) {
			manual += timesheet.WorkedMinutes(e.StartTime, e.EndTime, e.BreakDuration)
		}
	}
	assert.Equal(t, 5, got.Entries)
	assert.Equal(t, 2370, got.WorkedMinutes)
	assert.Equal(t, manual, got.WorkedMinutes)
	assert.Equal(t, "39:30", got.TotalWorked)
}

func TestSummarize_ExcludesPlaceholdersAndIncomplete(t *testing.T) {
	entries := []model.TimeEntry{
		entry("1", day(2025, 7, 1), "09:00", "17:30", "00:30"),
		{ID: "placeholder-2025-07-02", UserID: "placeholder", Date: day(2025, 7, 2)},
		{ID: "3", UserID: "user1", Date: day(2025, 7, 3), StartTime: "09:00"},
	}
	got := timesheet.Summarize(entries, nil)
	assert.Equal(t, 2, got.Entries)
	assert.Equal(t, 480, got.WorkedMinutes)
	assert.Equal(t, "8:00", got.TotalWorked)
}

func TestPresets(t *testing.T) {
	now := time.Date(2025, 7, 31, 18, 0, 0, 0, time.UTC) // 周四

	today := timesheet.Today(now)
	assert.Equal(t, day(2025, 7, 31), today.Start)
	assert.Equal(t, time.Date(2025, 7, 31, 23, 59, 59, 999999999, time.UTC), today.End)

	week := timesheet.ThisWeek(now)
	assert.Equal(t, day(2025, 7, 27), week.Start)
	assert.True(t, timesheet.SameDay(day(2025, 8, 2), week.End))

	month := timesheet.ThisMonth(now)
	assert.Equal(t, day(2025, 7, 1), month.Start)
	assert.True(t, timesheet.SameDay(day(2025, 7, 31), month.End))

	last30 := timesheet.Last30Days(now)
	assert.Equal(t, day(2025, 7, 1), last30.Start)
	assert.Len(t, last30.Days(), 31)

	feb := timesheet.ThisMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, timesheet.SameDay(day(2024, 2, 29), feb.End))
}

func TestParsePreset(t *testing.T) {
	p, err := timesheet.ParsePreset("this_week")
	require.NoError(t, err)
	assert.Equal(t, timesheet.PresetThisWeek, p)

	_, err = timesheet.ParsePreset("yesterday")
	assert.ErrorIs(t, err, timesheet.ErrUnknownPreset)
}

func TestBuildDashboard_Deterministic(t *testing.T) {
	now := time.Date(2025, 7, 9, 10, 0, 0, 0, time.UTC)
	first := timesheet.BuildDashboard(julyEntries(), now)
	second := timesheet.BuildDashboard(julyEntries(), now)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, first.Today.Entries)
	assert.Equal(t, "7:30", first.Today.TotalWorked)
	assert.Equal(t, 5, first.ThisWeek.Entries)
	assert.Equal(t, 7, first.ThisMonth.Entries)
	assert.Equal(t, 4, first.Last30Days.Entries) // 6/9 ~ 7/9
}
