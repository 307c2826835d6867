package timesheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timesheet/backend/internal/model"
	"timesheet/backend/internal/timesheet"
)

func TestClassify(t *testing.T) {
	d := day(2025, 7, 1)
	tests := []struct {
		name  string
		entry *model.TimeEntry
		want  timesheet.Status
	}{
		{"nil", nil, timesheet.StatusNoEntry},
		{"placeholder id", &model.TimeEntry{ID: "placeholder-2025-07-01", Date: d}, timesheet.StatusNoEntry},
		{"weekend placeholder id", &model.TimeEntry{ID: "weekend-placeholder-2025-07-05", Date: d}, timesheet.StatusNoEntry},
		{"sentinel owner", &model.TimeEntry{ID: "x", UserID: "placeholder", StartTime: "09:00", EndTime: "18:00"}, timesheet.StatusNoEntry},
		{"missing end", &model.TimeEntry{ID: "1", UserID: "u", StartTime: "09:00"}, timesheet.StatusPending},
		{"full day", ptr(entry("1", d, "09:00", "17:30", "00:30")), timesheet.StatusComplete},
		{"long day", ptr(entry("1", d, "08:00", "19:00", "00:30")), timesheet.StatusComplete},
		{"just under", ptr(entry("1", d, "09:00", "16:59", "00:00")), timesheet.StatusInProgress},
		{"one hour", ptr(entry("1", d, "09:00", "10:00", "00:00")), timesheet.StatusInProgress},
		{"under an hour", ptr(entry("1", d, "09:00", "09:45", "00:00")), timesheet.StatusPending},
		{"negative", ptr(entry("1", d, "18:00", "09:00", "00:00")), timesheet.StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timesheet.Classify(tt.entry))
		})
	}
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, timesheet.IsWeekend(day(2025, 7, 4)))
	assert.True(t, timesheet.IsWeekend(day(2025, 7, 5)))
	assert.True(t, timesheet.IsWeekend(day(2025, 7, 6)))
	assert.False(t, timesheet.IsWeekend(day(2025, 7, 7)))
}

func ptr(e model.TimeEntry) *model.TimeEntry { return &e }
