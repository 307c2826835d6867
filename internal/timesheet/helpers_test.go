package timesheet_test

import (
	"time"

	"timesheet/backend/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(id string, date time.Time, start, end, brk string) model.TimeEntry {
	return model.TimeEntry{
		ID:            id,
		UserID:        "user1",
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		BreakDuration: brk,
	}
}

// 2025-07 的一段真实数据（7/4 周五，7/5-7/6 周末，7/7-7/11 一整周）
func julyEntries() []model.TimeEntry {
	return []model.TimeEntry{
		entry("4", day(2025, 7, 4), "08:45", "17:15", "00:30"),
		entry("5", day(2025, 7, 7), "09:00", "18:30", "01:15"),
		entry("6", day(2025, 7, 8), "08:00", "16:30", "00:30"),
		entry("7", day(2025, 7, 9), "09:30", "18:00", "01:00"),
		entry("8", day(2025, 7, 10), "08:15", "17:45", "00:45"),
		entry("9", day(2025, 7, 11), "09:00", "17:00", "01:00"),
		entry("10", day(2025, 7, 14), "08:30", "18:15", "01:30"),
	}
}
