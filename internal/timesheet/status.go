package timesheet

import (
	"strings"
	"time"

	"timesheet/backend/internal/model"
)

// Status 记录完成度状态，始终由记录实时推导，不落库
type Status string

const (
	StatusComplete   Status = "Complete"
	StatusInProgress Status = "In Progress"
	StatusPending    Status = "Pending"
	StatusNoEntry    Status = "No Entry"
)

// Statuses 固定展示顺序
var Statuses = []Status{StatusComplete, StatusInProgress, StatusPending, StatusNoEntry}

// FullDayHours 满勤小时数
const FullDayHours = 8

// Classify 推导记录状态：
//   - nil 或占位记录 → No Entry
//   - 缺少开始或结束时间 → Pending
//   - 工时整小时数 ≥ 8 → Complete，> 0 → In Progress，否则 Pending
func Classify(e *model.TimeEntry) Status {
	if e == nil || IsPlaceholder(e) {
		return StatusNoEntry
	}
	if e.StartTime == "" || e.EndTime == "" {
		return StatusPending
	}

	hours := WorkedMinutes(e.StartTime, e.EndTime, e.BreakDuration) / 60
	switch {
	case hours >= FullDayHours:
		return StatusComplete
	case hours > 0:
		return StatusInProgress
	default:
		return StatusPending
	}
}

// IsPlaceholder 是否为对齐日期区间时生成的占位记录
func IsPlaceholder(e *model.TimeEntry) bool {
	if e == nil {
		return false
	}
	return strings.HasPrefix(e.ID, PlaceholderPrefix) ||
		strings.HasPrefix(e.ID, WeekendPlaceholderPrefix) ||
		e.UserID == PlaceholderUserID
}

// IsWeekend 周六或周日
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
