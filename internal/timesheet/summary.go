package timesheet

import (
	"errors"
	"time"

	"timesheet/backend/internal/model"
)

// Summary 记录条数与总工时
type Summary struct {
	Entries       int    `json:"entries"`
	WorkedMinutes int    `json:"worked_minutes"`
	TotalWorked   string `json:"total_worked"` // H:MM
}

// Summarize 汇总区间内的记录，r 为 nil 时不限区间。
// 占位记录既不计条数也不计工时；缺少开始或结束时间的记录只计条数。
func Summarize(entries []model.TimeEntry, r *DateRange) Summary {
	if r != nil {
		entries = Filter(entries, *r)
	}
	var s Summary
	for _, e := range entries {
		if IsPlaceholder(&e) {
			continue
		}
		s.Entries++
		if e.StartTime == "" || e.EndTime == "" {
			continue
		}
		s.WorkedMinutes += WorkedMinutes(e.StartTime, e.EndTime, e.BreakDuration)
	}
	s.TotalWorked = FormatTotal(s.WorkedMinutes)
	return s
}

// ── 预设区间 ──

// Preset 快捷筛选
type Preset string

const (
	PresetToday      Preset = "today"
	PresetThisWeek   Preset = "this_week"
	PresetThisMonth  Preset = "this_month"
	PresetLast30Days Preset = "last_30_days"
)

// ErrUnknownPreset 未知的快捷筛选
var ErrUnknownPreset = errors.New("未知的快捷筛选")

// ParsePreset 解析快捷筛选名称
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case PresetToday, PresetThisWeek, PresetThisMonth, PresetLast30Days:
		return p, nil
	}
	return "", ErrUnknownPreset
}

// Range 以 now 为基准计算区间
func (p Preset) Range(now time.Time) DateRange {
	switch p {
	case PresetThisWeek:
		return ThisWeek(now)
	case PresetThisMonth:
		return ThisMonth(now)
	case PresetLast30Days:
		return Last30Days(now)
	default:
		return Today(now)
	}
}

// Today 当天
func Today(now time.Time) DateRange {
	return NewDateRange(now, now)
}

// ThisWeek 本周日到本周六
func ThisWeek(now time.Time) DateRange {
	y, m, d := now.Date()
	wd := int(now.Weekday())
	start := time.Date(y, m, d-wd, 0, 0, 0, 0, now.Location())
	end := time.Date(y, m, d+(6-wd), 0, 0, 0, 0, now.Location())
	return NewDateRange(start, end)
}

// ThisMonth 本月第一天到最后一天
func ThisMonth(now time.Time) DateRange {
	y, m, _ := now.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(y, m+1, 0, 0, 0, 0, 0, now.Location())
	return NewDateRange(start, end)
}

// Last30Days 30 天前到今天（含两端）
func Last30Days(now time.Time) DateRange {
	y, m, d := now.Date()
	start := time.Date(y, m, d-30, 0, 0, 0, 0, now.Location())
	return NewDateRange(start, now)
}

// Dashboard 汇总卡片
type Dashboard struct {
	Today      Summary `json:"today"`
	ThisWeek   Summary `json:"this_week"`
	ThisMonth  Summary `json:"this_month"`
	Last30Days Summary `json:"last_30_days"`
}

// BuildDashboard 一次计算四个预设区间的汇总
func BuildDashboard(entries []model.TimeEntry, now time.Time) Dashboard {
	summarize := func(p Preset) Summary {
		r := p.Range(now)
		return Summarize(entries, &r)
	}
	return Dashboard{
		Today:      summarize(PresetToday),
		ThisWeek:   summarize(PresetThisWeek),
		ThisMonth:  summarize(PresetThisMonth),
		Last30Days: summarize(PresetLast30Days),
	}
}
