package timesheet

import (
	"strconv"
	"time"

	"timesheet/backend/internal/model"
)

// 展示格式
const (
	rowDateLayout    = "Mon, Jan 02, 2006"
	createdLayout    = "Jan 02, 2006, 03:04 PM"
	exportDateLayout = "1/2/2006"
)

// ExportRow 导出 / 展示用的扁平行，叶子字段均为字符串或布尔值
type ExportRow struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	DayOfWeek     string `json:"day_of_week"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakDuration string `json:"break_duration"`
	TotalWorked   string `json:"total_worked"`
	Status        Status `json:"status"`
	Created       string `json:"created"`
	Weekend       bool   `json:"weekend"`
	Placeholder   bool   `json:"placeholder"`
}

// BuildRow 单条记录转展示行
func BuildRow(e *model.TimeEntry) ExportRow {
	row := ExportRow{
		ID:          e.ID,
		Date:        e.Date.Format(rowDateLayout),
		DayOfWeek:   e.Date.Weekday().String(),
		TotalWorked: CalculateWorkedTime(e.StartTime, e.EndTime, e.BreakDuration),
		Status:      Classify(e),
		Weekend:     IsWeekend(e.Date),
		Placeholder: IsPlaceholder(e),
	}
	if !row.Placeholder {
		row.StartTime = e.StartTime
		row.EndTime = e.EndTime
		row.BreakDuration = e.BreakDuration
	}
	if !e.CreatedAt.IsZero() {
		row.Created = e.CreatedAt.Format(createdLayout)
	}
	return row
}

// BuildRows 对齐后的序列逐条转为展示行，顺序不变
func BuildRows(seq []model.TimeEntry) []ExportRow {
	rows := make([]ExportRow, 0, len(seq))
	for i := range seq {
		rows = append(rows, BuildRow(&seq[i]))
	}
	return rows
}

// ExportSummary 导出汇总块
//
// TotalEntries / TotalWorked / AverageHoursPerDay 只统计真实记录；
// StatusCounts 基于含周末占位的完整序列。两者口径不同，保持原样。
type ExportSummary struct {
	TotalEntries       int            `json:"total_entries"`
	TotalWorked        string         `json:"total_worked"`
	AverageHoursPerDay string         `json:"average_hours_per_day"`
	StatusCounts       map[Status]int `json:"status_counts"`
	ExportDate         string         `json:"export_date"`
}

// BuildExportSummary 计算导出汇总
func BuildExportSummary(entries, complete []model.TimeEntry, now time.Time) ExportSummary {
	var total, minutes int
	for _, e := range entries {
		if IsPlaceholder(&e) {
			continue
		}
		total++
		minutes += WorkedMinutes(e.StartTime, e.EndTime, e.BreakDuration)
	}

	avg := "0"
	if total > 0 {
		avg = strconv.FormatFloat(float64(minutes)/float64(total)/60, 'f', 1, 64)
	}

	counts := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}
	for i := range complete {
		counts[Classify(&complete[i])]++
	}

	return ExportSummary{
		TotalEntries:       total,
		TotalWorked:        FormatTotal(minutes),
		AverageHoursPerDay: avg,
		StatusCounts:       counts,
		ExportDate:         now.Format(exportDateLayout),
	}
}

// ── 文件名 ──

// DefaultFilename timesheet_export_YYYY-MM-DD
func DefaultFilename(now time.Time) string {
	return "timesheet_export_" + now.Format(DateLayout)
}

// RangeFilename timesheet_YYYY-MM-DD_to_YYYY-MM-DD
func RangeFilename(r DateRange) string {
	return "timesheet_" + r.Start.Format(DateLayout) + "_to_" + r.End.Format(DateLayout)
}

// PageFilename timesheet_page_N_YYYY-MM-DD，pageIndex 从 0 开始
func PageFilename(pageIndex int, now time.Time) string {
	return "timesheet_page_" + strconv.Itoa(pageIndex+1) + "_" + now.Format(DateLayout)
}
