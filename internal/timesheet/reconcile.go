package timesheet

import (
	"sort"
	"time"

	"timesheet/backend/internal/model"
)

// 占位记录标识
const (
	PlaceholderPrefix        = "placeholder-"
	WeekendPlaceholderPrefix = "weekend-placeholder-"
	PlaceholderUserID        = "placeholder"
)

// DateLayout 日期参数与占位 ID 使用的格式
const DateLayout = "2006-01-02"

// MaxRangeDays 显式区间允许的最大天数（含两端）
const MaxRangeDays = 5 * 366

// DateRange 闭区间 [Start, End]，两端按整天归一
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange 起点归一到当天 00:00，终点归一到当天最后一刻
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: StartOfDay(start), End: EndOfDay(end)}
}

// StartOfDay 当天 00:00:00
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay 当天 23:59:59.999999999
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// civilDay 只保留年月日，用于跨时区的按天比较
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay 两个时间是否落在同一日历日
func SameDay(a, b time.Time) bool {
	return civilDay(a).Equal(civilDay(b))
}

// Contains 按日历日判断，忽略时分秒
func (r DateRange) Contains(t time.Time) bool {
	day := civilDay(t)
	return !day.Before(civilDay(r.Start)) && !day.After(civilDay(r.End))
}

// DayCount 区间覆盖的日历日数（含两端），终点早于起点时为 0。
// 跨度超出 time.Duration 范围时按上限饱和，仍大于 MaxRangeDays。
func (r DateRange) DayCount() int {
	span := civilDay(r.End).Sub(civilDay(r.Start))
	if span < 0 {
		return 0
	}
	return int(span/(24*time.Hour)) + 1
}

// WithinLimit 区间天数不超过 MaxRangeDays
func (r DateRange) WithinLimit() bool {
	return r.DayCount() <= MaxRangeDays
}

// Days 区间内每个日历日（升序、含两端），时区取 Start 的时区
func (r DateRange) Days() []time.Time {
	last := civilDay(r.End)
	y, m, d := r.Start.Date()
	loc := r.Start.Location()

	var days []time.Time
	for i := 0; ; i++ {
		day := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
		if civilDay(day).After(last) {
			break
		}
		days = append(days, day)
	}
	return days
}

// PlaceholderPolicy 缺失日期的占位策略
type PlaceholderPolicy int

const (
	// PolicyEveryDay 每个缺失日期都生成占位（列表 / 看板视图）
	PolicyEveryDay PlaceholderPolicy = iota
	// PolicyWeekendsOnly 仅周末缺失日期生成占位，工作日缺失直接略过（Excel 导出）
	PolicyWeekendsOnly
)

// Reconcile 将稀疏的真实记录与连续日期区间对齐。
//
// 同一天有多条记录时后出现的覆盖前面的；输入中的占位记录会被忽略后重新生成。
// 输出按日期升序。
func Reconcile(entries []model.TimeEntry, r DateRange, policy PlaceholderPolicy) []model.TimeEntry {
	byDay := make(map[time.Time]model.TimeEntry, len(entries))
	for _, e := range entries {
		if IsPlaceholder(&e) {
			continue
		}
		byDay[civilDay(e.Date)] = e
	}

	days := r.Days()
	out := make([]model.TimeEntry, 0, len(days))
	for _, day := range days {
		if e, ok := byDay[civilDay(day)]; ok {
			out = append(out, e)
			continue
		}
		switch {
		case policy == PolicyEveryDay:
			out = append(out, newPlaceholder(PlaceholderPrefix, day))
		case IsWeekend(day):
			out = append(out, newPlaceholder(WeekendPlaceholderPrefix, day))
		}
	}
	return out
}

// ReconcileForTable 列表视图：所有缺失日期补占位
func ReconcileForTable(entries []model.TimeEntry, r DateRange) []model.TimeEntry {
	return Reconcile(entries, r, PolicyEveryDay)
}

// ReconcileForExport 导出视图：仅周末补占位
func ReconcileForExport(entries []model.TimeEntry, r DateRange) []model.TimeEntry {
	return Reconcile(entries, r, PolicyWeekendsOnly)
}

// 占位记录的时间戳保持零值，保证同样的输入得到同样的输出
func newPlaceholder(prefix string, day time.Time) model.TimeEntry {
	return model.TimeEntry{
		ID:     prefix + day.Format(DateLayout),
		UserID: PlaceholderUserID,
		Date:   day,
	}
}

// Filter 保留日历日落在区间内的记录，保持原顺序
func Filter(entries []model.TimeEntry, r DateRange) []model.TimeEntry {
	out := make([]model.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// Span 真实记录覆盖的最早到最晚日期；没有真实记录时 ok=false
func Span(entries []model.TimeEntry) (r DateRange, ok bool) {
	var first, last time.Time
	for _, e := range entries {
		if IsPlaceholder(&e) {
			continue
		}
		if !ok || civilDay(e.Date).Before(civilDay(first)) {
			first = e.Date
		}
		if !ok || civilDay(e.Date).After(civilDay(last)) {
			last = e.Date
		}
		ok = true
	}
	if !ok {
		return DateRange{}, false
	}
	return NewDateRange(first, last), true
}

// SortByDate 按日期稳定排序
func SortByDate(entries []model.TimeEntry, desc bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := civilDay(entries[i].Date), civilDay(entries[j].Date)
		if desc {
			return a.After(b)
		}
		return a.Before(b)
	})
}
