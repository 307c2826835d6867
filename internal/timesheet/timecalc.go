// Package timesheet 工时计算核心：时间解析、工时计算、状态分类、
// 日期区间对齐（占位记录生成）、汇总统计与导出行构建。
//
// 包内函数均为纯函数，不做 I/O，不持有共享状态；
// 列表页、员工看板、汇总卡片与 Excel 导出全部委托到这里。
package timesheet

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidTime 时间字符串不符合 HH:MM
var ErrInvalidTime = errors.New("时间格式无效，应为 HH:MM（00-23:00-59）")

// 与录入表单一致：小时允许一位或两位，分钟固定两位
var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseTime 将 "HH:MM" 转为分钟数。
// 不匹配 HH:MM（含空串、符号、多余的零、越界）时返回 0，不报错。
// 注意：0 既可能表示 "00:00"，也可能表示 "未填写/格式错误"。
func ParseTime(s string) int {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	return h*60 + mi
}

// ParseTimeStrict 严格解析，格式错误时返回 ErrInvalidTime。
// 仅在输入边界（新建/修改记录、命令行）使用。
func ParseTimeStrict(s string) (int, error) {
	if !timePattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return ParseTime(s), nil
}

// ValidTime 是否为合法的 HH:MM
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// WorkedMinutes 工作分钟数 = 结束 - 开始 - 休息，最小为 0。
// 跨零点（开始晚于结束）不回绕，结果为 0。
func WorkedMinutes(start, end, brk string) int {
	worked := ParseTime(end) - ParseTime(start) - ParseTime(brk)
	if worked < 0 {
		return 0
	}
	return worked
}

// CalculateWorkedTime 工作时长，格式 HH:MM
func CalculateWorkedTime(start, end, brk string) string {
	return FormatMinutes(WorkedMinutes(start, end, brk))
}

// FormatMinutes 分钟数转 "HH:MM"，小时与分钟均补零，小时不截断到 24。
func FormatMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatTotal 汇总展示格式 "H:MM"：小时不补零，分钟补零。
func FormatTotal(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
