package timesheet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"timesheet/backend/internal/timesheet"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:05", 545},
		{"23:59", 1439},
		{"", 0},
		{"0900", 0},
		{"ab:cd", 0},
		{"25:61", 0},
		{"24:00", 0},
		{"12:60", 0},
		{"-1:30", 0},
		{"9:5", 0},
		{"+09:+30", 0},
		{"0009:0030", 0},
		{"-0:30", 0},
		{" 09:00", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timesheet.ParseTime(tt.in), "ParseTime(%q)", tt.in)
		// 非零结果必然是合法 HH:MM
		if tt.want != 0 {
			assert.True(t, timesheet.ValidTime(tt.in), "ValidTime(%q)", tt.in)
		}
	}
}

func TestParseTimeStrict(t *testing.T) {
	m, err := timesheet.ParseTimeStrict("17:30")
	assert.NoError(t, err)
	assert.Equal(t, 1050, m)

	m, err = timesheet.ParseTimeStrict("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)

	for _, bad := range []string{"", "25:61", "7", "07:5", "07:00:00", " 07:00"} {
		_, err := timesheet.ParseTimeStrict(bad)
		assert.True(t, errors.Is(err, timesheet.ErrInvalidTime), "ParseTimeStrict(%q) err = %v", bad, err)
	}
}

func TestCalculateWorkedTime(t *testing.T) {
	assert.Equal(t, "08:00", timesheet.CalculateWorkedTime("09:00", "17:30", "00:30"))
	assert.Equal(t, "00:00", timesheet.CalculateWorkedTime("09:00", "08:00", "00:00"))
	assert.Equal(t, "07:45", timesheet.CalculateWorkedTime("09:15", "18:00", "01:00"))
	assert.Equal(t, "00:00", timesheet.CalculateWorkedTime("", "", ""))
	// 休息时间格式错误按 0 计
	assert.Equal(t, "08:30", timesheet.CalculateWorkedTime("09:00", "17:30", "bad"))
	// 带符号的时间按 0 计，开始与结束都失效
	assert.Equal(t, "00:00", timesheet.CalculateWorkedTime("+08:00", "17:+00", "00:00"))
}

func TestCalculateWorkedTime_MonotonicInEnd(t *testing.T) {
	prev := -1
	for end := 0; end < 24*60; end += 7 {
		endStr := timesheet.FormatMinutes(end)
		got := timesheet.WorkedMinutes("08:00", endStr, "00:45")
		assert.GreaterOrEqual(t, got, prev, "end=%s", endStr)
		assert.GreaterOrEqual(t, got, 0)
		prev = got
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", timesheet.FormatMinutes(0))
	assert.Equal(t, "08:05", timesheet.FormatMinutes(485))
	assert.Equal(t, "25:00", timesheet.FormatMinutes(1500))
	assert.Equal(t, "00:00", timesheet.FormatMinutes(-10))
}

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "0:00", timesheet.FormatTotal(0))
	assert.Equal(t, "8:05", timesheet.FormatTotal(485))
	assert.Equal(t, "39:30", timesheet.FormatTotal(2370))
}
