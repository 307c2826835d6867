package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"

	"timesheet/backend/internal/timesheet"
)

// resolveDate 将 --from/--to 解析为 YYYY-MM-DD；空串原样返回。
// 相对短语以 now 为参照并默认指向过去（"monday" 即最近的周一）。
func resolveDate(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(timesheet.DateLayout, s); err == nil {
		return t.Format(timesheet.DateLayout), nil
	}

	t, err := naturaldate.Parse(s, now, naturaldate.WithDirection(naturaldate.Past))
	if err != nil {
		return "", fmt.Errorf("无法解析日期 %q: %w", s, err)
	}
	// 无法识别的短语会原样返回参照时间
	if t.Equal(now) && !isNowPhrase(s) {
		return "", fmt.Errorf("无法解析日期 %q", s)
	}
	return t.Format(timesheet.DateLayout), nil
}

func isNowPhrase(s string) bool {
	switch strings.ToLower(s) {
	case "now", "today":
		return true
	}
	return false
}

// resolveRange 解析一对日期并校验先后顺序
func resolveRange(from, to string, now time.Time) (string, string, error) {
	start, err := resolveDate(from, now)
	if err != nil {
		return "", "", err
	}
	end, err := resolveDate(to, now)
	if err != nil {
		return "", "", err
	}
	if start != "" && end != "" && start > end {
		return "", "", fmt.Errorf("--from (%s) 不能晚于 --to (%s)", start, end)
	}
	return start, end, nil
}
