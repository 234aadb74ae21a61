package metadata

import (
	"regexp"
	"strconv"
	"time"
)

// 文件名中常见的日期模式，按优先级排列
var (
	// 20240617_143052 / 20240617-143052
	patternCompact = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})[_-](\d{2})(\d{2})(\d{2})`)
	// 2024-06-17_14-30-52 / 2024-06-17T14-30-52
	patternDashed = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})[_T](\d{2})-(\d{2})-(\d{2})`)
	// 20240617（只有日期，时间按零点处理）
	patternDateOnly = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`)
)

// dateFromFileName 尝试从文件名中提取拍摄时间
// 按模式优先级逐个匹配，日历值非法（例如 13 月）的匹配被丢弃后继续
func dateFromFileName(name string) (time.Time, bool) {
	if m := patternCompact.FindStringSubmatch(name); m != nil {
		if t, ok := makeDate(m[1], m[2], m[3], m[4], m[5], m[6]); ok {
			return t, true
		}
	}
	if m := patternDashed.FindStringSubmatch(name); m != nil {
		if t, ok := makeDate(m[1], m[2], m[3], m[4], m[5], m[6]); ok {
			return t, true
		}
	}
	if m := patternDateOnly.FindStringSubmatch(name); m != nil {
		if t, ok := makeDate(m[1], m[2], m[3], "0", "0", "0"); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// makeDate 由字符串分量构造时间，并拒绝会被 time.Date 归一化的非法日历值
func makeDate(year, month, day, hour, min, sec string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	h, _ := strconv.Atoi(hour)
	mi, _ := strconv.Atoi(min)
	s, _ := strconv.Atoi(sec)

	t := time.Date(y, time.Month(mo), d, h, mi, s, 0, time.Local)
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d ||
		t.Hour() != h || t.Minute() != mi || t.Second() != s {
		return time.Time{}, false
	}
	return t, true
}
