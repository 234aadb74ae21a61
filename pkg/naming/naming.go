package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultExtension 原文件没有扩展名时使用的兜底扩展名
	DefaultExtension = "jpg"

	timeLayout = "2006-01-02_15-04-05"
)

// Extension 返回小写扩展名（不含点），为空时使用兜底值
func Extension(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return DefaultExtension
	}
	return ext
}

// FileName 根据拍摄时间生成确定性的输出文件名
// 格式: YYYY-MM-DD_HH-MM-SS[-SSS][_NN].ext
// subSecond 为毫秒（0-999），burstIndex 为组内序号（从 1 开始）
func FileName(date time.Time, subSecond *int, burstIndex *int, originalPath string) string {
	name := date.Format(timeLayout)
	if subSecond != nil {
		name += fmt.Sprintf("-%03d", *subSecond)
	}
	if burstIndex != nil {
		name += fmt.Sprintf("_%02d", *burstIndex)
	}
	return name + "." + Extension(originalPath)
}

// WithCounter 在扩展名前插入两位递增序号，用于冲突重命名
// WithCounter("a/2024-06-17_14-30-52.jpg", 1) → "a/2024-06-17_14-30-52_01.jpg"
func WithCounter(path string, counter int) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%02d%s", base, counter, ext)
}

// HierarchyDir 根据拍摄时间计算日期分层目录
// 布局: outputRoot/YYYY/YYYY-MM/YYYY-MM-DD
func HierarchyDir(outputRoot string, date time.Time) string {
	year := date.Format("2006")
	yearMonth := date.Format("2006-01")
	yearMonthDay := date.Format("2006-01-02")
	return filepath.Join(outputRoot, year, yearMonth, yearMonthDay)
}
