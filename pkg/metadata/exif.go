package metadata

import (
	"os"
	"strconv"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/kako-jun/photo-returns/pkg/logger"
)

// exifTimeLayout EXIF 日期格式: "2024:06:17 14:30:52"
const exifTimeLayout = "2006:01:02 15:04:05"

// exifInfo 从 EXIF 中读出的拍摄信息
type exifInfo struct {
	DateTaken   time.Time
	SubSecond   *int
	Timezone    *string
	Orientation *int
	Width       *int
	Height      *int
}

// readEXIF 从文件的 EXIF 中读取拍摄时间及附带信息
// EXIF 缺失或损坏都视为「没有 EXIF 数据」，不作为错误
func readEXIF(path string) (*exifInfo, bool) {
	file, err := os.Open(path)
	if err != nil {
		logger.Get().Debug().Err(err).Str("file", path).Msg("打开文件失败")
		return nil, false
	}
	defer file.Close()

	x, err := exif.Decode(file)
	if err != nil {
		// 损坏或不存在的 EXIF 容器等同于没有数据
		return nil, false
	}

	dateTaken, ok := exifDate(x)
	if !ok {
		return nil, false
	}

	info := &exifInfo{DateTaken: dateTaken}
	info.SubSecond = exifSubSecond(x)
	info.Timezone = exifOffset(x)

	if v, ok := exifIntTag(x, exif.Orientation); ok && v >= 1 && v <= 8 {
		info.Orientation = &v
	}
	if v, ok := exifIntTag(x, exif.PixelXDimension); ok {
		info.Width = &v
	}
	if v, ok := exifIntTag(x, exif.PixelYDimension); ok {
		info.Height = &v
	}

	return info, true
}

// exifDate 读取拍摄时间，DateTimeOriginal 优先于 DateTime
func exifDate(x *exif.Exif) (time.Time, bool) {
	for _, name := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		s, ok := exifStringTag(x, name)
		if !ok {
			continue
		}
		t, err := time.ParseInLocation(exifTimeLayout, s, time.Local)
		if err != nil {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

// exifSubSecond 读取亚秒字符串并解析为 0-999 的整数
func exifSubSecond(x *exif.Exif) *int {
	for _, name := range []exif.FieldName{exif.SubSecTimeOriginal, exif.SubSecTime} {
		s, ok := exifStringTag(x, name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 || v > 999 {
			continue
		}
		return &v
	}
	return nil
}

// exifOffset 读取时区偏移的原始字符串（例如 "+09:00"）
// OffsetTime 系列标签是 EXIF 2.31 新增，老文件大多没有
func exifOffset(x *exif.Exif) *string {
	for _, name := range []exif.FieldName{exif.FieldName("OffsetTimeOriginal"), exif.FieldName("OffsetTime")} {
		s, ok := exifStringTag(x, name)
		if !ok || s == "" {
			continue
		}
		return &s
	}
	return nil
}

func exifStringTag(x *exif.Exif, name exif.FieldName) (string, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return "", false
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", false
	}
	return s, true
}

func exifIntTag(x *exif.Exif, name exif.FieldName) (int, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, false
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0, false
	}
	return v, true
}
