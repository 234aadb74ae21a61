package metadata

import (
	"os"
	"path/filepath"

	"github.com/kako-jun/photo-returns/internal"
	"github.com/kako-jun/photo-returns/pkg/logger"
	"github.com/kako-jun/photo-returns/pkg/video"
)

// Resolve 按优先级链为单个媒体文件解析拍摄时间
// 依次尝试：嵌入式元数据（照片为 EXIF，视频为容器头）→ 文件名
// 日期模式 → 文件创建时间 → 文件修改时间。
// 所有层级都失败时返回 (nil, false)，该文件被排除，不算错误。
func Resolve(path string, mediaType internal.MediaType) (*internal.MediaRecord, bool) {
	info, err := os.Stat(path)
	if err != nil {
		logger.Get().Debug().Err(err).Str("file", path).Msg("读取文件信息失败，跳过")
		return nil, false
	}

	record := &internal.MediaRecord{
		OriginalPath: path,
		FileName:     filepath.Base(path),
		MediaType:    mediaType,
		FileSize:     uint64(info.Size()),
	}

	// 1. 嵌入式元数据
	if mediaType == internal.MediaVideo {
		if meta, err := video.Extract(path); err == nil {
			record.DateTaken = meta.CreationTime
			record.DateSource = internal.SourceExif
			if meta.Width > 0 {
				w := meta.Width
				record.Width = &w
			}
			if meta.Height > 0 {
				h := meta.Height
				record.Height = &h
			}
			return record, true
		}
	} else if exifData, ok := readEXIF(path); ok {
		record.DateTaken = exifData.DateTaken
		record.DateSource = internal.SourceExif
		record.SubSecond = exifData.SubSecond
		record.Timezone = exifData.Timezone
		record.Orientation = exifData.Orientation
		record.Width = exifData.Width
		record.Height = exifData.Height
		return record, true
	}

	// 2. 文件名中的日期模式
	if t, ok := dateFromFileName(record.FileName); ok {
		record.DateTaken = t
		record.DateSource = internal.SourceFileName
		return record, true
	}

	// 3. 文件系统创建时间
	if t, err := creationTime(info); err == nil && !t.IsZero() {
		record.DateTaken = t
		record.DateSource = internal.SourceFileCreated
		return record, true
	}

	// 4. 文件系统修改时间
	if t := info.ModTime(); !t.IsZero() {
		record.DateTaken = t
		record.DateSource = internal.SourceFileModified
		return record, true
	}

	// 5. 无法解析出任何时间，文件被排除
	logger.Get().Debug().Str("file", path).Msg("无法解析拍摄时间，跳过")
	return nil, false
}
