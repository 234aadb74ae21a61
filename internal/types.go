package internal

import "time"

// MediaType 媒体文件的大类
type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
)

// DateSource 拍摄时间的解析来源
type DateSource string

const (
	SourceExif         DateSource = "exif"     // EXIF DateTimeOriginal / DateTime
	SourceFileName     DateSource = "filename" // 文件名中的日期模式
	SourceFileCreated  DateSource = "created"  // 文件系统创建时间
	SourceFileModified DateSource = "modified" // 文件系统修改时间
)

// MediaRecord 单个媒体文件的处理记录
// 只有成功解析出拍摄时间的文件才会生成记录
type MediaRecord struct {
	OriginalPath    string
	FileName        string
	MediaType       MediaType
	DateTaken       time.Time
	SubSecond       *int    // 亚秒（毫秒 0-999），仅 EXIF 来源携带
	Timezone        *string // 时区偏移原始字符串，例如 "+09:00"
	DateSource      DateSource
	Orientation     *int // EXIF Orientation 值（1-8）
	RotationApplied bool
	Width           *int
	Height          *int
	FileSize        uint64
	Hash            string // 复制时顺带计算的 xxHash64（十六进制）
	BurstGroupID    *int   // 所属连拍组 ID
	BurstIndex      *int   // 组内序号，从 1 开始
	NewName         string
	NewPath         string
}

// TakenAt 返回含亚秒精度的拍摄时间，用于排序和连拍检测
func (r *MediaRecord) TakenAt() time.Time {
	if r.SubSecond != nil {
		return r.DateTaken.Add(time.Duration(*r.SubSecond) * time.Millisecond)
	}
	return r.DateTaken
}

// ProcessResult 一次整理调用的完整结果
type ProcessResult struct {
	Success        bool
	TotalFiles     int
	ProcessedFiles int
	Records        []*MediaRecord
	Errors         []string
}

// ProcessStats 处理过程中的统计信息
type ProcessStats struct {
	TotalFiles     int
	ProcessedFiles int
	Errors         int
	StartTime      time.Time
	EndTime        time.Time
}
