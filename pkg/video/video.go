package video

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abema/go-mp4"
	"github.com/h2non/filetype"

	"github.com/kako-jun/photo-returns/pkg/logger"
)

// quickTimeEpochOffset QuickTime 纪元（1904-01-01）到 Unix 纪元的秒数差
const quickTimeEpochOffset = 2082844800

// headerSize 文件类型检测所需的文件头部大小（字节）
const headerSize = 261

// Metadata MP4/QuickTime 容器级元数据
type Metadata struct {
	CreationTime time.Time
	Width        int
	Height       int
	DurationMS   uint64
}

// Extract 读取视频容器的创建时间、尺寸和时长
// 容器无法解析或没有有效创建时间时返回错误
func Extract(path string) (*Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开视频文件失败: %w", err)
	}
	defer file.Close()

	// 先用文件头确认这是一个视频容器，避免把任意文件喂给解析器
	head := make([]byte, headerSize)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("读取文件头部失败: %w", err)
	}
	if !filetype.IsVideo(head[:n]) {
		return nil, fmt.Errorf("不是可识别的视频容器: %s", path)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var meta Metadata

	_, err = mp4.ReadBoxStructure(file, func(h *mp4.ReadHandle) (any, error) {
		if !h.BoxInfo.IsSupportedType() || h.BoxInfo.Type.String() == "mdat" {
			return nil, nil
		}

		box, _, err := h.ReadPayload()
		if err != nil {
			return nil, fmt.Errorf("读取 box 内容失败: %w", err)
		}

		switch b := box.(type) {
		case *mp4.Mvhd: // movie header
			if creation := b.GetCreationTime(); creation > quickTimeEpochOffset {
				meta.CreationTime = time.Unix(int64(creation-quickTimeEpochOffset), 0)
			}
			if b.Timescale > 0 {
				meta.DurationMS = b.GetDuration() * 1000 / uint64(b.Timescale)
			}

		case *mp4.Tkhd: // track header
			if b.TrackID == 1 {
				meta.Width = int(b.GetWidthInt())
				meta.Height = int(b.GetHeightInt())
			}
		}

		// 继续遍历子 box
		return h.Expand()
	})
	if err != nil {
		return nil, fmt.Errorf("解析 MP4 容器失败: %w", err)
	}

	if meta.CreationTime.IsZero() {
		return nil, fmt.Errorf("视频元数据中没有有效的创建时间: %s", path)
	}

	logger.Get().Debug().
		Str("file", path).
		Time("creation", meta.CreationTime).
		Int("width", meta.Width).
		Int("height", meta.Height).
		Uint64("duration_ms", meta.DurationMS).
		Msg("视频元数据提取完成")

	return &meta, nil
}
