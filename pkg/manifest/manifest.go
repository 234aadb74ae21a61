package manifest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kako-jun/photo-returns/internal"
	"github.com/kako-jun/photo-returns/pkg/logger"
)

const (
	FileName = ".photo-returns-manifest.txt"

	flushInterval = 100
)

// Writer 把每个整理完成的文件追加写入清单
// 清单放在输出根目录下，每行: 哈希、原始路径、目标路径，制表符分隔
type Writer struct {
	filePath string
	file     *os.File
	writer   *bufio.Writer
	count    int
	mu       sync.Mutex
}

func NewWriter(outputDir string) (*Writer, error) {
	filePath := filepath.Join(outputDir, FileName)

	// 追加模式，多次运行的记录累积在同一个清单里
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &Writer{
		filePath: filePath,
		file:     file,
		writer:   bufio.NewWriter(file),
	}, nil
}

// Append 追加一条整理记录
func (w *Writer) Append(rec *internal.MediaRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	line := fmt.Sprintf("%s\t%s\t%s\n", rec.Hash, rec.OriginalPath, rec.NewPath)
	if _, err := w.writer.WriteString(line); err != nil {
		return err
	}

	// 定期刷新，中断时尽量少丢记录
	w.count++
	if w.count%flushInterval == 0 {
		if err := w.writer.Flush(); err != nil {
			logger.Get().Error().Err(err).Msg("刷新清单文件失败")
		}
	}

	return nil
}

// Count 返回本次已写入的记录数
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close 刷新并关闭清单文件
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Close()
}

// Path 返回清单文件的完整路径
func (w *Writer) Path() string {
	return w.filePath
}
