package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kako-jun/photo-returns/internal"
	"github.com/kako-jun/photo-returns/pkg/logger"
)

// photoExts 识别为照片的扩展名（小写，不含点）
var photoExts = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "bmp": {},
	"heic": {}, "heif": {}, "webp": {}, "tiff": {}, "tif": {},
}

// videoExts 识别为视频的扩展名（小写，不含点）
var videoExts = map[string]struct{}{
	"mp4": {}, "mov": {}, "avi": {}, "mkv": {}, "m4v": {}, "3gp": {},
	"wmv": {}, "flv": {}, "webm": {}, "mpeg": {}, "mpg": {},
}

// Entry 扫描到的一个媒体文件
type Entry struct {
	Path      string
	Name      string
	MediaType internal.MediaType
	Size      uint64
}

// FileWalker 目录遍历器，按扩展名筛选媒体文件
type FileWalker struct {
	IncludeVideos bool
}

func NewFileWalker(includeVideos bool) *FileWalker {
	return &FileWalker{
		IncludeVideos: includeVideos,
	}
}

// Classify 根据扩展名判断媒体类型
// 第二个返回值为 false 表示不是可识别的媒体文件
func (w *FileWalker) Classify(name string) (internal.MediaType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if _, ok := photoExts[ext]; ok {
		return internal.MediaPhoto, true
	}
	if w.IncludeVideos {
		if _, ok := videoExts[ext]; ok {
			return internal.MediaVideo, true
		}
	}
	return "", false
}

// Walk 遍历 root 下的所有普通文件（不跟随符号链接）
// 单个条目的访问错误只记录日志并跳过，不中断遍历
func (w *FileWalker) Walk(root string, callback func(path string, info os.FileInfo) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Get().Debug().Err(err).Str("path", path).Msg("访问路径出错，跳过")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		// filepath.Walk 不跟随符号链接，但链接本身会作为条目出现
		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}

		return callback(path, info)
	})
}

// Scan 枚举 root 下的所有媒体文件
// root 本身无法访问时返回错误（这是整个调用唯一的致命错误）
func (w *FileWalker) Scan(root string) ([]Entry, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	var entries []Entry
	err := w.Walk(root, func(path string, info os.FileInfo) error {
		mediaType, ok := w.Classify(info.Name())
		if !ok {
			return nil
		}
		entries = append(entries, Entry{
			Path:      path,
			Name:      info.Name(),
			MediaType: mediaType,
			Size:      uint64(info.Size()),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Debug().Int("count", len(entries)).Str("root", root).Msg("目录扫描完成")
	return entries, nil
}
