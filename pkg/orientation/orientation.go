package orientation

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/kako-jun/photo-returns/pkg/logger"
)

// Rotation 由 EXIF Orientation 值导出的旋转动作
type Rotation int

const (
	// Normal 1: 正常，无需旋转
	Normal Rotation = iota
	// Rotate180 3: 旋转 180 度
	Rotate180
	// Rotate90CW 6: 顺时针旋转 90 度
	Rotate90CW
	// Rotate90CCW 8: 逆时针旋转 90 度
	Rotate90CCW
	// Unknown 其他值，不旋转
	Unknown
)

// FromEXIF 把 EXIF Orientation 值映射为旋转动作
func FromEXIF(value int) Rotation {
	switch value {
	case 1:
		return Normal
	case 3:
		return Rotate180
	case 6:
		return Rotate90CW
	case 8:
		return Rotate90CCW
	default:
		return Unknown
	}
}

// Apply 对解码后的图像应用旋转
// imaging 的 Rotate90/Rotate270 是逆时针方向，这里做相应换算
func Apply(img image.Image, rotation Rotation) *image.NRGBA {
	switch rotation {
	case Rotate90CW:
		return imaging.Rotate270(img)
	case Rotate180:
		return imaging.Rotate180(img)
	case Rotate90CCW:
		return imaging.Rotate90(img)
	default:
		return imaging.Clone(img)
	}
}

// Read 从文件的 EXIF 中读取 Orientation 值
// 没有 EXIF 或没有该标签时返回 (0, false)
func Read(path string) (int, bool) {
	file, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer file.Close()

	x, err := exif.Decode(file)
	if err != nil {
		return 0, false
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 0, false
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CorrectFile 按 EXIF 方向旋转像素并重置 Orientation 标签
// 返回是否实际做了修正；不需要修正（方向正常或未知）时返回 false
func CorrectFile(path string) (bool, error) {
	value, ok := Read(path)
	if !ok {
		return false, nil
	}

	rotation := FromEXIF(value)
	if rotation == Normal || rotation == Unknown {
		return false, nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return false, fmt.Errorf("解码图像失败: %w", err)
	}

	rotated := Apply(img, rotation)

	// 写入同目录临时文件后 rename，避免写到一半留下损坏的文件
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+uuid.New().String()+filepath.Ext(path))
	if err := imaging.Save(rotated, tmp); err != nil {
		return false, fmt.Errorf("保存旋转后的图像失败: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return false, fmt.Errorf("替换原文件失败: %w", err)
	}

	// 像素已经转正，把 Orientation 标签重置为 1，避免看图软件二次旋转
	if err := ResetTag(path); err != nil {
		logger.Get().Warn().Err(err).Str("file", path).Msg("重置 Orientation 标签失败")
	}

	logger.Get().Debug().
		Str("file", path).
		Int("orientation", value).
		Msg("方向修正完成")

	return true, nil
}
