package orientation

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
)

// orientationTagID TIFF 中 Orientation 标签的编号
const orientationTagID uint16 = 0x0112

var exifHeader = []byte("Exif\x00\x00")

// ResetTag 把 JPEG 文件 EXIF 中的 Orientation 标签值重置为 1
// 只处理 jpg/jpeg；找不到标签、EXIF 过短或不是 JPEG 时静默跳过，
// 不视为错误。只做单个标签的字节级补丁，不重写整个 IFD 结构。
func ResetTag(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".jpg" && ext != ".jpeg" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	segments, ok := parseJPEGSegments(data)
	if !ok {
		return nil
	}

	patched := false
	for i, seg := range segments {
		if seg.marker != 0xE1 || !bytes.HasPrefix(seg.data, exifHeader) {
			continue
		}
		if updated, ok := patchOrientation(seg.data); ok {
			segments[i].data = updated
			patched = true
		}
		break
	}

	if !patched {
		return nil
	}

	return os.WriteFile(path, writeJPEGSegments(segments), 0644)
}

// patchOrientation 在 EXIF 段内补丁 Orientation 标签
// 跳过 6 字节 EXIF 头，按 TIFF 头的字节序（II/MM）编码标签号，
// 线性扫描首个匹配位置，覆盖其后 8 字节处的 2 字节值字段。
func patchOrientation(seg []byte) ([]byte, bool) {
	tiff := seg[len(exifHeader):]
	if len(tiff) < 2 {
		return nil, false
	}

	var order binary.ByteOrder
	switch {
	case tiff[0] == 'I' && tiff[1] == 'I':
		order = binary.LittleEndian
	case tiff[0] == 'M' && tiff[1] == 'M':
		order = binary.BigEndian
	default:
		return nil, false
	}

	tag := make([]byte, 2)
	order.PutUint16(tag, orientationTagID)

	for i := 0; i+2 <= len(tiff); i++ {
		if tiff[i] != tag[0] || tiff[i+1] != tag[1] {
			continue
		}

		// 标签号后依次是 2 字节类型和 4 字节数量，值字段在 +8 处
		valueOff := i + 8
		if valueOff+2 > len(tiff) {
			return nil, false
		}

		out := append([]byte(nil), seg...)
		order.PutUint16(out[len(exifHeader)+valueOff:], 1)
		return out, true
	}

	return nil, false
}

// jpegSegment 一个 JPEG 段；marker 0x00 表示 SOS 之后的原始压缩数据
type jpegSegment struct {
	marker byte
	data   []byte
}

// parseJPEGSegments 把 JPEG 文件拆成段序列
// 解析失败（不是 JPEG、结构损坏）时返回 false
func parseJPEGSegments(data []byte) ([]jpegSegment, bool) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, false
	}

	segs := []jpegSegment{{marker: 0xD8}} // SOI

	i := 2
	for i < len(data) {
		if data[i] != 0xFF {
			// SOS 之后的压缩数据，原样保留
			segs = append(segs, jpegSegment{marker: 0x00, data: data[i:]})
			break
		}
		i++
		if i >= len(data) {
			break
		}
		marker := data[i]
		i++

		if marker == 0xD8 || marker == 0xD9 {
			segs = append(segs, jpegSegment{marker: marker})
			if marker == 0xD9 {
				break
			}
			continue
		}

		if i+2 > len(data) {
			break
		}
		segLen := int(binary.BigEndian.Uint16(data[i:i+2])) - 2
		i += 2
		if segLen < 0 || i+segLen > len(data) {
			break
		}
		segs = append(segs, jpegSegment{marker: marker, data: append([]byte{}, data[i:i+segLen]...)})
		i += segLen
	}

	return segs, true
}

// writeJPEGSegments 把段序列重新序列化为 JPEG 字节流
func writeJPEGSegments(segs []jpegSegment) []byte {
	var buf bytes.Buffer
	for _, seg := range segs {
		switch seg.marker {
		case 0xD8:
			buf.Write([]byte{0xFF, 0xD8})
		case 0xD9:
			buf.Write([]byte{0xFF, 0xD9})
		case 0x00:
			buf.Write(seg.data)
		default:
			buf.WriteByte(0xFF)
			buf.WriteByte(seg.marker)
			length := uint16(len(seg.data) + 2)
			buf.WriteByte(byte(length >> 8))
			buf.WriteByte(byte(length))
			buf.Write(seg.data)
		}
	}
	return buf.Bytes()
}
