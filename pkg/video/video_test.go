package video

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// buildMP4 构造只含 ftyp 和 moov/mvhd 的最小 MP4 文件
func buildMP4(creation uint32, timescale, duration uint32) []byte {
	var buf bytes.Buffer

	// ftyp
	writeBoxHeader(&buf, 20, "ftyp")
	buf.WriteString("isom")
	binary.Write(&buf, binary.BigEndian, uint32(0x200))
	buf.WriteString("isom")

	// mvhd version 0 的 body 固定 100 字节
	var mvhd bytes.Buffer
	binary.Write(&mvhd, binary.BigEndian, uint32(0)) // version + flags
	binary.Write(&mvhd, binary.BigEndian, creation)
	binary.Write(&mvhd, binary.BigEndian, creation) // modification
	binary.Write(&mvhd, binary.BigEndian, timescale)
	binary.Write(&mvhd, binary.BigEndian, duration)
	binary.Write(&mvhd, binary.BigEndian, uint32(0x00010000)) // rate
	binary.Write(&mvhd, binary.BigEndian, uint16(0x0100))     // volume
	mvhd.Write(make([]byte, 2+8))                             // reserved
	for _, v := range []uint32{0x00010000, 0, 0, 0, 0x00010000, 0, 0, 0, 0x40000000} {
		binary.Write(&mvhd, binary.BigEndian, v) // matrix
	}
	mvhd.Write(make([]byte, 24))                     // pre_defined
	binary.Write(&mvhd, binary.BigEndian, uint32(2)) // next_track_ID

	writeBoxHeader(&buf, uint32(8+8+mvhd.Len()), "moov")
	writeBoxHeader(&buf, uint32(8+mvhd.Len()), "mvhd")
	buf.Write(mvhd.Bytes())

	return buf.Bytes()
}

func writeBoxHeader(buf *bytes.Buffer, size uint32, boxType string) {
	binary.Write(buf, binary.BigEndian, size)
	buf.WriteString(boxType)
}

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestExtract(t *testing.T) {
	taken := time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)
	creation := uint32(taken.Unix() + quickTimeEpochOffset)
	path := writeFixture(t, "a.mp4", buildMP4(creation, 1000, 5000))

	meta, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !meta.CreationTime.Equal(taken) {
		t.Errorf("creation = %v, want %v", meta.CreationTime, taken)
	}
	if meta.DurationMS != 5000 {
		t.Errorf("duration = %d ms, want 5000", meta.DurationMS)
	}
	if meta.Width != 0 || meta.Height != 0 {
		t.Errorf("expected zero dimensions without tkhd, got %dx%d", meta.Width, meta.Height)
	}
}

func TestExtract_EpochCreationTimeRejected(t *testing.T) {
	// 创建时间等于 QuickTime 纪元（即 1904-01-01）视为未设置
	path := writeFixture(t, "epoch.mp4", buildMP4(0, 1000, 5000))

	if _, err := Extract(path); err == nil {
		t.Errorf("expected error for unset creation time")
	}
}

func TestExtract_NotAVideo(t *testing.T) {
	path := writeFixture(t, "text.mp4", []byte("this is not a video container"))

	if _, err := Extract(path); err == nil {
		t.Errorf("expected error for non-video data")
	}
}

func TestExtract_MissingFile(t *testing.T) {
	if _, err := Extract(filepath.Join(t.TempDir(), "nope.mp4")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
