package metadata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kako-jun/photo-returns/internal"
)

func TestDateFromFileName(t *testing.T) {
	tests := []struct {
		name   string
		want   time.Time
		wantOK bool
	}{
		{"20240617_143052.jpg", time.Date(2024, 6, 17, 14, 30, 52, 0, time.Local), true},
		{"IMG_20240617-143052.jpg", time.Date(2024, 6, 17, 14, 30, 52, 0, time.Local), true},
		{"2024-06-17_14-30-52.jpg", time.Date(2024, 6, 17, 14, 30, 52, 0, time.Local), true},
		{"2024-06-17T14-30-52.jpg", time.Date(2024, 6, 17, 14, 30, 52, 0, time.Local), true},
		{"20240617.jpg", time.Date(2024, 6, 17, 0, 0, 0, 0, time.Local), true},
		{"random_name.jpg", time.Time{}, false},
		{"IMG_1234.jpg", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := dateFromFileName(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("dateFromFileName(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("dateFromFileName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDateFromFileName_InvalidCalendar(t *testing.T) {
	// 13 月不是合法日期，完整模式被拒绝后继续尝试后面的模式
	if _, ok := dateFromFileName("20241317_143052.jpg"); ok {
		t.Error("Expected month 13 to be rejected")
	}
	if _, ok := dateFromFileName("20240632.jpg"); ok {
		t.Error("Expected day 32 to be rejected")
	}
}

func TestMakeDate(t *testing.T) {
	if _, ok := makeDate("2024", "02", "30", "0", "0", "0"); ok {
		t.Error("Expected Feb 30 to be rejected")
	}
	if _, ok := makeDate("2024", "06", "17", "25", "0", "0"); ok {
		t.Error("Expected hour 25 to be rejected")
	}
	got, ok := makeDate("2024", "02", "29", "12", "0", "0")
	if !ok {
		t.Fatal("Expected leap day to be accepted")
	}
	want := time.Date(2024, 2, 29, 12, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("makeDate() = %v, want %v", got, want)
	}
}

func TestResolve_FileNameTier(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "20240617_143052.jpg")
	if err := os.WriteFile(path, []byte("not a real jpeg"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	record, ok := Resolve(path, internal.MediaPhoto)
	if !ok {
		t.Fatal("Expected a record")
	}
	if record.DateSource != internal.SourceFileName {
		t.Errorf("Expected filename source, got %v", record.DateSource)
	}
	want := time.Date(2024, 6, 17, 14, 30, 52, 0, time.Local)
	if !record.DateTaken.Equal(want) {
		t.Errorf("DateTaken = %v, want %v", record.DateTaken, want)
	}
	if record.SubSecond != nil || record.Timezone != nil {
		t.Error("Non-EXIF tiers must not carry subsecond or timezone")
	}
	if record.FileSize == 0 {
		t.Error("Expected non-zero file size")
	}
}

func TestResolve_FilesystemFallback(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "holiday.jpg")
	if err := os.WriteFile(path, []byte("not a real jpeg"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	record, ok := Resolve(path, internal.MediaPhoto)
	if !ok {
		t.Fatal("Expected a record from filesystem times")
	}
	if record.DateSource != internal.SourceFileCreated && record.DateSource != internal.SourceFileModified {
		t.Errorf("Expected a filesystem tier, got %v", record.DateSource)
	}
	if record.DateTaken.IsZero() {
		t.Error("Expected non-zero DateTaken")
	}
}

func TestResolve_MissingFile(t *testing.T) {
	if _, ok := Resolve("/non/existent/file.jpg", internal.MediaPhoto); ok {
		t.Error("Expected no record for missing file")
	}
}

func TestResolve_Deterministic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "20240617_143052.jpg")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	first, ok1 := Resolve(path, internal.MediaPhoto)
	second, ok2 := Resolve(path, internal.MediaPhoto)
	if !ok1 || !ok2 {
		t.Fatal("Expected records from both invocations")
	}
	if !first.DateTaken.Equal(second.DateTaken) || first.DateSource != second.DateSource {
		t.Error("Expected identical resolution across invocations")
	}
}
