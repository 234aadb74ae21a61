package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kako-jun/photo-returns/internal"
)

func TestFileWalker_Classify(t *testing.T) {
	walker := NewFileWalker(true)

	tests := []struct {
		name     string
		wantType internal.MediaType
		wantOK   bool
	}{
		{"a.jpg", internal.MediaPhoto, true},
		{"a.JPG", internal.MediaPhoto, true},
		{"a.jpeg", internal.MediaPhoto, true},
		{"a.heic", internal.MediaPhoto, true},
		{"a.tif", internal.MediaPhoto, true},
		{"b.mp4", internal.MediaVideo, true},
		{"b.MOV", internal.MediaVideo, true},
		{"b.webm", internal.MediaVideo, true},
		{"c.txt", "", false},
		{"noext", "", false},
	}

	for _, tt := range tests {
		gotType, gotOK := walker.Classify(tt.name)
		if gotOK != tt.wantOK || gotType != tt.wantType {
			t.Errorf("Classify(%q) = (%v, %v), want (%v, %v)",
				tt.name, gotType, gotOK, tt.wantType, tt.wantOK)
		}
	}
}

func TestFileWalker_Classify_VideosDisabled(t *testing.T) {
	walker := NewFileWalker(false)

	if _, ok := walker.Classify("b.mp4"); ok {
		t.Error("Expected videos to be ignored when IncludeVideos is false")
	}
	if _, ok := walker.Classify("a.jpg"); !ok {
		t.Error("Expected photos to be recognized regardless of IncludeVideos")
	}
}

func TestFileWalker_Scan(t *testing.T) {
	tempDir := t.TempDir()

	testFiles := []string{
		"a.jpg",
		"sub/b.png",
		"sub/deep/c.mp4",
		"ignored.txt",
	}

	for _, file := range testFiles {
		fullPath := filepath.Join(tempDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(fullPath, []byte("test content"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	walker := NewFileWalker(true)
	entries, err := walker.Scan(tempDir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(entries) != 3 {
		t.Errorf("Expected 3 media entries, got %d", len(entries))
	}

	for _, e := range entries {
		if e.Size == 0 {
			t.Errorf("Expected non-zero size for %s", e.Path)
		}
	}
}

func TestFileWalker_Scan_VideosExcluded(t *testing.T) {
	tempDir := t.TempDir()

	for _, file := range []string{"a.jpg", "b.mp4"} {
		if err := os.WriteFile(filepath.Join(tempDir, file), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	walker := NewFileWalker(false)
	entries, err := walker.Scan(tempDir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].MediaType != internal.MediaPhoto {
		t.Errorf("Expected photo entry, got %v", entries[0].MediaType)
	}
}

func TestFileWalker_Scan_MissingRoot(t *testing.T) {
	walker := NewFileWalker(true)
	if _, err := walker.Scan("/non/existent/directory"); err == nil {
		t.Error("Expected error for missing root directory")
	}
}

func TestFileWalker_Scan_SymlinkNotFollowed(t *testing.T) {
	tempDir := t.TempDir()
	outside := t.TempDir()

	if err := os.WriteFile(filepath.Join(outside, "out.jpg"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(tempDir, "link")); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}

	walker := NewFileWalker(true)
	entries, err := walker.Scan(tempDir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("Expected symlinked directory to be skipped, got %d entries", len(entries))
	}
}
