package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSourceReaderReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "index.md")
	if err := os.WriteFile(path, []byte("# Index"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	reader := NewSourceReader()

	text, err := reader.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if text != "# Index" {
		t.Errorf("expected %q, got %q", "# Index", text)
	}

	if reader.CachedFiles() != 1 {
		t.Errorf("expected 1 cached file, got %d", reader.CachedFiles())
	}

	// Second read hits the cache
	text, err = reader.ReadFile(path)
	if err != nil {
		t.Fatalf("second ReadFile failed: %v", err)
	}
	if text != "# Index" {
		t.Errorf("expected cached content, got %q", text)
	}
}

func TestSourceReaderDetectsChanges(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "page.md")
	if err := os.WriteFile(path, []byte("first"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	reader := NewSourceReader()
	if _, err := reader.ReadFile(path); err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	// Rewrite with different content and a different stamp
	if err := os.WriteFile(path, []byte("second!"), 0644); err != nil {
		t.Fatalf("Failed to rewrite test file: %v", err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("Failed to change file times: %v", err)
	}

	text, err := reader.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile after change failed: %v", err)
	}
	if text != "second!" {
		t.Errorf("expected updated content, got %q", text)
	}
}

func TestSourceReaderInvalidate(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "page.md")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	reader := NewSourceReader()
	if _, err := reader.ReadFile(path); err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	reader.InvalidateFile(path)
	if reader.CachedFiles() != 0 {
		t.Errorf("expected empty cache after invalidation, got %d", reader.CachedFiles())
	}

	reader.ClearCache()
	if reader.CachedFiles() != 0 {
		t.Errorf("expected empty cache after clear, got %d", reader.CachedFiles())
	}
}

func TestSourceReaderErrors(t *testing.T) {
	reader := NewSourceReader()

	if _, err := reader.ReadFile(""); err == nil {
		t.Error("expected error for empty path")
	}

	if _, err := reader.ReadFile(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Error("expected error for missing file")
	}
}
