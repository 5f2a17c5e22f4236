package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// sourceCacheSize bounds the number of cached source texts. Watch mode
// re-reads the project on every rebuild, so unchanged files should hit
// the cache instead of the disk.
const sourceCacheSize = 512

type sourceEntry struct {
	text    string
	modTime time.Time
	size    int64
}

// SourceReader reads document and imports-file text with caching keyed
// by file stamps. A file whose modification time or size changed since
// it was cached is read again.
type SourceReader struct {
	cache *lru.Cache[string, sourceEntry]
}

// NewSourceReader creates a new SourceReader instance with caching
func NewSourceReader() *SourceReader {
	cache, err := lru.New[string, sourceEntry](sourceCacheSize)
	if err != nil {
		panic(err)
	}
	return &SourceReader{cache: cache}
}

// ReadFile reads a file and returns its contents as a string with caching
func (sr *SourceReader) ReadFile(filePath string) (string, error) {
	cleanPath, err := sr.validateAndCleanPath(filePath)
	if err != nil {
		return "", err
	}

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return "", WrapReadError(filepath.Base(cleanPath), err)
	}

	if entry, exists := sr.cache.Get(cleanPath); exists {
		if stat.ModTime().Equal(entry.modTime) && stat.Size() == entry.size {
			return entry.text, nil
		}
		sr.cache.Remove(cleanPath)
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", WrapReadError(filepath.Base(cleanPath), err)
	}

	text := string(content)
	sr.cache.Add(cleanPath, sourceEntry{
		text:    text,
		modTime: stat.ModTime(),
		size:    stat.Size(),
	})

	return text, nil
}

// InvalidateFile removes a specific file from the cache
func (sr *SourceReader) InvalidateFile(filePath string) {
	cleanPath, err := sr.validateAndCleanPath(filePath)
	if err != nil {
		return
	}

	sr.cache.Remove(cleanPath)
}

// ClearCache clears all cached files
func (sr *SourceReader) ClearCache() {
	sr.cache.Purge()
}

// CachedFiles returns the number of files currently cached
func (sr *SourceReader) CachedFiles() int {
	return sr.cache.Len()
}

// validateAndCleanPath validates and cleans a file path
func (sr *SourceReader) validateAndCleanPath(filePath string) (string, error) {
	if err := NotEmpty("filePath")(filePath); err != nil {
		return "", fmt.Errorf("file path %w", err)
	}

	// Clean the path to prevent path traversal
	cleanPath := filepath.Clean(filePath)

	// Ensure the clean path doesn't contain path traversal attempts
	if strings.Contains(cleanPath, "..") {
		// Allow .. only if it's at the beginning (relative path)
		if !strings.HasPrefix(cleanPath, "..") {
			return "", fmt.Errorf("path traversal not allowed in file path: %s", filePath)
		}
	}

	// Check if file exists
	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", cleanPath)
	}

	return cleanPath, nil
}
