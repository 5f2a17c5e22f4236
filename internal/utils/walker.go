package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// FileWalker provides utilities for walking project trees and selecting
// the files a build cares about.
type FileWalker struct{}

// NewFileWalker creates a new file walker
func NewFileWalker() *FileWalker {
	return &FileWalker{}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info os.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	SkipErrors      bool
}

// MarkdownFileFilter filters for markdown documents, matching the
// extension case-insensitively
func MarkdownFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}

		ext := filepath.Ext(info.Name())
		return strings.EqualFold(ext, ".md")
	}
}

// ImportsFileFilter filters for razor imports files, matching the
// name case-insensitively
func ImportsFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}

		return strings.EqualFold(info.Name(), "_Imports.razor")
	}
}

// AnyFileFilter combines filters so a file matching any of them is selected
func AnyFileFilter(filters ...FileFilter) FileFilter {
	return func(path string, info os.DirEntry) bool {
		for _, filter := range filters {
			if filter(path, info) {
				return true
			}
		}
		return false
	}
}

// DefaultDirectoryFilter skips common directories that shouldn't contain documents
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"bin":          true,
		"obj":          true,
		"node_modules": true,
		".git":         true,
		".svn":         true,
		".hg":          true,
		"vendor":       true,
		"dist":         true,
		"target":       true,
	}

	return func(path string, info os.DirEntry) bool {
		if !info.IsDir() {
			return true
		}

		name := info.Name()

		// Skip hidden directories
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		// Skip known directories
		return !skipDirs[name]
	}
}

// ExcludingDirectories wraps a directory filter with additional paths to skip.
// Paths are compared after cleaning.
func ExcludingDirectories(base DirectoryFilter, excluded ...string) DirectoryFilter {
	cleaned := make(map[string]bool, len(excluded))
	for _, dir := range excluded {
		if dir != "" {
			cleaned[filepath.Clean(dir)] = true
		}
	}

	return func(path string, info os.DirEntry) bool {
		if info.IsDir() && cleaned[filepath.Clean(path)] {
			return false
		}
		if base != nil {
			return base(path, info)
		}
		return true
	}
}

// fileInfoDirEntry converts os.FileInfo to a simple DirEntry implementation
type fileInfoDirEntry struct {
	info os.FileInfo
}

func (f fileInfoDirEntry) Name() string               { return f.info.Name() }
func (f fileInfoDirEntry) IsDir() bool                { return f.info.IsDir() }
func (f fileInfoDirEntry) Type() os.FileMode          { return f.info.Mode().Type() }
func (f fileInfoDirEntry) Info() (os.FileInfo, error) { return f.info, nil }

// WalkFiles walks through files in a directory tree with filtering
func (fw *FileWalker) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matchedFiles []string

	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return err
		}

		// Convert FileInfo to DirEntry
		dirEntry := fileInfoDirEntry{info: info}

		// Apply directory filter
		if info.IsDir() && options.DirectoryFilter != nil {
			if !options.DirectoryFilter(path, dirEntry) {
				return filepath.SkipDir
			}
			return nil
		}

		// Apply file filter
		if !info.IsDir() && options.FileFilter != nil {
			if options.FileFilter(path, dirEntry) {
				matchedFiles = append(matchedFiles, path)
			}
		}

		return nil
	})

	return matchedFiles, err
}

// ListDirectories walks a directory tree and returns every directory that
// passes the filter, the root included. Watch mode registers each of these.
func (fw *FileWalker) ListDirectories(rootDir string, filter DirectoryFilter) ([]string, error) {
	var dirs []string

	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if !info.IsDir() {
			return nil
		}

		dirEntry := fileInfoDirEntry{info: info}
		if filter != nil && !filter(path, dirEntry) {
			return filepath.SkipDir
		}

		dirs = append(dirs, path)
		return nil
	})

	return dirs, err
}

// RemoveGeneratedFiles removes files with the given suffix from a directory
// tree and returns the removed paths. A missing directory removes nothing.
func (fw *FileWalker) RemoveGeneratedFiles(dir, suffix string) ([]string, error) {
	var removedFiles []string

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return removedFiles, nil
	}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip entries that can't be accessed
			return nil
		}

		if info.IsDir() || !strings.HasSuffix(info.Name(), suffix) {
			return nil
		}

		if err := os.Remove(path); err != nil {
			return WrapCleanError(path, err)
		}

		removedFiles = append(removedFiles, path)
		return nil
	})

	return removedFiles, err
}
