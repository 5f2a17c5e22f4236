package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/dendrite/internal/utils"
	"github.com/toyz/dendrite/pkg/dendrite"
)

// ProjectScanner locates the markdown documents and ambient imports files
// of a project tree
type ProjectScanner struct {
	walker *utils.FileWalker
}

// NewProjectScanner creates a new project scanner
func NewProjectScanner() *ProjectScanner {
	return &ProjectScanner{
		walker: utils.NewFileWalker(),
	}
}

// ScanResult holds the files a build consumes, in walk order
type ScanResult struct {
	Documents    []string
	ImportsFiles []string
}

// Scan walks the project root and classifies the matched files. The output
// directory, hidden directories, and common non-content directories are
// skipped.
func (s *ProjectScanner) Scan(projectRoot, outputDir string) (ScanResult, error) {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return ScanResult{}, utils.WrapScanError(fmt.Sprintf("path resolution %s", projectRoot), err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return ScanResult{}, utils.WrapScanError(root, err)
	}
	if !info.IsDir() {
		return ScanResult{}, utils.WrapScanError(root, fmt.Errorf("not a directory"))
	}

	matched, err := s.walker.WalkFiles(root, utils.FileWalkOptions{
		FileFilter:      utils.AnyFileFilter(utils.MarkdownFileFilter(), utils.ImportsFileFilter()),
		DirectoryFilter: utils.ExcludingDirectories(utils.DefaultDirectoryFilter(), outputDir),
	})
	if err != nil {
		return ScanResult{}, utils.WrapScanError(root, err)
	}

	var result ScanResult
	for _, path := range matched {
		if strings.EqualFold(filepath.Base(path), dendrite.ImportsFileName) {
			result.ImportsFiles = append(result.ImportsFiles, path)
		} else {
			result.Documents = append(result.Documents, path)
		}
	}

	return result, nil
}
