package utils

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ProjectFileParser derives the default root namespace from the MSBuild
// project file next to the documents, the way the Razor SDK does when no
// namespace is configured.
type ProjectFileParser struct {
	reader *SourceReader
}

// NewProjectFileParser creates a new project file parser with caching
func NewProjectFileParser(reader *SourceReader) *ProjectFileParser {
	return &ProjectFileParser{
		reader: reader,
	}
}

// msbuildProject models the subset of the project file the parser reads
type msbuildProject struct {
	PropertyGroups []struct {
		RootNamespace string `xml:"RootNamespace"`
	} `xml:"PropertyGroup"`
}

// FindProjectFile returns the path of the project file in the given
// directory. With several candidates the lexicographically first wins so
// the choice is stable across runs.
func (p *ProjectFileParser) FindProjectFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", WrapReadError(dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csproj") {
			candidates = append(candidates, entry.Name())
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no project file found in %s", dir)
	}

	sort.Strings(candidates)
	return filepath.Join(dir, candidates[0]), nil
}

// ParseRootNamespace extracts the root namespace from a project file.
// A project file without an explicit RootNamespace property falls back
// to the project name, matching the MSBuild default.
func (p *ProjectFileParser) ParseRootNamespace(projectFilePath string) (string, error) {
	cleanPath := filepath.Clean(projectFilePath)
	if !strings.EqualFold(filepath.Ext(cleanPath), ".csproj") {
		return "", fmt.Errorf("file is not a project file: %s", projectFilePath)
	}

	content, err := p.reader.ReadFile(cleanPath)
	if err != nil {
		return "", WrapReadError("project file", err)
	}

	var project msbuildProject
	if err := xml.Unmarshal([]byte(content), &project); err != nil {
		return "", fmt.Errorf("failed to parse project file: %w", err)
	}

	for _, group := range project.PropertyGroups {
		if ns := strings.TrimSpace(group.RootNamespace); ns != "" {
			return ns, nil
		}
	}

	name := filepath.Base(cleanPath)
	return strings.TrimSuffix(name, filepath.Ext(name)), nil
}
