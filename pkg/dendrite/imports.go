package dendrite

import (
	"sort"
	"strings"

	"github.com/toyz/dendrite/internal/directives"
	"github.com/toyz/dendrite/internal/errors"
	"github.com/toyz/dendrite/internal/paths"
)

// ImportsFileName is the conventional file name for ambient imports files.
const ImportsFileName = "_Imports.razor"

// ImportsFile is one ambient imports file. Its directive lines contribute
// import names to every document whose directory lives at or below the
// file's own directory.
//
// An ImportsFile is immutable: the derived names and the content hash are
// computed at construction and never change.
type ImportsFile struct {
	path  string
	dir   string
	text  string
	names []string
	hash  [32]byte
}

// NewImportsFile builds an ImportsFile from its declaring path and raw text
func NewImportsFile(path, text string) *ImportsFile {
	return &ImportsFile{
		path:  paths.NormalizeSlash(path),
		dir:   paths.ContainingDir(path),
		text:  text,
		names: directives.Scan(text),
		hash:  hashImportsFile(paths.NormalizeSlash(path), text),
	}
}

// Path returns the normalized declaring path
func (f *ImportsFile) Path() string { return f.path }

// Dir returns the normalized directory whose scope the file governs
func (f *ImportsFile) Dir() string { return f.dir }

// Text returns the raw file content
func (f *ImportsFile) Text() string { return f.text }

// Names returns the derived import names in line order, duplicates included
func (f *ImportsFile) Names() []string {
	return append([]string(nil), f.names...)
}

// ContentHash returns the hash covering the declaring path and raw text
func (f *ImportsFile) ContentHash() [32]byte { return f.hash }

// Equal reports whether two imports files have the same identity: the same
// declaring path and the same raw text.
func (f *ImportsFile) Equal(other *ImportsFile) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.path == other.path && f.text == other.text
}

// ApplicableImports selects the entries whose scope covers the document:
// every entry whose directory is a case-insensitive textual prefix of the
// document's containing directory. All matching entries contribute; there
// is no shadowing. The result is sorted by (directory, path) so callers
// see a stable order regardless of how entries were discovered.
//
// An empty document path has no containing directory and is rejected.
func ApplicableImports(entries []*ImportsFile, docPath string) ([]*ImportsFile, error) {
	if strings.TrimSpace(docPath) == "" {
		return nil, errors.NewInvalidInputError("document path", "empty path has no containing directory").
			WithSuggestion("pass the document's source path, relative or absolute")
	}

	docDir := paths.ContainingDir(docPath)

	var applicable []*ImportsFile
	for _, entry := range entries {
		if paths.HasPrefixFold(docDir, entry.dir) {
			applicable = append(applicable, entry)
		}
	}

	sort.Slice(applicable, func(i, j int) bool {
		if applicable[i].dir != applicable[j].dir {
			return applicable[i].dir < applicable[j].dir
		}
		return applicable[i].path < applicable[j].path
	})

	return applicable, nil
}
