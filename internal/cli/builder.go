package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	dendriteerrors "github.com/toyz/dendrite/internal/errors"
	"github.com/toyz/dendrite/internal/utils"
	"github.com/toyz/dendrite/pkg/dendrite"
)

// unitCacheSize bounds the number of generated units kept for reuse
// across rebuilds
const unitCacheSize = 4096

// Builder coordinates the build process: scan the project, compute the
// ambient imports, generate component sources, and write them out.
// A Builder is reused across watch-mode rebuilds so the unit cache
// persists between runs.
type Builder struct {
	config      Config
	scanner     *ProjectScanner
	reader      *utils.SourceReader
	engine      *dendrite.Engine
	unitCache   *lru.Cache[string, *dendrite.GeneratedUnit]
	reporter    *DiagnosticReporter
	diagnostics *utils.DiagnosticSystem
	summary     BuildSummary
}

// documentResult is the outcome of building one document. Results keep
// the scan order so output and summaries are deterministic regardless of
// worker scheduling.
type documentResult struct {
	docPath string
	unit    *dendrite.GeneratedUnit
	cached  bool
	err     error
}

// NewBuilder creates a builder for the given settings. The project root
// is resolved to an absolute path so scanned document paths share the
// root prefix the engine compares against.
func NewBuilder(config Config, diagnostics *utils.DiagnosticSystem) (*Builder, error) {
	root, err := filepath.Abs(config.ProjectRoot)
	if err != nil {
		return nil, utils.WrapScanError(fmt.Sprintf("path resolution %s", config.ProjectRoot), err)
	}
	config.ProjectRoot = root

	unitCache, err := lru.New[string, *dendrite.GeneratedUnit](unitCacheSize)
	if err != nil {
		return nil, err
	}

	return &Builder{
		config:      config,
		scanner:     NewProjectScanner(),
		reader:      utils.NewSourceReader(),
		engine:      dendrite.NewEngine(config.Options()),
		unitCache:   unitCache,
		reporter:    NewDiagnosticReporter(config.Verbose),
		diagnostics: diagnostics,
		summary:     BuildSummary{GeneratedFiles: make([]string, 0)},
	}, nil
}

// Config returns the resolved settings the builder runs with
func (b *Builder) Config() Config {
	return b.config
}

// Summary returns the summary of the most recent run
func (b *Builder) Summary() BuildSummary {
	return b.summary
}

// ReportSuccess reports the most recent run through the diagnostic reporter
func (b *Builder) ReportSuccess() {
	b.reporter.ReportSuccess(b.summary)
}

// Run executes one complete build
func (b *Builder) Run() error {
	startTime := time.Now()
	b.summary = BuildSummary{GeneratedFiles: make([]string, 0)}

	outputDir := b.config.AbsoluteOutputDir()

	b.diagnostics.Verbose("Starting build at %s", startTime.Format("15:04:05"))
	b.diagnostics.Debug("Project root: %s", b.config.ProjectRoot)
	b.diagnostics.Debug("Output directory: %s", outputDir)
	b.diagnostics.Debug("Mode: %s", b.config.Mode())

	// Scan the project tree
	scan, err := b.scanner.Scan(b.config.ProjectRoot, outputDir)
	if err != nil {
		b.diagnostics.Error("Failed to scan project: %v", err)
		return dendriteerrors.Wrap(dendriteerrors.FileSystemErrorCode,
			fmt.Sprintf("failed to scan project root %s", b.config.ProjectRoot), err).
			WithContext("path", b.config.ProjectRoot).
			WithSuggestions(
				"Check that the project root exists",
				"Ensure you have read permissions for the project tree",
			)
	}

	b.summary.DocumentsProcessed = len(scan.Documents)
	b.summary.ImportsFilesFound = len(scan.ImportsFiles)

	if len(scan.Documents) == 0 {
		b.diagnostics.Warn("No documents found under %s", b.config.ProjectRoot)
		b.summary.Duration = time.Since(startTime)
		return nil
	}

	b.diagnostics.Progress("Found %d documents and %d imports files", len(scan.Documents), len(scan.ImportsFiles))
	b.diagnostics.Indent()
	for _, doc := range scan.Documents {
		b.diagnostics.Verbose("%s", doc)
	}
	b.diagnostics.Unindent()

	// Load the ambient imports entries
	entries, err := b.loadImportsFiles(scan.ImportsFiles)
	if err != nil {
		return err
	}

	// Generate all documents through the worker pool
	results := b.generateAll(scan.Documents, entries)

	// Write units in scan order, collecting per-document failures
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return dendriteerrors.WrapFileSystemError("create output directory", outputDir, err)
	}

	failures := dendriteerrors.NewMultipleErrors()
	for _, result := range results {
		if result.err != nil {
			b.summary.DocumentsFailed++
			var genErr dendriteerrors.GeneratorError
			if stderrors.As(result.err, &genErr) {
				failures.Add(genErr)
			} else {
				unitName := dendrite.UnitName(result.docPath, b.config.ProjectRoot)
				failures.Add(dendriteerrors.WrapGenerateError(result.docPath, unitName, result.err))
			}
			continue
		}

		b.reportUnitDiagnostics(result.unit)

		written, outPath, err := b.writeUnit(outputDir, result.unit)
		if err != nil {
			b.summary.DocumentsFailed++
			failures.Add(dendriteerrors.WrapFileSystemError("write", outPath, err).
				WithContext("document", result.docPath).
				WithContext("unit", result.unit.Name))
			continue
		}

		if result.cached {
			b.summary.UnitsReused++
			b.diagnostics.SkipItem(result.unit.Name)
		} else {
			b.summary.ComponentsGenerated++
		}
		if written {
			b.diagnostics.WriteItem(result.unit.Name)
		}

		b.summary.GeneratedFiles = append(b.summary.GeneratedFiles, b.displayPath(outPath))
	}

	b.summary.Duration = time.Since(startTime)

	if !failures.IsEmpty() {
		b.diagnostics.Error("Build finished with %d failed documents", failures.Count())
		return failures
	}

	b.diagnostics.BuildComplete()
	return nil
}

// loadImportsFiles reads each ambient imports file and constructs engine
// entries from its text
func (b *Builder) loadImportsFiles(paths []string) ([]*dendrite.ImportsFile, error) {
	entries := make([]*dendrite.ImportsFile, 0, len(paths))

	for _, path := range paths {
		text, err := b.reader.ReadFile(path)
		if err != nil {
			return nil, dendriteerrors.WrapFileSystemError("read", path, err).
				WithSuggestion("Check read permissions on the imports file")
		}

		entry := dendrite.NewImportsFile(path, text)
		entries = append(entries, entry)
		b.diagnostics.Verbose("Imports %s provides %d directives", entry.Dir(), len(entry.Names()))
	}

	return entries, nil
}

// generateAll builds every document through a fixed worker pool and
// returns results indexed by document order
func (b *Builder) generateAll(docs []string, entries []*dendrite.ImportsFile) []documentResult {
	workers := b.config.Jobs
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
		if workers <= 0 {
			workers = 1
		}
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	b.diagnostics.Verbose("Generating with %d workers", workers)

	results := make([]documentResult, len(docs))
	jobs := make(chan int, len(docs))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = b.buildDocument(docs[idx], entries)
			}
		}()
	}

	for idx := range docs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// buildDocument generates one document, consulting the unit cache first
func (b *Builder) buildDocument(docPath string, entries []*dendrite.ImportsFile) documentResult {
	text, err := b.reader.ReadFile(docPath)
	if err != nil {
		return documentResult{
			docPath: docPath,
			err: dendriteerrors.WrapFileSystemError("read", docPath, err).
				WithContext("document", docPath),
		}
	}

	doc := dendrite.Document{Path: docPath, Text: text}

	applicable, err := dendrite.ApplicableImports(entries, doc.Path)
	if err != nil {
		return documentResult{docPath: docPath, err: err}
	}

	mode := b.config.Mode()
	key := dendrite.ComputeCacheKey(doc, b.engine.Options(), applicable, mode)

	if !b.config.NoCache {
		if unit, ok := b.unitCache.Get(key.String()); ok {
			return documentResult{docPath: docPath, unit: unit, cached: true}
		}
	}

	unit, err := b.engine.Generate(doc, applicable, mode)
	if err != nil {
		return documentResult{docPath: docPath, err: err}
	}

	b.unitCache.Add(key.String(), unit)
	return documentResult{docPath: docPath, unit: unit}
}

// writeUnit writes a generated unit into the output directory. An output
// file whose content already matches is left untouched so downstream
// tools see stable timestamps. Returns whether the file was written and
// the output path.
func (b *Builder) writeUnit(outputDir string, unit *dendrite.GeneratedUnit) (bool, string, error) {
	outPath := filepath.Join(outputDir, unit.Name)
	content := []byte(unit.Content)

	if existing, err := os.ReadFile(outPath); err == nil && bytes.Equal(existing, content) {
		return false, outPath, nil
	}

	if err := os.WriteFile(outPath, content, 0644); err != nil {
		return false, outPath, err
	}

	return true, outPath, nil
}

// reportUnitDiagnostics surfaces a unit's collected diagnostics
func (b *Builder) reportUnitDiagnostics(unit *dendrite.GeneratedUnit) {
	for _, diag := range unit.Diagnostics {
		switch diag.Severity {
		case dendrite.SeverityWarning:
			b.summary.WarningsEmitted++
			b.reporter.ReportWarning(fmt.Sprintf("%s: %s", b.displayPath(diag.Path), diag.Message))
		default:
			b.diagnostics.Info("%s: %s", b.displayPath(diag.Path), diag.Message)
		}
	}
}

// displayPath shortens a path to be relative to the project root when possible
func (b *Builder) displayPath(path string) string {
	rel, err := filepath.Rel(b.config.ProjectRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
