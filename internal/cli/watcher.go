package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	dendriteerrors "github.com/toyz/dendrite/internal/errors"
	"github.com/toyz/dendrite/internal/utils"
	"github.com/toyz/dendrite/pkg/dendrite"
)

// debouncePeriod coalesces rapid editor save bursts into one rebuild
const debouncePeriod = 500 * time.Millisecond

// RebuildCallback is invoked after a debounced change burst settles
type RebuildCallback func() error

// ProjectWatcher watches the project tree for document and imports
// changes and triggers rebuilds. The output directory is excluded from
// watching so the tool's own writes never feed back into a rebuild.
type ProjectWatcher struct {
	projectRoot   string
	watcher       *fsnotify.Watcher
	dirFilter     utils.DirectoryFilter
	rebuild       RebuildCallback
	diagnostics   *utils.DiagnosticSystem
	mu            sync.Mutex
	debounceTimer *time.Timer

	// rebuildMu serializes rebuilds; a timer firing mid-rebuild waits for
	// the running one to finish before starting the next.
	rebuildMu sync.Mutex
}

// NewProjectWatcher creates a watcher over every directory under the
// project root, excluding the output directory
func NewProjectWatcher(projectRoot, outputDir string, rebuild RebuildCallback, diagnostics *utils.DiagnosticSystem) (*ProjectWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, dendriteerrors.Wrap(dendriteerrors.WatchErrorCode, "failed to create file watcher", err).
			WithSuggestion("File watching may not be supported on this system")
	}

	pw := &ProjectWatcher{
		projectRoot: projectRoot,
		watcher:     watcher,
		dirFilter:   utils.ExcludingDirectories(utils.DefaultDirectoryFilter(), outputDir),
		rebuild:     rebuild,
		diagnostics: diagnostics,
	}

	if err := pw.watchTree(projectRoot); err != nil {
		watcher.Close()
		return nil, err
	}

	return pw, nil
}

// watchTree registers rootDir and all directories beneath it
func (pw *ProjectWatcher) watchTree(rootDir string) error {
	walker := utils.NewFileWalker()
	dirs, err := walker.ListDirectories(rootDir, pw.dirFilter)
	if err != nil {
		return dendriteerrors.Wrap(dendriteerrors.WatchErrorCode,
			"failed to enumerate directories to watch", err).
			WithContext("path", rootDir)
	}

	for _, dir := range dirs {
		if err := pw.watcher.Add(dir); err != nil {
			return dendriteerrors.Wrap(dendriteerrors.WatchErrorCode,
				"failed to watch directory", err).
				WithContext("path", dir).
				WithSuggestion("The system may have run out of watch descriptors")
		}
		pw.diagnostics.Debug("Watching %s", dir)
	}

	return nil
}

// Start begins watching in a background goroutine
func (pw *ProjectWatcher) Start() {
	go pw.watchLoop()
}

// Stop stops watching and releases the underlying watcher
func (pw *ProjectWatcher) Stop() error {
	return pw.watcher.Close()
}

// watchLoop monitors file system events until the watcher is closed
func (pw *ProjectWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			pw.handleEvent(event)

		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			pw.diagnostics.Warn("Watch error: %v", err)
		}
	}
}

// handleEvent registers newly created directories and schedules a
// rebuild for relevant file changes
func (pw *ProjectWatcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !pw.dirFilter(event.Name, fs.FileInfoToDirEntry(info)) {
				return
			}
			if err := pw.watchTree(event.Name); err != nil {
				pw.diagnostics.Warn("Failed to watch new directory %s: %v", event.Name, err)
			}
			// A moved-in directory can already contain documents
			pw.scheduleRebuild(event.Name)
			return
		}
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !isRelevantFile(event.Name) {
		return
	}

	pw.diagnostics.Verbose("Change detected: %s (%s)", event.Name, event.Op)
	pw.scheduleRebuild(event.Name)
}

// scheduleRebuild debounces change bursts and triggers the rebuild
// callback once they settle
func (pw *ProjectWatcher) scheduleRebuild(trigger string) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.debounceTimer != nil {
		pw.debounceTimer.Stop()
	}

	pw.debounceTimer = time.AfterFunc(debouncePeriod, func() {
		pw.rebuildMu.Lock()
		defer pw.rebuildMu.Unlock()

		pw.diagnostics.Info("Rebuilding after change to %s", filepath.Base(trigger))
		if err := pw.rebuild(); err != nil {
			pw.diagnostics.Error("Rebuild failed: %v", err)
		}
	})
}

// isRelevantFile reports whether a change to this path affects generation
func isRelevantFile(path string) bool {
	base := filepath.Base(path)
	if strings.EqualFold(base, dendrite.ImportsFileName) {
		return true
	}
	return strings.EqualFold(filepath.Ext(base), dendrite.DocumentExtension)
}
