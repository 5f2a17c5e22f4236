package cli

import (
	"github.com/toyz/dendrite/internal/utils"
	"github.com/toyz/dendrite/pkg/dendrite"
)

// OutputCleaner removes previously generated component sources
type OutputCleaner struct {
	walker *utils.FileWalker
}

// NewOutputCleaner creates a new cleaner
func NewOutputCleaner() *OutputCleaner {
	return &OutputCleaner{
		walker: utils.NewFileWalker(),
	}
}

// Clean removes every generated file under the output directory and
// returns the removed paths. A missing output directory is not an error,
// there is simply nothing to clean.
func (c *OutputCleaner) Clean(outputDir string) ([]string, error) {
	removed, err := c.walker.RemoveGeneratedFiles(outputDir, dendrite.GeneratedSuffix)
	if err != nil {
		return nil, utils.WrapCleanError(outputDir, err)
	}
	return removed, nil
}
