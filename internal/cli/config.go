package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	dendriteerrors "github.com/toyz/dendrite/internal/errors"
	"github.com/toyz/dendrite/internal/utils"
	"github.com/toyz/dendrite/pkg/dendrite"
)

// DefaultConfigFileName is probed in the project root when --config is not given
const DefaultConfigFileName = "dendrite.yaml"

// DefaultOutputDirName receives generated sources when --out is not given
const DefaultOutputDirName = "generated"

// Config holds the merged settings for a build run
type Config struct {
	// ProjectRoot is the directory scanned for documents
	ProjectRoot string

	// OutputDir receives generated component sources. A relative value is
	// taken under the project root.
	OutputDir string

	// RootNamespace prefixes resolved component namespaces. An empty value
	// leaves root-level components without a namespace block.
	RootNamespace string

	// HasRootNamespace records whether RootNamespace was set explicitly,
	// by flag or config file. Only an unset namespace is derived from the
	// project file.
	HasRootNamespace bool

	// DefaultBaseType is the base type for components without an inherits entry
	DefaultBaseType string

	// DeclarationOnly emits class declarations without render bodies
	DeclarationOnly bool

	// Jobs is the number of concurrent generation workers
	Jobs int

	// NoCache disables reuse of previously generated units
	NoCache bool

	// Verbose and Quiet select the diagnostic level
	Verbose bool
	Quiet   bool
}

// FileConfig is the subset of settings a dendrite.yaml may provide.
// Pointer fields distinguish an absent key from an explicit empty value.
type FileConfig struct {
	RootNamespace   *string `yaml:"rootNamespace"`
	DefaultBaseType *string `yaml:"defaultBaseType"`
	Output          *string `yaml:"output"`
}

// DefaultConfig returns the built-in settings for a project root
func DefaultConfig(projectRoot string) Config {
	return Config{
		ProjectRoot: projectRoot,
		OutputDir:   DefaultOutputDirName,
		Jobs:        runtime.NumCPU(),
	}
}

// DefaultConfigPath returns where the config file is probed for a project root
func DefaultConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, DefaultConfigFileName)
}

// LoadConfigFile reads and decodes a dendrite.yaml. Unknown keys are
// rejected so typos fail loudly. An empty file yields an empty config.
func LoadConfigFile(path string) (FileConfig, error) {
	var fileConfig FileConfig

	content, err := os.ReadFile(path)
	if err != nil {
		return fileConfig, utils.WrapLoadError("config file", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fileConfig); err != nil {
		if errors.Is(err, io.EOF) {
			return FileConfig{}, nil
		}
		return FileConfig{}, dendriteerrors.NewConfigurationError(path, err.Error()).WithCause(err)
	}

	return fileConfig, nil
}

// ApplyFile merges config file values into the settings. Flags are applied
// after this, so they win.
func (c *Config) ApplyFile(fileConfig FileConfig) {
	if fileConfig.RootNamespace != nil {
		c.RootNamespace = *fileConfig.RootNamespace
		c.HasRootNamespace = true
	}
	if fileConfig.DefaultBaseType != nil {
		c.DefaultBaseType = *fileConfig.DefaultBaseType
	}
	if fileConfig.Output != nil {
		c.OutputDir = *fileConfig.Output
	}
}

// ResolveDefaultNamespace fills an unset root namespace from the MSBuild
// project file in the project root, matching the Razor SDK default. A
// project without one keeps the empty namespace.
func (c *Config) ResolveDefaultNamespace(parser *utils.ProjectFileParser) {
	if c.HasRootNamespace {
		return
	}

	projectFile, err := parser.FindProjectFile(c.ProjectRoot)
	if err != nil {
		return
	}

	if ns, err := parser.ParseRootNamespace(projectFile); err == nil {
		c.RootNamespace = ns
		c.HasRootNamespace = true
	}
}

// Validate checks the merged settings before a run
func (c *Config) Validate() error {
	if err := utils.NotEmpty("projectRoot")(c.ProjectRoot); err != nil {
		return utils.WrapValidateError("config", err)
	}
	if err := utils.NotEmpty("output")(c.OutputDir); err != nil {
		return utils.WrapValidateError("config", err)
	}
	if err := utils.ValidateJobCount("jobs")(c.Jobs); err != nil {
		return utils.WrapValidateError("config", err)
	}
	if err := utils.ValidateNamespaceText("rootNamespace")(c.RootNamespace); err != nil {
		return utils.WrapValidateError("config", err)
	}
	if c.DefaultBaseType != "" {
		if err := utils.ValidateTypeName("defaultBaseType")(c.DefaultBaseType); err != nil {
			return utils.WrapValidateError("config", err)
		}
	}
	if c.Verbose && c.Quiet {
		return dendriteerrors.NewConfigurationError("verbose/quiet", "flags are mutually exclusive")
	}
	return nil
}

// Options builds the engine options from the settings
func (c *Config) Options() dendrite.Options {
	return dendrite.NewOptions(c.RootNamespace, c.ProjectRoot, c.DefaultBaseType)
}

// Mode returns the generation mode the settings select
func (c *Config) Mode() dendrite.Mode {
	if c.DeclarationOnly {
		return dendrite.ModeDeclarationOnly
	}
	return dendrite.ModeFull
}

// AbsoluteOutputDir resolves the output directory against the project root
func (c *Config) AbsoluteOutputDir() string {
	if filepath.IsAbs(c.OutputDir) {
		return c.OutputDir
	}
	return filepath.Join(c.ProjectRoot, c.OutputDir)
}

// DiagnosticLevel maps the verbosity flags to a diagnostic level
func (c *Config) DiagnosticLevel() utils.DiagnosticLevel {
	switch {
	case c.Quiet:
		return utils.DiagnosticError
	case c.Verbose:
		return utils.DiagnosticVerbose
	default:
		return utils.DiagnosticInfo
	}
}
