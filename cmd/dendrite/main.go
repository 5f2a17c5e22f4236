package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/toyz/dendrite/internal/cli"
	"github.com/toyz/dendrite/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		namespaceFlag = flag.String("namespace", "", "Root namespace for generated components (defaults to the project file's RootNamespace)")
		baseFlag      = flag.String("base", "", "Base type for components without an inherits entry (defaults to ComponentBase)")
		outFlag       = flag.String("out", "", "Output directory for generated sources (defaults to 'generated' under the project root)")
		configFlag    = flag.String("config", "", "Path to a dendrite.yaml config file (defaults to dendrite.yaml in the project root)")
		declFlag      = flag.Bool("decl", false, "Emit class declarations without render bodies")
		jobsFlag      = flag.Int("jobs", 0, "Number of concurrent generation workers (defaults to the CPU count)")
		watchFlag     = flag.Bool("watch", false, "Watch the project tree and rebuild on changes")
		cleanFlag     = flag.Bool("clean", false, "Delete generated sources from the output directory and exit")
		noCacheFlag   = flag.Bool("no-cache", false, "Regenerate every document instead of reusing cached units")
		verboseFlag   = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag     = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag      = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [project-root]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Dendrite Component Generator\n")
		fmt.Fprintf(os.Stderr, "Scans a project tree for markdown documents and generates Razor component sources.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  project-root       Directory to scan for documents (defaults to the current directory)\n")
		fmt.Fprintf(os.Stderr, "\nConfiguration:\n")
		fmt.Fprintf(os.Stderr, "  A dendrite.yaml in the project root supplies defaults for rootNamespace,\n")
		fmt.Fprintf(os.Stderr, "  defaultBaseType, and output. Command-line flags override the file.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                    # Build the current directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./docs                             # Build a specific project tree\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --namespace MyApp.Docs ./docs      # Override the root namespace\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --decl ./docs                      # Declarations only, no render bodies\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --watch ./docs                     # Rebuild on every change\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./docs                     # Remove generated sources\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./docs                   # Enable detailed output\n", os.Args[0])
	}

	flag.Parse()

	// Show help if requested
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Validate arguments
	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Error: At most one project root may be given\n\n")
		flag.Usage()
		os.Exit(1)
	}
	projectRoot := "."
	if len(args) == 1 {
		projectRoot = args[0]
	}

	reporter := cli.NewDiagnosticReporter(*verboseFlag)

	// Merge settings: defaults, then the config file, then explicit flags
	config := cli.DefaultConfig(projectRoot)

	fileConfig, err := loadFileConfig(projectRoot, *configFlag)
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}
	config.ApplyFile(fileConfig)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "namespace":
			config.RootNamespace = *namespaceFlag
			config.HasRootNamespace = true
		case "base":
			config.DefaultBaseType = *baseFlag
		case "out":
			config.OutputDir = *outFlag
		case "decl":
			config.DeclarationOnly = *declFlag
		case "jobs":
			config.Jobs = *jobsFlag
		case "no-cache":
			config.NoCache = *noCacheFlag
		case "verbose":
			config.Verbose = *verboseFlag
		case "quiet":
			config.Quiet = *quietFlag
		}
	})

	config.ResolveDefaultNamespace(utils.NewProjectFileParser(utils.NewSourceReader()))

	if err := config.Validate(); err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}

	diagnostics := utils.NewDiagnosticSystem(config.DiagnosticLevel())

	// Handle clean operation
	if *cleanFlag {
		diagnostics.Banner("Cleaning generated sources")
		removed, err := cli.NewOutputCleaner().Clean(config.AbsoluteOutputDir())
		if err != nil {
			reporter.ReportError(err)
			os.Exit(1)
		}
		for _, path := range removed {
			diagnostics.Verbose("Removed %s", path)
		}
		diagnostics.Success("Removed %d generated files", len(removed))
		return
	}

	diagnostics.Banner("Generating components")

	builder, err := cli.NewBuilder(config, diagnostics)
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}

	diagnostics.ProjectPath(builder.Config().ProjectRoot)
	if config.Verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Output directory: %s", config.AbsoluteOutputDir())
		diagnostics.List("Root namespace: %s", config.RootNamespace)
		diagnostics.List("Mode: %s", config.Mode())
		diagnostics.List("Workers: %d", config.Jobs)
	}

	buildErr := builder.Run()
	if buildErr != nil {
		reporter.ReportError(buildErr)
		if !*watchFlag {
			os.Exit(1)
		}
	} else {
		builder.ReportSuccess()
	}

	if !*watchFlag {
		return
	}

	// Watch mode: rebuild after every relevant change until interrupted
	resolved := builder.Config()
	watcher, err := cli.NewProjectWatcher(resolved.ProjectRoot, resolved.AbsoluteOutputDir(), func() error {
		if err := builder.Run(); err != nil {
			reporter.ReportError(err)
			return nil
		}
		builder.ReportSuccess()
		return nil
	}, diagnostics)
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}
	watcher.Start()
	diagnostics.Info("Watching %s for changes, press Ctrl+C to stop", resolved.ProjectRoot)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	if err := watcher.Stop(); err != nil {
		diagnostics.Warn("Failed to stop watcher: %v", err)
	}
	diagnostics.Info("Stopped watching")
}

// loadFileConfig loads the config file settings. An explicit --config path
// must load; the probed default is optional.
func loadFileConfig(projectRoot, explicitPath string) (cli.FileConfig, error) {
	if explicitPath != "" {
		return cli.LoadConfigFile(explicitPath)
	}

	probed := cli.DefaultConfigPath(projectRoot)
	if _, err := os.Stat(probed); err != nil {
		return cli.FileConfig{}, nil
	}
	return cli.LoadConfigFile(probed)
}
