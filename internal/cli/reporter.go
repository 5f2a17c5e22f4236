package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	dendriteerrors "github.com/toyz/dendrite/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
	}
}

// ReportWarning provides user-friendly warning reporting
func (r *DiagnosticReporter) ReportWarning(message string) {
	// Clean warning format with orange color
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(os.Stderr, "! ")
	fmt.Fprintf(os.Stderr, "%s\n", message)
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(os.Stderr, "\nERROR: Build Failed\n")
	fmt.Fprintf(os.Stderr, "===================\n\n")

	if genErr := r.findGeneratorError(err); genErr != nil {
		r.reportGeneratorError(genErr)
	} else {
		r.reportBasicError(err)
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// reportGeneratorError reports a GeneratorError with full context and suggestions
func (r *DiagnosticReporter) reportGeneratorError(genErr dendriteerrors.GeneratorError) {
	// Error type and location
	r.printErrorHeader(genErr.ErrorCode())

	// Main error message
	fmt.Fprintf(os.Stderr, "Message: %s\n\n", genErr.Error())

	// In verbose mode, show the underlying cause if available
	if r.verbose && genErr.Unwrap() != nil {
		fmt.Fprintf(os.Stderr, "Underlying cause: %s\n\n", genErr.Unwrap().Error())
	}

	// Document location information
	if loc := genErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(os.Stderr, "Location: %s\n\n", loc.String())
	}

	// Context information
	if context := genErr.Context(); len(context) > 0 {
		r.printContext(context)
	}

	// Suggestions
	if suggestions := genErr.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	// Additional help based on error type
	r.printAdditionalHelp(genErr.ErrorCode())

	// In verbose mode, show additional debugging information
	if r.verbose {
		r.printVerboseDebuggingInfo(genErr)
	}
}

// reportBasicError reports a basic error without rich context
func (r *DiagnosticReporter) reportBasicError(err error) {
	fmt.Fprintf(os.Stderr, "Message: %s\n\n", err.Error())

	// Try to provide some general guidance based on error message
	errorMsg := strings.ToLower(err.Error())

	if strings.Contains(errorMsg, "metadata") || strings.Contains(errorMsg, "front matter") {
		fmt.Fprintf(os.Stderr, "This appears to be a metadata-related issue.\n")
		fmt.Fprintf(os.Stderr, "Common solutions:\n")
		fmt.Fprintf(os.Stderr, "  - Check the --- fences around the document header\n")
		fmt.Fprintf(os.Stderr, "  - Ensure header values are plain scalars or lists\n")
		fmt.Fprintf(os.Stderr, "  - Verify key names are lowercase (route, title, using, ...)\n\n")
	} else if strings.Contains(errorMsg, "imports") {
		fmt.Fprintf(os.Stderr, "This appears to be an imports-file issue.\n")
		fmt.Fprintf(os.Stderr, "Common solutions:\n")
		fmt.Fprintf(os.Stderr, "  - Check @using directive syntax in _Imports.razor\n")
		fmt.Fprintf(os.Stderr, "  - Ensure each directive names a namespace\n\n")
	} else if strings.Contains(errorMsg, "config") {
		fmt.Fprintf(os.Stderr, "This appears to be a configuration issue.\n")
		fmt.Fprintf(os.Stderr, "Common solutions:\n")
		fmt.Fprintf(os.Stderr, "  - Check your dendrite.yaml file\n")
		fmt.Fprintf(os.Stderr, "  - Ensure flag values are well formed\n")
		fmt.Fprintf(os.Stderr, "  - Try --namespace to set the root namespace explicitly\n\n")
	}
}

// printErrorHeader prints a formatted error header based on error type
func (r *DiagnosticReporter) printErrorHeader(code dendriteerrors.ErrorCode) {
	var errorTypeStr string

	switch code {
	case dendriteerrors.InvalidInputErrorCode:
		errorTypeStr = "Invalid Input Error"
	case dendriteerrors.MetadataErrorCode:
		errorTypeStr = "Metadata Error"
	case dendriteerrors.RenderErrorCode:
		errorTypeStr = "Markup Render Error"
	case dendriteerrors.TemplateErrorCode:
		errorTypeStr = "Template Error"
	case dendriteerrors.GenerationErrorCode:
		errorTypeStr = "Code Generation Error"
	case dendriteerrors.FileSystemErrorCode:
		errorTypeStr = "File System Error"
	case dendriteerrors.ConfigurationErrorCode:
		errorTypeStr = "Configuration Error"
	case dendriteerrors.WatchErrorCode:
		errorTypeStr = "Watch Error"
	default:
		errorTypeStr = "Unknown Error"
	}

	fmt.Fprintf(os.Stderr, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(os.Stderr, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "Context:\n")

	// Print important context items first
	importantKeys := []string{"document", "unit", "template", "operation", "path"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(os.Stderr, "   %s: %v\n", r.formatContextKey(key), value)
			printed[key] = true
		}
	}

	// Print remaining context items
	for key, value := range context {
		if !printed[key] {
			fmt.Fprintf(os.Stderr, "   %s: %v\n", r.formatContextKey(key), value)
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// formatContextKey formats context keys to be more readable
func (r *DiagnosticReporter) formatContextKey(key string) string {
	switch key {
	case "document":
		return "Document"
	case "unit":
		return "Unit"
	case "template":
		return "Template"
	case "operation":
		return "Operation"
	case "path":
		return "Path"
	default:
		// Convert snake_case to Title Case
		parts := strings.Split(key, "_")
		for i, part := range parts {
			if len(part) > 0 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, " ")
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(os.Stderr, "Suggestions:\n")

	for i, suggestion := range suggestions {
		// Format multi-line suggestions nicely
		lines := strings.Split(suggestion, "\n")
		if len(lines) == 1 {
			fmt.Fprintf(os.Stderr, "   %d. %s\n", i+1, suggestion)
		} else {
			fmt.Fprintf(os.Stderr, "   %d. %s\n", i+1, lines[0])
			for _, line := range lines[1:] {
				if strings.TrimSpace(line) != "" {
					fmt.Fprintf(os.Stderr, "      %s\n", line)
				}
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// printAdditionalHelp prints additional help based on error type
func (r *DiagnosticReporter) printAdditionalHelp(code dendriteerrors.ErrorCode) {
	switch code {
	case dendriteerrors.MetadataErrorCode:
		fmt.Fprintf(os.Stderr, "Document Header Requirements:\n")
		fmt.Fprintf(os.Stderr, "  - The header is fenced by --- lines at the top of the document\n")
		fmt.Fprintf(os.Stderr, "  - Keys are lowercase: route, title, using, namespace, attribute, layout, inherits\n")
		fmt.Fprintf(os.Stderr, "  - Values are plain scalars or lists of scalars\n\n")

	case dendriteerrors.InvalidInputErrorCode:
		fmt.Fprintf(os.Stderr, "Document Requirements:\n")
		fmt.Fprintf(os.Stderr, "  - Every document needs a non-empty path\n")
		fmt.Fprintf(os.Stderr, "  - The file name must contain at least one identifier character\n\n")

	case dendriteerrors.ConfigurationErrorCode:
		fmt.Fprintf(os.Stderr, "Configuration Help:\n")
		fmt.Fprintf(os.Stderr, "  - dendrite.yaml accepts rootNamespace, defaultBaseType, output\n")
		fmt.Fprintf(os.Stderr, "  - Flags override config file values\n")
		fmt.Fprintf(os.Stderr, "  - Run with --help to see all flags\n\n")

	case dendriteerrors.FileSystemErrorCode:
		fmt.Fprintf(os.Stderr, "File System Help:\n")
		fmt.Fprintf(os.Stderr, "  - Check read permissions on the project root\n")
		fmt.Fprintf(os.Stderr, "  - Check write permissions on the output directory\n\n")
	}

	// Always show general help
	fmt.Fprintf(os.Stderr, "For more help:\n")
	fmt.Fprintf(os.Stderr, "  - Run with --verbose for more detailed output\n")
	fmt.Fprintf(os.Stderr, "  - Review the sample project in the examples/ directory\n")
}

// findGeneratorError searches the error chain for a GeneratorError
func (r *DiagnosticReporter) findGeneratorError(err error) dendriteerrors.GeneratorError {
	var genErr dendriteerrors.GeneratorError
	if stderrors.As(err, &genErr) {
		return genErr
	}
	return nil
}

// printVerboseDebuggingInfo prints additional debugging information in verbose mode
func (r *DiagnosticReporter) printVerboseDebuggingInfo(genErr dendriteerrors.GeneratorError) {
	fmt.Fprintf(os.Stderr, "Verbose Debug Information:\n")
	fmt.Fprintf(os.Stderr, "  Error Code: %s (%d)\n", genErr.ErrorCode(), int(genErr.ErrorCode()))

	if context := genErr.Context(); len(context) > 0 {
		fmt.Fprintf(os.Stderr, "  Full Context Data:\n")
		for key, value := range context {
			fmt.Fprintf(os.Stderr, "    %s: %+v\n", key, value)
		}
	}

	if genErr.Unwrap() != nil {
		fmt.Fprintf(os.Stderr, "  Error Chain:\n")
		err := genErr.Unwrap()
		level := 1
		for err != nil {
			fmt.Fprintf(os.Stderr, "    %d. %s\n", level, err.Error())
			if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
				err = unwrapper.Unwrap()
				level++
			} else {
				break
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// ReportSuccess reports a successful build with summary information
func (r *DiagnosticReporter) ReportSuccess(summary BuildSummary) {
	fmt.Printf("\nBuild Completed Successfully!\n")
	fmt.Printf("=============================\n\n")

	if summary.DocumentsProcessed > 0 {
		fmt.Printf("Processed %d documents\n", summary.DocumentsProcessed)
	}

	if summary.ComponentsGenerated > 0 {
		fmt.Printf("Generated %d components\n", summary.ComponentsGenerated)
	}

	if summary.UnitsReused > 0 {
		fmt.Printf("Reused %d cached components\n", summary.UnitsReused)
	}

	if summary.ImportsFilesFound > 0 {
		fmt.Printf("Found %d imports files\n", summary.ImportsFilesFound)
	}

	if summary.WarningsEmitted > 0 {
		fmt.Printf("Emitted %d warnings\n", summary.WarningsEmitted)
	}

	if len(summary.GeneratedFiles) > 0 {
		fmt.Printf("\nGenerated files:\n")
		for _, file := range summary.GeneratedFiles {
			fmt.Printf("  - %s\n", file)
		}
	}

	if summary.Duration > 0 {
		fmt.Printf("\nCompleted in %v\n", summary.Duration.Round(time.Millisecond))
	}
}

// BuildSummary contains information about a build run
type BuildSummary struct {
	DocumentsProcessed  int
	ComponentsGenerated int
	UnitsReused         int
	DocumentsFailed     int
	ImportsFilesFound   int
	WarningsEmitted     int
	GeneratedFiles      []string
	Duration            time.Duration
}
