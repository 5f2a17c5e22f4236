package dendrite

// DocumentExtension is the file extension of source documents.
const DocumentExtension = ".md"

// GeneratedSuffix is appended to every generated unit name.
const GeneratedSuffix = ".g.cs"

// Document is one markdown source file to generate a component from. Text
// carries the full file content including any metadata header.
type Document struct {
	Path string
	Text string
}

// DiagnosticSeverity classifies a diagnostic attached to a generated unit
type DiagnosticSeverity int

const (
	SeverityInfo DiagnosticSeverity = iota
	SeverityWarning
)

// String returns the severity label
func (s DiagnosticSeverity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Diagnostic describes a non-fatal problem observed while generating one
// document, such as a malformed metadata header that degraded to defaults.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Message  string
	Path     string // source document the diagnostic belongs to
}

// GeneratedUnit is the output artifact for one document. Name is unique per
// document within a project and already carries the generated suffix;
// Content is the complete source text.
type GeneratedUnit struct {
	Name        string
	Content     string
	Diagnostics []Diagnostic
}
