package dendrite

import (
	"html"
	"strings"

	"github.com/toyz/dendrite/internal/csharp"
	"github.com/toyz/dendrite/internal/errors"
	"github.com/toyz/dendrite/internal/frontmatter"
	"github.com/toyz/dendrite/internal/markdown"
	"github.com/toyz/dendrite/internal/paths"
	"github.com/toyz/dendrite/internal/templates"
)

// memberIndent indents namespace members in generated files.
const memberIndent = "    "

// markupSequence is the render tree sequence number for the embedded
// markup. A generated component emits exactly one content frame.
const markupSequence = 0

// Renderer converts a document body to HTML markup. Implementations must
// be pure: identical source yields identical markup.
type Renderer interface {
	Render(source string) (string, error)
}

// Engine generates component source from documents. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	options  Options
	renderer Renderer
}

// NewEngine creates an engine with the default markdown renderer
func NewEngine(options Options) *Engine {
	return NewEngineWithRenderer(options, markdown.NewRenderer())
}

// NewEngineWithRenderer creates an engine with a custom markup renderer
func NewEngineWithRenderer(options Options, renderer Renderer) *Engine {
	options.DefaultBaseType = baseTypeOrDefault(options.DefaultBaseType)
	return &Engine{
		options:  options,
		renderer: renderer,
	}
}

// Options returns the engine's options
func (e *Engine) Options() Options {
	return e.options
}

// Generate produces the component unit for one document. The applicable
// entries are the ambient imports in scope for the document, usually
// selected with ApplicableImports.
//
// Malformed metadata never fails generation: the document degrades to
// defaults and the problems come back as warnings on the unit. Errors are
// reserved for unusable input and collaborator failures.
func (e *Engine) Generate(doc Document, applicable []*ImportsFile, mode Mode) (*GeneratedUnit, error) {
	if strings.TrimSpace(doc.Path) == "" {
		return nil, errors.NewInvalidInputError("document path", "path is empty").
			WithSuggestion("give every document its source path, relative or absolute")
	}

	typeName := csharp.SanitizeIdentifier(paths.Stem(doc.Path))
	if typeName == "" {
		return nil, errors.NewInvalidInputError("document path", "file name has no identifier characters").
			WithLocation(errors.SourceLocation{File: doc.Path}).
			WithSuggestion("name the file after the component it should produce, like Post.md")
	}

	source := sourceLabel(doc.Path, e.options.ProjectRoot)
	name := paths.FlatName(source) + GeneratedSuffix

	meta, body, warnings := frontmatter.Parse(doc.Text)

	diagnostics := make([]Diagnostic, 0, len(warnings))
	for _, warning := range warnings {
		diagnostics = append(diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Message:  warning,
			Path:     doc.Path,
		})
	}

	namespace := csharp.ResolveNamespace(doc.Path, e.options.ProjectRoot, e.options.RootNamespace, meta.Namespace)
	indent := ""
	if namespace != "" {
		indent = memberIndent
	}

	usings := templates.NewUsingSet()
	for _, entry := range applicable {
		usings.AddAll(entry.Names())
	}
	usings.AddAll(meta.Imports)

	data := templates.ComponentData{
		Indent:     indent,
		Attributes: buildAttributes(meta),
		ClassName:  typeName,
		BaseType:   baseTypeFor(meta, e.options),
		Sequence:   markupSequence,
	}

	templateName := templates.ComponentDeclaration
	if mode == ModeFull {
		templateName = templates.ComponentFull

		rendered, err := e.renderer.Render(body)
		if err != nil {
			return nil, errors.WrapRenderError(doc.Path, err)
		}
		data.Markup = assembleMarkup(meta.Title, rendered)
	}

	classText, err := templates.Render(templateName, data)
	if err != nil {
		return nil, wrapTemplateFailure(templateName, doc.Path, name, err)
	}

	header, err := templates.Render(templates.FileHeader, templates.HeaderData{Source: source})
	if err != nil {
		return nil, wrapTemplateFailure(templates.FileHeader, doc.Path, name, err)
	}

	var builder strings.Builder
	builder.WriteString(header)
	builder.WriteString("\n")
	if namespace != "" {
		builder.WriteString("namespace ")
		builder.WriteString(namespace)
		builder.WriteString("\n{\n")
	}
	if block := usings.GenerateUsings(indent); block != "" {
		builder.WriteString(block)
		builder.WriteString("\n")
	}
	builder.WriteString(classText)
	if namespace != "" {
		builder.WriteString("}\n")
	}

	return &GeneratedUnit{
		Name:        name,
		Content:     builder.String(),
		Diagnostics: diagnostics,
	}, nil
}

// UnitName returns the generated file name for a document path: the path
// relative to the project root (the full path for documents outside it),
// flattened, with the generated suffix appended.
func UnitName(docPath, projectRoot string) string {
	return paths.FlatName(sourceLabel(docPath, projectRoot)) + GeneratedSuffix
}

// sourceLabel is the root-relative form of a document path used for unit
// naming and the generated header.
func sourceLabel(docPath, projectRoot string) string {
	if rel, ok := paths.RelativeTo(docPath, projectRoot); ok {
		return rel
	}
	return paths.NormalizeSlash(docPath)
}

// wrapTemplateFailure attaches the failing document and unit to a template
// execution error.
func wrapTemplateFailure(templateName, docPath, unit string, cause error) error {
	return errors.WrapTemplateError(templateName, cause).
		WithLocation(errors.SourceLocation{File: docPath}).
		WithContext("document", docPath).
		WithContext("unit", unit)
}

// buildAttributes assembles the attribute bodies in emission order: one
// route attribute per metadata route with order and duplicates preserved,
// the layout attribute, then the extra attributes verbatim.
func buildAttributes(meta frontmatter.FrontMatter) []string {
	var attributes []string
	for _, route := range meta.Routes {
		attributes = append(attributes, csharp.FormatRouteAttribute(route))
	}
	if meta.Layout != "" {
		attributes = append(attributes, csharp.FormatLayoutAttribute(meta.Layout))
	}
	for _, extra := range meta.Attributes {
		if strings.TrimSpace(extra) == "" {
			continue
		}
		attributes = append(attributes, extra)
	}
	return attributes
}

// baseTypeFor picks the document's base type: the metadata override when
// present, the project default otherwise.
func baseTypeFor(meta frontmatter.FrontMatter, opts Options) string {
	if strings.TrimSpace(meta.BaseType) != "" {
		return meta.BaseType
	}
	return opts.DefaultBaseType
}

// assembleMarkup builds the final embedded markup: the augmented rendered
// body, preceded by the escaped title heading when a title is present.
func assembleMarkup(title, rendered string) string {
	markup := markdown.AugmentExternalLinks(rendered)
	if title != "" {
		markup = "<h1>" + html.EscapeString(title) + "</h1>\n" + markup
	}
	return markup
}
