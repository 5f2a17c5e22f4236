// Package templates holds the C# source templates for generated components
// and the helpers that render them.
package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/toyz/dendrite/internal/csharp"
)

// Template names registered in the default registry.
const (
	FileHeader           = "file-header"
	ComponentFull        = "component-full"
	ComponentDeclaration = "component-declaration"
)

// HeaderData feeds the file header template
type HeaderData struct {
	Source string // document path the unit was generated from
}

// ComponentData feeds the component class templates. Markup is raw HTML;
// verbatim string escaping happens inside the template.
type ComponentData struct {
	Indent     string   // per-line indent, "" at top level
	Attributes []string // attribute bodies without surrounding brackets
	ClassName  string
	BaseType   string
	Sequence   int // render tree sequence number for the markup content
	Markup     string
}

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerComponentTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	tmpl, exists := tr.templates[name]
	return tmpl, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	tmpl, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return tmpl
}

// registerComponentTemplates registers the generated-file templates
func (tr *TemplateRegistry) registerComponentTemplates() {
	tr.templates[FileHeader] = `// <auto-generated/>
// Code generated by dendrite. DO NOT EDIT.
// Source: {{.Source}}
`

	tr.templates[ComponentFull] = `{{range .Attributes}}{{$.Indent}}[{{.}}]
{{end}}{{.Indent}}public partial class {{.ClassName}} : {{.BaseType}}
{{.Indent}}{
{{.Indent}}    protected override void BuildRenderTree(global::Microsoft.AspNetCore.Components.Rendering.RenderTreeBuilder __builder)
{{.Indent}}    {
{{.Indent}}        __builder.AddMarkupContent({{.Sequence}}, @"{{escapeVerbatim .Markup}}");
{{.Indent}}    }
{{.Indent}}}
`

	tr.templates[ComponentDeclaration] = `{{range .Attributes}}{{$.Indent}}[{{.}}]
{{end}}{{.Indent}}public partial class {{.ClassName}} : {{.BaseType}}
{{.Indent}}{
{{.Indent}}}
`
}

// Render executes a registered template with the given data
func Render(name string, data interface{}) (string, error) {
	templateStr := DefaultTemplateRegistry.MustGet(name)

	funcMap := template.FuncMap{
		"escapeVerbatim": csharp.EscapeVerbatim,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// Global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
