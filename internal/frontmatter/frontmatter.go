// Package frontmatter extracts and models the YAML metadata header a
// document may carry. The header is fenced by a leading "---" line and a
// closing "---" or "..." line; everything after the closing fence is the
// document body.
//
// Parsing never fails a document. A structurally broken header degrades to
// the identity model and the problems surface as warnings.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Recognized header keys. Every value is modeled as a string list; scalars
// become one-element lists. Unknown keys are ignored.
const (
	KeyRoute     = "route"
	KeyTitle     = "title"
	KeyUsing     = "using"
	KeyNamespace = "namespace"
	KeyAttribute = "attribute"
	KeyLayout    = "layout"
	KeyInherits  = "inherits"
)

// FrontMatter is the typed view of a document's metadata header. The zero
// value is the identity model: no routes, no title, no overrides.
type FrontMatter struct {
	Routes     []string // route templates, order and duplicates preserved
	Title      string   // page title, empty when absent
	Imports    []string // extra import names unioned with ambient imports
	Namespace  string   // namespace override, empty when absent
	Attributes []string // extra attribute bodies, order preserved
	Layout     string   // layout type name, empty when absent
	BaseType   string   // base type override, empty when absent
}

// Parse splits text into metadata and body and builds the typed model.
// The returned warnings describe degraded constructs (unterminated header,
// malformed YAML, unsupported value shapes); they never abort parsing.
func Parse(text string) (FrontMatter, string, []string) {
	header, body, found, warnings := split(text)
	if !found {
		return FrontMatter{}, body, warnings
	}

	fields, fieldWarnings := parseFields(header)
	warnings = append(warnings, fieldWarnings...)

	fm := FrontMatter{
		Routes:     fields[KeyRoute],
		Title:      firstOrEmpty(fields[KeyTitle]),
		Imports:    fields[KeyUsing],
		Namespace:  firstOrEmpty(fields[KeyNamespace]),
		Attributes: fields[KeyAttribute],
		Layout:     firstOrEmpty(fields[KeyLayout]),
		BaseType:   firstOrEmpty(fields[KeyInherits]),
	}
	return fm, body, warnings
}

// firstOrEmpty converts a uniform list-shaped field to its scalar reading:
// the first element, or "" when the list is empty.
func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// split locates the fenced header. It reports found=false when the first
// non-blank line is not an opening fence or the header never terminates,
// in which case body is the whole text.
func split(text string) (header, body string, found bool, warnings []string) {
	content := strings.TrimPrefix(text, "\uFEFF")

	pos := 0
	line, next := nextLine(content, pos)
	for strings.TrimSpace(line) == "" && pos < len(content) {
		pos = next
		line, next = nextLine(content, pos)
	}
	if strings.TrimRight(line, " \t\r") != "---" {
		return "", text, false, nil
	}

	headerStart := next
	pos = next
	for pos < len(content) {
		line, next = nextLine(content, pos)
		fence := strings.TrimRight(line, " \t\r")
		if fence == "---" || fence == "..." {
			return content[headerStart:pos], content[next:], true, nil
		}
		pos = next
	}

	return "", text, false, []string{"metadata header is not terminated, treating document as body only"}
}

// nextLine returns the line starting at start (without the newline) and the
// offset of the following line.
func nextLine(s string, start int) (string, int) {
	if idx := strings.IndexByte(s[start:], '\n'); idx >= 0 {
		return s[start : start+idx], start + idx + 1
	}
	return s[start:], len(s)
}

// parseFields parses the header YAML into the uniform field model: every
// key maps to a list of scalar strings.
func parseFields(header string) (map[string][]string, []string) {
	fields := make(map[string][]string)

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(header), &root); err != nil {
		return fields, []string{fmt.Sprintf("malformed metadata header: %v", err)}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fields, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return fields, []string{"metadata header is not a key/value mapping"}
	}

	var warnings []string
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			warnings = append(warnings, "metadata key is not a scalar, entry ignored")
			continue
		}

		values, warn := scalarList(value, key.Value)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		if len(values) > 0 {
			fields[key.Value] = append(fields[key.Value], values...)
		}
	}
	return fields, warnings
}

// scalarList coerces a value node into the uniform list shape. Null values
// contribute nothing. Non-scalar sequence items and nested mappings are
// dropped with a warning.
func scalarList(node *yaml.Node, key string) ([]string, string) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, ""
		}
		return []string{node.Value}, ""
	case yaml.SequenceNode:
		var values []string
		warn := ""
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode && item.Tag != "!!null" {
				values = append(values, item.Value)
			} else {
				warn = fmt.Sprintf("metadata key '%s' has a non-scalar list item, item ignored", key)
			}
		}
		return values, warn
	default:
		return nil, fmt.Sprintf("metadata key '%s' has an unsupported value shape, key ignored", key)
	}
}
