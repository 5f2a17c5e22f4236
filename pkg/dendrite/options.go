package dendrite

import "strings"

// DefaultComponentBase is the base type generated components derive from
// when neither the project options nor a document's metadata names one.
const DefaultComponentBase = "ComponentBase"

// Options is the project-level configuration for generation. It is a plain
// comparable value; two Options with the same fields behave identically and
// produce the same cache keys.
type Options struct {
	// RootNamespace prefixes every derived namespace. Empty means
	// components get only the directory-derived suffix.
	RootNamespace string

	// ProjectRoot anchors relative paths for namespace derivation and unit
	// naming. It is compared textually, never resolved on disk.
	ProjectRoot string

	// DefaultBaseType is the base type for documents that do not override
	// it. Blank falls back to DefaultComponentBase.
	DefaultBaseType string
}

// NewOptions builds Options, applying the base type fallback
func NewOptions(rootNamespace, projectRoot, defaultBaseType string) Options {
	return Options{
		RootNamespace:   rootNamespace,
		ProjectRoot:     projectRoot,
		DefaultBaseType: baseTypeOrDefault(defaultBaseType),
	}
}

func baseTypeOrDefault(baseType string) string {
	if strings.TrimSpace(baseType) == "" {
		return DefaultComponentBase
	}
	return baseType
}
