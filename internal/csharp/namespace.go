package csharp

import (
	"strings"

	"github.com/toyz/dendrite/internal/paths"
)

// ResolveNamespace computes the namespace for a document.
//
// A non-blank override wins and is used verbatim. Otherwise the document's
// containing directory is taken relative to the project root (full
// directory when the document lives outside it), each segment is sanitized
// independently, empty segments are dropped, and the dot-joined suffix is
// appended to the root namespace.
func ResolveNamespace(docPath, projectRoot, rootNamespace, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}

	dir := paths.ContainingDir(docPath)
	rel, ok := paths.RelativeTo(dir, projectRoot)
	if !ok {
		rel = dir
	}

	var parts []string
	for _, seg := range strings.Split(rel, "/") {
		if seg == "" {
			continue
		}
		parts = append(parts, SanitizeIdentifier(seg))
	}

	return JoinNamespace(rootNamespace, strings.Join(parts, "."))
}

// JoinNamespace joins a root namespace and a derived suffix with a dot.
// Either side may be empty, in which case the other is returned alone.
func JoinNamespace(root, suffix string) string {
	switch {
	case root == "":
		return suffix
	case suffix == "":
		return root
	default:
		return root + "." + suffix
	}
}
