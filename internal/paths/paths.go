// Package paths provides the textual path algebra used throughout the
// generator. Every operation works on path strings only: prefix comparison,
// separator substitution, and name flattening. Nothing here touches the
// filesystem or resolves symlinks, so results are identical across platforms
// for identical inputs.
package paths

import (
	"strings"
)

// Separator is the canonical separator used for all internal comparisons.
const Separator = '/'

// Normalize canonicalizes a raw path for textual comparison and joining.
//
// It trims surrounding whitespace, replaces every slash, backslash, and
// volume delimiter (":") with sep, and strips one trailing separator.
// Separator runs are not collapsed and empty segments are preserved, so a
// drive-qualified path keeps its drive letter as a leading segment:
// "C:\src" normalizes to "C//src". An empty input and a bare root
// normalize to the empty string; a bare drive token yields just the
// letter.
func Normalize(path string, sep rune) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(p))
	for _, r := range p {
		if r == '/' || r == '\\' || r == ':' {
			b.WriteRune(sep)
		} else {
			b.WriteRune(r)
		}
	}

	return strings.TrimSuffix(b.String(), string(sep))
}

// NormalizeSlash is Normalize with the canonical forward-slash separator.
func NormalizeSlash(path string) string {
	return Normalize(path, Separator)
}

// ContainingDir returns the normalized directory portion of a path: the text
// before the final separator. A bare filename and a file at the root both
// yield the empty string, which is the root scope.
func ContainingDir(path string) string {
	p := NormalizeSlash(path)
	idx := strings.LastIndexByte(p, byte(Separator))
	if idx < 0 {
		return ""
	}
	return p[:idx]
}

// Stem returns the final path segment with its last extension removed.
// A segment that is only an extension (".md") has an empty stem.
func Stem(path string) string {
	p := NormalizeSlash(path)
	if idx := strings.LastIndexByte(p, byte(Separator)); idx >= 0 {
		p = p[idx+1:]
	}
	if idx := strings.LastIndexByte(p, '.'); idx >= 0 {
		p = p[:idx]
	}
	return p
}

// RelativeTo strips root from path, case-insensitively, consuming the one
// joining separator. It reports false when the path does not live under
// root. An empty root matches everything; the path relative to it is the
// path itself minus any leading separator.
func RelativeTo(path, root string) (string, bool) {
	p := NormalizeSlash(path)
	r := NormalizeSlash(root)

	if r == "" {
		return strings.TrimPrefix(p, string(Separator)), true
	}
	if len(p) < len(r) || !strings.EqualFold(p[:len(r)], r) {
		return "", false
	}

	rest := p[len(r):]
	switch {
	case rest == "":
		return "", true
	case rest[0] == byte(Separator):
		return rest[1:], true
	default:
		return "", false
	}
}

// FlatName collapses a normalized relative path into a single flat file
// name by replacing separators with underscores.
func FlatName(rel string) string {
	return strings.ReplaceAll(rel, string(Separator), "_")
}

// HasPrefixFold reports whether s starts with prefix under case-insensitive
// comparison. This is the textual containment test used for ambient import
// scoping.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
