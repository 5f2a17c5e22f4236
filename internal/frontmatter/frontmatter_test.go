package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullHeader(t *testing.T) {
	doc := `---
route:
  - /blog/post
  - /blog/2024/post
title: My Post
using:
  - MyApp.Shared
  - static System.Math
namespace: Custom.Space
attribute:
  - Authorize
layout: MainLayout
inherits: DocPageBase
---
# Body starts here
`

	fm, body, warnings := Parse(doc)
	require.Empty(t, warnings)

	assert.Equal(t, []string{"/blog/post", "/blog/2024/post"}, fm.Routes)
	assert.Equal(t, "My Post", fm.Title)
	assert.Equal(t, []string{"MyApp.Shared", "static System.Math"}, fm.Imports)
	assert.Equal(t, "Custom.Space", fm.Namespace)
	assert.Equal(t, []string{"Authorize"}, fm.Attributes)
	assert.Equal(t, "MainLayout", fm.Layout)
	assert.Equal(t, "DocPageBase", fm.BaseType)
	assert.Equal(t, "# Body starts here\n", body)
}

func TestParseScalarAndListAreUniform(t *testing.T) {
	scalar, _, _ := Parse("---\nroute: /one\n---\nbody")
	list, _, _ := Parse("---\nroute:\n  - /one\n---\nbody")
	assert.Equal(t, scalar.Routes, list.Routes)
	assert.Equal(t, []string{"/one"}, scalar.Routes)
}

func TestParseScalarFieldsTakeFirstElement(t *testing.T) {
	fm, _, _ := Parse("---\ntitle:\n  - First\n  - Second\n---\n")
	assert.Equal(t, "First", fm.Title)

	fm, _, _ = Parse("---\ninherits:\n  - BaseA\n  - BaseB\n---\n")
	assert.Equal(t, "BaseA", fm.BaseType)
}

func TestParseNoHeader(t *testing.T) {
	doc := "# Just markdown\n\nNo header here.\n"
	fm, body, warnings := Parse(doc)

	assert.Empty(t, warnings)
	assert.Equal(t, FrontMatter{}, fm)
	assert.Equal(t, doc, body)
}

func TestParseEmptyDocument(t *testing.T) {
	fm, body, warnings := Parse("")
	assert.Empty(t, warnings)
	assert.Equal(t, FrontMatter{}, fm)
	assert.Equal(t, "", body)
}

func TestParseUnterminatedHeader(t *testing.T) {
	doc := "---\ntitle: Oops\nno closing fence\n"
	fm, body, warnings := Parse(doc)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "not terminated")
	assert.Equal(t, FrontMatter{}, fm)
	assert.Equal(t, doc, body)
}

func TestParseMalformedYAMLDegrades(t *testing.T) {
	doc := "---\ntitle: [unclosed\n---\nbody text\n"
	fm, body, warnings := Parse(doc)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "malformed metadata header")
	assert.Equal(t, FrontMatter{}, fm)
	assert.Equal(t, "body text\n", body)
}

func TestParseRouteDuplicatesPreserved(t *testing.T) {
	fm, _, _ := Parse("---\nroute:\n  - /a\n  - /a\n  - /b\n---\n")
	assert.Equal(t, []string{"/a", "/a", "/b"}, fm.Routes)
}

func TestParseDotsClosingFence(t *testing.T) {
	fm, body, warnings := Parse("---\ntitle: T\n...\nbody\n")
	assert.Empty(t, warnings)
	assert.Equal(t, "T", fm.Title)
	assert.Equal(t, "body\n", body)
}

func TestParseCRLFDocument(t *testing.T) {
	doc := "---\r\ntitle: Windows\r\n---\r\nbody\r\n"
	fm, body, warnings := Parse(doc)

	assert.Empty(t, warnings)
	assert.Equal(t, "Windows", fm.Title)
	assert.Equal(t, "body\r\n", body)
}

func TestParseLeadingBlankLinesBeforeFence(t *testing.T) {
	fm, _, warnings := Parse("\n\n---\ntitle: T\n---\nbody")
	assert.Empty(t, warnings)
	assert.Equal(t, "T", fm.Title)
}

func TestParseNullValuesAreAbsent(t *testing.T) {
	fm, _, warnings := Parse("---\ntitle:\nroute:\n---\n")
	assert.Empty(t, warnings)
	assert.Equal(t, "", fm.Title)
	assert.Empty(t, fm.Routes)
}

func TestParseUnsupportedShapesWarn(t *testing.T) {
	fm, _, warnings := Parse("---\ntitle:\n  nested: map\nroute: /ok\n---\n")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unsupported value shape")
	assert.Equal(t, "", fm.Title)
	assert.Equal(t, []string{"/ok"}, fm.Routes)
}

func TestParseUnknownKeysIgnored(t *testing.T) {
	fm, _, warnings := Parse("---\nauthor: Someone\ntags: [a, b]\ntitle: T\n---\n")
	assert.Empty(t, warnings)
	assert.Equal(t, "T", fm.Title)
}

func TestParseHeaderOnlyDocument(t *testing.T) {
	fm, body, _ := Parse("---\ntitle: T\n---")
	assert.Equal(t, "T", fm.Title)
	assert.Equal(t, "", strings.TrimSpace(body))
}

func TestParseNonMappingHeaderWarns(t *testing.T) {
	_, _, warnings := Parse("---\n- just\n- a list\n---\nbody")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "not a key/value mapping")
}
