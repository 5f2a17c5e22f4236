package templates

import (
	"strings"
	"testing"
)

func TestRenderFileHeader(t *testing.T) {
	result, err := Render(FileHeader, HeaderData{Source: "Pages/Post.md"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.HasPrefix(result, "// <auto-generated/>\n") {
		t.Errorf("header missing auto-generated marker: %q", result)
	}
	if !strings.Contains(result, "DO NOT EDIT") {
		t.Error("header missing DO NOT EDIT marker")
	}
	if !strings.Contains(result, "Source: Pages/Post.md") {
		t.Error("header missing source path")
	}
}

func TestRenderComponentFull(t *testing.T) {
	data := ComponentData{
		Indent: "    ",
		Attributes: []string{
			`global::Microsoft.AspNetCore.Components.RouteAttribute("/blog/post")`,
			"Authorize",
		},
		ClassName: "Post",
		BaseType:  "ComponentBase",
		Sequence:  0,
		Markup:    "<h1>Hi</h1>\n<p>a \"quoted\" word</p>\n",
	}

	result, err := Render(ComponentFull, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expectations := []string{
		`    [global::Microsoft.AspNetCore.Components.RouteAttribute("/blog/post")]`,
		"    [Authorize]",
		"    public partial class Post : ComponentBase",
		"    protected override void BuildRenderTree(global::Microsoft.AspNetCore.Components.Rendering.RenderTreeBuilder __builder)",
		`__builder.AddMarkupContent(0, @"<h1>Hi</h1>`,
		`<p>a ""quoted"" word</p>`,
	}
	for _, expected := range expectations {
		if !strings.Contains(result, expected) {
			t.Errorf("generated component missing %q in:\n%s", expected, result)
		}
	}
}

func TestRenderComponentFullNoIndent(t *testing.T) {
	data := ComponentData{
		ClassName: "Post",
		BaseType:  "ComponentBase",
		Markup:    "<p>x</p>\n",
	}

	result, err := Render(ComponentFull, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.HasPrefix(result, "public partial class Post : ComponentBase\n") {
		t.Errorf("expected class at column zero, got:\n%s", result)
	}
}

func TestRenderComponentDeclaration(t *testing.T) {
	data := ComponentData{
		Indent:     "    ",
		Attributes: []string{`global::Microsoft.AspNetCore.Components.RouteAttribute("/a")`},
		ClassName:  "Post",
		BaseType:   "DocPageBase",
	}

	result, err := Render(ComponentDeclaration, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(result, "public partial class Post : DocPageBase") {
		t.Errorf("declaration missing class header:\n%s", result)
	}
	if strings.Contains(result, "BuildRenderTree") {
		t.Error("declaration-only output must not contain a render method")
	}
	if !strings.Contains(result, "    {\n    }\n") {
		t.Errorf("declaration should have an empty body:\n%s", result)
	}
}

func TestRenderUnknownTemplatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown template")
		}
	}()
	_, _ = Render("no-such-template", nil)
}
