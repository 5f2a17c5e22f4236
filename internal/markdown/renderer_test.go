package markdown

import (
	"strings"
	"testing"
)

func TestRenderBasics(t *testing.T) {
	renderer := NewRenderer()

	testCases := []struct {
		name     string
		source   string
		expected string
	}{
		{"heading", "# Hello", "<h1>Hello</h1>"},
		{"emphasis", "some *emphasis* here", "<em>emphasis</em>"},
		{"link", "[site](https://example.com)", `<a href="https://example.com">site</a>`},
		{"code span", "use `go build`", "<code>go build</code>"},
		{"strikethrough", "~~gone~~", "<del>gone</del>"},
		{"raw html passes through", "<div class=\"note\">x</div>", `<div class="note">x</div>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			markup, err := renderer.Render(tc.source)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !strings.Contains(markup, tc.expected) {
				t.Errorf("rendered markup %q does not contain %q", markup, tc.expected)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewRenderer()
	source := "# Title\n\nSome **bold** text with a [link](https://example.com).\n\n- one\n- two\n"

	first, err := renderer.Render(source)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := renderer.Render(source)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if first != second {
		t.Error("expected identical markup for identical source")
	}
}

func TestRenderEmpty(t *testing.T) {
	renderer := NewRenderer()
	markup, err := renderer.Render("")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.TrimSpace(markup) != "" {
		t.Errorf("expected empty markup, got %q", markup)
	}
}
