package markdown

import "testing"

func TestAugmentExternalLinks(t *testing.T) {
	testCases := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			"https link",
			`<p><a href="https://example.com">site</a></p>`,
			`<p><a href="https://example.com" target="_blank">site</a></p>`,
		},
		{
			"http link",
			`<a href="http://example.com">x</a>`,
			`<a href="http://example.com" target="_blank">x</a>`,
		},
		{
			"custom scheme",
			`<a href="ftp+ssh://host/file">x</a>`,
			`<a href="ftp+ssh://host/file" target="_blank">x</a>`,
		},
		{
			"relative link untouched",
			`<a href="/about">about</a>`,
			`<a href="/about">about</a>`,
		},
		{
			"fragment link untouched",
			`<a href="#section">jump</a>`,
			`<a href="#section">jump</a>`,
		},
		{
			"mailto untouched",
			`<a href="mailto:a@b.c">mail</a>`,
			`<a href="mailto:a@b.c">mail</a>`,
		},
		{
			"mixed links",
			`<a href="/x">a</a> <a href="https://e.com/p">b</a>`,
			`<a href="/x">a</a> <a href="https://e.com/p" target="_blank">b</a>`,
		},
		{
			"link with title keeps attributes",
			`<a href="https://e.com" title="t">b</a>`,
			`<a href="https://e.com" target="_blank" title="t">b</a>`,
		},
		{
			"no links",
			`<p>plain</p>`,
			`<p>plain</p>`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := AugmentExternalLinks(tc.markup)
			if result != tc.expected {
				t.Errorf("AugmentExternalLinks(%q) = %q, expected %q", tc.markup, result, tc.expected)
			}
		})
	}
}
