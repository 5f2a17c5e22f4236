package paths

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		sep      rune
		expected string
	}{
		{"empty", "", '/', ""},
		{"whitespace only", "   \t", '/', ""},
		{"bare root", "/", '/', ""},
		{"bare backslash root", `\`, '/', ""},
		{"drive only", "C:", '/', "C"},
		{"drive root", `C:\`, '/', "C/"},
		{"drive path", `C:\Users\Me\doc.md`, '/', "C//Users/Me/doc.md"},
		{"lowercase drive", `c:\pages`, '/', "c//pages"},
		{"mixed separators", `src\proj/Pages\Post.md`, '/', "src/proj/Pages/Post.md"},
		{"trailing separator dropped", "/src/proj/", '/', "/src/proj"},
		{"consecutive separators preserved", "/a//b", '/', "/a//b"},
		{"unicode preserved", "/päges/café.md", '/', "/päges/café.md"},
		{"backslash target separator", "/a/b", '\\', `\a\b`},
		{"surrounding whitespace trimmed", "  /a/b  ", '/', "/a/b"},
		{"colon mid-path", "a:b/c", '/', "a/b/c"},
		{"colon run preserved", "::x/y", '/', "//x/y"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Normalize(tc.path, tc.sep)
			if result != tc.expected {
				t.Errorf("Normalize(%q, %q) = %q, expected %q", tc.path, tc.sep, result, tc.expected)
			}
		})
	}
}

func TestContainingDir(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{"nested file", "/src/proj/Pages/Post.md", "/src/proj/Pages"},
		{"file at root", "/Post.md", ""},
		{"bare filename", "Post.md", ""},
		{"empty", "", ""},
		{"windows path", `C:\proj\Pages\Post.md`, "C//proj/Pages"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ContainingDir(tc.path)
			if result != tc.expected {
				t.Errorf("ContainingDir(%q) = %q, expected %q", tc.path, result, tc.expected)
			}
		})
	}
}

func TestStem(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{"simple", "/Pages/Post.md", "Post"},
		{"no extension", "/Pages/README", "README"},
		{"multiple dots", "/Pages/notes.draft.md", "notes.draft"},
		{"extension only", "/Pages/.md", ""},
		{"bare filename", "Post.md", "Post"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Stem(tc.path)
			if result != tc.expected {
				t.Errorf("Stem(%q) = %q, expected %q", tc.path, result, tc.expected)
			}
		})
	}
}

func TestRelativeTo(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		root     string
		expected string
		ok       bool
	}{
		{"under root", "/src/proj/Pages/Post.md", "/src/proj", "Pages/Post.md", true},
		{"case-insensitive root", "/SRC/Proj/Post.md", "/src/proj", "Post.md", true},
		{"path equals root", "/src/proj", "/src/proj", "", true},
		{"outside root", "/other/Post.md", "/src/proj", "", false},
		{"sibling prefix is not containment", "/src/projects/Post.md", "/src/proj", "", false},
		{"empty root", "/a/b.md", "", "a/b.md", true},
		{"windows path under windows root", `C:\src\proj\Post.md`, `C:\src\proj`, "Post.md", true},
		{"drive segment blocks unix root match", `C:\src\proj\Post.md`, "/src/proj", "", false},
		{"trailing separator on root", "/src/proj/Pages/Post.md", "/src/proj/", "Pages/Post.md", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := RelativeTo(tc.path, tc.root)
			if ok != tc.ok || result != tc.expected {
				t.Errorf("RelativeTo(%q, %q) = (%q, %v), expected (%q, %v)",
					tc.path, tc.root, result, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestFlatName(t *testing.T) {
	if got := FlatName("Pages/Blog/Post.md"); got != "Pages_Blog_Post.md" {
		t.Errorf("FlatName = %q, expected %q", got, "Pages_Blog_Post.md")
	}
	if got := FlatName("Post.md"); got != "Post.md" {
		t.Errorf("FlatName = %q, expected %q", got, "Post.md")
	}
}

func TestHasPrefixFold(t *testing.T) {
	if !HasPrefixFold("/a/b/c", "/A/B") {
		t.Error("expected case-insensitive prefix match")
	}
	if HasPrefixFold("/a", "/a/b") {
		t.Error("prefix longer than string must not match")
	}
	if !HasPrefixFold("/anything", "") {
		t.Error("empty prefix matches everything")
	}
}
