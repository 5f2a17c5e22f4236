package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProjectFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

func TestScanClassifiesDocumentsAndImports(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "Index.md", "# Home\n")
	writeProjectFile(t, root, "_Imports.razor", "@using MyApp.Shared\n")
	writeProjectFile(t, root, "Pages/Post.md", "# Post\n")
	writeProjectFile(t, root, "Pages/_Imports.razor", "@using MyApp.Pages\n")
	writeProjectFile(t, root, "Pages/notes.txt", "not a document\n")

	scanner := NewProjectScanner()
	result, err := scanner.Scan(root, filepath.Join(root, "generated"))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Documents) != 2 {
		t.Errorf("documents = %v, expected 2 entries", result.Documents)
	}
	if len(result.ImportsFiles) != 2 {
		t.Errorf("imports files = %v, expected 2 entries", result.ImportsFiles)
	}

	for _, doc := range result.Documents {
		if filepath.Ext(doc) != ".md" {
			t.Errorf("document %s does not have the markdown extension", doc)
		}
		if !filepath.IsAbs(doc) {
			t.Errorf("document %s is not absolute", doc)
		}
	}
}

func TestScanMatchesCaseInsensitively(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "README.MD", "# Readme\n")
	writeProjectFile(t, root, "Pages/_imports.RAZOR", "@using MyApp\n")

	scanner := NewProjectScanner()
	result, err := scanner.Scan(root, filepath.Join(root, "generated"))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Documents) != 1 {
		t.Errorf("documents = %v, expected the uppercase extension to match", result.Documents)
	}
	if len(result.ImportsFiles) != 1 {
		t.Errorf("imports files = %v, expected the mixed-case name to match", result.ImportsFiles)
	}
}

func TestScanSkipsOutputAndNonContentDirectories(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "Index.md", "# Home\n")
	writeProjectFile(t, root, "generated/Stale.md", "# Should not rescan\n")
	writeProjectFile(t, root, "bin/Debug.md", "# Build output\n")
	writeProjectFile(t, root, "obj/Temp.md", "# Build output\n")
	writeProjectFile(t, root, ".git/HEAD.md", "# Not content\n")
	writeProjectFile(t, root, "node_modules/pkg/readme.md", "# Vendored\n")

	scanner := NewProjectScanner()
	result, err := scanner.Scan(root, filepath.Join(root, "generated"))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Documents) != 1 {
		t.Errorf("documents = %v, expected only the root document", result.Documents)
	}
	if filepath.Base(result.Documents[0]) != "Index.md" {
		t.Errorf("document = %s, expected Index.md", result.Documents[0])
	}
}

func TestScanMissingRoot(t *testing.T) {
	scanner := NewProjectScanner()
	_, err := scanner.Scan(filepath.Join(t.TempDir(), "missing"), "")
	if err == nil {
		t.Error("expected an error for a missing project root")
	}
}

func TestScanRootIsFile(t *testing.T) {
	root := t.TempDir()
	path := writeProjectFile(t, root, "Index.md", "# Home\n")

	scanner := NewProjectScanner()
	_, err := scanner.Scan(path, "")
	if err == nil {
		t.Error("expected an error when the project root is a file")
	}
}
