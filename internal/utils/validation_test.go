package utils

import (
	"strings"
	"testing"
)

func TestNotEmpty(t *testing.T) {
	validator := NotEmpty("name")

	if err := validator("value"); err != nil {
		t.Errorf("expected no error for non-empty string, got %v", err)
	}

	err := validator("")
	if err == nil {
		t.Fatal("expected error for empty string")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("error should mention the field, got %q", err.Error())
	}
}

func TestNotNil(t *testing.T) {
	validator := NotNil[int]("pointer")

	value := 42
	if err := validator(&value); err != nil {
		t.Errorf("expected no error for non-nil pointer, got %v", err)
	}

	if err := validator(nil); err == nil {
		t.Error("expected error for nil pointer")
	}
}

func TestHasSuffix(t *testing.T) {
	validator := HasSuffix("output", ".g.cs")

	if err := validator("Pages_Index.md.g.cs"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator("Pages_Index.cs"); err == nil {
		t.Error("expected error for wrong suffix")
	}
}

func TestIsOneOf(t *testing.T) {
	validator := IsOneOf("mode", "full", "declaration")

	if err := validator("full"); err != nil {
		t.Errorf("expected no error for allowed value, got %v", err)
	}

	err := validator("partial")
	if err == nil {
		t.Fatal("expected error for disallowed value")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestMinValue(t *testing.T) {
	validator := MinValue("jobs", 1)

	if err := validator(1); err != nil {
		t.Errorf("expected no error at the minimum, got %v", err)
	}
	if err := validator(8); err != nil {
		t.Errorf("expected no error above the minimum, got %v", err)
	}
	if err := validator(0); err == nil {
		t.Error("expected error below the minimum")
	}
}

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain(
		NotEmpty("value"),
		HasSuffix("value", ".md"),
	)

	if err := chain.Validate("readme.md"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	// First failing validator wins
	err := chain.Validate("")
	if err == nil {
		t.Fatal("expected error for empty value")
	}
	if !strings.Contains(err.Error(), "cannot be empty") {
		t.Errorf("expected the emptiness error first, got %q", err.Error())
	}
}

func TestValidateEach(t *testing.T) {
	validator := ValidateEach("paths", NotEmpty("path"))

	if err := validator([]string{"a", "b"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	err := validator([]string{"a", "", "c"})
	if err == nil {
		t.Fatal("expected error for empty item")
	}
	if !strings.Contains(err.Error(), "paths[1]") {
		t.Errorf("error should name the failing index, got %q", err.Error())
	}
}

func TestConditional(t *testing.T) {
	nonEmpty := func(value string) bool { return value != "" }
	validator := Conditional(nonEmpty, HasSuffix("value", ".md"))

	// Condition false skips validation entirely
	if err := validator(""); err != nil {
		t.Errorf("expected no error when condition is false, got %v", err)
	}

	if err := validator("notes.txt"); err == nil {
		t.Error("expected error when condition is true and validator fails")
	}
}

func TestValidateNamespaceText(t *testing.T) {
	validator := ValidateNamespaceText("rootNamespace")

	valid := []string{"", "MyApp", "MyApp.Web", "MyApp.Web.Components", "_internal.Pages"}
	for _, value := range valid {
		if err := validator(value); err != nil {
			t.Errorf("expected %q to be valid, got %v", value, err)
		}
	}

	invalid := []string{"My App", "MyApp.", ".MyApp", "MyApp..Web", "MyApp\tWeb"}
	for _, value := range invalid {
		if err := validator(value); err == nil {
			t.Errorf("expected %q to be rejected", value)
		}
	}
}

func TestValidateTypeName(t *testing.T) {
	validator := ValidateTypeName("defaultBaseType")

	valid := []string{"ComponentBase", "MyApp.Shared.PageBase", "global::My.Base"}
	for _, value := range valid {
		if err := validator(value); err != nil {
			t.Errorf("expected %q to be valid, got %v", value, err)
		}
	}

	invalid := []string{"", "Page Base", "Page\tBase"}
	for _, value := range invalid {
		if err := validator(value); err == nil {
			t.Errorf("expected %q to be rejected", value)
		}
	}
}

func TestValidateJobCount(t *testing.T) {
	validator := ValidateJobCount("jobs")

	if err := validator(4); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := validator(0); err == nil {
		t.Error("expected error for zero jobs")
	}
	if err := validator(-1); err == nil {
		t.Error("expected error for negative jobs")
	}
}
