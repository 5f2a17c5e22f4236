package errors

import "fmt"

// Common construction patterns used throughout the codebase.

// GenerationError represents a failure to generate output for one document
type GenerationError struct {
	*BaseError
	Document string // source document path
	Unit     string // target unit name, when known
}

// NewInvalidInputError creates an error for input the engine cannot accept
func NewInvalidInputError(what, why string) *BaseError {
	return Newf(InvalidInputErrorCode, "invalid %s: %s", what, why)
}

// WrapRenderError wraps a markup renderer failure with document context
func WrapRenderError(docPath string, cause error) *GenerationError {
	return &GenerationError{
		BaseError: Wrapf(RenderErrorCode, cause, "failed to render document '%s'", docPath).
			WithLocation(SourceLocation{File: docPath}).
			WithContext("document", docPath),
		Document: docPath,
	}
}

// WrapGenerateError wraps a failure while emitting a document's unit
func WrapGenerateError(docPath, unit string, cause error) *GenerationError {
	return &GenerationError{
		BaseError: Wrapf(GenerationErrorCode, cause, "failed to generate '%s'", docPath).
			WithLocation(SourceLocation{File: docPath}).
			WithContext("document", docPath).
			WithContext("unit", unit),
		Document: docPath,
		Unit:     unit,
	}
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName string, cause error) *BaseError {
	return Wrapf(TemplateErrorCode, cause, "failed to execute template '%s'", templateName).
		WithContext("template", templateName)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// NewConfigurationError creates an error for an invalid tool configuration
func NewConfigurationError(setting, why string) *BaseError {
	return Newf(ConfigurationErrorCode, "invalid configuration '%s': %s", setting, why)
}
