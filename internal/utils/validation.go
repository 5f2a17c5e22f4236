package utils

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain allows chaining multiple validators
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add adds a validator to the chain
func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

// Validate runs all validators in the chain
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// Common validation functions

// NotEmpty validates that a string is not empty
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: "cannot be empty",
			}
		}
		return nil
	}
}

// NotNil validates that a pointer is not nil
func NotNil[T any](field string) Validator[*T] {
	return func(value *T) error {
		if value == nil {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: "cannot be nil",
			}
		}
		return nil
	}
}

// HasSuffix validates that a string has a specific suffix
func HasSuffix(field, suffix string) Validator[string] {
	return func(value string) error {
		if !strings.HasSuffix(value, suffix) {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: fmt.Sprintf("must end with '%s'", suffix),
			}
		}
		return nil
	}
}

// IsOneOf validates that a value is one of the allowed values
func IsOneOf[T comparable](field string, allowed ...T) Validator[T] {
	return func(value T) error {
		for _, allowedValue := range allowed {
			if value == allowedValue {
				return nil
			}
		}

		return ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("must be one of: %v", allowed),
		}
	}
}

// MinValue validates that an integer is at least the given minimum
func MinValue(field string, min int) Validator[int] {
	return func(value int) error {
		if value < min {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: fmt.Sprintf("must be at least %d", min),
			}
		}
		return nil
	}
}

// ValidateEach validates each item in a slice using the provided validator
func ValidateEach[T any](field string, itemValidator Validator[T]) Validator[[]T] {
	return func(value []T) error {
		for i, item := range value {
			if err := itemValidator(item); err != nil {
				return ValidationError{
					Field:   fmt.Sprintf("%s[%d]", field, i),
					Value:   item,
					Message: err.Error(),
				}
			}
		}
		return nil
	}
}

// Custom validates using a custom function
func Custom[T any](field string, message string, validatorFunc func(T) bool) Validator[T] {
	return func(value T) error {
		if !validatorFunc(value) {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: message,
			}
		}
		return nil
	}
}

// Conditional validates only if the condition is true
func Conditional[T any](condition func(T) bool, validator Validator[T]) Validator[T] {
	return func(value T) error {
		if condition(value) {
			return validator(value)
		}
		return nil
	}
}

// Common validation patterns for specific use cases

// ValidateNamespaceText validates a configured namespace value. An empty
// value is allowed (components are emitted without a namespace block);
// a non-empty value must not contain whitespace or empty dot segments.
func ValidateNamespaceText(field string) Validator[string] {
	nonEmpty := func(value string) bool { return value != "" }
	return Conditional(nonEmpty, NewValidatorChain(
		Custom(field, "must not contain whitespace", func(value string) bool {
			return !strings.ContainsAny(value, " \t\r\n")
		}),
		Custom(field, "must not contain empty dot segments", func(value string) bool {
			for _, segment := range strings.Split(value, ".") {
				if segment == "" {
					return false
				}
			}
			return true
		}),
	).Validate)
}

// ValidateTypeName validates a configured type name such as the default
// component base. The value may be namespace qualified.
func ValidateTypeName(field string) Validator[string] {
	return NewValidatorChain(
		NotEmpty(field),
		Custom(field, "must not contain whitespace", func(value string) bool {
			return !strings.ContainsAny(value, " \t\r\n")
		}),
	).Validate
}

// ValidateJobCount validates a worker count setting
func ValidateJobCount(field string) Validator[int] {
	return MinValue(field, 1)
}
