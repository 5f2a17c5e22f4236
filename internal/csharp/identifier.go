// Package csharp holds the target-language rules the generator depends on:
// identifier sanitization, namespace derivation, keyword collision handling,
// and string literal escaping for emitted C# source.
package csharp

import "unicode"

// SanitizeIdentifier rewrites raw into a valid C# identifier. The pipeline
// runs in a fixed order:
//
//  1. a leading decimal digit gets an underscore prepended
//  2. a leading rune that cannot start an identifier is replaced with "_"
//  3. every rune outside the identifier-part categories (letters, marks,
//     digits, connectors) is replaced with "_"
//  4. a result equal to a reserved word gets an underscore appended
//
// The empty string sanitizes to the empty string, which is not a valid
// identifier; callers decide how to handle that. The function is idempotent.
func SanitizeIdentifier(raw string) string {
	if raw == "" {
		return ""
	}

	runes := []rune(raw)
	if unicode.IsDigit(runes[0]) {
		runes = append([]rune{'_'}, runes...)
	}
	if !isIdentifierStart(runes[0]) {
		runes[0] = '_'
	}
	for i, r := range runes {
		if !isIdentifierPart(r) {
			runes[i] = '_'
		}
	}

	name := string(runes)
	if IsReservedWord(name) {
		name += "_"
	}
	return name
}

// isIdentifierStart reports whether r may begin an identifier: a Unicode
// letter, letter number, or underscore.
func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

// isIdentifierPart reports whether r may appear anywhere in an identifier:
// start runes plus decimal digits, combining marks, and connector
// punctuation.
func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r)
}
