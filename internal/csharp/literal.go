package csharp

import "strings"

// EscapeVerbatim escapes s for embedding inside a C# verbatim string
// literal (@"..."), where the only escape is a doubled double quote.
func EscapeVerbatim(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// EscapeLiteral escapes s for embedding inside a regular C# string literal.
func EscapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
