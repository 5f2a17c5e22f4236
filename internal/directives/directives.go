// Package directives parses the ambient import directive lines found in
// per-directory imports files. A directive line has the shape
//
//	@using NAME
//	@using static NAME
//
// with required whitespace after the keyword, optional leading whitespace,
// an optional trailing terminator, and ignored trailing content. Lines that
// do not match are skipped, never errors: imports files routinely carry
// other directives and comments.
package directives

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Keyword is the directive keyword that introduces an ambient import line.
const Keyword = "@using"

// StaticQualifier marks an import whose members are brought into scope
// directly. It is carried into the derived name as a "static " prefix.
const StaticQualifier = "static"

// directive is the grammar for one ambient import line. The name token is
// any run of characters excluding whitespace and the terminator.
type directive struct {
	Static bool   `parser:"Using @'static'?"`
	Name   string `parser:"@Token"`
}

// Parser parses ambient import directive lines
type Parser struct {
	parser *participle.Parser[directive]
}

// NewParser creates a new directive parser
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		// The keyword token includes one following whitespace character, so
		// punctuation glued to the keyword lexes as an ordinary Token.
		{Name: "Using", Pattern: `@using\s`},
		{Name: "Terminator", Pattern: `;`},
		{Name: "Token", Pattern: `[^\s;]+`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[directive](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
	)

	return &Parser{parser: parser}
}

// ParseLine parses a single line. It reports ok=false for any line that is
// not a well-formed directive, including a qualifier with no name.
func (p *Parser) ParseLine(line string) (string, bool) {
	parsed, err := p.parser.ParseString("", line, participle.AllowTrailing(true))
	if err != nil {
		return "", false
	}
	if parsed.Static {
		return StaticQualifier + " " + parsed.Name, true
	}
	return parsed.Name, true
}

// ScanText extracts the derived import names from every directive line in
// text, in line order. Duplicate directives are preserved; set semantics
// belong to the consumer.
func (p *Parser) ScanText(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, Keyword) {
			continue
		}
		if name, ok := p.ParseLine(line); ok {
			names = append(names, name)
		}
	}
	return names
}

var defaultParser = NewParser()

// Scan extracts derived import names from text using a shared parser.
func Scan(text string) []string {
	return defaultParser.ScanText(text)
}
