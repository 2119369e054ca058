package lexer

import "strconv"

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // rune offset of the first character
	End      int    // exclusive end offset
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Raw   string // exact runes from source
	Value string // decoded value (strings without quotes/escapes, others same as Raw)
	Span  Span
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	NAME   TokenType = "NAME"   // foo, foo.bar.Baz, `class`
	NUMBER TokenType = "NUMBER" // 42, -3, 1.5
	STRING TokenType = "STRING" // "hello", 'hello'

	// Operators and punctuation
	ARROW     TokenType = "->"
	ASTERISK  TokenType = "*"
	AT        TokenType = "@"
	COLON     TokenType = ":"
	COMMA     TokenType = ","
	DOT       TokenType = "."
	INTERSECT TokenType = "&"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	MINUS     TokenType = "-"
	PLUS      TokenType = "+"
	QUESTION  TokenType = "?"
	SUBCLASS  TokenType = "<="
	UNION     TokenType = "|"

	// Keywords
	CLASS     TokenType = "CLASS"
	DEF       TokenType = "DEF"
	INTERFACE TokenType = "INTERFACE"
	PASS      TokenType = "PASS"
	RAISE     TokenType = "RAISE"
)

var keywords = map[string]TokenType{
	"class":     CLASS,
	"def":       DEF,
	"interface": INTERFACE,
	"pass":      PASS,
	"raise":     RAISE,
}

// LookupIdent checks if the identifier is a keyword. Backtick-escaped
// identifiers never reach this lookup; they are always plain NAMEs.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return NAME
}

// IsFloat reports whether a NUMBER token carries a fractional value.
// A literal is a float exactly when its text contains a decimal point.
func (t Token) IsFloat() bool {
	if t.Type != NUMBER {
		return false
	}
	for _, r := range t.Raw {
		if r == '.' {
			return true
		}
	}
	return false
}

// Int returns the decoded integer value of a NUMBER token.
func (t Token) Int() int64 {
	n, _ := strconv.ParseInt(t.Raw, 10, 64)
	return n
}

// Float returns the decoded floating-point value of a NUMBER token.
func (t Token) Float() float64 {
	f, _ := strconv.ParseFloat(t.Raw, 64)
	return f
}
