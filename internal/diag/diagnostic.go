package diag

import "fmt"

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerIllegalRune          Code = "LEXER_ILLEGAL_RUNE"
	CodeLexerUnterminatedString   Code = "LEXER_UNTERMINATED_STRING"
	CodeLexerUnterminatedBacktick Code = "LEXER_UNTERMINATED_BACKTICK"

	// Parser errors
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseUnexpectedEOF   Code = "PARSE_UNEXPECTED_EOF"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a front-end diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Notes    []string // Additional notes to display
	Help     string   // Optional help text
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}
