package parser

import (
	"fmt"

	"github.com/tdl-lang/tdl/internal/diag"
	"github.com/tdl-lang/tdl/internal/lexer"
)

// DefaultFilename is used in diagnostics when no source name was given.
const DefaultFilename = "<string>"

// SyntaxError is the single error value a failed parse surfaces. It
// covers both lexical and grammar failures and carries everything needed
// for a caret-style rendering.
type SyntaxError struct {
	Filename string
	Line     int    // 1-based
	Column   int    // 1-based
	LineText string // the offending line, without its newline
	Message  string

	Stage diag.Stage
	Code  diag.Code
	Span  diag.Span
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
}

// ToDiagnostic converts the error into a shared diagnostic structure.
func (e *SyntaxError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    e.Stage,
		Severity: diag.SeverityError,
		Code:     e.Code,
		Message:  e.Message,
		Span:     e.Span,
	}
}

// syntaxError builds a fatal parse error positioned at the given token.
// Line text and column are recomputed from the token's absolute offset
// against the full source.
func (p *Parser) syntaxError(msg string, tok lexer.Token) *SyntaxError {
	ctx := diag.ContextAt(p.src, tok.Span.Start)

	code := diag.CodeParseUnexpectedToken
	if tok.Type == lexer.EOF {
		code = diag.CodeParseUnexpectedEOF
	}

	return &SyntaxError{
		Filename: p.filename,
		Line:     tok.Span.Line,
		Column:   ctx.Column,
		LineText: ctx.LineText,
		Message:  msg,
		Stage:    diag.StageParser,
		Code:     code,
		Span: diag.Span{
			Filename: p.filename,
			Line:     tok.Span.Line,
			Column:   ctx.Column,
			Start:    tok.Span.Start,
			End:      tok.Span.End,
		},
	}
}

// lexicalError converts the tokenizer's fatal error into the shared
// syntax error shape. Both kinds surface identically to callers.
func (p *Parser) lexicalError(lexErr *lexer.LexerError) *SyntaxError {
	ctx := diag.ContextAt(p.src, lexErr.Span.Start)

	return &SyntaxError{
		Filename: p.filename,
		Line:     lexErr.Span.Line,
		Column:   ctx.Column,
		LineText: ctx.LineText,
		Message:  lexErr.Message,
		Stage:    diag.StageLexer,
		Code:     lexErr.ToDiagnostic().Code,
		Span: diag.Span{
			Filename: p.filename,
			Line:     lexErr.Span.Line,
			Column:   ctx.Column,
			Start:    lexErr.Span.Start,
			End:      lexErr.Span.End,
		},
	}
}

// unexpected formats the standard expected/found message for a token.
func (p *Parser) unexpected(expected string, tok lexer.Token) *SyntaxError {
	found := tok.Raw
	if tok.Type == lexer.EOF {
		found = "end of input"
	} else {
		found = "`" + found + "`"
	}
	return p.syntaxError(fmt.Sprintf("expected %s, found %s", expected, found), tok)
}
