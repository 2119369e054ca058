package parser_test

import (
	"strings"
	"testing"

	"github.com/tdl-lang/tdl/internal/diag"
	"github.com/tdl-lang/tdl/internal/parser"
)

func TestErrorPositionOnSecondLine(t *testing.T) {
	// The stray colon is the offending token: line 2, column 11.
	const src = "def ok()\ndef broken:()"

	synErr := parseError(t, src)

	if synErr.Line != 2 {
		t.Errorf("line %d, want 2", synErr.Line)
	}
	if synErr.Column != 11 {
		t.Errorf("column %d, want 11", synErr.Column)
	}
	if synErr.LineText != "def broken:()" {
		t.Errorf("line text %q", synErr.LineText)
	}
}

func TestErrorDefaultsFilename(t *testing.T) {
	synErr := parseError(t, "def (")

	if synErr.Filename != parser.DefaultFilename {
		t.Errorf("filename %q, want %q", synErr.Filename, parser.DefaultFilename)
	}
	if !strings.HasPrefix(synErr.Error(), "<string>:1:") {
		t.Errorf("error string %q", synErr.Error())
	}
}

func TestErrorCarriesFilenameOption(t *testing.T) {
	_, err := parser.Parse("def (", parser.WithFilename("api.pytd"))
	if err == nil {
		t.Fatalf("expected parse error")
	}

	synErr, ok := err.(*parser.SyntaxError)
	if !ok {
		t.Fatalf("expected *parser.SyntaxError, got %T", err)
	}
	if synErr.Filename != "api.pytd" {
		t.Errorf("filename %q, want api.pytd", synErr.Filename)
	}
	if synErr.Span.Filename != "api.pytd" {
		t.Errorf("span filename %q, want api.pytd", synErr.Span.Filename)
	}
}

func TestPrematureEndOfInput(t *testing.T) {
	synErr := parseError(t, "def f(")

	if synErr.Code != diag.CodeParseUnexpectedEOF {
		t.Errorf("code %q, want %q", synErr.Code, diag.CodeParseUnexpectedEOF)
	}
	if !strings.Contains(synErr.Message, "end of input") {
		t.Errorf("message %q", synErr.Message)
	}
}

func TestLexicalErrorSurfacesAsSyntaxError(t *testing.T) {
	synErr := parseError(t, "def f() -> $")

	if synErr.Stage != diag.StageLexer {
		t.Errorf("stage %q, want lexer", synErr.Stage)
	}
	if synErr.Line != 1 || synErr.Column != 12 {
		t.Errorf("position %d:%d, want 1:12", synErr.Line, synErr.Column)
	}
	if !strings.Contains(synErr.Message, "illegal character") {
		t.Errorf("message %q", synErr.Message)
	}
}

func TestTrailingTokensRejected(t *testing.T) {
	synErr := parseError(t, "def f()\n)")

	if synErr.Line != 2 {
		t.Errorf("line %d, want 2", synErr.Line)
	}
	if synErr.Column != 1 {
		t.Errorf("column %d, want 1", synErr.Column)
	}
}

func TestErrorRendersWithCaret(t *testing.T) {
	synErr := parseError(t, "def broken:()")

	var buf strings.Builder
	formatter := diag.NewFormatterTo(&buf)
	formatter.AddSource(parser.DefaultFilename, "def broken:()")
	formatter.Format(synErr.ToDiagnostic())

	out := buf.String()
	if !strings.Contains(out, "def broken:()") {
		t.Errorf("snippet missing from output:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("caret missing from output:\n%s", out)
	}
}
