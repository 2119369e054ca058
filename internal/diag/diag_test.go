package diag_test

import (
	"strings"
	"testing"

	"github.com/tdl-lang/tdl/internal/diag"
)

func TestContextAtMidLine(t *testing.T) {
	src := "def f() -> int\ndef g() -> str\n"
	// Offset of "str" on the second line.
	offset := strings.Index(src, "str")

	ctx := diag.ContextAt(src, offset)

	if ctx.LineText != "def g() -> str" {
		t.Errorf("LineText = %q", ctx.LineText)
	}
	if ctx.LineStart != 15 {
		t.Errorf("LineStart = %d, want 15", ctx.LineStart)
	}
	if ctx.Column != 12 {
		t.Errorf("Column = %d, want 12", ctx.Column)
	}
}

func TestContextAtLineStart(t *testing.T) {
	ctx := diag.ContextAt("a\nbcd", 2)
	if ctx.Column != 1 {
		t.Errorf("Column = %d, want 1", ctx.Column)
	}
	if ctx.LineText != "bcd" {
		t.Errorf("LineText = %q", ctx.LineText)
	}
}

func TestContextAtFirstLine(t *testing.T) {
	ctx := diag.ContextAt("class A: pass", 6)
	if ctx.LineStart != 0 || ctx.Column != 7 {
		t.Errorf("got start %d col %d, want 0 and 7", ctx.LineStart, ctx.Column)
	}
	if ctx.LineText != "class A: pass" {
		t.Errorf("LineText = %q", ctx.LineText)
	}
}

func TestContextAtEndOfInput(t *testing.T) {
	src := "def f()\ndef g("
	ctx := diag.ContextAt(src, len([]rune(src)))
	if ctx.LineText != "def g(" {
		t.Errorf("LineText = %q", ctx.LineText)
	}
	if ctx.Column != 7 {
		t.Errorf("Column = %d, want 7", ctx.Column)
	}
}

func TestContextAtClampsOutOfRange(t *testing.T) {
	ctx := diag.ContextAt("ab", 99)
	if ctx.LineText != "ab" || ctx.Column != 3 {
		t.Errorf("got %q col %d, want %q col 3", ctx.LineText, ctx.Column, "ab")
	}

	ctx = diag.ContextAt("ab", -4)
	if ctx.Column != 1 {
		t.Errorf("Column = %d, want 1", ctx.Column)
	}
}

func TestSpanString(t *testing.T) {
	withFile := diag.Span{Filename: "api.pytd", Line: 3, Column: 9}
	if got := withFile.String(); got != "api.pytd:3:9" {
		t.Errorf("String() = %q", got)
	}
	bare := diag.Span{Line: 3, Column: 9}
	if got := bare.String(); got != "3:9" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormatRendersSnippetAndCaret(t *testing.T) {
	var buf strings.Builder
	f := diag.NewFormatterTo(&buf)
	f.AddSource("api.pytd", "def f() -> int\ndef broken:()\n")

	f.Format(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     diag.CodeParseUnexpectedToken,
		Message:  "expected `(`, found `:`",
		Span: diag.Span{
			Filename: "api.pytd",
			Line:     2,
			Column:   11,
			Start:    25,
			End:      26,
		},
	})

	out := buf.String()
	wantLines := []string{
		"error[PARSE_UNEXPECTED_TOKEN]: expected `(`, found `:`",
		"  --> api.pytd:2:11",
		" 2 | def broken:()",
		"   | " + strings.Repeat(" ", 10) + "^",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatWithoutRegisteredSource(t *testing.T) {
	var buf strings.Builder
	f := diag.NewFormatterTo(&buf)

	f.Format(diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  "unterminated string",
		Span:     diag.Span{Filename: "gone.pytd", Line: 1, Column: 4},
	})

	out := buf.String()
	if !strings.Contains(out, "error: unterminated string") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "  --> gone.pytd:1:4") {
		t.Errorf("missing location line:\n%s", out)
	}
	if strings.Contains(out, "|") {
		t.Errorf("snippet rendered without source text:\n%s", out)
	}
}

func TestFormatNotesAndHelp(t *testing.T) {
	var buf strings.Builder
	f := diag.NewFormatterTo(&buf)

	d := diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  "only one `*` parameter is allowed",
	}.WithNote("the first `*` parameter is declared here").WithHelp("remove the duplicate `*` parameter")

	f.Format(d)

	out := buf.String()
	if !strings.Contains(out, "  = note: the first `*` parameter is declared here") {
		t.Errorf("missing note:\n%s", out)
	}
	if !strings.Contains(out, "help: remove the duplicate `*` parameter") {
		t.Errorf("missing help:\n%s", out)
	}
}
