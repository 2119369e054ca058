package lexer

import (
	"strconv"

	"github.com/tdl-lang/tdl/internal/diag"
)

type LexerErrorKind int

const (
	ErrIllegalRune LexerErrorKind = iota
	ErrUnterminatedString
	ErrUnterminatedBacktick
)

// LexerError describes a fatal lexical failure. The tokenizer records at
// most one: scanning is not resumed past an ILLEGAL token.
type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (e LexerError) Error() string {
	return e.Message
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	case ErrUnterminatedString:
		return diag.CodeLexerUnterminatedString
	case ErrUnterminatedBacktick:
		return diag.CodeLexerUnterminatedBacktick
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer tokenizes one declaration source string. All scanning state is
// per-instance; a Lexer must not be shared across concurrent parses.
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	err *LexerError
}

// New creates a new lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		line:   1,
		column: 0, // becomes 1 after the first read
	}
	l.read()
	return l
}

// SetFilename attributes all subsequently emitted spans to the given name.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// Err returns the fatal lexical error, if any token came back ILLEGAL.
func (l *Lexer) Err() *LexerError {
	return l.err
}

func (l *Lexer) fail(kind LexerErrorKind, msg string, span Span) {
	if l.err == nil {
		l.err = &LexerError{Kind: kind, Message: msg, Span: span}
	}
}

// read advances the lexer to the next rune, keeping line/column in sync
// with the rune at pos.
func (l *Lexer) read() {
	prev := l.pos
	l.pos++

	newline := prev >= 0 && prev < len(l.input) && l.input[prev] == '\n'

	if l.pos >= len(l.input) {
		l.ch = 0
		if newline {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		return
	}

	l.ch = l.input[l.pos]
	if newline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peek returns the next rune without advancing.
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) spanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, raw, value string) Token {
	return Token{
		Type:  tokType,
		Raw:   raw,
		Value: value,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

// single emits a one-rune token and advances past it.
func (l *Lexer) single(tokType TokenType) Token {
	startLine, startColumn, startPos := l.spanStart()
	raw := string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, raw, raw)
}

// double emits a two-rune token (the current rune plus its peek).
func (l *Lexer) double(tokType TokenType) Token {
	startLine, startColumn, startPos := l.spanStart()
	raw := string(l.ch)
	l.read()
	raw += string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, raw, raw)
}

func (l *Lexer) illegal(kind LexerErrorKind, msg string, startLine, startColumn, startPos int, raw string) Token {
	tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
	l.fail(kind, msg, tok.Span)
	return tok
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for {
		// Layout: spaces, tabs and newlines carry no tokens. The grammar
		// is not indentation-sensitive.
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.read()
		}

		// Line comments run to end of line and are discarded.
		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.read()
			}
			continue
		}

		switch l.ch {
		case 0:
			startLine, startColumn, startPos := l.spanStart()
			return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "", "")

		case '*':
			return l.single(ASTERISK)
		case '@':
			return l.single(AT)
		case ':':
			return l.single(COLON)
		case ',':
			return l.single(COMMA)
		case '.':
			return l.single(DOT)
		case '&':
			return l.single(INTERSECT)
		case '[':
			return l.single(LBRACKET)
		case ']':
			return l.single(RBRACKET)
		case '(':
			return l.single(LPAREN)
		case ')':
			return l.single(RPAREN)
		case '?':
			return l.single(QUESTION)
		case '|':
			return l.single(UNION)

		case '-':
			// '->' is an arrow, '-3' is a signed number, bare '-' feeds
			// the provenance sentinel '---'.
			if l.peek() == '>' {
				return l.double(ARROW)
			}
			if isDigit(l.peek()) {
				return l.readNumber()
			}
			return l.single(MINUS)

		case '+':
			if isDigit(l.peek()) {
				return l.readNumber()
			}
			return l.single(PLUS)

		case '<':
			if l.peek() == '=' {
				return l.double(SUBCLASS)
			}
			startLine, startColumn, startPos := l.spanStart()
			raw := string(l.ch)
			l.read()
			return l.illegal(ErrIllegalRune, "illegal character "+strconv.Quote(raw), startLine, startColumn, startPos, raw)

		case '\'', '"':
			return l.readString(l.ch)

		case '`':
			return l.readBacktickName()

		default:
			if isNameStart(l.ch) {
				return l.readName()
			}
			if isDigit(l.ch) {
				return l.readNumber()
			}
			startLine, startColumn, startPos := l.spanStart()
			raw := string(l.ch)
			l.read()
			return l.illegal(ErrIllegalRune, "illegal character "+strconv.Quote(raw), startLine, startColumn, startPos, raw)
		}
	}
}

// Tokenize scans the whole input, stopping at EOF or the first ILLEGAL
// token. The terminating token is included in the result.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF || tok.Type == ILLEGAL {
			return tokens
		}
	}
}

// readName scans an identifier or keyword. Dots are legal inside a bare
// identifier, supporting qualified names like a.b.C.
func (l *Lexer) readName() Token {
	startLine, startColumn, startPos := l.spanStart()
	for isNameStart(l.ch) || isDigit(l.ch) || l.ch == '.' {
		l.read()
	}
	raw := string(l.input[startPos:l.pos])
	return l.makeToken(LookupIdent(raw), startLine, startColumn, startPos, l.pos, raw, raw)
}

// readBacktickName scans `...` and forces the contents to a plain NAME,
// bypassing keyword classification.
func (l *Lexer) readBacktickName() Token {
	startLine, startColumn, startPos := l.spanStart()
	l.read() // consume opening backtick
	valueStart := l.pos
	for l.ch != '`' {
		if l.ch == 0 {
			raw := string(l.input[startPos:l.pos])
			return l.illegal(ErrUnterminatedBacktick, "unterminated backtick identifier", startLine, startColumn, startPos, raw)
		}
		l.read()
	}
	value := string(l.input[valueStart:l.pos])
	l.read() // consume closing backtick
	raw := string(l.input[startPos:l.pos])
	return l.makeToken(NAME, startLine, startColumn, startPos, l.pos, raw, value)
}

// readNumber scans an optionally signed numeric literal. The caller has
// verified that the current rune is a digit or a sign followed by one.
func (l *Lexer) readNumber() Token {
	startLine, startColumn, startPos := l.spanStart()
	if l.ch == '+' || l.ch == '-' {
		l.read()
	}
	for isDigit(l.ch) {
		l.read()
	}
	// Fractional digits after the point are optional: "1." is a float.
	if l.ch == '.' {
		l.read()
		for isDigit(l.ch) {
			l.read()
		}
	}
	raw := string(l.input[startPos:l.pos])
	return l.makeToken(NUMBER, startLine, startColumn, startPos, l.pos, raw, raw)
}

// readString scans a quoted literal and decodes its escape sequences.
func (l *Lexer) readString(quote rune) Token {
	startLine, startColumn, startPos := l.spanStart()
	var decoded []rune

	l.read() // skip opening quote
	for {
		if l.ch == 0 {
			raw := string(l.input[startPos:l.pos])
			return l.illegal(ErrUnterminatedString, "unterminated string literal", startLine, startColumn, startPos, raw)
		}
		if l.ch == quote {
			l.read() // consume closing quote
			raw := string(l.input[startPos:l.pos])
			return l.makeToken(STRING, startLine, startColumn, startPos, l.pos, raw, string(decoded))
		}
		if l.ch == '\\' {
			l.read()
			if l.ch == 0 {
				continue
			}
			switch l.ch {
			case 'n':
				decoded = append(decoded, '\n')
			case 't':
				decoded = append(decoded, '\t')
			case 'r':
				decoded = append(decoded, '\r')
			case '\\', '\'', '"':
				decoded = append(decoded, l.ch)
			default:
				// Unknown escapes keep the backslash.
				decoded = append(decoded, '\\', l.ch)
			}
			l.read()
			continue
		}
		decoded = append(decoded, l.ch)
		l.read()
	}
}

func isNameStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
