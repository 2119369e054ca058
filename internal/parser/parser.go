// Package parser implements the grammar of the type declaration language
// over the token stream produced by internal/lexer. Parsing is a single
// synchronous pass: one call consumes one source string to completion or
// fails with the first error encountered.
package parser

import (
	"github.com/tdl-lang/tdl/internal/ast"
	"github.com/tdl-lang/tdl/internal/expand"
	"github.com/tdl-lang/tdl/internal/lexer"
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all diagnostics to the
// provided source name instead of the default placeholder.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Parser implements a recursive descent parser for the type declaration
// language. A Parser is single-use: all scanning position and bookkeeping
// is per-parse state, so one instance serves exactly one input string and
// must not be shared across goroutines.
//
// The token window follows the usual two-token discipline: curTok is the
// token under examination, peekTok the one behind it, and both are only
// mutated through advance.
type Parser struct {
	lx       *lexer.Lexer
	src      string
	filename string

	curTok  lexer.Token
	peekTok lexer.Token
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{filename: DefaultFilename}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:       lexer.New(input),
		src:      input,
		filename: cfg.filename,
	}
	p.lx.SetFilename(cfg.filename)

	return p
}

// Parse runs the full pipeline on one source string: tokenize, parse,
// then hand the finished module to the template expansion pass with an
// empty initial binding context. On failure the returned error is always
// a *SyntaxError and the module is nil; there is no partial result.
func Parse(input string, opts ...Option) (*ast.Module, error) {
	p := New(input, opts...)

	mod, err := p.parseModule()
	if err != nil {
		return nil, err
	}

	return expand.Expand(mod, nil), nil
}

// advance moves the token window one step. Reaching an ILLEGAL token is a
// fatal lexical error; it aborts the parse at the offending character.
func (p *Parser) advance() error {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()

	if p.curTok.Type == lexer.ILLEGAL {
		if lexErr := p.lx.Err(); lexErr != nil {
			return p.lexicalError(lexErr)
		}
		return p.syntaxError("illegal token", p.curTok)
	}
	return nil
}

// expect consumes the current token if it has the wanted type and fails
// otherwise. label names the expectation in the error message.
func (p *Parser) expect(tt lexer.TokenType, label string) error {
	if p.curTok.Type != tt {
		return p.unexpected(label, p.curTok)
	}
	return p.advance()
}

// expectName consumes and returns the current NAME token's value.
func (p *Parser) expectName(label string) (string, error) {
	if p.curTok.Type != lexer.NAME {
		return "", p.unexpected(label, p.curTok)
	}
	name := p.curTok.Value
	if err := p.advance(); err != nil {
		return "", err
	}
	return name, nil
}

// parseModule parses `funcdefs classdefs interfacedefs EOF`: three
// homogeneous runs in a fixed order, each possibly empty. Mixing kinds at
// the top level is rejected by construction.
func (p *Parser) parseModule() (*ast.Module, error) {
	// Seed curTok/peekTok.
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	funcs, err := p.parseFuncDefs()
	if err != nil {
		return nil, err
	}

	var classes []*ast.Class
	for p.curTok.Type == lexer.CLASS {
		cls, err := p.parseClassDef()
		if err != nil {
			return nil, err
		}
		classes = append(classes, cls)
	}

	var interfaces []*ast.Interface
	for p.curTok.Type == lexer.INTERFACE {
		iface, err := p.parseInterfaceDef()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, iface)
	}

	if p.curTok.Type != lexer.EOF {
		return nil, p.unexpected("a declaration or end of input", p.curTok)
	}

	return ast.NewModule(funcs, classes, interfaces), nil
}
