package parser

import (
	"github.com/tdl-lang/tdl/internal/ast"
	"github.com/tdl-lang/tdl/internal/lexer"
)

// parseParams parses a parameter list: zero or more ordinary parameters,
// then an optional `*` vararg, then an optional `**` kwarg. At most one of
// each, in that order; anything after the kwarg is rejected. The closing
// ')' is left for the caller.
func (p *Parser) parseParams() ([]*ast.Parameter, error) {
	if p.curTok.Type == lexer.RPAREN {
		return nil, nil
	}

	var (
		params  []*ast.Parameter
		seenVar bool
		seenKw  bool
	)

	for {
		switch {
		case p.curTok.Type == lexer.ASTERISK && p.peekTok.Type == lexer.ASTERISK:
			if seenKw {
				return nil, p.syntaxError("only one '**' parameter is allowed", p.curTok)
			}
			if err := p.advance(); err != nil { // consume first '*'
				return nil, err
			}
			if err := p.advance(); err != nil { // consume second '*'
				return nil, err
			}
			inner, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewParameter(inner.Name, ast.NewVarKeywordArgType()))
			seenKw = true

		case p.curTok.Type == lexer.ASTERISK:
			if seenKw {
				return nil, p.syntaxError("'*' parameter must precede the '**' parameter", p.curTok)
			}
			if seenVar {
				return nil, p.syntaxError("only one '*' parameter is allowed", p.curTok)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			inner, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewParameter(inner.Name, ast.NewVarArgType()))
			seenVar = true

		case p.curTok.Type == lexer.NAME:
			if seenVar || seenKw {
				return nil, p.syntaxError("ordinary parameters must precede '*' and '**' parameters", p.curTok)
			}
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)

		default:
			return nil, p.unexpected("a parameter", p.curTok)
		}

		if p.curTok.Type != lexer.COMMA {
			return params, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

// parseParam parses one parameter core: bare NAME (unknown type),
// `NAME ?` (optional with unknown type), or `NAME : compound_type`.
func (p *Parser) parseParam() (*ast.Parameter, error) {
	name, err := p.expectName("a parameter name")
	if err != nil {
		return nil, err
	}

	switch p.curTok.Type {
	case lexer.QUESTION:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewParameter(name, ast.NewOptionalUnknownType()), nil
	case lexer.COLON:
		if err := p.advance(); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.NewParameter(name, typ), nil
	default:
		return ast.NewParameter(name, ast.NewUnknownType()), nil
	}
}
