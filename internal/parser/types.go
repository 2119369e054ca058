package parser

import (
	"github.com/tdl-lang/tdl/internal/ast"
	"github.com/tdl-lang/tdl/internal/lexer"
)

// parseType parses a compound type expression. Precedence, low to high:
// union `|`, then intersection `&`, both left-associative. Nesting one
// inside the other requires explicit parentheses.
func (p *Parser) parseType() (ast.Type, error) {
	return p.parseUnionType()
}

func (p *Parser) parseUnionType() (ast.Type, error) {
	left, err := p.parseIntersectionType()
	if err != nil {
		return nil, err
	}

	for p.curTok.Type == lexer.UNION {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseIntersectionType()
		if err != nil {
			return nil, err
		}
		left = mergeUnion(left, right)
	}

	return left, nil
}

func (p *Parser) parseIntersectionType() (ast.Type, error) {
	left, err := p.parseSingleType()
	if err != nil {
		return nil, err
	}

	for p.curTok.Type == lexer.INTERSECT {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseSingleType()
		if err != nil {
			return nil, err
		}
		left = mergeIntersection(left, right)
	}

	return left, nil
}

// isListType reports whether a type is a flat variadic list node.
func isListType(t ast.Type) bool {
	switch t.(type) {
	case *ast.UnionType, *ast.IntersectionType:
		return true
	default:
		return false
	}
}

// mergeUnion combines two operands of `|`. An unparenthesized chain keeps
// appending to the flat list built on the left; a right operand that is
// itself a list (only reachable through parentheses) stays nested.
func mergeUnion(left, right ast.Type) ast.Type {
	if u, ok := left.(*ast.UnionType); ok && !isListType(right) {
		types := make([]ast.Type, 0, len(u.Types)+1)
		types = append(types, u.Types...)
		types = append(types, right)
		return ast.NewUnionType(types)
	}
	return ast.NewUnionType([]ast.Type{left, right})
}

// mergeIntersection combines two operands of `&`, same discipline as
// mergeUnion.
func mergeIntersection(left, right ast.Type) ast.Type {
	if i, ok := left.(*ast.IntersectionType); ok && !isListType(right) {
		types := make([]ast.Type, 0, len(i.Types)+1)
		types = append(types, i.Types...)
		types = append(types, right)
		return ast.NewIntersectionType(types)
	}
	return ast.NewIntersectionType([]ast.Type{left, right})
}

// parseSingleType parses one operand of a union/intersection: a grouped
// type, or an identifier atom optionally applied to generic arguments.
func (p *Parser) parseSingleType() (ast.Type, error) {
	if p.curTok.Type == lexer.LPAREN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		typ, err := p.parseUnionType()
		if err != nil {
			return nil, err
		}
		// Parentheses only affect precedence; they introduce no node,
		// and a grouped type can never be a generic base.
		if err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return typ, nil
	}

	base, err := p.parseIdentifierType()
	if err != nil {
		return nil, err
	}

	if p.curTok.Type == lexer.LBRACKET {
		return p.parseGenericType(base)
	}
	return base, nil
}

// parseIdentifierType parses the identifier atoms: a named type, a
// nullable named type (`Foo?`), or a literal used as a constant type.
func (p *Parser) parseIdentifierType() (ast.Type, error) {
	switch p.curTok.Type {
	case lexer.NAME:
		name := p.curTok.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curTok.Type == lexer.QUESTION {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.NewNoneableType(ast.NewBasicType(name)), nil
		}
		return ast.NewBasicType(name), nil

	case lexer.STRING:
		value := p.curTok.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewConstType(value), nil

	case lexer.NUMBER:
		tok := p.curTok
		if err := p.advance(); err != nil {
			return nil, err
		}
		if tok.IsFloat() {
			return ast.NewConstType(tok.Float()), nil
		}
		return ast.NewConstType(tok.Int()), nil

	default:
		return nil, p.unexpected("a type", p.curTok)
	}
}

// parseGenericType parses `base [ type ]` or `base [ type , type ]`.
// Exactly one or two arguments; the base is restricted to an identifier
// atom by the caller, which keeps bracket application unambiguous against
// union/intersection chains.
func (p *Parser) parseGenericType(base ast.Type) (ast.Type, error) {
	if err := p.expect(lexer.LBRACKET, "'['"); err != nil {
		return nil, err
	}

	arg1, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if p.curTok.Type == lexer.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg2, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		return ast.NewGenericType2(base, arg1, arg2), nil
	}

	if err := p.expect(lexer.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return ast.NewGenericType1(base, arg1), nil
}
