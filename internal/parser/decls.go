package parser

import (
	"github.com/tdl-lang/tdl/internal/ast"
	"github.com/tdl-lang/tdl/internal/lexer"
)

// isFuncDefsStart reports whether the current token can begin an entry of
// the funcdefs production: a function (with or without a provenance
// sentinel) or a constant declaration.
func (p *Parser) isFuncDefsStart() bool {
	switch p.curTok.Type {
	case lexer.DEF, lexer.NAME, lexer.DOT, lexer.MINUS, lexer.PLUS:
		return true
	default:
		return false
	}
}

// parseFuncDefs parses a run of function and constant declarations.
// Constants are recognized syntactically and then dropped; only the
// functions surface in the result. Class bodies share this production.
func (p *Parser) parseFuncDefs() ([]*ast.Function, error) {
	var funcs []*ast.Function

	for p.isFuncDefsStart() {
		if p.curTok.Type == lexer.NAME {
			if err := p.parseConstantDef(); err != nil {
				return nil, err
			}
			continue
		}

		fn, err := p.parseFuncDef()
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, fn)
	}

	return funcs, nil
}

// parseConstantDef parses `NAME : compound_type` and discards it.
func (p *Parser) parseConstantDef() error {
	name, err := p.expectName("an identifier")
	if err != nil {
		return err
	}
	if err := p.expect(lexer.COLON, "':'"); err != nil {
		return err
	}
	typ, err := p.parseType()
	if err != nil {
		return err
	}

	// Built and thrown away: the declaration is accepted but constants
	// never surface in the module.
	_ = ast.NewConstantDef(name, typ)
	return nil
}

// parseProvenance consumes an optional three-character sentinel before
// `def`: `...` inferred, `---` negated, `+++` locked.
func (p *Parser) parseProvenance() (ast.Provenance, error) {
	var (
		want lexer.TokenType
		tag  ast.Provenance
	)

	switch p.curTok.Type {
	case lexer.DOT:
		want, tag = lexer.DOT, ast.ProvenanceInferred
	case lexer.MINUS:
		want, tag = lexer.MINUS, ast.ProvenanceNegated
	case lexer.PLUS:
		want, tag = lexer.PLUS, ast.ProvenanceLocked
	default:
		return ast.ProvenanceApproved, nil
	}

	for i := 0; i < 3; i++ {
		if p.curTok.Type != want {
			return "", p.unexpected("'"+string(want)+"'", p.curTok)
		}
		if err := p.advance(); err != nil {
			return "", err
		}
	}

	return tag, nil
}

// parseFuncDef parses one function declaration:
//
//	[provenance] "def" [template] NAME "(" params ")" [return] [raise] [signature]
func (p *Parser) parseFuncDef() (*ast.Function, error) {
	provenance, err := p.parseProvenance()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.DEF, "'def'"); err != nil {
		return nil, err
	}

	template, err := p.parseTemplate()
	if err != nil {
		return nil, err
	}

	name, err := p.expectName("a function name")
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}

	returnType, err := p.parseReturn()
	if err != nil {
		return nil, err
	}

	exceptions, err := p.parseRaise()
	if err != nil {
		return nil, err
	}

	signature, err := p.parseSignature()
	if err != nil {
		return nil, err
	}

	return ast.NewFunction(name, params, returnType, exceptions, template, provenance, signature), nil
}

// parseReturn parses `-> compound_type`, defaulting to None when absent.
func (p *Parser) parseReturn() (ast.Type, error) {
	if p.curTok.Type != lexer.ARROW {
		return ast.NewBasicType("None"), nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseType()
}

// parseRaise parses `raise exception ("," exception)*`, each exception
// being a compound type.
func (p *Parser) parseRaise() ([]*ast.ExceptionDef, error) {
	if p.curTok.Type != lexer.RAISE {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var exceptions []*ast.ExceptionDef
	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, ast.NewExceptionDef(typ))

		if p.curTok.Type != lexer.COMMA {
			return exceptions, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

// parseSignature parses `@ STRING`, an opaque annotation kept verbatim.
func (p *Parser) parseSignature() (*string, error) {
	if p.curTok.Type != lexer.AT {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.curTok.Type != lexer.STRING {
		return nil, p.unexpected("a signature string", p.curTok)
	}
	sig := p.curTok.Value
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &sig, nil
}

// parseTemplate parses an optional `[item ("," item)*]` template clause.
// Each entry is a bound type parameter; the bound defaults to the
// universal object type, and ranks stay 0 until the expansion pass.
func (p *Parser) parseTemplate() ([]*ast.TemplateItem, error) {
	if p.curTok.Type != lexer.LBRACKET {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var items []*ast.TemplateItem
	for {
		name, err := p.expectName("a type parameter name")
		if err != nil {
			return nil, err
		}

		bound := ast.Type(ast.NewBasicType("object"))
		if p.curTok.Type == lexer.SUBCLASS {
			if err := p.advance(); err != nil {
				return nil, err
			}
			bound, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		items = append(items, ast.NewTemplateItem(name, bound, 0))

		if p.curTok.Type != lexer.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.expect(lexer.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return items, nil
}

// parseParents parses an optional `(NAME ("," NAME)*)` parent list.
func (p *Parser) parseParents() ([]string, error) {
	if p.curTok.Type != lexer.LPAREN {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var parents []string
	for {
		name, err := p.expectName("a parent name")
		if err != nil {
			return nil, err
		}
		parents = append(parents, name)

		if p.curTok.Type != lexer.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return parents, nil
}

// parseClassDef parses `"class" [template] NAME [parents] ":" body` where
// the body is either the literal `pass` or a funcdefs run (so class-level
// constants parse and are discarded, like module-level ones).
func (p *Parser) parseClassDef() (*ast.Class, error) {
	if err := p.expect(lexer.CLASS, "'class'"); err != nil {
		return nil, err
	}

	template, err := p.parseTemplate()
	if err != nil {
		return nil, err
	}

	name, err := p.expectName("a class name")
	if err != nil {
		return nil, err
	}

	parents, err := p.parseParents()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}

	var funcs []*ast.Function
	if p.curTok.Type == lexer.PASS {
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		funcs, err = p.parseFuncDefs()
		if err != nil {
			return nil, err
		}
	}

	return ast.NewClass(name, parents, funcs, template), nil
}

// parseInterfaceDef parses `"interface" [template] NAME [parents] ":"`
// followed by one or more `def NAME` stubs. Interfaces declare method
// presence only; a parameter list after a stub is a syntax error.
func (p *Parser) parseInterfaceDef() (*ast.Interface, error) {
	if err := p.expect(lexer.INTERFACE, "'interface'"); err != nil {
		return nil, err
	}

	template, err := p.parseTemplate()
	if err != nil {
		return nil, err
	}

	name, err := p.expectName("an interface name")
	if err != nil {
		return nil, err
	}

	parents, err := p.parseParents()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}

	var attrs []*ast.MinimalFunction
	for {
		if err := p.expect(lexer.DEF, "'def'"); err != nil {
			return nil, err
		}
		stub, err := p.expectName("a method name")
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, ast.NewMinimalFunction(stub))

		if p.curTok.Type != lexer.DEF {
			break
		}
	}

	return ast.NewInterface(name, parents, attrs, template), nil
}
