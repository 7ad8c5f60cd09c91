package parser

import (
	"github.com/charj-lang/charj/internal/charj/ast"
	"github.com/charj-lang/charj/internal/charj/token"
)

var unitStarts = []string{
	"'package'", "'import'", "'struct'", "'object'", "'fun'", "identifier",
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	start := p.cur.start()

	units := make([]ast.Unit, 0)
	for p.cur.peek() != nil {
		unit, err := p.parseUnit()
		if err != nil {
			return nil, err
		}

		units = append(units, unit)
	}

	// an empty source, or a token source that failed
	if len(units) == 0 || p.cur.err != nil {
		return nil, p.unexpected(unitStarts...)
	}

	program := &ast.Program{
		Units: units,
		Loc:   p.cur.span(start),
	}

	return program, nil
}

func (p *Parser) parseUnit() (ast.Unit, error) {
	tok := p.cur.peek()
	if tok == nil {
		return nil, p.unexpected(unitStarts...)
	}

	switch tok.Kind {
	case token.KindPackage:
		return p.parsePackage()

	case token.KindImport:
		return p.parseImport()

	case token.KindStruct:
		return p.parseStruct()

	case token.KindObject:
		return p.parseObject()

	case token.KindFun:
		return p.parseFunc()

	case token.KindIdentifier:
		return p.parseStructFunc()

	default:
		return nil, p.unexpected(unitStarts...)
	}
}

// package name | pkg name
func (p *Parser) parsePackage() (*ast.Package, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindPackage); err != nil {
		return nil, err
	}

	name, err := p.expect(token.KindIdentifier)
	if err != nil {
		return nil, err
	}

	unit := &ast.Package{
		Name: name.Value,
		Loc:  p.cur.span(start),
	}

	return unit, nil
}

// import name | import "path" as name | import "path".* as name
func (p *Parser) parseImport() (*ast.Import, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindImport); err != nil {
		return nil, err
	}

	if name := p.cur.accept(token.KindIdentifier); name != nil {
		unit := &ast.Import{
			Kind: ast.ImportStandard,
			Name: name.Value,
			Loc:  p.cur.span(start),
		}

		return unit, nil
	}

	path := p.cur.accept(token.KindString)
	if path == nil {
		return nil, p.unexpected("identifier", "string")
	}

	kind := ast.ImportGlobalSymbol
	if p.cur.accept(token.KindDot) != nil {
		if _, err := p.expect(token.KindStar); err != nil {
			return nil, err
		}

		kind = ast.ImportGlobalWildcard
	} else if !p.cur.peekIs(token.KindAs) {
		return nil, p.unexpected("'as'", "'.'")
	}

	if _, err := p.expect(token.KindAs); err != nil {
		return nil, err
	}

	alias, err := p.expect(token.KindIdentifier)
	if err != nil {
		return nil, err
	}

	unit := &ast.Import{
		Kind: kind,
		Path: path.Value,
		Name: alias.Value,
		Loc:  p.cur.span(start),
	}

	return unit, nil
}

// struct Name { field: type ... }
func (p *Parser) parseStruct() (*ast.StructDecl, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindStruct); err != nil {
		return nil, err
	}

	name, err := p.expect(token.KindIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindLBrace); err != nil {
		return nil, err
	}

	fields := make([]*ast.VariableDecl, 0)
	for !p.cur.peekIs(token.KindRBrace) {
		if !p.cur.peekIs(token.KindIdentifier) {
			return nil, p.unexpected("identifier", "'}'")
		}

		field, err := p.parseVariableDecl()
		if err != nil {
			return nil, err
		}

		fields = append(fields, field)

		// fields may be separated by a comma or a semicolon
		if p.cur.accept(token.KindComma) == nil {
			p.cur.accept(token.KindSemicolon)
		}
	}

	if _, err := p.expect(token.KindRBrace); err != nil {
		return nil, err
	}

	unit := &ast.StructDecl{
		Name:   name.Value,
		Fields: fields,
		Loc:    p.cur.span(start),
	}

	return unit, nil
}

// object Name { fun ... }
func (p *Parser) parseObject() (*ast.ObjectDecl, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindObject); err != nil {
		return nil, err
	}

	name, err := p.expect(token.KindIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindLBrace); err != nil {
		return nil, err
	}

	funcs := make([]*ast.FuncDecl, 0)
	for !p.cur.peekIs(token.KindRBrace) {
		if !p.cur.peekIs(token.KindFun) {
			return nil, p.unexpected("'fun'", "'}'")
		}

		fun, err := p.parseFunc()
		if err != nil {
			return nil, err
		}

		funcs = append(funcs, fun)
	}

	if _, err := p.expect(token.KindRBrace); err != nil {
		return nil, err
	}

	unit := &ast.ObjectDecl{
		Name:  name.Value,
		Funcs: funcs,
		Loc:   p.cur.span(start),
	}

	return unit, nil
}

// fun name(params) { body }
func (p *Parser) parseFunc() (*ast.FuncDecl, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindFun); err != nil {
		return nil, err
	}

	name, err := p.expect(token.KindIdentifier)
	if err != nil {
		return nil, err
	}

	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	unit := &ast.FuncDecl{
		Name:   name.Value,
		Params: params,
		Body:   body,
		Loc:    p.cur.span(start),
	}

	return unit, nil
}

// Struct $ name(params) -> type { body }
func (p *Parser) parseStructFunc() (*ast.StructFuncDecl, error) {
	start := p.cur.start()

	structName, err := p.expect(token.KindIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindDollar); err != nil {
		return nil, err
	}

	name, err := p.expect(token.KindIdentifier)
	if err != nil {
		return nil, err
	}

	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}

	var returns ast.Expr
	if p.cur.accept(token.KindArrow) != nil {
		returns, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	unit := &ast.StructFuncDecl{
		Struct:  structName.Value,
		Name:    name.Value,
		Params:  params,
		Returns: returns,
		Body:    body,
		Loc:     p.cur.span(start),
	}

	return unit, nil
}

// parseParameterList covers the three shapes of a parameter list: (), a single
// parameter, and two or more positions any of which may be left empty. The
// comma after the first position decides between the last two.
func (p *Parser) parseParameterList() ([]*ast.ParameterSlot, error) {
	if _, err := p.expect(token.KindLParen); err != nil {
		return nil, err
	}

	slots := make([]*ast.ParameterSlot, 0)
	if p.cur.accept(token.KindRParen) != nil {
		return slots, nil
	}

	first, err := p.parseParameterSlot()
	if err != nil {
		return nil, err
	}

	slots = append(slots, first)

	for p.cur.accept(token.KindComma) != nil {
		slot, err := p.parseParameterSlot()
		if err != nil {
			return nil, err
		}

		slots = append(slots, slot)
	}

	if _, err := p.expect(token.KindRParen); err != nil {
		return nil, err
	}

	return slots, nil
}

// parseParameterSlot parses one position. A position directly followed by ','
// or ')' is empty and gets a zero-width location at that token.
func (p *Parser) parseParameterSlot() (*ast.ParameterSlot, error) {
	if p.cur.peekIs(token.KindComma) || p.cur.peekIs(token.KindRParen) {
		start := p.cur.start()

		return &ast.ParameterSlot{Loc: token.Location{Start: start, End: start}}, nil
	}

	param, err := p.parseParameter()
	if err != nil {
		return nil, err
	}

	return &ast.ParameterSlot{Param: param, Loc: param.Loc}, nil
}

// type name?
func (p *Parser) parseParameter() (*ast.Parameter, error) {
	start := p.cur.start()

	typ, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	param := &ast.Parameter{
		Type: typ,
	}

	if name := p.cur.accept(token.KindIdentifier); name != nil {
		param.Name = name.Value
	}

	param.Loc = p.cur.span(start)

	return param, nil
}
