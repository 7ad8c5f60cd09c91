package parser

import (
	"github.com/charj-lang/charj/internal/charj/ast"
	"github.com/charj-lang/charj/internal/charj/token"
)

// parseBlock parses { statement* } and always returns a non-nil suite.
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.expect(token.KindLBrace); err != nil {
		return nil, err
	}

	suite := make([]ast.Stmt, 0)
	for !p.cur.peekIs(token.KindRBrace) {
		if p.cur.peek() == nil {
			return nil, p.unexpected("statement", "'}'")
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		suite = append(suite, stmt)
	}

	if _, err := p.expect(token.KindRBrace); err != nil {
		return nil, err
	}

	return suite, nil
}

// parseStatement parses compound statements directly. Every other statement
// is a simple statement whose ';' is consumed here, outside its own span;
// return is the exception and consumes its own ';'.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.cur.peek()
	if tok == nil {
		return nil, p.unexpected("statement")
	}

	switch tok.Kind {
	case token.KindIf:
		return p.parseIf()

	case token.KindWhile:
		return p.parseWhile()

	case token.KindFor:
		return p.parseFor()

	case token.KindReturn:
		return p.parseReturn()
	}

	stmt, err := p.parseSimpleStatement()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindSemicolon); err != nil {
		return nil, err
	}

	return stmt, nil
}

func (p *Parser) parseSimpleStatement() (ast.Stmt, error) {
	tok := p.cur.peek()

	switch {
	case tok.Kind == token.KindLet:
		return p.parseAssign()

	case tok.Kind == token.KindBreak:
		p.cur.read()
		return &ast.Break{Loc: tok.Location}, nil

	case tok.Kind == token.KindContinue:
		p.cur.read()
		return &ast.Continue{Loc: tok.Location}, nil

	case tok.Kind == token.KindIdentifier && p.peekKindAt(1) == token.KindColon:
		return p.parseVariableDecl()
	}

	start := p.cur.start()

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	stmt := &ast.ExpressionStmt{
		Expr: expr,
		Loc:  p.cur.span(start),
	}

	return stmt, nil
}

// name: type
func (p *Parser) parseVariableDecl() (*ast.VariableDecl, error) {
	start := p.cur.start()

	name, err := p.expect(token.KindIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	typ, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	stmt := &ast.VariableDecl{
		Name: name.Value,
		Type: typ,
		Loc:  p.cur.span(start),
	}

	return stmt, nil
}

// let name: type = value, where value may also be the empty object {}
func (p *Parser) parseAssign() (*ast.Assign, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindLet); err != nil {
		return nil, err
	}

	name, err := p.expect(token.KindIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	typ, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindAssign); err != nil {
		return nil, err
	}

	var value ast.Expr
	if p.cur.peekIs(token.KindLBrace) {
		value, err = p.parseEmptyObject()
	} else {
		value, err = p.parseExpression()
	}
	if err != nil {
		return nil, err
	}

	stmt := &ast.Assign{
		Name:  name.Value,
		Type:  typ,
		Value: value,
		Loc:   p.cur.span(start),
	}

	return stmt, nil
}

func (p *Parser) parseEmptyObject() (*ast.EmptyObject, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindLBrace); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindRBrace); err != nil {
		return nil, err
	}

	return &ast.EmptyObject{Loc: p.cur.span(start)}, nil
}

// if (cond) statement
// if (cond) { body } else { body }
//
// The unbraced form takes exactly one statement and has no else branch.
func (p *Parser) parseIf() (*ast.If, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindIf); err != nil {
		return nil, err
	}

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	stmt := &ast.If{
		Cond: cond,
	}

	if p.cur.peekIs(token.KindLBrace) {
		stmt.Body, err = p.parseBlock()
		if err != nil {
			return nil, err
		}

		if p.cur.accept(token.KindElse) != nil {
			stmt.Else, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		}
	} else {
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		stmt.Body = []ast.Stmt{body}
	}

	stmt.Loc = p.cur.span(start)

	return stmt, nil
}

// while (cond) { body }
func (p *Parser) parseWhile() (*ast.While, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindWhile); err != nil {
		return nil, err
	}

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.While{
		Cond: cond,
		Body: body,
		Loc:  p.cur.span(start),
	}

	return stmt, nil
}

// for (target in iter) { body }
func (p *Parser) parseFor() (*ast.For, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindFor); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindLParen); err != nil {
		return nil, err
	}

	target, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindIn); err != nil {
		return nil, err
	}

	iter, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindRParen); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.For{
		Target: target,
		Iter:   iter,
		Body:   body,
		Loc:    p.cur.span(start),
	}

	return stmt, nil
}

// return; | return a, b, ...;
func (p *Parser) parseReturn() (*ast.Return, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindReturn); err != nil {
		return nil, err
	}

	stmt := &ast.Return{}

	if !p.cur.peekIs(token.KindSemicolon) {
		listStart := p.cur.start()

		values := make([]ast.Expr, 0, 1)
		for {
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			values = append(values, value)

			if p.cur.accept(token.KindComma) == nil {
				break
			}
		}

		stmt.Value = &ast.List{
			Elements: values,
			Loc:      p.cur.span(listStart),
		}
	}

	if _, err := p.expect(token.KindSemicolon); err != nil {
		return nil, err
	}

	stmt.Loc = p.cur.span(start)

	return stmt, nil
}

// ( expr )
func (p *Parser) parseCondition() (ast.Expr, error) {
	if _, err := p.expect(token.KindLParen); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindRParen); err != nil {
		return nil, err
	}

	return cond, nil
}

func (p *Parser) peekKindAt(n int) token.Kind {
	if tok := p.cur.peekAt(n); tok != nil {
		return tok.Kind
	}

	return ""
}
