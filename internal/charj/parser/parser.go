// Package parser turns a Charj token stream into an abstract syntax tree.
//
// The parser is a hand-written recursive descent parser with one function per
// grammar production. Left-recursive productions are written as loops that
// extend a left-hand accumulator, which yields the same left-associative trees.
// Parsing stops at the first error; no partial tree is returned.
package parser

import (
	"github.com/charj-lang/charj/internal/charj/ast"
	"github.com/charj-lang/charj/internal/charj/lexer"
	"github.com/charj-lang/charj/internal/charj/token"
)

// TokenSource yields tokens in source order and io.EOF after the last one.
type TokenSource interface {
	ReadToken() (*token.Token, error)
}

// Parser parses a single source unit. It is not safe for concurrent use; use
// one Parser per unit.
type Parser struct {
	cur         *cursor
	maxExponent int64
}

func NewParser(source TokenSource, options ...func(*Parser)) *Parser {
	parser := Parser{
		cur:         newCursor(source),
		maxExponent: -1,
	}

	for _, apply := range options {
		apply(&parser)
	}

	return &parser
}

// WithMaxExponent rejects numeric literals whose exponent exceeds limit with a
// LiteralError wrapping literal.ErrExponentTooLarge. By default exponents are
// unbounded.
func WithMaxExponent(limit int64) func(*Parser) {
	return func(p *Parser) {
		p.maxExponent = limit
	}
}

// Parse consumes the whole token stream.
func (p *Parser) Parse() (*ast.Program, error) {
	return p.parseProgram()
}

// ParseExpression parses a token stream holding exactly one expression.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.cur.peek() != nil || p.cur.err != nil {
		return nil, p.unexpected("end of input")
	}

	return expr, nil
}

// Parse reads source to the end and returns the program it spells.
func Parse(source TokenSource, options ...func(*Parser)) (*ast.Program, error) {
	return NewParser(source, options...).Parse()
}

// ParseString lexes and parses Charj source text.
func ParseString(source string, options ...func(*Parser)) (*ast.Program, error) {
	return Parse(lexer.NewLexer(source), options...)
}

// ParseExpressionString lexes and parses a single expression.
func ParseExpressionString(source string) (ast.Expr, error) {
	return NewParser(lexer.NewLexer(source)).ParseExpression()
}
