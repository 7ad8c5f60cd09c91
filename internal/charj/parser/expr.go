package parser

import (
	"github.com/charj-lang/charj/internal/charj/ast"
	"github.com/charj-lang/charj/internal/charj/literal"
	"github.com/charj-lang/charj/internal/charj/token"
)

// Operator levels, loosest first:
//
//	range       a .. b
//	or          ||
//	and         &&
//	compare     == != < <= > >=
//	shift       << >>
//	additive    + -
//	multiply    * / %
//	not         !x       (stacks, right-associative)
//	prefix      +x -x ~x (operand is a primary)
//	postfix     x++ x--
//	primary     calls, member access, literals, ( expr )
//
// Every binary level is left-associative, so a == b == c is (a == b) == c.

var compareOperators = map[token.Kind]ast.CompareOperator{
	token.KindEqual:        ast.OperatorEqual,
	token.KindNotEqual:     ast.OperatorNotEqual,
	token.KindLess:         ast.OperatorLessThan,
	token.KindLessEqual:    ast.OperatorLessThanOrEqual,
	token.KindGreater:      ast.OperatorGreaterThan,
	token.KindGreaterEqual: ast.OperatorGreaterThanOrEqual,
}

var shiftOperators = map[token.Kind]ast.BinaryOperator{
	token.KindShiftLeft:  ast.OperatorShiftLeft,
	token.KindShiftRight: ast.OperatorShiftRight,
}

var additiveOperators = map[token.Kind]ast.BinaryOperator{
	token.KindPlus:  ast.OperatorAdd,
	token.KindMinus: ast.OperatorSub,
}

var multiplicativeOperators = map[token.Kind]ast.BinaryOperator{
	token.KindStar:    ast.OperatorMul,
	token.KindSlash:   ast.OperatorDiv,
	token.KindPercent: ast.OperatorMod,
}

var prefixOperators = map[token.Kind]ast.UnaryOperator{
	token.KindPlus:  ast.OperatorPlus,
	token.KindMinus: ast.OperatorMinus,
	token.KindTilde: ast.OperatorInvert,
}

var postfixOperators = map[token.Kind]ast.PostfixOperator{
	token.KindIncrement: ast.OperatorIncrement,
	token.KindDecrement: ast.OperatorDecrement,
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseRange()
}

func (p *Parser) parseRange() (ast.Expr, error) {
	start := p.cur.start()

	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	for p.cur.accept(token.KindDotDot) != nil {
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		left = &ast.Range{
			Start: left,
			End:   right,
			Loc:   p.cur.span(start),
		}
	}

	return left, nil
}

func (p *Parser) parseOr() (ast.Expr, error) {
	start := p.cur.start()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.cur.accept(token.KindOrOr) != nil {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		left = &ast.BoolOp{
			Operator: ast.OperatorOr,
			Values:   []ast.Expr{left, right},
			Loc:      p.cur.span(start),
		}
	}

	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	start := p.cur.start()

	left, err := p.parseCompare()
	if err != nil {
		return nil, err
	}

	for p.cur.accept(token.KindAndAnd) != nil {
		right, err := p.parseCompare()
		if err != nil {
			return nil, err
		}

		left = &ast.BoolOp{
			Operator: ast.OperatorAnd,
			Values:   []ast.Expr{left, right},
			Loc:      p.cur.span(start),
		}
	}

	return left, nil
}

func (p *Parser) parseCompare() (ast.Expr, error) {
	start := p.cur.start()

	left, err := p.parseShift()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := acceptOperator(p.cur, compareOperators)
		if !ok {
			return left, nil
		}

		right, err := p.parseShift()
		if err != nil {
			return nil, err
		}

		left = &ast.Compare{
			Operator: op,
			Left:     left,
			Right:    right,
			Loc:      p.cur.span(start),
		}
	}
}

func (p *Parser) parseShift() (ast.Expr, error) {
	return p.parseBinary(shiftOperators, p.parseAdditive)
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.parseBinary(additiveOperators, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	return p.parseBinary(multiplicativeOperators, p.parseNot)
}

// parseBinary parses one left-associative arithmetic level whose operands
// come from the next tighter level.
func (p *Parser) parseBinary(operators map[token.Kind]ast.BinaryOperator, next func() (ast.Expr, error)) (ast.Expr, error) {
	start := p.cur.start()

	left, err := next()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := acceptOperator(p.cur, operators)
		if !ok {
			return left, nil
		}

		right, err := next()
		if err != nil {
			return nil, err
		}

		left = &ast.Binop{
			Operator: op,
			Left:     left,
			Right:    right,
			Loc:      p.cur.span(start),
		}
	}
}

func (p *Parser) parseNot() (ast.Expr, error) {
	start := p.cur.start()

	if p.cur.accept(token.KindNot) == nil {
		return p.parsePrefix()
	}

	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	expr := &ast.Unop{
		Operator: ast.OperatorNot,
		Operand:  operand,
		Loc:      p.cur.span(start),
	}

	return expr, nil
}

// parsePrefix applies + - ~ to a primary expression. The operators do not
// stack: -(-x) needs the parentheses.
func (p *Parser) parsePrefix() (ast.Expr, error) {
	start := p.cur.start()

	op, ok := acceptOperator(p.cur, prefixOperators)
	if !ok {
		return p.parsePostfix()
	}

	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	expr := &ast.Unop{
		Operator: op,
		Operand:  operand,
		Loc:      p.cur.span(start),
	}

	return expr, nil
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	start := p.cur.start()

	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	op, ok := acceptOperator(p.cur, postfixOperators)
	if !ok {
		return operand, nil
	}

	expr := &ast.PostUnop{
		Operator: op,
		Operand:  operand,
		Loc:      p.cur.span(start),
	}

	return expr, nil
}

// parsePrimary parses an operand followed by any chain of calls and member
// accesses, so a.b(c).d parses as ((a.b)(c)).d.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	start := p.cur.start()

	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.cur.accept(token.KindDot) != nil:
			name, err := p.expect(token.KindIdentifier)
			if err != nil {
				return nil, err
			}

			left = &ast.MemberAccess{
				Base: left,
				Property: &ast.Identifier{
					Name: name.Value,
					Loc:  name.Location,
				},
				Loc: p.cur.span(start),
			}

		case p.cur.accept(token.KindLParen) != nil:
			args, err := p.parseCallArgumentList()
			if err != nil {
				return nil, err
			}

			left = &ast.Call{
				Callee:    left,
				Arguments: args,
				Loc:       p.cur.span(start),
			}

		default:
			return left, nil
		}
	}
}

// parseCallArgumentList parses the arguments after '(' up to and including ')'.
func (p *Parser) parseCallArgumentList() ([]ast.Expr, error) {
	args := make([]ast.Expr, 0)
	if p.cur.accept(token.KindRParen) != nil {
		return args, nil
	}

	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		if p.cur.accept(token.KindComma) != nil {
			continue
		}

		if _, err := p.expect(token.KindRParen); err != nil {
			return nil, p.unexpected("','", "')'")
		}

		return args, nil
	}
}

func (p *Parser) parseOperand() (ast.Expr, error) {
	tok := p.cur.peek()
	if tok == nil {
		return nil, p.unexpected("expression")
	}

	switch tok.Kind {
	case token.KindTrue, token.KindFalse:
		p.cur.read()

		return &ast.Bool{Value: tok.Kind == token.KindTrue, Loc: tok.Location}, nil

	case token.KindLParen:
		p.cur.read()

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(token.KindRParen); err != nil {
			return nil, err
		}

		return expr, nil
	}

	return p.parseAtom()
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.cur.peek()
	if tok == nil {
		return nil, p.unexpected("expression")
	}

	if typ, ok := builtinType(tok); ok {
		p.cur.read()

		return &ast.TypeLiteral{Type: typ, Loc: tok.Location}, nil
	}

	switch tok.Kind {
	case token.KindIdentifier:
		p.cur.read()

		return &ast.Identifier{Name: tok.Value, Loc: tok.Location}, nil

	case token.KindString:
		p.cur.read()

		return &ast.String{Value: tok.Value, Loc: tok.Location}, nil

	case token.KindNumber:
		return p.parseNumber()

	case token.KindLBracket:
		return p.parseList()

	default:
		return nil, p.unexpected("expression")
	}
}

func (p *Parser) parseNumber() (*ast.Number, error) {
	tok, err := p.expect(token.KindNumber)
	if err != nil {
		return nil, err
	}

	value, err := literal.EvaluateWithin(tok.Value, tok.Exponent, p.maxExponent)
	if err != nil {
		return nil, &LiteralError{Location: tok.Location, Err: err}
	}

	return &ast.Number{Value: value, Loc: tok.Location}, nil
}

// [e, e, ...] with at least one element
func (p *Parser) parseList() (*ast.List, error) {
	start := p.cur.start()

	if _, err := p.expect(token.KindLBracket); err != nil {
		return nil, err
	}

	elements := make([]ast.Expr, 0, 1)
	for {
		element, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		elements = append(elements, element)

		if p.cur.accept(token.KindComma) == nil {
			break
		}
	}

	if _, err := p.expect(token.KindRBracket); err != nil {
		return nil, p.unexpected("','", "']'")
	}

	list := &ast.List{
		Elements: elements,
		Loc:      p.cur.span(start),
	}

	return list, nil
}

// acceptOperator consumes the next token if it is one of operators.
func acceptOperator[Op any](c *cursor, operators map[token.Kind]Op) (Op, bool) {
	var zero Op

	tok := c.peek()
	if tok == nil {
		return zero, false
	}

	op, ok := operators[tok.Kind]
	if !ok {
		return zero, false
	}

	c.read()

	return op, true
}

func builtinType(tok *token.Token) (ast.Type, bool) {
	switch tok.Kind {
	case token.KindBool:
		return ast.Type{Kind: ast.TypeBool}, true
	case token.KindStringT:
		return ast.Type{Kind: ast.TypeString}, true
	case token.KindBytesT:
		return ast.Type{Kind: ast.TypeDynamicBytes}, true
	case token.KindInt:
		return ast.Type{Kind: ast.TypeInt, Width: tok.Width}, true
	case token.KindUint:
		return ast.Type{Kind: ast.TypeUint, Width: tok.Width}, true
	case token.KindBytes:
		return ast.Type{Kind: ast.TypeBytes, Width: tok.Width}, true
	default:
		return ast.Type{}, false
	}
}
