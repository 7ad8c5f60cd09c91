package ast

import (
	"math/big"

	"github.com/charj-lang/charj/internal/charj/token"
)

var (
	_ Expr = (*Range)(nil)
	_ Expr = (*BoolOp)(nil)
	_ Expr = (*Compare)(nil)
	_ Expr = (*Binop)(nil)
	_ Expr = (*Unop)(nil)
	_ Expr = (*PostUnop)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*MemberAccess)(nil)
	_ Expr = (*Bool)(nil)
	_ Expr = (*String)(nil)
	_ Expr = (*Number)(nil)
	_ Expr = (*List)(nil)
	_ Expr = (*EmptyObject)(nil)
	_ Expr = (*TypeLiteral)(nil)
	_ Expr = (*Identifier)(nil)
)

type Expr interface {
	Node
	isExpr()
}

type (
	Range struct {
		Start Expr
		End   Expr
		Loc   token.Location
	}

	// BoolOp always holds exactly two values; a || b || c nests.
	BoolOp struct {
		Operator BoolOperator
		Values   []Expr
		Loc      token.Location
	}

	Compare struct {
		Operator CompareOperator
		Left     Expr
		Right    Expr
		Loc      token.Location
	}

	Binop struct {
		Operator BinaryOperator
		Left     Expr
		Right    Expr
		Loc      token.Location
	}

	Unop struct {
		Operator UnaryOperator
		Operand  Expr
		Loc      token.Location
	}

	PostUnop struct {
		Operator PostfixOperator
		Operand  Expr
		Loc      token.Location
	}

	Call struct {
		Callee    Expr
		Arguments []Expr
		Loc       token.Location
	}

	MemberAccess struct {
		Base     Expr
		Property *Identifier
		Loc      token.Location
	}

	Bool struct {
		Value bool
		Loc   token.Location
	}

	String struct {
		Value string
		Loc   token.Location
	}

	Number struct {
		Value *big.Int
		Loc   token.Location
	}

	List struct {
		Elements []Expr
		Loc      token.Location
	}

	EmptyObject struct {
		Loc token.Location
	}

	TypeLiteral struct {
		Type Type
		Loc  token.Location
	}

	Identifier struct {
		Name string
		Loc  token.Location
	}
)

func (e *Range) Location() token.Location        { return e.Loc }
func (e *BoolOp) Location() token.Location       { return e.Loc }
func (e *Compare) Location() token.Location      { return e.Loc }
func (e *Binop) Location() token.Location        { return e.Loc }
func (e *Unop) Location() token.Location         { return e.Loc }
func (e *PostUnop) Location() token.Location     { return e.Loc }
func (e *Call) Location() token.Location         { return e.Loc }
func (e *MemberAccess) Location() token.Location { return e.Loc }
func (e *Bool) Location() token.Location         { return e.Loc }
func (e *String) Location() token.Location       { return e.Loc }
func (e *Number) Location() token.Location       { return e.Loc }
func (e *List) Location() token.Location         { return e.Loc }
func (e *EmptyObject) Location() token.Location  { return e.Loc }
func (e *TypeLiteral) Location() token.Location  { return e.Loc }
func (e *Identifier) Location() token.Location   { return e.Loc }

func (*Range) isExpr()        {}
func (*BoolOp) isExpr()       {}
func (*Compare) isExpr()      {}
func (*Binop) isExpr()        {}
func (*Unop) isExpr()         {}
func (*PostUnop) isExpr()     {}
func (*Call) isExpr()         {}
func (*MemberAccess) isExpr() {}
func (*Bool) isExpr()         {}
func (*String) isExpr()       {}
func (*Number) isExpr()       {}
func (*List) isExpr()         {}
func (*EmptyObject) isExpr()  {}
func (*TypeLiteral) isExpr()  {}
func (*Identifier) isExpr()   {}
