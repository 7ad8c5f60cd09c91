package ast

import "github.com/charj-lang/charj/internal/charj/token"

var (
	_ Stmt = (*VariableDecl)(nil)
	_ Stmt = (*Assign)(nil)
	_ Stmt = (*ExpressionStmt)(nil)
	_ Stmt = (*If)(nil)
	_ Stmt = (*While)(nil)
	_ Stmt = (*For)(nil)
	_ Stmt = (*Break)(nil)
	_ Stmt = (*Continue)(nil)
	_ Stmt = (*Return)(nil)
)

type Stmt interface {
	Node
	isStmt()
}

type (
	// VariableDecl is a field-style declaration: name: type. It is also the
	// shape of struct fields.
	VariableDecl struct {
		Name string
		Type Expr
		Loc  token.Location
	}

	// Assign is let name: type = value. Value is an *EmptyObject for {}.
	Assign struct {
		Name  string
		Type  Expr
		Value Expr
		Loc   token.Location
	}

	ExpressionStmt struct {
		Expr Expr
		Loc  token.Location
	}

	If struct {
		Cond Expr
		Body []Stmt
		// Else is nil when there is no else branch.
		Else []Stmt
		Loc  token.Location
	}

	While struct {
		Cond Expr
		Body []Stmt
		Loc  token.Location
	}

	For struct {
		Target Expr
		Iter   Expr
		Body   []Stmt
		Loc    token.Location
	}

	Break struct {
		Loc token.Location
	}

	Continue struct {
		Loc token.Location
	}

	// Return holds nil for a bare return and a *List of every returned value
	// otherwise.
	Return struct {
		Value Expr
		Loc   token.Location
	}
)

func (s *VariableDecl) Location() token.Location   { return s.Loc }
func (s *Assign) Location() token.Location         { return s.Loc }
func (s *ExpressionStmt) Location() token.Location { return s.Loc }
func (s *If) Location() token.Location             { return s.Loc }
func (s *While) Location() token.Location          { return s.Loc }
func (s *For) Location() token.Location            { return s.Loc }
func (s *Break) Location() token.Location          { return s.Loc }
func (s *Continue) Location() token.Location       { return s.Loc }
func (s *Return) Location() token.Location         { return s.Loc }

func (*VariableDecl) isStmt()   {}
func (*Assign) isStmt()         {}
func (*ExpressionStmt) isStmt() {}
func (*If) isStmt()             {}
func (*While) isStmt()          {}
func (*For) isStmt()            {}
func (*Break) isStmt()          {}
func (*Continue) isStmt()       {}
func (*Return) isStmt()         {}
