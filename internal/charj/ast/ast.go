// Package ast declares the syntax tree produced by the parser.
//
// Every category of node is a closed set: Unit, Stmt and Expr are sealed
// interfaces implemented only by the pointer types in this package, so a type
// switch over them can be checked for exhaustiveness. Every node records the
// half-open byte range of the tokens it was built from.
package ast

import "github.com/charj-lang/charj/internal/charj/token"

var (
	_ Unit = (*Package)(nil)
	_ Unit = (*Import)(nil)
	_ Unit = (*ObjectDecl)(nil)
	_ Unit = (*StructDecl)(nil)
	_ Unit = (*FuncDecl)(nil)
	_ Unit = (*StructFuncDecl)(nil)
)

type Node interface {
	Location() token.Location
}

// Unit is a top-level declaration of a source file.
type Unit interface {
	Node
	isUnit()
}

type Program struct {
	Units []Unit
	Loc   token.Location
}

type ImportKind string

const (
	// import name
	ImportStandard ImportKind = "standard"
	// import "path" as name
	ImportGlobalSymbol ImportKind = "global_symbol"
	// import "path".* as name
	ImportGlobalWildcard ImportKind = "global_wildcard"
)

type (
	Package struct {
		Name string
		Loc  token.Location
	}

	Import struct {
		Kind ImportKind
		// Path is empty for standard imports.
		Path string
		// Name is the imported name, or the alias of a global symbol import.
		Name string
		Loc  token.Location
	}

	StructDecl struct {
		Name   string
		Fields []*VariableDecl
		Loc    token.Location
	}

	ObjectDecl struct {
		Name  string
		Funcs []*FuncDecl
		Loc   token.Location
	}

	FuncDecl struct {
		Name   string
		Params []*ParameterSlot
		Body   []Stmt
		Loc    token.Location
	}

	// StructFuncDecl binds a function to a struct by name: Struct $ Name(...) -> Returns { ... }.
	StructFuncDecl struct {
		Struct string
		Name   string
		Params []*ParameterSlot
		// Returns is nil when no return type is declared.
		Returns Expr
		Body    []Stmt
		Loc     token.Location
	}

	// ParameterSlot is one position of a parameter list. Param is nil for a
	// position left empty, as in (a, , c).
	ParameterSlot struct {
		Param *Parameter
		Loc   token.Location
	}

	Parameter struct {
		Type Expr
		// Name is empty when the parameter is unnamed.
		Name string
		Loc  token.Location
	}
)

func (p *Program) Location() token.Location        { return p.Loc }
func (u *Package) Location() token.Location        { return u.Loc }
func (u *Import) Location() token.Location         { return u.Loc }
func (u *StructDecl) Location() token.Location     { return u.Loc }
func (u *ObjectDecl) Location() token.Location     { return u.Loc }
func (u *FuncDecl) Location() token.Location       { return u.Loc }
func (u *StructFuncDecl) Location() token.Location { return u.Loc }
func (p *ParameterSlot) Location() token.Location  { return p.Loc }
func (p *Parameter) Location() token.Location      { return p.Loc }

func (*Package) isUnit()        {}
func (*Import) isUnit()         {}
func (*StructDecl) isUnit()     {}
func (*ObjectDecl) isUnit()     {}
func (*FuncDecl) isUnit()       {}
func (*StructFuncDecl) isUnit() {}
