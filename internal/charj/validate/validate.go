// Package validate checks syntax trees for shapes the grammar accepts but the
// language does not.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charj-lang/charj/internal/charj/ast"
	"github.com/charj-lang/charj/internal/charj/token"
)

var ErrInvalidType = errors.New("expression is not a type")

// TypeError points at an expression used where only a type may appear.
type TypeError struct {
	Location token.Location
	// Found names the kind of expression, e.g. "call".
	Found string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s used as a type", e.Location, e.Found)
}

func (e *TypeError) Unwrap() error {
	return ErrInvalidType
}

// TypePositions reports every type annotation that is not a built-in type, a
// type name or a list of types. Field, parameter, variable and return types
// are checked. The result is empty for a valid program.
func TypePositions(program *ast.Program) []error {
	errs := make([]error, 0)

	check := func(expr ast.Expr) {
		if expr == nil {
			return
		}

		errs = append(errs, checkType(expr)...)
	}

	ast.Walk(program, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.VariableDecl:
			check(n.Type)
		case *ast.Assign:
			check(n.Type)
		case *ast.Parameter:
			check(n.Type)
		case *ast.StructFuncDecl:
			check(n.Returns)
		}

		return true
	})

	return errs
}

func checkType(expr ast.Expr) []error {
	switch e := expr.(type) {
	case *ast.TypeLiteral, *ast.Identifier:
		return nil

	case *ast.List:
		var errs []error
		for _, element := range e.Elements {
			errs = append(errs, checkType(element)...)
		}

		return errs

	default:
		return []error{&TypeError{Location: expr.Location(), Found: describe(expr)}}
	}
}

// describe names an expression node: *ast.MemberAccess becomes "member access".
func describe(expr ast.Expr) string {
	name := fmt.Sprintf("%T", expr)
	name = strings.TrimPrefix(name, "*ast.")

	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteString(strings.ToLower(string(r)))
	}

	return b.String()
}
