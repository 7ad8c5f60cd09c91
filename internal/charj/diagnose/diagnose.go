// Package diagnose runs the front end over one source file and turns its
// errors into located diagnostics.
package diagnose

import (
	"errors"

	"github.com/charj-lang/charj/internal/charj/ast"
	"github.com/charj-lang/charj/internal/charj/lexer"
	"github.com/charj-lang/charj/internal/charj/parser"
	"github.com/charj-lang/charj/internal/charj/source"
	"github.com/charj-lang/charj/internal/charj/token"
	"github.com/charj-lang/charj/internal/charj/validate"
)

// MaxExponent bounds the exponent of numeric literals. Larger exponents are
// reported as errors instead of being evaluated.
const MaxExponent = 1 << 16

type Diagnostic struct {
	Location token.Location
	Position source.Position
	Message  string
	Err      error
}

func (d Diagnostic) String() string {
	return d.Position.Start.String() + ": " + d.Message
}

type Result struct {
	File *source.File
	// Program is nil when the file does not parse.
	Program     *ast.Program
	Diagnostics []Diagnostic
}

// File parses and validates file. A syntax error yields a single diagnostic;
// a program that parses is checked for invalid type positions.
func File(file *source.File) *Result {
	result := &Result{
		File:        file,
		Diagnostics: make([]Diagnostic, 0),
	}

	program, err := parser.ParseString(file.Content, parser.WithMaxExponent(MaxExponent))
	if err != nil {
		result.Diagnostics = append(result.Diagnostics, newDiagnostic(file, err))
		return result
	}

	result.Program = program

	for _, err := range validate.TypePositions(program) {
		result.Diagnostics = append(result.Diagnostics, newDiagnostic(file, err))
	}

	return result
}

// Failed reports whether any diagnostic was produced.
func (r *Result) Failed() bool {
	return len(r.Diagnostics) > 0
}

func newDiagnostic(file *source.File, err error) Diagnostic {
	loc, message := locate(err)

	return Diagnostic{
		Location: loc,
		Position: file.Position(loc),
		Message:  message,
		Err:      err,
	}
}

func locate(err error) (token.Location, string) {
	var (
		syntaxErr  *parser.SyntaxError
		literalErr *parser.LiteralError
		lexErr     *lexer.Error
		typeErr    *validate.TypeError
	)

	switch {
	case errors.As(err, &syntaxErr):
		return syntaxErr.Location, syntaxErr.Detail()

	case errors.As(err, &literalErr):
		return literalErr.Location, literalErr.Err.Error()

	case errors.As(err, &lexErr):
		return token.Location{Start: lexErr.Offset, End: lexErr.Offset + 1}, lexErr.Err.Error()

	case errors.As(err, &typeErr):
		return typeErr.Location, typeErr.Found + " used as a type"

	default:
		return token.Location{}, err.Error()
	}
}
