package parser_test

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/charj-lang/charj/internal/charj/ast"
	"github.com/charj-lang/charj/internal/charj/lexer"
	"github.com/charj-lang/charj/internal/charj/literal"
	"github.com/charj-lang/charj/internal/charj/parser"
	"github.com/charj-lang/charj/internal/charj/token"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	pos    int
	tokens []*token.Token
	err    error
}

func (s *fakeSource) ReadToken() (*token.Token, error) {
	if s.pos >= len(s.tokens) {
		if s.err != nil {
			return nil, s.err
		}

		return nil, io.EOF
	}

	tok := s.tokens[s.pos]
	s.pos += 1

	return tok, nil
}

func loc(start, end int) token.Location {
	return token.Location{Start: start, End: end}
}

func ident(name string, start int) *ast.Identifier {
	return &ast.Identifier{Name: name, Loc: loc(start, start+len(name))}
}

// sexpr renders an expression tree in prefix form so tests can assert shape
// without spelling out every location.
func sexpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Range:
		return fmt.Sprintf("(.. %s %s)", sexpr(e.Start), sexpr(e.End))
	case *ast.BoolOp:
		parts := make([]string, 0, len(e.Values))
		for _, value := range e.Values {
			parts = append(parts, sexpr(value))
		}
		return fmt.Sprintf("(%s %s)", e.Operator, strings.Join(parts, " "))
	case *ast.Compare:
		return fmt.Sprintf("(%s %s %s)", e.Operator, sexpr(e.Left), sexpr(e.Right))
	case *ast.Binop:
		return fmt.Sprintf("(%s %s %s)", e.Operator, sexpr(e.Left), sexpr(e.Right))
	case *ast.Unop:
		return fmt.Sprintf("(%s %s)", e.Operator, sexpr(e.Operand))
	case *ast.PostUnop:
		return fmt.Sprintf("(%s %s)", sexpr(e.Operand), e.Operator)
	case *ast.Call:
		parts := []string{"call", sexpr(e.Callee)}
		for _, arg := range e.Arguments {
			parts = append(parts, sexpr(arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *ast.MemberAccess:
		return fmt.Sprintf("(. %s %s)", sexpr(e.Base), e.Property.Name)
	case *ast.Bool:
		return strconv.FormatBool(e.Value)
	case *ast.String:
		return strconv.Quote(e.Value)
	case *ast.Number:
		return e.Value.String()
	case *ast.List:
		parts := make([]string, 0, len(e.Elements))
		for _, element := range e.Elements {
			parts = append(parts, sexpr(element))
		}
		return "[" + strings.Join(parts, " ") + "]"
	case *ast.EmptyObject:
		return "{}"
	case *ast.TypeLiteral:
		return e.Type.String()
	case *ast.Identifier:
		return e.Name
	default:
		return fmt.Sprintf("<%T>", expr)
	}
}

func TestParseExpression(t *testing.T) {
	type testCase struct {
		name   string
		input  string
		output string
	}

	testCases := []testCase{
		{name: "subtraction is left associative", input: "1 - 2 - 3", output: "(- (- 1 2) 3)"},
		{name: "comparisons nest to the left", input: "1 == 2 == 3", output: "(== (== 1 2) 3)"},
		{name: "member access chain", input: "a.b.c", output: "(. (. a b) c)"},
		{name: "multiplication binds tighter", input: "1 + 2 * 3", output: "(+ 1 (* 2 3))"},
		{name: "and binds tighter than or", input: "a || b && c", output: "(|| a (&& b c))"},
		{name: "not binds tighter than compare", input: "!a == b", output: "(== (! a) b)"},
		{name: "not stacks", input: "!!x", output: "(! (! x))"},
		{name: "call of a call", input: "f(x)(y)", output: "(call (call f x) y)"},
		{name: "call of a member", input: "a.b()", output: "(call (. a b))"},
		{name: "mixed chain", input: "a.b(c).d.e()", output: "(call (. (. (call (. a b) c) d) e))"},
		{name: "call arguments", input: "f(1, g(2), [3])", output: "(call f 1 (call g 2) [3])"},
		{name: "range binds loosest", input: "a .. b + 1", output: "(.. a (+ b 1))"},
		{name: "range is left associative", input: "a .. b .. c", output: "(.. (.. a b) c)"},
		{name: "or is left associative", input: "a || b || c", output: "(|| (|| a b) c)"},
		{name: "shift below additive", input: "a << 1 + 2", output: "(<< a (+ 1 2))"},
		{name: "modulo", input: "a % b / c", output: "(/ (% a b) c)"},
		{name: "prefix minus", input: "-x", output: "(- x)"},
		{name: "prefix invert of a group", input: "~(a + b)", output: "(~ (+ a b))"},
		{name: "prefix plus of a call", input: "+f(1)", output: "(+ (call f 1))"},
		{name: "postfix increment", input: "x++", output: "(x ++)"},
		{name: "postfix decrement of a member", input: "a.b--", output: "((. a b) --)"},
		{name: "parentheses regroup", input: "(1 + 2) * 3", output: "(* (+ 1 2) 3)"},
		{name: "comparison operators", input: "a < b != c >= d", output: "(>= (!= (< a b) c) d)"},
		{name: "booleans", input: "true && false", output: "(&& true false)"},
		{name: "string", input: `"hi"`, output: `"hi"`},
		{name: "number with separators", input: "1_000", output: "1000"},
		{name: "number with exponent", input: "5e3", output: "5000"},
		{name: "list", input: "[1, a, \"s\"]", output: `[1 a "s"]`},
		{name: "type / sized int", input: "int8", output: "int8"},
		{name: "type / bare uint", input: "uint", output: "uint256"},
		{name: "type / dynamic bytes", input: "bytes", output: "bytes"},
		{name: "type / fixed bytes", input: "bytes4", output: "bytes4"},
		{name: "type / bool", input: "bool", output: "bool"},
		{name: "type / string", input: "string", output: "string"},
		{name: "doc comments are skipped", input: "a /// note\n + b", output: "(+ a b)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Logf("input: %s", tc.input)

			expr, err := parser.ParseExpressionString(tc.input)
			require.NoError(t, err)

			t.Log("got expr:")
			t.Log(pretty.Sprint(expr))

			assert.Equal(t, tc.output, sexpr(expr))
		})
	}
}

func TestParseExpressionLocations(t *testing.T) {
	// 1 + 2 * 3
	// 0 2 4 6 8
	expr, err := parser.ParseExpressionString("1 + 2 * 3")
	require.NoError(t, err)

	expected := &ast.Binop{
		Operator: ast.OperatorAdd,
		Left:     &ast.Number{Value: big.NewInt(1), Loc: loc(0, 1)},
		Right: &ast.Binop{
			Operator: ast.OperatorMul,
			Left:     &ast.Number{Value: big.NewInt(2), Loc: loc(4, 5)},
			Right:    &ast.Number{Value: big.NewInt(3), Loc: loc(8, 9)},
			Loc:      loc(4, 9),
		},
		Loc: loc(0, 9),
	}

	t.Log(pretty.Sprint(expr))

	require.Equal(t, expected, expr)

	t.Run("parentheses are not part of the inner node", func(t *testing.T) {
		expr, err := parser.ParseExpressionString("(a) . b")
		require.NoError(t, err)

		member, ok := expr.(*ast.MemberAccess)
		require.True(t, ok)

		assert.Equal(t, loc(1, 2), member.Base.Location())
		assert.Equal(t, loc(0, 7), member.Loc)
	})
}

func TestParse(t *testing.T) {
	type testCase struct {
		name   string
		input  string
		output *ast.Program
	}

	testCases := []testCase{
		{
			name:  "empty function body",
			input: "fun f() { }",
			output: &ast.Program{
				Units: []ast.Unit{
					&ast.FuncDecl{
						Name:   "f",
						Params: []*ast.ParameterSlot{},
						Body:   []ast.Stmt{},
						Loc:    loc(0, 11),
					},
				},
				Loc: loc(0, 11),
			},
		},
		{
			name:  "unbraced if",
			input: "fun f() { if (a > b) return a; }",
			output: &ast.Program{
				Units: []ast.Unit{
					&ast.FuncDecl{
						Name:   "f",
						Params: []*ast.ParameterSlot{},
						Body: []ast.Stmt{
							&ast.If{
								Cond: &ast.Compare{
									Operator: ast.OperatorGreaterThan,
									Left:     ident("a", 14),
									Right:    ident("b", 18),
									Loc:      loc(14, 19),
								},
								Body: []ast.Stmt{
									&ast.Return{
										Value: &ast.List{
											Elements: []ast.Expr{ident("a", 28)},
											Loc:      loc(28, 29),
										},
										Loc: loc(21, 30),
									},
								},
								Loc: loc(10, 30),
							},
						},
						Loc: loc(0, 32),
					},
				},
				Loc: loc(0, 32),
			},
		},
		{
			name:  "unbraced if with a simple body",
			input: "fun f() { if (c) x++; }",
			output: &ast.Program{
				Units: []ast.Unit{
					&ast.FuncDecl{
						Name:   "f",
						Params: []*ast.ParameterSlot{},
						Body: []ast.Stmt{
							&ast.If{
								Cond: ident("c", 14),
								Body: []ast.Stmt{
									&ast.ExpressionStmt{
										Expr: &ast.PostUnop{
											Operator: ast.OperatorIncrement,
											Operand:  ident("x", 17),
											Loc:      loc(17, 20),
										},
										Loc: loc(17, 20),
									},
								},
								// the body's ';' belongs to the if, not to the body
								Loc: loc(10, 21),
							},
						},
						Loc: loc(0, 23),
					},
				},
				Loc: loc(0, 23),
			},
		},
		{
			name:  "parameter list with an empty position",
			input: "fun f(int a, , bool) { }",
			output: &ast.Program{
				Units: []ast.Unit{
					&ast.FuncDecl{
						Name: "f",
						Params: []*ast.ParameterSlot{
							{
								Param: &ast.Parameter{
									Type: &ast.TypeLiteral{Type: ast.Type{Kind: ast.TypeInt, Width: 256}, Loc: loc(6, 9)},
									Name: "a",
									Loc:  loc(6, 11),
								},
								Loc: loc(6, 11),
							},
							{
								Loc: loc(13, 13),
							},
							{
								Param: &ast.Parameter{
									Type: &ast.TypeLiteral{Type: ast.Type{Kind: ast.TypeBool}, Loc: loc(15, 19)},
									Loc:  loc(15, 19),
								},
								Loc: loc(15, 19),
							},
						},
						Body: []ast.Stmt{},
						Loc:  loc(0, 24),
					},
				},
				Loc: loc(0, 24),
			},
		},
		{
			name:  "parameter list of empty positions",
			input: "fun f(,) { }",
			output: &ast.Program{
				Units: []ast.Unit{
					&ast.FuncDecl{
						Name: "f",
						Params: []*ast.ParameterSlot{
							{Loc: loc(6, 6)},
							{Loc: loc(7, 7)},
						},
						Body: []ast.Stmt{},
						Loc:  loc(0, 12),
					},
				},
				Loc: loc(0, 12),
			},
		},
		{
			name:  "struct function",
			input: "S $ get(uint8 i) -> int { return i, 1; }",
			output: &ast.Program{
				Units: []ast.Unit{
					&ast.StructFuncDecl{
						Struct: "S",
						Name:   "get",
						Params: []*ast.ParameterSlot{
							{
								Param: &ast.Parameter{
									Type: &ast.TypeLiteral{Type: ast.Type{Kind: ast.TypeUint, Width: 8}, Loc: loc(8, 13)},
									Name: "i",
									Loc:  loc(8, 15),
								},
								Loc: loc(8, 15),
							},
						},
						Returns: &ast.TypeLiteral{Type: ast.Type{Kind: ast.TypeInt, Width: 256}, Loc: loc(20, 23)},
						Body: []ast.Stmt{
							&ast.Return{
								Value: &ast.List{
									Elements: []ast.Expr{
										ident("i", 33),
										&ast.Number{Value: big.NewInt(1), Loc: loc(36, 37)},
									},
									Loc: loc(33, 37),
								},
								Loc: loc(26, 38),
							},
						},
						Loc: loc(0, 40),
					},
				},
				Loc: loc(0, 40),
			},
		},
		{
			name:  "wildcard import",
			input: `import "lib".* as all`,
			output: &ast.Program{
				Units: []ast.Unit{
					&ast.Import{
						Kind: ast.ImportGlobalWildcard,
						Path: "lib",
						Name: "all",
						Loc:  loc(0, 21),
					},
				},
				Loc: loc(0, 21),
			},
		},
		{
			name:  "struct fields",
			input: "struct S { a: int, b: bool; }",
			output: &ast.Program{
				Units: []ast.Unit{
					&ast.StructDecl{
						Name: "S",
						Fields: []*ast.VariableDecl{
							{
								Name: "a",
								Type: &ast.TypeLiteral{Type: ast.Type{Kind: ast.TypeInt, Width: 256}, Loc: loc(14, 17)},
								Loc:  loc(11, 17),
							},
							{
								Name: "b",
								Type: &ast.TypeLiteral{Type: ast.Type{Kind: ast.TypeBool}, Loc: loc(22, 26)},
								Loc:  loc(19, 26),
							},
						},
						Loc: loc(0, 29),
					},
				},
				Loc: loc(0, 29),
			},
		},
		{
			name:  "break excludes its semicolon",
			input: "fun f() { while (true) { break; } }",
			output: &ast.Program{
				Units: []ast.Unit{
					&ast.FuncDecl{
						Name:   "f",
						Params: []*ast.ParameterSlot{},
						Body: []ast.Stmt{
							&ast.While{
								Cond: &ast.Bool{Value: true, Loc: loc(17, 21)},
								Body: []ast.Stmt{
									&ast.Break{Loc: loc(25, 30)},
								},
								Loc: loc(10, 33),
							},
						},
						Loc: loc(0, 35),
					},
				},
				Loc: loc(0, 35),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Logf("input: %s", tc.input)

			t.Log("expected program:")
			t.Log(pretty.Sprint(tc.output))

			program, err := parser.ParseString(tc.input)
			require.NoError(t, err)

			t.Log("got program:")
			t.Log(pretty.Sprint(program))

			require.Equal(t, tc.output, program)
		})
	}
}

const sample = `
/// The sample package.
pkg sample

import math
import "lib/strings" as str
import "lib/list".* as list

struct Account {
	owner: string,
	balance: uint128;
	tags: [bytes32]
}

object Bank {
	fun open(string owner, uint128 deposit) {
		let account: Account = {};
		account.setOwner(owner);
		return;
	}

	fun empty() { }
}

Account $ withdraw(uint128 amount, , bool force) -> bool {
	if (amount > this.balance && !force) return false;
	if (amount == 0) {
		continue;
	} else {
		this.debit(amount);
	}
	while (this.balance > 1e18) {
		this.balance--;
		break;
	}
	for (i in 0 .. 10) {
		total: int64;
		print(str.concat("i=", i), list.len(this.tags));
	}
	return true, amount;
}
`

func TestParseSample(t *testing.T) {
	program, err := parser.ParseString(sample)
	require.NoError(t, err)

	t.Log(pretty.Sprint(program))

	require.Len(t, program.Units, 7)

	t.Run("units", func(t *testing.T) {
		pkg, ok := program.Units[0].(*ast.Package)
		require.True(t, ok)
		assert.Equal(t, "sample", pkg.Name)

		kinds := []ast.ImportKind{ast.ImportStandard, ast.ImportGlobalSymbol, ast.ImportGlobalWildcard}
		for i, kind := range kinds {
			imp, ok := program.Units[1+i].(*ast.Import)
			require.True(t, ok)
			assert.Equal(t, kind, imp.Kind)
		}

		account, ok := program.Units[4].(*ast.StructDecl)
		require.True(t, ok)
		require.Len(t, account.Fields, 3)
		assert.Equal(t, "[bytes32]", sexpr(account.Fields[2].Type))

		bank, ok := program.Units[5].(*ast.ObjectDecl)
		require.True(t, ok)
		require.Len(t, bank.Funcs, 2)
		assert.Len(t, bank.Funcs[0].Params, 2)
		assert.Empty(t, bank.Funcs[1].Body)

		assign, ok := bank.Funcs[0].Body[0].(*ast.Assign)
		require.True(t, ok)
		assert.IsType(t, &ast.EmptyObject{}, assign.Value)

		ret, ok := bank.Funcs[0].Body[2].(*ast.Return)
		require.True(t, ok)
		assert.Nil(t, ret.Value)
	})

	t.Run("struct function body", func(t *testing.T) {
		withdraw, ok := program.Units[6].(*ast.StructFuncDecl)
		require.True(t, ok)

		require.Len(t, withdraw.Params, 3)
		assert.Nil(t, withdraw.Params[1].Param)
		assert.Equal(t, "bool", sexpr(withdraw.Returns))

		require.Len(t, withdraw.Body, 5)

		guard := withdraw.Body[0].(*ast.If)
		assert.Equal(t, "(&& (> amount (. this balance)) (! force))", sexpr(guard.Cond))
		assert.Len(t, guard.Body, 1)
		assert.Nil(t, guard.Else)

		branch := withdraw.Body[1].(*ast.If)
		assert.Len(t, branch.Body, 1)
		assert.IsType(t, &ast.Continue{}, branch.Body[0])
		assert.Len(t, branch.Else, 1)

		loop := withdraw.Body[2].(*ast.While)
		assert.Equal(t, "(> (. this balance) 1000000000000000000)", sexpr(loop.Cond))

		each := withdraw.Body[3].(*ast.For)
		assert.Equal(t, "i", sexpr(each.Target))
		assert.Equal(t, "(.. 0 10)", sexpr(each.Iter))
		require.Len(t, each.Body, 2)
		assert.IsType(t, &ast.VariableDecl{}, each.Body[0])

		ret := withdraw.Body[4].(*ast.Return)
		assert.Equal(t, "[true amount]", sexpr(ret.Value))
	})

	t.Run("spans nest", func(t *testing.T) {
		ast.Walk(program, func(parent ast.Node) bool {
			outer := parent.Location()
			assert.LessOrEqual(t, outer.Start, outer.End, "%T", parent)

			ast.Walk(parent, func(child ast.Node) bool {
				assert.True(t, outer.Contains(child.Location()), "%T %s does not contain %T %s", parent, outer, child, child.Location())
				return true
			})

			return true
		})
	})

	t.Run("program covers every token", func(t *testing.T) {
		first := strings.Index(sample, "pkg")
		last := strings.LastIndex(sample, "}") + 1

		assert.Equal(t, loc(first, last), program.Loc)
	})
}

func TestParseErrors(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		location token.Location
		// found is the kind of the offending token; empty means end of input.
		found token.Kind
	}

	testCases := []testCase{
		{name: "empty source", input: "", location: loc(0, 0)},
		{name: "only comments", input: "// nothing\n", location: loc(0, 0)},
		{name: "missing assigned value", input: "fun f() { let x : int =", location: loc(23, 23)},
		{name: "else after unbraced if", input: "fun f() { if (a > b) return a; else { } }", location: loc(31, 35), found: token.KindElse},
		{name: "empty list", input: "fun f() { g([]); }", location: loc(13, 14), found: token.KindRBracket},
		{name: "missing semicolon", input: "fun f() { break }", location: loc(16, 17), found: token.KindRBrace},
		{name: "unbraced while", input: "fun f() { while (x) y; }", location: loc(20, 21), found: token.KindIdentifier},
		{name: "statement at top level", input: "let x: int = 1;", location: loc(0, 3), found: token.KindLet},
		{name: "import without alias", input: `import "lib"`, location: loc(12, 12)},
		{name: "stacked prefix", input: "fun f() { - -x; }", location: loc(12, 13), found: token.KindMinus},
		{name: "missing struct function marker", input: "S get() { }", location: loc(2, 5), found: token.KindIdentifier},
		{name: "unclosed call", input: "fun f() { g(1 2); }", location: loc(14, 15), found: token.KindNumber},
		{name: "object holds only functions", input: "object O { a: int }", location: loc(11, 12), found: token.KindIdentifier},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			program, err := parser.ParseString(tc.input)
			require.Error(t, err)
			assert.Nil(t, program)

			t.Log(err)

			var syntaxErr *parser.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)

			assert.Equal(t, tc.location, syntaxErr.Location)

			if tc.found == "" {
				assert.True(t, syntaxErr.AtEOF())
				assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
				return
			}

			require.NotNil(t, syntaxErr.Token)
			assert.Equal(t, tc.found, syntaxErr.Token.Kind)
		})
	}

	t.Run("empty list expression", func(t *testing.T) {
		_, err := parser.ParseExpressionString("[]")

		var syntaxErr *parser.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, token.KindRBracket, syntaxErr.Token.Kind)
	})

	t.Run("trailing tokens after an expression", func(t *testing.T) {
		_, err := parser.ParseExpressionString("a b")

		var syntaxErr *parser.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, []string{"end of input"}, syntaxErr.Expected)
	})

	t.Run("malformed number literal", func(t *testing.T) {
		source := &fakeSource{
			tokens: []*token.Token{
				{Kind: token.KindNumber, Value: "12x", Location: loc(0, 3)},
			},
		}

		_, err := parser.NewParser(source).ParseExpression()

		var literalErr *parser.LiteralError
		require.ErrorAs(t, err, &literalErr)
		assert.Equal(t, loc(0, 3), literalErr.Location)
		assert.ErrorIs(t, err, literal.ErrMalformedBase)
	})

	t.Run("exponent above limit", func(t *testing.T) {
		_, err := parser.ParseString("fun f() { g(2e100000000); }", parser.WithMaxExponent(64))

		var literalErr *parser.LiteralError
		require.ErrorAs(t, err, &literalErr)
		assert.Equal(t, loc(12, 23), literalErr.Location)
		assert.ErrorIs(t, err, literal.ErrExponentTooLarge)

		program, err := parser.ParseString("fun f() { g(2e64); }", parser.WithMaxExponent(64))
		require.NoError(t, err)
		assert.NotNil(t, program)
	})

	t.Run("token source failure", func(t *testing.T) {
		sourceErr := errors.New("broken pipe")

		source := &fakeSource{
			tokens: []*token.Token{
				{Kind: token.KindFun, Value: "fun", Location: loc(0, 3)},
				{Kind: token.KindIdentifier, Value: "f", Location: loc(4, 5)},
			},
			err: sourceErr,
		}

		program, err := parser.NewParser(source).Parse()
		require.ErrorIs(t, err, sourceErr)
		assert.Nil(t, program)

		var syntaxErr *parser.SyntaxError
		assert.False(t, errors.As(err, &syntaxErr))
	})

	t.Run("lexer error surfaces", func(t *testing.T) {
		_, err := parser.ParseString(`fun f() { g("open); }`)
		require.ErrorIs(t, err, lexer.ErrUnterminatedString)
		assert.Contains(t, err.Error(), "read token")
	})
}
