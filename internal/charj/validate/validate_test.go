package validate_test

import (
	"testing"

	"github.com/charj-lang/charj/internal/charj/parser"
	"github.com/charj-lang/charj/internal/charj/token"
	"github.com/charj-lang/charj/internal/charj/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypePositions(t *testing.T) {
	type testCase struct {
		name   string
		input  string
		errors []string
	}

	testCases := []testCase{
		{
			name: "valid types",
			input: `struct S { a: int, b: [bytes32], c: Other }
				S $ f(uint8 x, , [S] y) -> bool { let v: string = "s"; w: [[bool]]; }`,
			errors: []string{},
		},
		{
			name:   "call as field type",
			input:  "struct S { a: make(1) }",
			errors: []string{"call used as a type"},
		},
		{
			name:   "member access as parameter type",
			input:  "fun f(lib.Type x) { }",
			errors: []string{"member access used as a type"},
		},
		{
			name:   "number inside a list type",
			input:  "fun f() { x: [int, 3]; }",
			errors: []string{"number used as a type"},
		},
		{
			name:   "return type and let type",
			input:  "S $ f() -> 1 + 2 { let x: true = 1; }",
			errors: []string{"binop used as a type", "bool used as a type"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			program, err := parser.ParseString(tc.input)
			require.NoError(t, err)

			errs := validate.TypePositions(program)

			messages := make([]string, 0, len(errs))
			for _, err := range errs {
				require.ErrorIs(t, err, validate.ErrInvalidType)
				messages = append(messages, err.(*validate.TypeError).Found+" used as a type")
			}

			assert.Equal(t, tc.errors, messages)
		})
	}

	t.Run("location", func(t *testing.T) {
		program, err := parser.ParseString("struct S { a: f() }")
		require.NoError(t, err)

		errs := validate.TypePositions(program)
		require.Len(t, errs, 1)

		var typeErr *validate.TypeError
		require.ErrorAs(t, errs[0], &typeErr)
		assert.Equal(t, token.Location{Start: 14, End: 17}, typeErr.Location)
		assert.Equal(t, "14:17: call used as a type", typeErr.Error())
	})
}
