package literal_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/charj-lang/charj/internal/charj/literal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		type testCase struct {
			name     string
			base     string
			exponent string
			value    string
		}

		testCases := []testCase{
			{name: "plain", base: "123", value: "123"},
			{name: "separators", base: "1_000", value: "1000"},
			{name: "exponent", base: "5", exponent: "3", value: "5000"},
			{name: "zero exponent", base: "7", exponent: "0", value: "7"},
			{name: "separated exponent", base: "1", exponent: "1_0", value: "10000000000"},
			{name: "wider than 64 bits", base: "1", exponent: "30", value: "1000000000000000000000000000000"},
			{name: "signed base", base: "-12", exponent: "2", value: "-1200"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				expected, ok := new(big.Int).SetString(tc.value, 10)
				require.True(t, ok)

				value, err := literal.Evaluate(tc.base, tc.exponent)
				require.NoError(t, err)

				assert.Equal(t, 0, expected.Cmp(value), "got %s", value)
			})
		}
	})

	t.Run("errors", func(t *testing.T) {
		type testCase struct {
			name     string
			base     string
			exponent string
			err      error
		}

		testCases := []testCase{
			{name: "empty base", base: "", err: literal.ErrMalformedBase},
			{name: "only separators", base: "__", err: literal.ErrMalformedBase},
			{name: "letters", base: "12a", err: literal.ErrMalformedBase},
			{name: "malformed exponent", base: "1", exponent: "x", err: literal.ErrMalformedExponent},
			{name: "negative exponent", base: "1", exponent: "-2", err: literal.ErrNegativeExponent},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				value, err := literal.Evaluate(tc.base, tc.exponent)
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, value)

				var litErr *literal.Error
				require.ErrorAs(t, err, &litErr)
				assert.Equal(t, tc.base, litErr.Base)
			})
		}
	})
}

func TestEvaluateWithin(t *testing.T) {
	type testCase struct {
		name        string
		exponent    string
		maxExponent int64
		err         error
	}

	testCases := []testCase{
		{name: "at limit", exponent: "4", maxExponent: 4},
		{name: "unbounded", exponent: "40", maxExponent: -1},
		{name: "above limit", exponent: "5", maxExponent: 4, err: literal.ErrExponentTooLarge},
		{name: "separated above limit", exponent: "1_0", maxExponent: 4, err: literal.ErrExponentTooLarge},
		{name: "wider than 64 bits", exponent: "100000000000000000000", maxExponent: 1 << 16, err: literal.ErrExponentTooLarge},
		{name: "negative before limit", exponent: "-9", maxExponent: 4, err: literal.ErrNegativeExponent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := literal.EvaluateWithin("1", tc.exponent, tc.maxExponent)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, value)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, value)
		})
	}

	t.Run("huge exponent rejected without computing it", func(t *testing.T) {
		start := time.Now()
		_, err := literal.EvaluateWithin("1", "100000000", 1<<16)
		require.ErrorIs(t, err, literal.ErrExponentTooLarge)
		assert.Less(t, time.Since(start), time.Second)
	})
}
