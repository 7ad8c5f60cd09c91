// Package literal computes the exact values of numeric literals.
package literal

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Separator is the digit separator accepted inside numeric literals.
const Separator = "_"

var (
	ErrMalformedBase     = errors.New("malformed literal digits")
	ErrMalformedExponent = errors.New("malformed literal exponent")
	ErrNegativeExponent  = errors.New("negative literal exponent")
	ErrExponentTooLarge  = errors.New("literal exponent too large")
)

// Error reports a digit string that is not a valid integer once separators
// are removed.
type Error struct {
	Base     string
	Exponent string
	Err      error
}

func (e *Error) Error() string {
	if e.Exponent == "" {
		return fmt.Sprintf("evaluate literal %q: %s", e.Base, e.Err)
	}

	return fmt.Sprintf("evaluate literal %qe%q: %s", e.Base, e.Exponent, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var ten = big.NewInt(10)

// Evaluate returns base * 10^exponent. An empty exponent means the literal has
// none. Both strings may contain separators.
func Evaluate(base, exponent string) (*big.Int, error) {
	return EvaluateWithin(base, exponent, -1)
}

// EvaluateWithin is Evaluate with exponents above maxExponent rejected before
// any power is computed. A negative maxExponent sets no bound.
func EvaluateWithin(base, exponent string, maxExponent int64) (*big.Int, error) {
	value, ok := new(big.Int).SetString(strip(base), 10)
	if !ok {
		return nil, &Error{Base: base, Exponent: exponent, Err: ErrMalformedBase}
	}

	if exponent == "" {
		return value, nil
	}

	power, ok := new(big.Int).SetString(strip(exponent), 10)
	if !ok {
		return nil, &Error{Base: base, Exponent: exponent, Err: ErrMalformedExponent}
	}

	if power.Sign() < 0 {
		return nil, &Error{Base: base, Exponent: exponent, Err: ErrNegativeExponent}
	}

	if maxExponent >= 0 && (!power.IsInt64() || power.Int64() > maxExponent) {
		return nil, &Error{Base: base, Exponent: exponent, Err: fmt.Errorf("%w: limit is %d", ErrExponentTooLarge, maxExponent)}
	}

	scale := new(big.Int).Exp(ten, power, nil)

	return value.Mul(value, scale), nil
}

func strip(digits string) string {
	return strings.ReplaceAll(digits, Separator, "")
}
