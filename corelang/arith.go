package corelang

import (
	"math"

	"github.com/npillmayer/pmcalc"
)

// Binary operators
const (
	Plus      = '+'
	Minus     = '-'
	Times     = '*'
	Divide    = '/'
	Remainder = '%'
)

// Apply calculates a op b for a binary operator op. Division and remainder by
// zero result in an error of kind pmcalc.MathError.
func Apply(op rune, a, b float64) (float64, error) {
	switch op {
	case Plus:
		return a + b, nil
	case Minus:
		return a - b, nil
	case Times:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, divideByZero(op, a)
		}
		return a / b, nil
	case Remainder:
		if b == 0 {
			return 0, divideByZero(op, a)
		}
		return math.Mod(a, b), nil
	}
	tracer().Errorf("not an arithmetic operator: %q", op)
	return 0, pmcalc.Errorf(pmcalc.InternalError, "not an arithmetic operator: %q", op)
}

// Negate is unary minus.
func Negate(a float64) float64 {
	return -a
}

// IsTermOp is a predicate: does op bind like a multiplication?
func IsTermOp(op rune) bool {
	return op == Times || op == Divide || op == Remainder
}

// IsSumOp is a predicate: does op bind like an addition?
func IsSumOp(op rune) bool {
	return op == Plus || op == Minus
}

func divideByZero(op rune, a float64) error {
	tracer().Debugf("%g %c 0", a, op)
	return pmcalc.Errorf(pmcalc.MathError, "divide by zero")
}
