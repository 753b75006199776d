package math

import (
	"math/big"

	"github.com/pkg/errors"
)

// MaxInt32Input is the largest n whose factorial fits in an int32.
const MaxInt32Input = 12

var (
	ErrNegative = errors.New("factorial is not defined for negative numbers")
	ErrOverflow = errors.New("factorial overflows int32")
)

// CheckedFactorial is the strict counterpart of Factorial. It loops instead of
// recursing and reports negative input and int32 overflow as errors.
func CheckedFactorial(n int32) (int32, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrNegative, "n=%d", n)
	}
	if n > MaxInt32Input {
		return 0, errors.Wrapf(ErrOverflow, "n=%d", n)
	}

	result := int32(1)
	for i := int32(2); i <= n; i++ {
		result *= i
	}

	return result, nil
}

// BigFactorial computes n! with arbitrary precision.
func BigFactorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegative, "n=%d", n)
	}

	result := big.NewInt(1)
	factor := new(big.Int)
	for i := 2; i <= n; i++ {
		result.Mul(result, factor.SetInt64(int64(i)))
	}

	return result, nil
}
