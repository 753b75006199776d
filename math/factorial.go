package math

// Factorial computes n! recursively in 32-bit signed arithmetic.
//
// Results past 12! wrap silently. n must be non-negative: a negative n never
// reaches the base case and the runtime aborts once the stack limit is hit.
func Factorial(n int32) int32 {
	if n == 0 {
		return 1
	}

	return n * Factorial(n-1)
}

// Drive calls Factorial for every value in [first, last] and discards the results.
func Drive(first, last int32) {
	for i := first; i <= last; i++ {
		Factorial(i)
	}
}
