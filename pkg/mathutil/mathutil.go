// Package mathutil provides small integer helpers: factorial, greatest
// common divisor, least common multiple, and a primality test.
package mathutil

// MaxFactorialInput is the largest argument Factorial accepts. 21! does
// not fit in a uint64.
const MaxFactorialInput = 20

// Factorial returns n! for n in [0, MaxFactorialInput]. Factorial(0) is 1.
// It returns a *DomainError when n is negative or greater than
// MaxFactorialInput.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, newDomainError("Factorial", "argument %d is negative", n)
	}
	if n > MaxFactorialInput {
		return 0, newDomainError("Factorial", "argument %d exceeds maximum %d (uint64 overflow)", n, MaxFactorialInput)
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result, nil
}

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. GCD(x, 0) and GCD(0, x) are x; GCD(0, 0) is 0 by convention.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 when either
// input is 0 (matching GCD's zero convention). The division by GCD(a, b)
// happens before the multiplication, so the intermediate value stays in
// range whenever the true LCM fits in a uint64.
func LCM(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// IsPrime reports whether n is prime. Numbers below 2 are not prime.
// After handling 2, it trial-divides by odd candidates only, stopping at
// the square root (tested as i <= n/i to avoid overflow).
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
