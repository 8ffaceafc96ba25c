// Package prime provides a Sieve of Eratosthenes based prime number oracle used for choosing table sizes.
package prime

import (
	"github.com/yourbasic/bit"
)

// MinSieveSize - Smallest sieve ever generated, to amortize the cost of regenerating it
const MinSieveSize int = 10000

// Oracle - Owns a sieve where set members are the prime numbers below the sieve size.
// The sieve is regenerated from scratch whenever a number outside its range is asked for.
type Oracle struct {
	primes *bit.Set
	size   int
}

// NewOracle - Returns a pointer to a new Oracle with an empty sieve, the first call to NextPrime generates it
func NewOracle() *Oracle {
	return &Oracle{primes: bit.New()}
}

// NextPrime - Returns the smallest prime number that is greater than or equal to n.
//   - n is the lower bound, any value below 2 results in 2
func (O *Oracle) NextPrime(n int) int {
	if n < 2 {
		n = 2
	}

	if O.size <= n {
		O.sieve(max(n*2, MinSieveSize))
	}

	for {
		if p := O.primes.Next(n - 1); p != -1 {
			return p
		}

		// Only reached if no prime is found in [n, size), double and try again
		O.sieve(O.size * 2)
	}
}

// IsPrime - Returns true if n is a prime number, the sieve is grown if needed
func (O *Oracle) IsPrime(n int) bool {
	if n < 2 {
		return false
	}

	if O.size <= n {
		O.sieve(max(n*2, MinSieveSize))
	}

	return O.primes.Contains(n)
}

// SieveSize - Returns the current length of the sieve
func (O *Oracle) SieveSize() int {
	return O.size
}

// sieve - Regenerates the sieve to cover [0, size), discarding the old one
func (O *Oracle) sieve(size int) {
	primes := bit.New().AddRange(2, size)
	for i := 2; i*i < size; i++ {
		if primes.Contains(i) {
			for j := i * i; j < size; j += i {
				primes.Delete(j)
			}
		}
	}

	O.primes = primes
	O.size = size
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
