// Package hash holds the internally used hash algorithm.
package hash

import (
	"unicode/utf8"
)

// Radix - Base of the polynomial, one more than the number of lowercase letters
const Radix int64 = 27

// CharOffset - Subtracted from each character so that 'a' maps to 1 and 'z' to 26
const CharOffset int64 = 96

// DoubleHashK - Upper bound (inclusive) of the step returned by HashFunc2
const DoubleHashK int64 = 8

// PolynomialHashAlgorithm - The internally used slot selection algorithm. Keys are treated as numbers in base 27
// where each character contributes its code minus 96. The first character seeds the accumulator and is then
// folded in once more together with the rest of the key. That double count is kept so slot placement stays
// identical to earlier releases of the table.
type PolynomialHashAlgorithm struct{}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
func NewPolynomialHashAlgorithm() *PolynomialHashAlgorithm {
	return &PolynomialHashAlgorithm{}
}

// HashFunc1 - Given key it generates an index (slot) between 0 and tableSize - 1.
// The accumulator is reduced by tableSize in every iteration, and since characters outside a-z give negative
// contributions the result is made non-negative at the end.
func (P *PolynomialHashAlgorithm) HashFunc1(key string, tableSize int) int {
	if key == "" {
		return 0
	}

	ts := int64(tableSize)
	first, _ := utf8.DecodeRuneInString(key)

	h := int64(first) - CharOffset
	for _, r := range key {
		h = (h*Radix + int64(r) - CharOffset) % ts
	}

	if h < 0 {
		h = -h
	}

	return int(h)
}

// HashFunc2 - Given key it generates a probing step between 1 and DoubleHashK (inclusive).
// It is the same polynomial as HashFunc1 without reduction by table size, returned as K - (polynomial mod K).
// Only the residue mod K is tracked, which gives the exact result without ever holding the full polynomial.
func (P *PolynomialHashAlgorithm) HashFunc2(key string) int {
	if key == "" {
		return int(DoubleHashK)
	}

	first, _ := utf8.DecodeRuneInString(key)

	h := mod(int64(first)-CharOffset, DoubleHashK)
	for _, r := range key {
		h = mod(h*Radix+int64(r)-CharOffset, DoubleHashK)
	}

	return int(DoubleHashK - h)
}

// mod - Returns the non-negative remainder of a divided by m
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
