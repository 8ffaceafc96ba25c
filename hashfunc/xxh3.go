package hashfunc

import (
	"github.com/zeebo/xxh3"
)

// XXH3MaxStep - Upper bound (inclusive) of the double hashing step returned by XXH3HashAlgorithm.HashFunc2
const XXH3MaxStep uint64 = 8

// XXH3HashAlgorithm - An alternative to the internal polynomial hash, using XXH3 from github.com/zeebo/xxh3.
// It spreads keys of any alphabet evenly, whereas the polynomial hash is tuned for lowercase ASCII.
// Seed can be set to get a different, but stable, distribution.
type XXH3HashAlgorithm struct {
	Seed uint64
}

// HashFunc1 - Given key it generates an index (slot) between 0 and tableSize - 1
func (X *XXH3HashAlgorithm) HashFunc1(key string, tableSize int) int {
	return int(xxh3.HashSeed([]byte(key), X.Seed) % uint64(tableSize))
}

// HashFunc2 - Given key it generates a probing step between 1 and XXH3MaxStep (inclusive).
// The upper half of the hash is used so the step is independent of the slot from HashFunc1.
func (X *XXH3HashAlgorithm) HashFunc2(key string) int {
	h := xxh3.HashSeed([]byte(key), X.Seed)
	return int(1 + (h>>32)%XXH3MaxStep)
}
