package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashMap to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// HashFunc1 - Given key it generates an index (slot) between 0 and tableSize - 1.
	// It is called again with a new table size every time the hash map grows, so it must not cache the size.
	// Any number returned outside the table size (0 -> tableSize - 1) will result in an error down stream.
	HashFunc1(key string, tableSize int) int

	// HashFunc2 - Given key it generates the probing step used by the Double Hashing Collision Resolution Technique.
	// The returned value must be 1 or higher, a step of zero would never leave the start slot.
	// The function is not used for Linear or Quadratic Probing.
	HashFunc2(key string) int
}
