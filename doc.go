/*
Package probemap provides an in-memory open addressing hash map from string keys to values of any type.

Basic usage:

	import (
		"github.com/gostonefire/probemap"
		"github.com/gostonefire/probemap/crt"
	)

	hm, err := probemap.New[int](10, probemap.Conf{CollisionResolutionTechnique: crt.DoubleHashing})
	if err != nil {
		log.Fatal(err)
	}

	err = hm.Put("cat", 1)
	v, ok := hm.Get("cat")

Collision resolution techniques:

  - crt.LinearProbing (default) steps one slot at a time and always finds a free slot if there is one
  - crt.QuadraticProbing steps 1, 4, 9, ... slots from the slot last examined
  - crt.DoubleHashing steps a key dependent distance between 1 and 8 slots

Quadratic Probing and Double Hashing may cycle through a subset of the slots. A put whose probe sequence
can't reach a free slot fails with crt.ProbingAlgorithm and leaves the map unchanged.

The capacity is always a prime number, at least the requested one. When more than half of the slots are
occupied the map moves all records to a table at the smallest prime at least twice the size. Records are
never removed and the map never shrinks.

The internal hash treats keys as base 27 numbers with 'a' as 1 and 'z' as 26, which suits lowercase keys.
Any other distribution of keys may be better served by hashfunc.XXH3HashAlgorithm or a custom
hashfunc.HashAlgorithm given in Conf.
*/
package probemap
