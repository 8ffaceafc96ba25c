// Package probe computes probe sequences for the open addressing collision resolution techniques.
package probe

import (
	"github.com/gostonefire/probemap/crt"
)

// NextSlot - Returns the next slot to examine given the slot just examined.
//   - technique is one of crt.LinearProbing, crt.QuadraticProbing or crt.DoubleHashing
//   - slot is the slot that was just examined
//   - iteration is the number of steps taken so far plus one, it is only used by Quadratic Probing
//   - hf2Value is the step from HashFunc2, it is only used by Double Hashing
//   - tableSize is the number of slots in the table
//
// Steps accumulate from the current slot, so Quadratic Probing moves 1, 4, 9, ... slots from where it last was.
// Only Linear Probing is guaranteed to visit every slot. Quadratic Probing and Double Hashing may return to an
// already visited slot before all slots have been covered.
func NextSlot(technique, slot, iteration, hf2Value, tableSize int) (next int, err error) {
	switch technique {
	case crt.LinearProbing:
		next = slot + 1
	case crt.QuadraticProbing:
		i := iteration % tableSize
		next = slot + i*i%tableSize
	case crt.DoubleHashing:
		next = slot + hf2Value%tableSize
	default:
		err = crt.UnknownTechnique{}
		return
	}

	next %= tableSize

	return
}
