package crt

import (
	"fmt"
	"strings"
)

// LinearProbing - Collision resolution by stepping one slot at a time until a free slot is found.
// It is the zero value and thereby the default technique.
const LinearProbing int = 0

// QuadraticProbing - Collision resolution by stepping the square of the iteration number from the current slot.
// The probe sequence may cycle before all slots have been visited.
const QuadraticProbing int = 1

// DoubleHashing - Collision resolution by stepping a key dependent offset given by the secondary hash function.
// The probe sequence may cycle before all slots have been visited.
const DoubleHashing int = 2

var names = map[int]string{
	LinearProbing:    "linear",
	QuadraticProbing: "quadratic",
	DoubleHashing:    "double",
}

// Valid - Returns true if technique is one of the supported collision resolution techniques
func Valid(technique int) bool {
	_, ok := names[technique]
	return ok
}

// Name - Returns the short name of a collision resolution technique, as used in configuration and logs
func Name(technique int) (name string, err error) {
	name, ok := names[technique]
	if !ok {
		err = UnknownTechnique{}
	}

	return
}

// Parse - Returns the collision resolution technique given its short name (case-insensitive)
func Parse(name string) (technique int, err error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for t, tn := range names {
		if tn == n {
			technique = t
			return
		}
	}

	err = fmt.Errorf("parsing %q: %w", name, UnknownTechnique{})
	return
}
