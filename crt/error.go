package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that every slot in the table is occupied and can't take more records
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that the probe sequence was exhausted without reaching a free slot,
// even though free slots may exist elsewhere in the table
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that probing was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted, no reachable free slot"
	}
	return P.msg
}

// InvalidKey - Custom error to inform that a key can't be hashed, which is the case for the empty string
type InvalidKey struct {
	msg string
}

// Error - Used to notify an invalid key
func (I InvalidKey) Error() string {
	if I.msg == "" {
		return "invalid key, key must be a non-empty string"
	}
	return I.msg
}

// InvalidCapacity - Custom error to inform that a requested capacity is not a positive value
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify an invalid capacity
func (I InvalidCapacity) Error() string {
	if I.msg == "" {
		return "capacity must be a positive value higher than 0 (zero)"
	}
	return I.msg
}

// UnknownTechnique - Custom error to inform that a collision resolution technique is not supported
type UnknownTechnique struct {
	msg string
}

// Error - Used to notify an unknown collision resolution technique
func (U UnknownTechnique) Error() string {
	if U.msg == "" {
		return "unknown collision resolution technique"
	}
	return U.msg
}
