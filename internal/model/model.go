package model

import (
	"github.com/gostonefire/probemap/hashfunc"
)

// RecordEmpty - State indicating a record that has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// Record - Represents one slot in the table
type Record[V any] struct {
	State uint8
	Slot  int
	Key   string
	Value V
}

// StorageParameters - Represents parameters specific for the storage of a table
type StorageParameters struct {
	CollisionResolutionTechnique int
	TableSize                    int
	NumberOfOccupiedRecords      int
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewOATable and contains configuration that affects
// slot selection.
//   - TableSize is the exact number of slots to allocate, the caller is responsible for it being prime
//   - CollisionResolutionTechnique is one of the crt constants
//   - HashAlgorithm is the hash function(s) to use, nil gives the internal polynomial algorithm
type CRTConf struct {
	TableSize                    int
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
}
