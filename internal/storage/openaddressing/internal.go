package openaddressing

import (
	"fmt"
	"github.com/gostonefire/probemap/crt"
	"github.com/gostonefire/probemap/internal/model"
	"github.com/gostonefire/probemap/internal/probe"
)

// setRecord - Sets a record in its slot
func (Q *OATable[V]) setRecord(record model.Record[V]) {
	Q.records[record.Slot] = record
}

// hashValues - Returns the home slot and the double hashing step for a key, verifying that a custom hash
// algorithm keeps within permitted ranges
func (Q *OATable[V]) hashValues(key string) (hf1Value, hf2Value int, err error) {
	hf1Value = Q.hashAlgorithm.HashFunc1(key, Q.tableSize)
	if hf1Value < 0 || hf1Value >= Q.tableSize {
		err = fmt.Errorf("received slot number %d from hash algorithm is outside permitted range", hf1Value)
		return
	}

	if Q.CollisionResolutionTechnique == crt.DoubleHashing {
		hf2Value = Q.hashAlgorithm.HashFunc2(key)
		if hf2Value < 1 {
			err = fmt.Errorf("received step %d from hash algorithm, must be 1 or higher", hf2Value)
			return
		}
	}

	return
}

// probingForGet - Is the Probing Collision Resolution Technique algorithm for getting a record.
// It returns the record and the number of slots examined to reach it.
func (Q *OATable[V]) probingForGet(key string) (record model.Record[V], probes int, err error) {
	hf1Value, hf2Value, err := Q.hashValues(key)
	if err != nil {
		return
	}

	slot := hf1Value
	for i := 1; i <= Q.tableSize; i++ {
		record = Q.records[slot]

		switch record.State {
		case model.RecordEmpty:
			record = model.Record[V]{}
			err = crt.NoRecordFound{}
			return

		case model.RecordOccupied:
			if record.Key == key {
				record.Slot = slot
				probes = i
				return
			}
		}

		slot, err = probe.NextSlot(Q.CollisionResolutionTechnique, slot, i, hf2Value, Q.tableSize)
		if err != nil {
			record = model.Record[V]{}
			return
		}
	}

	// A Set of this key would have had to find a free slot within the same number of steps, so when the
	// sequence has run this long without reaching either the key is not in the table.
	record = model.Record[V]{}
	err = crt.NoRecordFound{}
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for getting a record for set.
// The returned record is either the occupied record holding key or the first empty record in the probe sequence.
func (Q *OATable[V]) probingForSet(key string) (record model.Record[V], err error) {
	hf1Value, hf2Value, err := Q.hashValues(key)
	if err != nil {
		return
	}

	slot := hf1Value
	for i := 1; i <= Q.tableSize; i++ {
		record = Q.records[slot]

		switch record.State {
		case model.RecordEmpty:
			record.Slot = slot
			return

		case model.RecordOccupied:
			if record.Key == key {
				record.Slot = slot
				return
			}
		}

		slot, err = probe.NextSlot(Q.CollisionResolutionTechnique, slot, i, hf2Value, Q.tableSize)
		if err != nil {
			record = model.Record[V]{}
			return
		}
	}

	record = model.Record[V]{}
	if Q.nOccupied >= Q.tableSize {
		err = crt.TableFull{}
	} else {
		err = crt.ProbingAlgorithm{}
	}

	return
}
