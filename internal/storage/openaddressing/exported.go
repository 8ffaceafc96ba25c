package openaddressing

import (
	"fmt"
	"github.com/gostonefire/probemap/crt"
	"github.com/gostonefire/probemap/hashfunc"
	"github.com/gostonefire/probemap/internal/hash"
	"github.com/gostonefire/probemap/internal/model"
)

// OATable - Represents an in-memory implementation of the Open Addressing Collision Resolution Techniques.
// It uses one fixed size slice of slots where each slot holds at most one record. In case of a collision, it probes
// through the table using a collision resolution algorithm, looking for an empty slot, and assigns the free slot
// to the record. The table never grows by itself, growing is done by moving all records to a new OATable.
type OATable[V any] struct {
	records                      []model.Record[V]
	tableSize                    int
	hashAlgorithm                hashfunc.HashAlgorithm
	internalAlgorithm            bool
	CollisionResolutionTechnique int
	nOccupied                    int
}

// NewOATable - Returns a pointer to a new instance of an Open Addressing table with all slots empty.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting the table
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable[V any](crtConf model.CRTConf) (oaTable *OATable[V], err error) {
	if crtConf.TableSize <= 0 {
		err = crt.InvalidCapacity{}
		return
	}

	if !crt.Valid(crtConf.CollisionResolutionTechnique) {
		err = crt.UnknownTechnique{}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewPolynomialHashAlgorithm()
		internalAlg = true
	}

	oaTable = &OATable[V]{
		records:                      make([]model.Record[V], crtConf.TableSize),
		tableSize:                    crtConf.TableSize,
		hashAlgorithm:                crtConf.HashAlgorithm,
		internalAlgorithm:            internalAlg,
		CollisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable[V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: Q.CollisionResolutionTechnique,
		TableSize:                    Q.tableSize,
		NumberOfOccupiedRecords:      Q.nOccupied,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// GetRecord - Returns the record held in a slot, regardless of state
//   - slotNo is the identifier of a slot, 0 to table size - 1
func (Q *OATable[V]) GetRecord(slotNo int) (record model.Record[V], err error) {
	if slotNo < 0 || slotNo >= Q.tableSize {
		err = fmt.Errorf("slot number %d outside table of size %d", slotNo, Q.tableSize)
		return
	}

	record = Q.records[slotNo]
	record.Slot = slotNo

	return
}

// Get - Gets record that corresponds to the given key.
//   - key is the identifier of a record, it must not be empty
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (Q *OATable[V]) Get(key string) (record model.Record[V], err error) {
	if key == "" {
		err = crt.InvalidKey{}
		return
	}

	record, _, err = Q.probingForGet(key)

	return
}

// ProbeLength - Returns the number of slots examined to find the record with the given key, 1 means it is
// in its home slot.
func (Q *OATable[V]) ProbeLength(key string) (probes int, err error) {
	if key == "" {
		err = crt.InvalidKey{}
		return
	}

	_, probes, err = Q.probingForGet(key)

	return
}

// Set - Updates an existing record with new value or adds it in the first free slot of its probe sequence.
// If no free slot can be reached the table is left unchanged.
//   - key is the identifier of the record, it must not be empty
//   - value is the value to store against key
//
// It returns:
//   - record is the record as it was written, including its slot number
//   - added is true if the record was added rather than updated
//   - err is of type crt.TableFull, crt.ProbingAlgorithm or a standard error, if something went wrong
func (Q *OATable[V]) Set(key string, value V) (record model.Record[V], added bool, err error) {
	if key == "" {
		err = crt.InvalidKey{}
		return
	}

	record, err = Q.probingForSet(key)
	if err != nil {
		return
	}

	added = record.State == model.RecordEmpty
	record.State = model.RecordOccupied
	record.Key = key
	record.Value = value

	Q.setRecord(record)
	if added {
		Q.nOccupied++
	}

	return
}

// Revert - Empties the slot of a record that was added by the latest call to Set.
// Since there is no deletion, emptying any other slot could cut probe sequences of records added after it.
//   - record is the record returned from Set, it must contain Slot
func (Q *OATable[V]) Revert(record model.Record[V]) (err error) {
	current, err := Q.GetRecord(record.Slot)
	if err != nil {
		return
	}

	if current.State != model.RecordOccupied || current.Key != record.Key {
		err = fmt.Errorf("slot %d does not hold key to revert", record.Slot)
		return
	}

	Q.setRecord(model.Record[V]{State: model.RecordEmpty, Slot: record.Slot})
	Q.nOccupied--

	return
}
