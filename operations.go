package probemap

import (
	"errors"
	"fmt"
	"github.com/gostonefire/probemap/crt"
	"github.com/gostonefire/probemap/internal/model"
	"github.com/gostonefire/probemap/internal/storage/openaddressing"
)

// Put - Stores value against key. If key already exists its value is overwritten, otherwise a new record is
// added in the first free slot of the key's probe sequence. If the load factor then exceeds MaxLoadFactor the
// table grows to the smallest prime at least twice the current capacity.
//   - key is the identifier of a record, it must not be empty
//   - value is the value to store
//
// It returns:
//   - err is of type crt.InvalidKey, crt.ProbingAlgorithm, crt.TableFull or a standard error, if something went wrong.
//     On error the hash map is left exactly as it was before the call.
func (H *HashMap[V]) Put(key string, value V) (err error) {
	if key == "" {
		err = crt.InvalidKey{}
		return
	}

	record, added, err := H.table.Set(key, value)
	if err != nil {
		H.logProbeFailure(err, key)
		return
	}

	if !added {
		return
	}

	H.itemCount++

	if H.LoadFactor() > MaxLoadFactor {
		err = H.resize()
		if err != nil {
			// Take back the record so the failed put leaves no trace
			if rErr := H.table.Revert(record); rErr != nil {
				err = fmt.Errorf("%w, and reverting put failed: %s", err, rErr)
				return
			}
			H.itemCount--
		}
	}

	return
}

// Get - Gets the value stored against key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the stored value, or the zero value of V if not found
//   - ok is true if key was found. An empty key is never found since it can't be stored.
func (H *HashMap[V]) Get(key string) (value V, ok bool) {
	if key == "" {
		return
	}

	record, err := H.table.Get(key)
	if err != nil {
		return
	}

	value = record.Value
	ok = true

	return
}

// HasKey - Returns true if key has been stored in the hash map
func (H *HashMap[V]) HasKey(key string) bool {
	_, ok := H.Get(key)
	return ok
}

// Keys - Returns all keys in the hash map. They come in slot order, which has nothing to do with insertion
// order and changes whenever the table grows.
func (H *HashMap[V]) Keys() (keys []string) {
	keys = make([]string, 0, H.itemCount)

	for i := 0; i < H.capacity; i++ {
		record, err := H.table.GetRecord(i)
		if err != nil {
			break
		}
		if record.State == model.RecordOccupied {
			keys = append(keys, record.Key)
		}
	}

	return
}

// LoadFactor - Returns the ratio of stored records to capacity
func (H *HashMap[V]) LoadFactor() float64 {
	return float64(H.itemCount) / float64(H.capacity)
}

// Capacity - Returns the number of slots in the table, always a prime number
func (H *HashMap[V]) Capacity() int {
	return H.capacity
}

// Len - Returns the number of stored records
func (H *HashMap[V]) Len() int {
	return H.itemCount
}

// Stat - Walks through all records and produces a HashMapStat struct with information.
// Each stored key is probed for again, so the cost is in the order of a Get per record.
//   - includeDistribution set to true will include a slice with number of keys per probe length, false will set HashMapStat.ProbeDistribution to nil.
func (H *HashMap[V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	var probes int
	hms := HashMapStat{
		Records:    H.itemCount,
		Capacity:   H.capacity,
		LoadFactor: H.LoadFactor(),
		Resizes:    H.resizes,
	}

	lengths := make(map[int]int)
	for _, key := range H.Keys() {
		probes, err = H.table.ProbeLength(key)
		if err != nil {
			err = fmt.Errorf("error while probing for key %q: %w", key, err)
			return
		}
		lengths[probes]++
		if probes > hms.MaxProbeLength {
			hms.MaxProbeLength = probes
		}
	}

	if includeDistribution {
		hms.ProbeDistribution = make([]int, hms.MaxProbeLength+1)
		for p, n := range lengths {
			hms.ProbeDistribution[p] = n
		}
	}

	hashMapStat = &hms

	return
}

// resize - Moves all records, in slot order, to a new table with capacity equal to the smallest prime at least
// twice the current capacity. The current table is kept if any record fails to find a slot in the new one.
func (H *HashMap[V]) resize() (err error) {
	newCapacity := H.oracle.NextPrime(H.capacity * 2)

	table, err := newTable[V](newCapacity, H.collisionResolutionTechnique, H.hashAlgorithm)
	if err != nil {
		return
	}

	itemCount, err := reorgRecords(H.table, table, H.capacity)
	if err != nil {
		H.log.Warn().Err(err).Int("capacity", H.capacity).Int("new_capacity", newCapacity).Msg("resize aborted")
		err = fmt.Errorf("error while moving records to table of capacity %d: %w", newCapacity, err)
		return
	}

	H.log.Debug().Int("capacity", H.capacity).Int("new_capacity", newCapacity).Int("records", itemCount).Msg("hash map resized")

	H.table = table
	H.capacity = newCapacity
	H.itemCount = itemCount
	H.resizes++

	return
}

// reorgRecords - Reads slot by slot and writes every occupied record to the new table
func reorgRecords[V any](from, to *openaddressing.OATable[V], fromCapacity int) (itemCount int, err error) {
	var record model.Record[V]
	for i := 0; i < fromCapacity; i++ {
		record, err = from.GetRecord(i)
		if err != nil {
			return
		}

		if record.State == model.RecordOccupied {
			_, _, err = to.Set(record.Key, record.Value)
			if err != nil {
				return
			}
			itemCount++
		}
	}

	return
}

// logProbeFailure - Logs failures where the probe sequence couldn't reach a free slot
func (H *HashMap[V]) logProbeFailure(err error, key string) {
	if errors.Is(err, crt.ProbingAlgorithm{}) || errors.Is(err, crt.TableFull{}) {
		name, _ := crt.Name(H.collisionResolutionTechnique)
		H.log.Warn().Err(err).Int("key_length", len(key)).Str("technique", name).Int("capacity", H.capacity).Msg("put failed")
	}
}
