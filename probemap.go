package probemap

import (
	"fmt"
	"github.com/gostonefire/probemap/crt"
	"github.com/gostonefire/probemap/hashfunc"
	"github.com/gostonefire/probemap/internal/model"
	"github.com/gostonefire/probemap/internal/prime"
	"github.com/gostonefire/probemap/internal/storage/openaddressing"
	plog "github.com/phuslu/log"
	"io"
)

// MaxLoadFactor - The table grows as soon as the ratio of records to slots exceeds this value
const MaxLoadFactor float64 = 0.5

// Conf - Is a struct used in the call to New holding optional configuration.
//   - CollisionResolutionTechnique is one of crt.LinearProbing (default), crt.QuadraticProbing or crt.DoubleHashing
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface, nil gives the internal polynomial hash
//   - Logger is an optional logger, nil gives a logger that discards everything
type Conf struct {
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
	Logger                       *plog.Logger
}

// HashMapStat - Statistics on the overall usage and probe lengths
//   - Records is the total number of records stored
//   - Capacity is the number of slots in the table
//   - LoadFactor is Records / Capacity
//   - Resizes is the number of times the table has grown
//   - MaxProbeLength is the highest number of slots examined to reach any stored key
//   - ProbeDistribution is the number of keys per probe length, index 1 holds keys found in their home slot
type HashMapStat struct {
	Records           int
	Capacity          int
	LoadFactor        float64
	Resizes           int
	MaxProbeLength    int
	ProbeDistribution []int
}

// HashMap - The main implementation struct, an open addressing hash map from string keys to values of type V.
// Keys can't be removed, and a put on an existing key overwrites its value. The capacity is always a prime
// number and the table is rebuilt at about twice the size whenever the load factor exceeds MaxLoadFactor.
//
// A HashMap is not safe for concurrent use. Guard every call with the same sync.Mutex if it is shared, also reads
// since a put may rebuild the whole table.
type HashMap[V any] struct {
	table                        *openaddressing.OATable[V]
	oracle                       *prime.Oracle
	collisionResolutionTechnique int
	hashAlgorithm                hashfunc.HashAlgorithm
	capacity                     int
	itemCount                    int
	resizes                      int
	log                          *plog.Logger
}

// New - Returns a new HashMap with room for at least initialCapacity slots. The actual capacity is the
// smallest prime number greater than or equal to initialCapacity.
//   - initialCapacity is the requested number of slots, it must be higher than 0 (zero)
//   - conf is a Conf struct, its zero value gives Linear Probing with the internal hash algorithm
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is of type crt.InvalidCapacity, crt.UnknownTechnique or nil if everything went ok
func New[V any](initialCapacity int, conf Conf) (hashMap *HashMap[V], err error) {
	if initialCapacity <= 0 {
		err = crt.InvalidCapacity{}
		return
	}

	name, err := crt.Name(conf.CollisionResolutionTechnique)
	if err != nil {
		return
	}

	logger := conf.Logger
	if logger == nil {
		logger = &plog.Logger{
			Level:  plog.ErrorLevel,
			Writer: &plog.IOWriter{Writer: io.Discard},
		}
	}

	oracle := prime.NewOracle()
	capacity := oracle.NextPrime(initialCapacity)

	table, err := newTable[V](capacity, conf.CollisionResolutionTechnique, conf.HashAlgorithm)
	if err != nil {
		return
	}

	hashMap = &HashMap[V]{
		table:                        table,
		oracle:                       oracle,
		collisionResolutionTechnique: conf.CollisionResolutionTechnique,
		hashAlgorithm:                conf.HashAlgorithm,
		capacity:                     capacity,
		log:                          logger,
	}

	logger.Debug().Int("capacity", capacity).Str("technique", name).Bool("internal_hash", conf.HashAlgorithm == nil).Msg("hash map created")

	return
}

// newTable - Returns a new empty table with exactly capacity slots
func newTable[V any](capacity, technique int, hashAlgorithm hashfunc.HashAlgorithm) (table *openaddressing.OATable[V], err error) {
	table, err = openaddressing.NewOATable[V](model.CRTConf{
		TableSize:                    capacity,
		CollisionResolutionTechnique: technique,
		HashAlgorithm:                hashAlgorithm,
	})
	if err != nil {
		err = fmt.Errorf("error while creating table of capacity %d: %w", capacity, err)
	}

	return
}
