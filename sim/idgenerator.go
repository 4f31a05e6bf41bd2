package sim

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator hands out the identities of events and progress trackers.
type IDGenerator interface {
	Generate() string
}

var (
	idGeneratorLock sync.Mutex
	idGenerator     IDGenerator
)

// GetIDGenerator returns the generator in use. The default scheme is
// sequential, which keeps single-threaded runs deterministic.
func GetIDGenerator() IDGenerator {
	idGeneratorLock.Lock()
	defer idGeneratorLock.Unlock()

	if idGenerator == nil {
		idGenerator = &sequentialIDGenerator{}
	}

	return idGenerator
}

// UseParallelIDGenerator switches ID generation to a scheme that stays
// collision free when IDs are requested from multiple goroutines, giving up
// determinism. Calling it again is a no-op. Calling it after sequential IDs
// were already handed out is a programmer error.
func UseParallelIDGenerator() {
	idGeneratorLock.Lock()
	defer idGeneratorLock.Unlock()

	if idGenerator != nil {
		if _, ok := idGenerator.(parallelIDGenerator); ok {
			return
		}
		log.Panic(
			"cannot switch the ID generation scheme after IDs were handed out")
	}

	idGenerator = parallelIDGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	return strconv.FormatUint(atomic.AddUint64(&g.nextID, 1), 10)
}

type parallelIDGenerator struct{}

func (g parallelIDGenerator) Generate() string {
	return xid.New().String()
}
