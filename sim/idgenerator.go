package sim

import (
	"strconv"
	"sync/atomic"
)

// IDGenerator generates a unique ID on each call.
type IDGenerator interface {
	Generate() string
}

var idGenerator = &sequentialIDGenerator{}

// GetIDGenerator returns the ID generator shared by the process.
func GetIDGenerator() IDGenerator {
	return idGenerator
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(idNumber, 10)
}
