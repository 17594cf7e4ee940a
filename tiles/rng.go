package tiles

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// NewRNG returns a randomizer for board generation and rack sampling.
// A zero seed yields a cryptographically seeded source; any other value
// produces a deterministic sequence, for reproducible scenarios in tests.
func NewRNG(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return frand.NewCustom(key[:], 1024, 12)
}
