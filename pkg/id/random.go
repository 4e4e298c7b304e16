package id

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
)

// RandomSource supplies the 10-bit random field. Uniformity matters,
// cryptographic strength does not.
type RandomSource interface {
	Uint10() uint16
}

// RandomSourceFunc adapts a function to RandomSource.
type RandomSourceFunc func() uint16

func (f RandomSourceFunc) Uint10() uint16 { return f() & uint16(RandomMask) }

// HashSource derives the random field by hashing a per-source seed, a call
// counter and the monotonic clock reading.
type HashSource struct {
	seed    uint64
	counter atomic.Uint64
	start   time.Time
}

// NewHashSource returns a HashSource seeded from crypto/rand, falling back to
// the wall clock when the system source is unavailable.
func NewHashSource() *HashSource {
	var b [8]byte
	seed := uint64(time.Now().UnixNano())
	if _, err := crand.Read(b[:]); err == nil {
		seed = binary.LittleEndian.Uint64(b[:])
	}
	return NewSeededHashSource(seed)
}

// NewSeededHashSource returns a HashSource with a fixed seed.
func NewSeededHashSource(seed uint64) *HashSource {
	return &HashSource{seed: seed, start: time.Now()}
}

// Uint10 returns the low 10 bits of xxhash(seed, counter, elapsed nanos).
func (h *HashSource) Uint10() uint16 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], h.seed)
	binary.LittleEndian.PutUint64(buf[8:16], h.counter.Add(1))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(time.Since(h.start)))
	return uint16(xxhash.Sum64(buf[:]) & RandomMask)
}
