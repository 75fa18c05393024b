package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/bitfield/internal/conv"
)

// FieldSpec is a randomly generated field together with a value that fits
// into its width.
type FieldSpec struct {
	Pos   uint32
	Width uint32
	Value uint32
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// ValueFor returns a random value that fits into width bits.
func (r *RNG) ValueFor(width uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.valueFor(width)
}

func (r *RNG) valueFor(width uint32) uint32 {
	mask := uint32((uint64(1) << width) - 1)
	return r.rand.Uint32() & mask
}

// Layout partitions [0, numBits) into non-overlapping fields of random width,
// occasionally leaving single-bit gaps between them. Fields are returned in
// ascending position order.
func (r *RNG) Layout(numBits uint32) []FieldSpec {
	r.mu.Lock()
	defer r.mu.Unlock()

	var fields []FieldSpec
	pos := uint32(0)
	for pos < numBits {
		maxWidth := int(numBits - pos)
		width, err := conv.IntToUint32(1 + r.rand.Intn(maxWidth))
		if err != nil {
			panic(err)
		}
		fields = append(fields, FieldSpec{
			Pos:   pos,
			Width: width,
			Value: r.valueFor(width),
		})
		pos += width
		if r.rand.Intn(4) == 0 {
			pos++
		}
	}
	return fields
}

// Shuffle randomizes the order of fields in place.
func (r *RNG) Shuffle(fields []FieldSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(fields), func(i, j int) {
		fields[i], fields[j] = fields[j], fields[i]
	})
}
