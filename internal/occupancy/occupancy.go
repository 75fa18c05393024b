package occupancy

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Map records claimed bit positions.
// It is not safe for concurrent mutation.
type Map struct {
	rb *roaring.Bitmap
}

// New creates a new empty occupancy map.
func New() *Map {
	return &Map{
		rb: roaring.New(),
	}
}

// Claim marks the bits [pos, pos+width) as occupied.
func (m *Map) Claim(pos, width uint32) {
	if width == 0 {
		return
	}
	m.rb.AddRange(uint64(pos), uint64(pos)+uint64(width))
}

// Release clears the bits [pos, pos+width).
func (m *Map) Release(pos, width uint32) {
	if width == 0 {
		return
	}
	m.rb.RemoveRange(uint64(pos), uint64(pos)+uint64(width))
}

// Overlaps reports whether any bit in [pos, pos+width) is already claimed.
// A zero-width range never overlaps.
func (m *Map) Overlaps(pos, width uint32) bool {
	if width == 0 {
		return false
	}
	return m.rb.IntersectsWithInterval(uint64(pos), uint64(pos)+uint64(width))
}

// Contains checks if a single bit position is claimed.
func (m *Map) Contains(bit uint32) bool {
	return m.rb.Contains(bit)
}

// Cardinality returns the number of claimed bits.
func (m *Map) Cardinality() uint64 {
	return m.rb.GetCardinality()
}

// IsEmpty returns true if no bit is claimed.
func (m *Map) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// Clone returns an independent copy of the map.
func (m *Map) Clone() *Map {
	return &Map{
		rb: m.rb.Clone(),
	}
}
