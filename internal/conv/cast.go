package conv

import (
	"fmt"
	"math"
	"unsafe"
)

// Unsigned is the set of unsigned integer types that fit into a uint32 word.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// ByteSize returns the size of T in bytes.
func ByteSize[T Unsigned]() uint32 {
	var zero T
	return uint32(unsafe.Sizeof(zero))
}

// BitSize returns the size of T in bits.
func BitSize[T Unsigned]() uint32 {
	return ByteSize[T]() * 8
}

// MaxValue returns the largest value representable by T, widened to uint32.
func MaxValue[T Unsigned]() uint32 {
	return uint32(^T(0))
}

// Narrow converts v to T safely.
func Narrow[T Unsigned](v uint32) (T, error) {
	if v > MaxValue[T]() {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint%d (too large)", v, BitSize[T]())
	}
	return T(v), nil
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}
