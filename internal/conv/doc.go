// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking so that a raw storage word, or a
// field extracted from it, is never silently truncated when narrowed into a
// smaller unsigned type.
//
// Use cases:
//   - Recovering a uint8/uint16 field value from a uint32 storage word
//   - Coarse source-type size checks for generic insertion
package conv
