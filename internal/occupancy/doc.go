// Package occupancy tracks which bit positions of a storage word are claimed
// by registered fields.
//
// It wraps a 32-bit Roaring bitmap so that a candidate field range
// [pos, pos+width) can be tested for intersection with every claimed range
// in one call, regardless of where those ranges start.
package occupancy
