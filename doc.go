// Package bitfield packs small values into named, positioned, variable-width
// fields of a single 32-bit storage word.
//
// A Set owns one storage word and a registry of fields keyed by their
// starting bit. Bit 0 is the least significant bit and a field occupies
// [pos, pos+width).
//
// # Quick Start
//
//	s, _ := bitfield.New(8)
//	bitfield.InsertAs(s, 0, 2, uint8(1)) // address type
//	bitfield.InsertAs(s, 2, 5, uint8(2)) // protocol
//	bitfield.InsertAs(s, 7, 1, uint8(1)) // path type
//	raw := s.Raw()                        // 0b10001001
//
// Decoding a word received from elsewhere:
//
//	s := bitfield.FromRaw(raw)
//	s.Add(0, 2)
//	s.Add(2, 5)
//	s.Add(7, 1)
//	proto, err := bitfield.GetAs[Protocol](s, 2)
//
// # Typed Reads
//
// GetAs decodes a field into any type whose pointer implements Unpacker,
// which is how enum tags are recovered. GetUint narrows a field into a
// smaller unsigned integer and fails instead of truncating.
//
// # Checking Behavior
//
// By default a Set reproduces a loose layout discipline:
//   - Overlap is detected only for fields that start at the same position.
//   - Insert ORs bits into storage without clearing the target range.
//   - Insert checks the byte size of the source type against the capacity,
//     not the magnitude of the value.
//
// WithOverlapPolicy, WithWritePolicy and WithValueCheck tighten each rule
// individually; WithStrict enables all three.
//
// # Errors
//
// Every failure is a *FieldError wrapping one of ErrOutOfBounds,
// ErrWouldOverlap, ErrDataTooLarge or ErrConversion. A failed Add or Insert
// leaves the set unchanged.
//
// # Concurrency
//
// A Set has no internal locking. Reads may run concurrently while no writer
// is active; Clone hands out independent snapshots.
package bitfield
