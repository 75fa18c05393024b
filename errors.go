package bitfield

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a capacity or a field range [pos, pos+width)
	// exceeds the set's bit capacity.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrWouldOverlap is returned when a registration targets bits already
	// claimed by another field.
	ErrWouldOverlap = errors.New("would overlap")

	// ErrDataTooLarge is returned when the source type of an inserted value is
	// larger than the set's capacity, or, with value checking enabled, when the
	// value does not fit into the field width.
	ErrDataTooLarge = errors.New("data too large")

	// ErrConversion is returned by typed reads when no field is registered at the
	// position or the raw value cannot be converted into the requested type.
	ErrConversion = errors.New("conversion failed")
)

// FieldError describes a failed operation on a field.
//
// Err is always one of the package sentinels, so errors.Is works against
// ErrOutOfBounds, ErrWouldOverlap, ErrDataTooLarge and ErrConversion.
// The original underlying error (if any) is reachable via errors.Unwrap.
type FieldError struct {
	Op    string
	Pos   uint32
	Width uint32
	Err   error
	cause error
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("bitfield: %s [pos=%d width=%d]: %v", e.Op, e.Pos, e.Width, e.Err)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *FieldError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

func newFieldError(op string, pos, width uint32, kind error) *FieldError {
	return &FieldError{Op: op, Pos: pos, Width: width, Err: kind}
}
