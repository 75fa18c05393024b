package bitfield

import (
	"github.com/hupe1980/bitfield/internal/conv"
)

// Unsigned is the set of source and target types for typed field access.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// Unpacker is implemented by pointer types that can decode themselves from a
// raw field value. UnpackField must return an error when raw does not map to
// a valid value of the type, for example an unknown enum discriminant.
type Unpacker[T any] interface {
	*T
	UnpackField(raw Storage) error
}

// InsertAs converts data to Storage, writes it into the field at pos and
// registers the field.
//
// Besides the bounds checks of Set.Insert, it fails with ErrDataTooLarge when
// the byte size of D exceeds the set's capacity in bits. That check is about
// the source type, not about the value.
func InsertAs[D Unsigned](s *Set, pos, width uint32, data D) (Storage, error) {
	return s.insert(pos, width, Storage(data), conv.ByteSize[D]())
}

// GetAs reads the field at pos and decodes it into T through T's Unpacker.
// It fails with ErrConversion if no field is registered at pos or if the
// value is rejected.
//
//	addr, err := bitfield.GetAs[AddressType](s, 0)
func GetAs[T any, P Unpacker[T]](s *Set, pos uint32) (T, error) {
	var v T
	raw, ok := s.Get(pos)
	if !ok {
		return v, newFieldError("get", pos, 0, ErrConversion)
	}
	if err := P(&v).UnpackField(raw); err != nil {
		var zero T
		fe := newFieldError("get", pos, s.entries[pos].Width, ErrConversion)
		fe.cause = err
		return zero, fe
	}
	return v, nil
}

// GetUint reads the field at pos and narrows it into T.
// It fails with ErrConversion if no field is registered at pos or if the
// value does not fit into T.
func GetUint[T Unsigned](s *Set, pos uint32) (T, error) {
	raw, ok := s.Get(pos)
	if !ok {
		return 0, newFieldError("get", pos, 0, ErrConversion)
	}
	v, err := conv.Narrow[T](raw)
	if err != nil {
		fe := newFieldError("get", pos, s.entries[pos].Width, ErrConversion)
		fe.cause = err
		return 0, fe
	}
	return v, nil
}
