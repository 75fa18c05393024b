package bitfield

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/hupe1980/bitfield/internal/conv"
	"github.com/hupe1980/bitfield/internal/occupancy"
)

// Storage is the unsigned word every field is packed into.
type Storage = uint32

// StorageBits is the bit width of Storage and the hard ceiling on capacity.
const StorageBits uint32 = 32

// Field describes a packed field: Width bits counted upward from bit Pos,
// where bit 0 is the least significant bit of the storage word.
type Field struct {
	Pos   uint32
	Width uint32
}

// End returns the first bit position after the field.
func (f Field) End() uint32 {
	return f.Pos + f.Width
}

// Mask returns the field's bits within the storage word.
func (f Field) Mask() Storage {
	return widthMask(f.Width) << f.Pos
}

// widthMask returns 2^width - 1 without overflowing for width == StorageBits.
func widthMask(width uint32) Storage {
	return Storage((uint64(1) << width) - 1)
}

// Set owns one storage word and the layout of the fields packed into it.
//
// A Set performs no internal locking. Add and Insert need exclusive access;
// Get, GetAs, GetUint, Raw, Field, Fields and String may run concurrently
// as long as no writer is active. Use Clone to hand out snapshots.
type Set struct {
	numBits  uint32
	storage  Storage
	entries  map[uint32]Field
	occupied *occupancy.Map // nil unless OverlapRange
	opts     options
}

// New creates an empty Set with a capacity of numBits bits.
// It returns ErrOutOfBounds if numBits exceeds StorageBits.
//
// The requested capacity is kept as-is: New(8) rejects fields past bit 7
// even though the storage word has 32 bits.
func New(numBits uint32, opts ...Option) (*Set, error) {
	if numBits > StorageBits {
		return nil, newFieldError("new", 0, numBits, ErrOutOfBounds)
	}
	return newSet(numBits, 0, applyOptions(opts)), nil
}

// FromRaw creates a Set with full StorageBits capacity whose storage is
// primed with raw. No fields are known until registered with Add.
func FromRaw(raw Storage, opts ...Option) *Set {
	return newSet(StorageBits, raw, applyOptions(opts))
}

func newSet(numBits uint32, raw Storage, o options) *Set {
	o.logger = o.logger.WithNumBits(numBits)
	s := &Set{
		numBits: numBits,
		storage: raw,
		entries: make(map[uint32]Field),
		opts:    o,
	}
	if o.overlap == OverlapRange {
		s.occupied = occupancy.New()
	}
	return s
}

// Add registers a field at pos without writing any bits. It is used after
// FromRaw to describe the layout of an already populated word.
func (s *Set) Add(pos, width uint32) error {
	err := s.add(pos, width)
	s.opts.metrics.RecordAdd(err)
	if err != nil {
		return err
	}
	s.opts.logger.LogAdd(pos, width)
	return nil
}

func (s *Set) add(pos, width uint32) error {
	if err := s.checkBounds(pos, width); err != nil {
		return newFieldError("add", pos, width, err)
	}
	if _, ok := s.entries[pos]; ok {
		return newFieldError("add", pos, width, ErrWouldOverlap)
	}
	if s.occupied != nil && s.occupied.Overlaps(pos, width) {
		return newFieldError("add", pos, width, ErrWouldOverlap)
	}
	s.register(Field{Pos: pos, Width: width})
	return nil
}

// Insert writes data into the field at pos and registers the field in one
// step. It returns data unmasked.
//
// With the default WriteMerge policy the shifted value is ORed into storage,
// so bits set by an earlier write to the same range are not cleared.
func (s *Set) Insert(pos, width uint32, data Storage) (Storage, error) {
	return s.insert(pos, width, data, conv.ByteSize[Storage]())
}

// insert validates everything before mutating. size is the byte size of the
// caller's source type.
func (s *Set) insert(pos, width uint32, data Storage, size uint32) (Storage, error) {
	if err := s.checkInsert(pos, width, data, size); err != nil {
		s.opts.metrics.RecordInsert(width, err)
		return 0, err
	}

	switch s.opts.write {
	case WriteReplace:
		mask := widthMask(width) << pos
		s.storage = s.storage&^mask | (data<<pos)&mask
	default:
		s.storage |= data << pos
	}
	s.register(Field{Pos: pos, Width: width})

	s.opts.metrics.RecordInsert(width, nil)
	s.opts.logger.LogInsert(pos, width, data, s.storage)
	return data, nil
}

func (s *Set) checkInsert(pos, width uint32, data Storage, size uint32) error {
	if err := s.checkBounds(pos, width); err != nil {
		return newFieldError("insert", pos, width, err)
	}
	if size > s.numBits {
		fe := newFieldError("insert", pos, width, ErrDataTooLarge)
		fe.cause = fmt.Errorf("source type of %d bytes exceeds capacity of %d bits", size, s.numBits)
		return fe
	}
	if s.opts.checkValue && data > widthMask(width) {
		fe := newFieldError("insert", pos, width, ErrDataTooLarge)
		fe.cause = fmt.Errorf("value %d does not fit into %d bits", data, width)
		return fe
	}
	if s.occupied != nil && s.rangeConflict(pos, width) {
		return newFieldError("insert", pos, width, ErrWouldOverlap)
	}
	return nil
}

// rangeConflict reports whether [pos, pos+width) intersects a field that
// starts at a different position. The field at pos itself may be replaced.
func (s *Set) rangeConflict(pos, width uint32) bool {
	if old, ok := s.entries[pos]; ok {
		s.occupied.Release(old.Pos, old.Width)
		defer s.occupied.Claim(old.Pos, old.Width)
	}
	return s.occupied.Overlaps(pos, width)
}

func (s *Set) register(f Field) {
	if s.occupied != nil {
		if old, ok := s.entries[f.Pos]; ok {
			s.occupied.Release(old.Pos, old.Width)
		}
		s.occupied.Claim(f.Pos, f.Width)
	}
	s.entries[f.Pos] = f
}

func (s *Set) checkBounds(pos, width uint32) error {
	if pos > s.numBits {
		return ErrOutOfBounds
	}
	return s.checkOverflow(pos, width)
}

// checkOverflow fails if the field would end past the capacity. The sum is
// taken in 64 bits so huge widths cannot wrap around.
func (s *Set) checkOverflow(pos, width uint32) error {
	if uint64(pos)+uint64(width) > uint64(s.numBits) {
		return ErrOutOfBounds
	}
	return nil
}

// Get returns the current value of the field registered at pos.
// The second result is false if no field is registered there.
func (s *Set) Get(pos uint32) (Storage, bool) {
	f, ok := s.entries[pos]
	s.opts.metrics.RecordGet(ok)
	if !ok {
		return 0, false
	}
	return (s.storage & f.Mask()) >> f.Pos, true
}

// Raw returns the entire storage word verbatim, including bits that belong
// to no registered field.
func (s *Set) Raw() Storage {
	return s.storage
}

// NumBits returns the capacity of the set in bits.
func (s *Set) NumBits() uint32 {
	return s.numBits
}

// Len returns the number of registered fields.
func (s *Set) Len() int {
	return len(s.entries)
}

// Field returns the field registered at pos.
func (s *Set) Field(pos uint32) (Field, bool) {
	f, ok := s.entries[pos]
	return f, ok
}

// Fields returns all registered fields ordered by position.
func (s *Set) Fields() []Field {
	fields := slices.Collect(maps.Values(s.entries))
	slices.SortFunc(fields, func(a, b Field) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
	return fields
}

// Clone returns an independent copy of the set, including its options.
func (s *Set) Clone() *Set {
	c := &Set{
		numBits: s.numBits,
		storage: s.storage,
		entries: maps.Clone(s.entries),
		opts:    s.opts,
	}
	if s.occupied != nil {
		c.occupied = s.occupied.Clone()
	}
	return c
}

// String renders the storage word in binary, zero-padded to NumBits digits.
func (s *Set) String() string {
	return fmt.Sprintf("%0*b", int(s.numBits), s.storage)
}
