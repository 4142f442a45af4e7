package bitfield

import (
	"github.com/pkg/errors"
	"github.com/steakknife/hamming"
)

const wordSize = 64

// BitField is a fixed-size sequence of bits. The zero value is an empty field.
type BitField struct {
	store []uint64
	len   int
}

// New returns a field of size bits, all zero. A negative size yields ErrInvalidSize.
func New(size int) (*BitField, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %v", size)
	}
	return &BitField{store: make([]uint64, wordsFor(size)), len: size}, nil
}

// MustNew is like New but panics if size is negative.
func MustNew(size int) *BitField {
	bf, err := New(size)
	if err != nil {
		panic(err)
	}
	return bf
}

// Returns the length of the field in bits. It will never be changed for the given receiver.
func (bf *BitField) Size() int {
	return bf.len
}

// Get returns the bit at index. The second result is false when index is
// outside [0, Size()); negative indices are not counted from the end.
func (bf *BitField) Get(index int) (int, bool) {
	if index < 0 || index >= bf.len {
		return 0, false
	}
	return bf.bit(index), true
}

// GetRange returns the bits in the inclusive range [from, to].
func (bf *BitField) GetRange(from, to int) ([]int, error) {
	if err := checkRange(bf.len, from, to); err != nil {
		return nil, err
	}
	values := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		values = append(values, bf.bit(i))
	}
	return values, nil
}

// Set stores the parity of value at index: even values store 0, odd values store 1.
func (bf *BitField) Set(index, value int) error {
	if err := checkBounds(bf.len, index); err != nil {
		return err
	}
	bf.put(index, value)
	return nil
}

// SetRange assigns values to the inclusive range [from, to], one element per
// bit, with the same parity rule as Set. The field is left untouched on error.
func (bf *BitField) SetRange(from, to int, values []int) error {
	if err := checkRange(bf.len, from, to); err != nil {
		return err
	}
	if want := to - from + 1; len(values) != want {
		return errors.Wrapf(ErrLengthMismatch, "range [%v..%v] wants %v values, got %v", from, to, want, len(values))
	}
	for n, v := range values {
		bf.put(from+n, v)
	}
	return nil
}

// FlipAll inverts every bit of the field.
func (bf *BitField) FlipAll() {
	for n := range bf.store {
		bf.store[n] = ^bf.store[n]
	}
	bf.clearTail()
}

// Flip inverts the bit at index, or returns ErrIndexOutOfRange.
func (bf *BitField) Flip(index int) error {
	if err := checkBounds(bf.len, index); err != nil {
		return err
	}
	wref, m := bf.getBit(index)
	*wref ^= m
	return nil
}

// Count returns the number of bits set to 1.
func (bf *BitField) Count() int {
	n := 0
	for _, w := range bf.store {
		n += hamming.CountBitsUint64(w)
	}
	return n
}

// Clone returns a copy of bf backed by its own storage.
func (bf *BitField) Clone() *BitField {
	store := make([]uint64, len(bf.store))
	copy(store, bf.store)
	return &BitField{store: store, len: bf.len}
}

// Equal reports whether both fields have the same size and bits.
func (bf *BitField) Equal(other *BitField) bool {
	if other == nil || bf.len != other.len {
		return false
	}
	for n, w := range bf.store {
		if other.store[n] != w {
			return false
		}
	}
	return true
}

// Copy overwrites the low bits of dst with those of src, up to the shorter
// of the two sizes, and returns how many bits it wrote. Higher bits of dst
// keep their values. Both fields must be non-nil.
func Copy(dst *BitField, src *BitField) int {
	copyLen := min(src.len, dst.len)
	if copyLen == 0 {
		return 0
	}

	whole := copyLen / wordSize
	copy(dst.store[:whole], src.store[:whole])

	if remainderBitsN := copyLen % wordSize; remainderBitsN != 0 {
		// merge the partial last word
		m := uint64(1)<<remainderBitsN - 1
		dst.store[whole] = (dst.store[whole] &^ m) | (src.store[whole] & m)
	}

	return copyLen
}

func (bf *BitField) bit(index int) int {
	wref, m := bf.getBit(index)
	if *wref&m != 0 {
		return 1
	}
	return 0
}

func (bf *BitField) put(index, value int) {
	wref, m := bf.getBit(index)
	if value&1 == 1 {
		*wref |= m
	} else {
		*wref &^= m
	}
}

func (bf *BitField) getBit(index int) (*uint64, uint64) {
	return &bf.store[index/wordSize], uint64(1) << (index % wordSize)
}

// keeps the bits past len in the last word zero
func (bf *BitField) clearTail() {
	if r := bf.len % wordSize; r != 0 {
		bf.store[len(bf.store)-1] &= uint64(1)<<r - 1
	}
}

func wordsFor(size int) int {
	return (size + wordSize - 1) / wordSize
}

func checkBounds(len int, index int) error {
	if index < 0 || index >= len {
		return errors.Wrapf(ErrIndexOutOfRange, "index [%v] with length %v", index, len)
	}
	return nil
}

func checkRange(len int, from int, to int) error {
	if from > to {
		return errors.Wrapf(ErrIndexOutOfRange, "range [%v..%v] is inverted", from, to)
	}
	if from < 0 || to >= len {
		return errors.Wrapf(ErrIndexOutOfRange, "range [%v..%v] with length %v", from, to, len)
	}
	return nil
}
