package bitfield

import "iter"

// Each calls fn with every bit value in index order.
func (bf *BitField) Each(fn func(value int)) {
	for i := 0; i < bf.len; i++ {
		fn(bf.bit(i))
	}
}

// EachIndex calls fn with every index from 0 to Size()-1.
func (bf *BitField) EachIndex(fn func(index int)) {
	for i := 0; i < bf.len; i++ {
		fn(i)
	}
}

// Values returns a sequence of the bit values in index order.
// Every range over it starts again from index 0.
func (bf *BitField) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < bf.len; i++ {
			if !yield(bf.bit(i)) {
				return
			}
		}
	}
}

// Indices returns a sequence of 0 to Size()-1.
func (bf *BitField) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < bf.len; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// All returns a sequence of index/value pairs.
func (bf *BitField) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < bf.len; i++ {
			if !yield(i, bf.bit(i)) {
				return
			}
		}
	}
}

// Returns a closure function, which may be called many times to iterate
// through all bits and get their value.
// Closure will start returning false after reaching the end.
func (bf *BitField) Iterator() func() (int, bool) {
	index := 0
	return func() (int, bool) {
		if index >= bf.len {
			return 0, false
		}
		v := bf.bit(index)
		index++
		return v, true
	}
}

// IndexIterator is like Iterator but yields indices.
func (bf *BitField) IndexIterator() func() (int, bool) {
	index := 0
	return func() (int, bool) {
		if index >= bf.len {
			return 0, false
		}
		index++
		return index - 1, true
	}
}
