package bitfield

import (
	gobitfield "github.com/prysmaticlabs/go-bitfield"
)

// Bitlist converts the field into an SSZ bitlist of the same length.
func (bf *BitField) Bitlist() gobitfield.Bitlist {
	bl := gobitfield.NewBitlist(uint64(bf.len))
	for i := 0; i < bf.len; i++ {
		if bf.bit(i) == 1 {
			bl.SetBitAt(uint64(i), true)
		}
	}
	return bl
}

// FromBitlist builds a field holding the bits of bl. The bitlist length
// must fit in an int, which holds for any bitlist that fits in memory.
func FromBitlist(bl gobitfield.Bitlist) *BitField {
	n := int(bl.Len())
	bf := MustNew(n)
	for i := 0; i < n; i++ {
		if bl.BitAt(uint64(i)) {
			bf.put(i, 1)
		}
	}
	return bf
}
