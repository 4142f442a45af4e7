/*
Fixed size bit field with indexed and range access, flipping, population
count and ordered iteration.

	bf, _ := bitfield.New(10)	// 0000000000
	bf.Set(0, 1)			// 0000000001
	bf.Set(9, 1025)			// 1000000001, odd values store 1
	bf.SetRange(2, 3, []int{1, 1})	// 1000001101
	bf.Flip(0)			// 1000001100
	bf.FlipAll()			// 0111110011
	bf.Count()			// 7

Text renders the highest index first, so bit 0 is the rightmost character.

Reads outside the field are lenient: Get reports a missing bit instead of
failing. Writes are strict and return ErrIndexOutOfRange.
*/
package bitfield
