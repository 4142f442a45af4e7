package bitfield

import (
	"strings"

	"github.com/pkg/errors"
)

// String renders the field as '0' and '1' characters, highest index first,
// so bit 0 is the last character.
func (bf *BitField) String() string {
	var b strings.Builder
	b.Grow(bf.len)
	for i := bf.len - 1; i >= 0; i-- {
		b.WriteByte('0' + byte(bf.bit(i)))
	}
	return b.String()
}

// Parse builds a field from its String form: the last character is bit 0.
func Parse(s string) (*BitField, error) {
	n := len(s)
	bf := MustNew(n)
	for i := 0; i < n; i++ {
		switch s[i] {
		case '0':
		case '1':
			bf.put(n-1-i, 1)
		default:
			return nil, errors.Wrapf(ErrInvalidCharacter, "%q at position %v", s[i], i)
		}
	}
	return bf, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) *BitField {
	bf, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return bf
}

// MarshalText encodes the field in its String form.
func (bf *BitField) MarshalText() ([]byte, error) {
	return []byte(bf.String()), nil
}

// UnmarshalText replaces the receiver's size and bits with the parsed text.
func (bf *BitField) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*bf = *parsed
	return nil
}
