package bitfield

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a field is requested with a negative size.
	ErrInvalidSize = errors.New("invalid bitfield size")
	// ErrIndexOutOfRange is returned by writes and range reads outside [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrLengthMismatch is returned when a range assignment gets the wrong number of values.
	ErrLengthMismatch = errors.New("values length does not match range length")
	// ErrInvalidCharacter is returned when parsing text that holds anything but '0' and '1'.
	ErrInvalidCharacter = errors.New("invalid bit character")
)
