package strbin

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidLength indicates the input length is not a multiple of the group size.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidChar indicates a character outside the encoding's alphabet.
	ErrInvalidChar = errors.New("invalid character")

	// ErrUnknownFormat indicates a format name that is neither bin nor hex.
	ErrUnknownFormat = errors.New("unknown format")
)

// Kind discriminates the variants of Error.
type Kind int

const (
	// KindInvalidLength is reported when len(input) is not a multiple of MultipleOf.
	KindInvalidLength Kind = iota + 1

	// KindInvalidChar is reported for the first character outside the alphabet.
	KindInvalidChar
)

func (k Kind) String() string {
	switch k {
	case KindInvalidLength:
		return "InvalidLength"
	case KindInvalidChar:
		return "InvalidChar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by the decode functions.
// Only the fields belonging to Kind are meaningful.
type Error struct {
	Kind       Kind
	Len        int  // observed input length (KindInvalidLength)
	MultipleOf int  // required divisor, 8 or 2 (KindInvalidLength)
	Char       rune // offending character (KindInvalidChar)
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidLength:
		return fmt.Sprintf("input length (%d) is not a multiple of %d", e.Len, e.MultipleOf)
	case KindInvalidChar:
		return fmt.Sprintf("invalid character %q is found", string(e.Char))
	default:
		return "strbin: unknown error"
	}
}

// Unwrap returns the sentinel matching Kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindInvalidLength:
		return ErrInvalidLength
	case KindInvalidChar:
		return ErrInvalidChar
	default:
		return nil
	}
}

// FormatError reports a format name that could not be parsed.
type FormatError struct {
	Name string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q (want %q or %q)", ErrUnknownFormat.Error(), e.Name, FormatBinary, FormatHex)
}

func (e *FormatError) Unwrap() error {
	return ErrUnknownFormat
}

// newLengthError creates an Error for a length that is not a multiple of n.
func newLengthError(length, n int) error {
	return &Error{
		Kind:       KindInvalidLength,
		Len:        length,
		MultipleOf: n,
	}
}

// newCharError creates an Error for an unexpected character.
func newCharError(c rune) error {
	return &Error{
		Kind: KindInvalidChar,
		Char: c,
	}
}
