package strbin

import "strings"

// Format names a textual encoding.
// Use these constants when selecting a codec: New(FormatHex)
type Format string

const (
	// FormatBinary encodes each byte as eight '0'/'1' characters.
	FormatBinary Format = "bin"

	// FormatHex encodes each byte as two lowercase hex characters.
	FormatHex Format = "hex"
)

// validFormats contains all valid formats for name validation.
var validFormats = map[Format]bool{
	FormatBinary: true,
	FormatHex:    true,
}

// IsValidFormat returns true if the format is a known encoding.
func IsValidFormat(f Format) bool {
	return validFormats[f]
}

// ParseFormat resolves a user-supplied format name.
// Matching is case-insensitive and "binary" is accepted for FormatBinary.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "binary" {
		n = string(FormatBinary)
	}
	f := Format(n)
	if !IsValidFormat(f) {
		return "", &FormatError{Name: name}
	}
	return f, nil
}

// GroupSize returns the number of characters produced per byte.
func (f Format) GroupSize() int {
	switch f {
	case FormatBinary:
		return bitsPerByte
	case FormatHex:
		return charsPerByte
	default:
		return 0
	}
}
