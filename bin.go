package strbin

import "math/bits"

const bitsPerByte = 8

// ToBinStr converts bytes to a string of '0' and '1', eight characters per
// byte, most significant bit first. With reversed set, the bit order of each
// byte is reversed before formatting.
//
//	ToBinStr([]byte("h"), false) // "01101000"
//	ToBinStr([]byte("h"), true)  // "00010110"
func ToBinStr(b []byte, reversed bool) string {
	out := make([]byte, len(b)*bitsPerByte)
	for i, c := range b {
		if reversed {
			c = bits.Reverse8(c)
		}
		group := out[i*bitsPerByte : (i+1)*bitsPerByte]
		for j := range group {
			if c&(0x80>>j) != 0 {
				group[j] = '1'
			} else {
				group[j] = '0'
			}
		}
	}
	return string(out)
}

// FromBinStr converts a string of '0' and '1' back to bytes.
//
// The length of s must be a multiple of 8. Characters are scanned left to
// right and the first one that is not '0' or '1' is reported as an
// InvalidChar error.
//
//	FromBinStr("01101000", false) // []byte("h")
func FromBinStr(s string, reversed bool) ([]byte, error) {
	if len(s)%bitsPerByte != 0 {
		return nil, newLengthError(len(s), bitsPerByte)
	}

	out := make([]byte, 0, len(s)/bitsPerByte)
	var c byte
	var n int
	// Ranging over runes keeps a multi-byte character intact in the error.
	for _, r := range s {
		c <<= 1
		switch r {
		case '0':
		case '1':
			c |= 1
		default:
			return nil, newCharError(r)
		}
		n++
		if n == bitsPerByte {
			if reversed {
				c = bits.Reverse8(c)
			}
			out = append(out, c)
			c, n = 0, 0
		}
	}
	return out, nil
}
