package strbin

const (
	hexDigits     = "0123456789abcdef"
	charsPerByte  = 2
	nibbleBits    = 4
	lowNibbleMask = 0x0f
)

// ToHexStr converts bytes to a lowercase hex string, two characters per byte.
// With reversed set, the low nibble of each byte is written first.
//
//	ToHexStr([]byte("h"), false) // "68"
//	ToHexStr([]byte("h"), true)  // "86"
func ToHexStr(b []byte, reversed bool) string {
	out := make([]byte, len(b)*charsPerByte)
	for i, c := range b {
		hi, lo := c>>nibbleBits, c&lowNibbleMask
		if reversed {
			hi, lo = lo, hi
		}
		out[i*charsPerByte] = hexDigits[hi]
		out[i*charsPerByte+1] = hexDigits[lo]
	}
	return string(out)
}

// FromHexStr converts a lowercase hex string back to bytes.
//
// The length of s must be even. Uppercase digits are rejected. Within each
// pair the first character is checked before the second.
//
//	FromHexStr("68", false) // []byte("h")
//	FromHexStr("86", true)  // []byte("h")
func FromHexStr(s string, reversed bool) ([]byte, error) {
	if len(s)%charsPerByte != 0 {
		return nil, newLengthError(len(s), charsPerByte)
	}

	out := make([]byte, 0, len(s)/charsPerByte)
	var first byte
	var pending bool
	for _, r := range s {
		v, ok := hexValue(r)
		if !ok {
			return nil, newCharError(r)
		}
		if !pending {
			first, pending = v, true
			continue
		}
		if reversed {
			out = append(out, v<<nibbleBits|first)
		} else {
			out = append(out, first<<nibbleBits|v)
		}
		pending = false
	}
	return out, nil
}

// hexValue maps a lowercase hex digit to its 4-bit value.
func hexValue(r rune) (byte, bool) {
	switch {
	case '0' <= r && r <= '9':
		return byte(r - '0'), true
	case 'a' <= r && r <= 'f':
		return byte(r-'a') + 10, true
	default:
		return 0, false
	}
}
