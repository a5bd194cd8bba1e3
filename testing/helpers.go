// Package testing provides test utilities for strbin.
package testing

import (
	"math/rand"

	"github.com/zoobzio/strbin"
)

// Vector is a known encoding of a byte sequence.
type Vector struct {
	Name     string
	Format   strbin.Format
	Reversed bool
	Data     []byte
	Text     string
}

// Vectors returns the reference encodings shared by the integration tests.
func Vectors() []Vector {
	return []Vector{
		{"bin hello", strbin.FormatBinary, false, []byte("hello"), "0110100001100101011011000110110001101111"},
		{"bin hello reversed", strbin.FormatBinary, true, []byte("hello"), "0001011010100110001101100011011011110110"},
		{"bin hoge", strbin.FormatBinary, false, []byte("hoge"), "01101000011011110110011101100101"},
		{"bin hoge reversed", strbin.FormatBinary, true, []byte("hoge"), "00010110111101101110011010100110"},
		{"hex hello", strbin.FormatHex, false, []byte("hello"), "68656c6c6f"},
		{"hex hello reversed", strbin.FormatHex, true, []byte("hello"), "8656c6c6f6"},
		{"hex hoge", strbin.FormatHex, false, []byte("hoge"), "686f6765"},
		{"hex hoge reversed", strbin.FormatHex, true, []byte("hoge"), "86f67656"},
		{"bin empty", strbin.FormatBinary, false, []byte{}, ""},
		{"hex empty", strbin.FormatHex, true, []byte{}, ""},
	}
}

// RandomBytes returns n pseudo-random bytes derived from seed.
func RandomBytes(seed int64, n int) []byte {
	b := make([]byte, n)
	// rand.Rand.Read never returns an error.
	_, _ = rand.New(rand.NewSource(seed)).Read(b)
	return b
}

// Codecs returns one codec per format and reversal mode.
func Codecs() []strbin.Codec {
	var out []strbin.Codec
	for _, f := range []strbin.Format{strbin.FormatBinary, strbin.FormatHex} {
		for _, r := range []bool{false, true} {
			c, err := strbin.New(f, strbin.WithReversal(r))
			if err != nil {
				panic(err)
			}
			out = append(out, c)
		}
	}
	return out
}
