// Package strbin converts bytes to and from human-readable text.
//
// Two encodings are supported, each with an optional per-byte reversal:
//
//   - bin: eight '0'/'1' characters per byte, most significant bit first.
//     Reversal flips the bit order within each byte.
//   - hex: two lowercase hex characters per byte, high nibble first.
//     Reversal swaps the two nibbles of each byte.
//
// Reversal obfuscates output for casual inspection. It is a fixed, public
// permutation and provides no secrecy.
//
// # Basic Usage
//
// The package-level functions are pure and safe for concurrent use:
//
//	s := strbin.ToBinStr([]byte("hello"), false)
//	// "0110100001100101011011000110110001101111"
//
//	b, err := strbin.FromHexStr("86f67656", true)
//	// []byte("hoge")
//
// # Codecs
//
// A Codec binds a format to a reversal mode and emits capitan signals
// on each operation:
//
//	c, _ := strbin.Use(strbin.FormatHex, strbin.WithReversal(true))
//	text := c.Encode(ctx, data)
//	data, err := c.Decode(ctx, text)
//
// # Errors
//
// Decoding fails with *Error in one of two kinds:
//
//   - KindInvalidLength: the input length is not a multiple of 8 (bin) or 2 (hex)
//   - KindInvalidChar: the first character outside the alphabet
//
// Use errors.Is with ErrInvalidLength or ErrInvalidChar, or errors.As to
// reach the diagnostic fields. Encoding never fails.
package strbin
