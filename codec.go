package strbin

import (
	"context"
	"time"
)

// Codec pairs a format with a reversal mode.
//
// Codecs hold no mutable state and are safe for concurrent use. Encode and
// Decode produce the same output as the package-level functions and emit
// completion signals on the supplied context.
type Codec interface {
	// Format returns the encoding this codec produces.
	Format() Format

	// Reversed reports whether per-byte reversal is applied.
	Reversed() bool

	// Encode converts data to text. It never fails.
	Encode(ctx context.Context, data []byte) string

	// Decode converts text back to bytes.
	Decode(ctx context.Context, text string) ([]byte, error)
}

// Option configures a Codec.
type Option func(*options)

type options struct {
	reversed bool
}

// WithReversal selects the reversed mode: bit order per byte for
// FormatBinary, nibble order per byte for FormatHex.
func WithReversal(reversed bool) Option {
	return func(o *options) {
		o.reversed = reversed
	}
}

// New returns a Codec for the given format.
func New(format Format, opts ...Option) (Codec, error) {
	if !IsValidFormat(format) {
		return nil, &FormatError{Name: string(format)}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &textCodec{format: format, reversed: o.reversed}
	switch format {
	case FormatBinary:
		c.encode, c.decode = ToBinStr, FromBinStr
	case FormatHex:
		c.encode, c.decode = ToHexStr, FromHexStr
	}

	emitCodecCreated(context.Background(), format, o.reversed)
	return c, nil
}

// textCodec implements Codec over one encode/decode function pair.
type textCodec struct {
	format   Format
	reversed bool
	encode   func([]byte, bool) string
	decode   func(string, bool) ([]byte, error)
}

func (c *textCodec) Format() Format { return c.format }

func (c *textCodec) Reversed() bool { return c.reversed }

func (c *textCodec) Encode(ctx context.Context, data []byte) string {
	start := time.Now()
	out := c.encode(data, c.reversed)
	emitEncodeComplete(ctx, c.format, c.reversed, len(data), time.Since(start))
	return out
}

func (c *textCodec) Decode(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	out, err := c.decode(text, c.reversed)
	emitDecodeComplete(ctx, c.format, c.reversed, len(text), time.Since(start), err)
	return out, err
}
