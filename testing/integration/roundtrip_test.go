package integration

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/strbin"
	strbintest "github.com/zoobzio/strbin/testing"
)

func TestVectors(t *testing.T) {
	ctx := context.Background()

	for _, v := range strbintest.Vectors() {
		t.Run(v.Name, func(t *testing.T) {
			c, err := strbin.Use(v.Format, strbin.WithReversal(v.Reversed))
			if err != nil {
				t.Fatalf("Use() error: %v", err)
			}

			if got := c.Encode(ctx, v.Data); got != v.Text {
				t.Errorf("Encode() = %q, want %q", got, v.Text)
			}

			got, err := c.Decode(ctx, v.Text)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !bytes.Equal(got, v.Data) {
				t.Errorf("Decode() = %q, want %q", got, v.Data)
			}
		})
	}
}

func TestRoundTrip_Random(t *testing.T) {
	ctx := context.Background()

	for _, c := range strbintest.Codecs() {
		for seed := int64(0); seed < 32; seed++ {
			data := strbintest.RandomBytes(seed, int(seed)*7)

			text := c.Encode(ctx, data)
			if len(text) != len(data)*c.Format().GroupSize() {
				t.Fatalf("%s reversed=%v: len(text) = %d, want %d",
					c.Format(), c.Reversed(), len(text), len(data)*c.Format().GroupSize())
			}

			got, err := c.Decode(ctx, text)
			if err != nil {
				t.Fatalf("%s reversed=%v: Decode() error: %v", c.Format(), c.Reversed(), err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("%s reversed=%v: round-trip mismatch for seed %d", c.Format(), c.Reversed(), seed)
			}
		}
	}
}

// Reversed output decoded in the plain mode yields the permuted bytes, never an error.
func TestRoundTrip_ModeMismatch(t *testing.T) {
	ctx := context.Background()
	data := []byte("hello")

	for _, f := range []strbin.Format{strbin.FormatBinary, strbin.FormatHex} {
		rev, _ := strbin.New(f, strbin.WithReversal(true))
		plain, _ := strbin.New(f)

		got, err := plain.Decode(ctx, rev.Encode(ctx, data))
		if err != nil {
			t.Fatalf("%s: Decode() error: %v", f, err)
		}
		if bytes.Equal(got, data) {
			t.Errorf("%s: decoding with the wrong mode should not reproduce the input", f)
		}
	}
}

func TestDecode_UppercaseHexRejected(t *testing.T) {
	c, _ := strbin.Use(strbin.FormatHex)

	_, err := c.Decode(context.Background(), "686F6765")
	if !errors.Is(err, strbin.ErrInvalidChar) {
		t.Errorf("Decode() error = %v, want ErrInvalidChar", err)
	}
}
