package strbin

import (
	"context"
	"strconv"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalCodecCreated   = capitan.NewSignal("strbin.codec.created", "Codec instantiated")
	SignalEncodeComplete = capitan.NewSignal("strbin.encode.complete", "Encode operation finished")
	SignalDecodeComplete = capitan.NewSignal("strbin.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyFormat   = capitan.NewStringKey("format")
	KeyReversed = capitan.NewStringKey("reversed")
	KeySize     = capitan.NewIntKey("size")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitCodecCreated emits an event when a codec is created.
func emitCodecCreated(ctx context.Context, format Format, reversed bool) {
	capitan.Emit(ctx, SignalCodecCreated,
		KeyFormat.Field(string(format)),
		KeyReversed.Field(strconv.FormatBool(reversed)),
	)
}

// emitEncodeComplete emits an event when encode finishes.
// size is the number of input bytes.
func emitEncodeComplete(ctx context.Context, format Format, reversed bool, size int, duration time.Duration) {
	capitan.Emit(ctx, SignalEncodeComplete,
		KeyFormat.Field(string(format)),
		KeyReversed.Field(strconv.FormatBool(reversed)),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	)
}

// emitDecodeComplete emits an event when decode finishes.
// size is the length of the input text.
func emitDecodeComplete(ctx context.Context, format Format, reversed bool, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(string(format)),
		KeyReversed.Field(strconv.FormatBool(reversed)),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
