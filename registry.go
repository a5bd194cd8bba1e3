package strbin

import "sync"

// registryKey combines format and mode for cache lookup.
type registryKey struct {
	format   Format
	reversed bool
}

var (
	registry   = make(map[registryKey]Codec)
	registryMu sync.RWMutex
)

// Use returns a cached codec or builds a new one.
// The codec is cached by format and reversal mode.
func Use(format Format, opts ...Option) (Codec, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	key := registryKey{format: format, reversed: o.reversed}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached, nil
	}

	c, err := New(format, WithReversal(o.reversed))
	if err != nil {
		return nil, err
	}

	registry[key] = c
	return c, nil
}

// Reset clears the codec registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]Codec)
}
