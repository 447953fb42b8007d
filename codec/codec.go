package codec

import (
	"sync"

	unicodeconv "github.com/wippyai/unicode-conv"
	"github.com/wippyai/unicode-conv/errors"
	"github.com/wippyai/unicode-conv/platform"
)

// Platform is the conversion backend contract consumed by this package.
type Platform = unicodeconv.Platform

// Codec converts between UTF-16 and UTF-8 through a conversion backend.
// A Codec holds no mutable state and is safe for concurrent use.
type Codec struct {
	platform Platform
}

// Option configures a Codec
type Option func(*Codec)

// WithPlatform sets the conversion backend.
// The default is platform.Default().
func WithPlatform(p Platform) Option {
	return func(c *Codec) {
		c.platform = p
	}
}

// New creates a Codec on the default backend, applying any options.
func New(opts ...Option) *Codec {
	c := &Codec{platform: platform.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToUTF8 converts UTF-16 code units to UTF-8 bytes.
//
// Empty input converts to empty output without a backend call. Ill-formed
// UTF-16, such as an unpaired surrogate, fails with a conversion error
// carrying the platform error code.
func (c *Codec) ToUTF8(src []uint16) ([]byte, error) {
	// Empty input short-circuits before the backend, so a zero count from
	// the backend always means failure, never a legitimate empty result.
	if len(src) == 0 {
		return nil, nil
	}

	return convert(errors.DirectionUTF16ToUTF8, func(dst []byte) (int, uint32) {
		return c.platform.WideToMulti(src, dst)
	})
}

// ToUTF16 converts UTF-8 bytes to UTF-16 code units.
//
// Empty input converts to empty output without a backend call. Inputs longer
// than MaxInt32 bytes fail with an overflow error before any backend call.
// Ill-formed UTF-8, such as a lone continuation byte, fails with a conversion
// error carrying the platform error code.
func (c *Codec) ToUTF16(src []byte) ([]uint16, error) {
	if len(src) == 0 {
		return nil, nil
	}

	srcLen, err := safeInt32(len(src))
	if err != nil {
		return nil, err
	}

	return convert(errors.DirectionUTF8ToUTF16, func(dst []uint16) (int, uint32) {
		return c.platform.MultiToWide(src, srcLen, dst)
	})
}

var (
	defaultCodec *Codec
	defaultOnce  sync.Once
)

// Default returns the shared Codec on the default backend.
func Default() *Codec {
	defaultOnce.Do(func() {
		defaultCodec = New()
	})
	return defaultCodec
}

// ToUTF8 converts UTF-16 code units to UTF-8 bytes using the default Codec.
func ToUTF8(src []uint16) ([]byte, error) {
	return Default().ToUTF8(src)
}

// ToUTF16 converts UTF-8 bytes to UTF-16 code units using the default Codec.
func ToUTF16(src []byte) ([]uint16, error) {
	return Default().ToUTF16(src)
}
