package codec

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/unicode-conv/errors"
)

// convert runs the backend's two-call protocol for one direction: the first
// call with a nil destination measures the required output length, the second
// fills a buffer of exactly that length. A zero count from either call is
// terminal; the caller has already ruled out empty input.
func convert[U byte | uint16](dir errors.Direction, call func(dst []U) (int, uint32)) ([]U, error) {
	n, code := call(nil)
	if n == 0 {
		Logger().Debug("destination length query failed",
			zap.String("direction", string(dir)),
			zap.Uint32("code", code))
		return nil, errors.SizeQueryFailed(dir, code)
	}

	dst := make([]U, n)
	if w, code := call(dst); w == 0 {
		Logger().Debug("conversion failed",
			zap.String("direction", string(dir)),
			zap.Uint32("code", code))
		return nil, errors.ConversionFailed(dir, code)
	}

	return dst, nil
}

// safeInt32 converts a non-negative length to the int32 the backend APIs
// take. Lengths beyond MaxInt32 fail so the backend never sees a wrapped
// length value.
func safeInt32(n int) (int32, error) {
	if n > math.MaxInt32 {
		return 0, errors.Overflow(errors.DirectionUTF8ToUTF16, n)
	}
	return int32(n), nil
}
