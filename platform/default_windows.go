//go:build windows

package platform

import unicodeconv "github.com/wippyai/unicode-conv"

// Default returns the platform's preferred backend: the native Windows
// conversion API.
func Default() unicodeconv.Platform {
	return Native{}
}
