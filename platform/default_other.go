//go:build !windows

package platform

import unicodeconv "github.com/wippyai/unicode-conv"

// Default returns the platform's preferred backend: the pure Go portable
// implementation.
func Default() unicodeconv.Platform {
	return Portable{}
}
