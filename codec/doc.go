// Package codec provides the high-level UTF-16/UTF-8 conversion API.
//
// A Codec wraps a conversion backend and exposes two operations:
//
//	ToUTF8   - UTF-16 code units ([]uint16) to UTF-8 bytes ([]byte)
//	ToUTF16  - UTF-8 bytes ([]byte) to UTF-16 code units ([]uint16)
//
// Package-level ToUTF8 and ToUTF16 use a shared Codec on the default backend.
//
// # Conversion Flow
//
//  1. Empty input returns empty output with no backend call.
//  2. The destination length is measured by a backend call with a nil buffer.
//  3. A buffer of exactly the measured length is allocated and filled by a
//     second backend call.
//
// A zero count from either backend call is terminal: the error carries the
// conversion direction and the platform error code. There is no retry and no
// lossy substitution; ill-formed input always fails.
//
// # Size Safety
//
// The backend APIs take int32 lengths. ToUTF16 rejects inputs longer than
// MaxInt32 bytes with an overflow error before any backend call.
package codec
