// Package unicodeconv provides conversion between UTF-16 and UTF-8 text.
//
// This library is a thin shim over a platform text-conversion backend. It
// converts whole in-memory strings between UTF-16 code units ([]uint16) and
// UTF-8 bytes ([]byte), with strict validation: ill-formed input is rejected
// with a structured error, never replaced or truncated.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	unicodeconv/         Root package with the Platform backend contract
//	├── codec/           High-level API: ToUTF8 and ToUTF16 conversions
//	├── platform/        Backends: native Windows API and pure Go portable
//	├── utf16bytes/      UTF-16 byte serialization (endianness, BOM)
//	├── errors/          Structured error types for diagnostics
//	└── cmd/uconv/       Command-line converter with interactive mode
//
// # Quick Start
//
// Convert between encodings with the default backend:
//
//	utf8, err := codec.ToUTF8(units)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	units, err := codec.ToUTF16([]byte("héllo"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Conversion Protocol
//
// Both directions follow the platform's two-call protocol: the first backend
// call measures the required destination length, the second fills a buffer of
// exactly that length. There is no guessing and no grow-and-retry loop.
//
// # Error Handling
//
// Errors use the structured type from the errors package:
//
//	[utf8_to_utf16] conversion (code 1113): conversion failed
//	[utf8_to_utf16] overflow: length 2147483648 exceeds int32 range
//
// # Thread Safety
//
// Conversions are stateless and safe for concurrent use as long as the
// backend is reentrant, which is true of both provided backends.
package unicodeconv
