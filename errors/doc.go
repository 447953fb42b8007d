// Package errors provides structured error types for the unicode-conv library.
//
// Errors are categorized by Direction (which conversion failed) and Kind
// (error category). The Error type carries the platform error code reported
// by the conversion backend, a detail message, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.DirectionUTF8ToUTF16, errors.KindConversion).
//		Code(1113).
//		Detail("conversion failed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SizeQueryFailed(errors.DirectionUTF16ToUTF8, code)
//	err := errors.Overflow(errors.DirectionUTF8ToUTF16, length)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
