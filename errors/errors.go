package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction indicates which conversion the error occurred in
type Direction string

const (
	DirectionUTF16ToUTF8 Direction = "utf16_to_utf8" // UTF-16 code units to UTF-8 bytes
	DirectionUTF8ToUTF16 Direction = "utf8_to_utf16" // UTF-8 bytes to UTF-16 code units
)

// Kind categorizes the error
type Kind string

const (
	KindSizeQuery    Kind = "size_query"    // measuring the destination length failed
	KindConversion   Kind = "conversion"    // filling the destination buffer failed
	KindOverflow     Kind = "overflow"      // a length does not fit the backend's int32
	KindInvalidInput Kind = "invalid_input" // malformed input detected before the backend
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause     error
	Direction Direction
	Kind      Kind
	Code      uint32 // platform error code, 0 when not applicable
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Direction))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Code != 0 {
		b.WriteString(" (code ")
		b.WriteString(strconv.FormatUint(uint64(e.Code), 10))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Direction == t.Direction && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(direction Direction, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Direction: direction,
			Kind:      kind,
		},
	}
}

// Code sets the platform error code
func (b *Builder) Code(code uint32) *Builder {
	b.err.Code = code
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// SizeQueryFailed creates an error for a failed destination-length query.
// code is the platform error code reported by the backend.
func SizeQueryFailed(direction Direction, code uint32) *Error {
	return &Error{
		Direction: direction,
		Kind:      KindSizeQuery,
		Code:      code,
		Detail:    "cannot compute destination length",
	}
}

// ConversionFailed creates an error for a failed buffer-filling call.
// code is the platform error code reported by the backend.
func ConversionFailed(direction Direction, code uint32) *Error {
	return &Error{
		Direction: direction,
		Kind:      KindConversion,
		Code:      code,
		Detail:    "conversion failed",
	}
}

// Overflow creates an error for a length that exceeds the int32 range
func Overflow(direction Direction, length int) *Error {
	return &Error{
		Direction: direction,
		Kind:      KindOverflow,
		Detail:    fmt.Sprintf("length %d exceeds int32 range", length),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(direction Direction, detail string) *Error {
	return &Error{
		Direction: direction,
		Kind:      KindInvalidInput,
		Detail:    detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(direction Direction, kind Kind, cause error, detail string) *Error {
	return &Error{
		Direction: direction,
		Kind:      kind,
		Detail:    detail,
		Cause:     cause,
	}
}
