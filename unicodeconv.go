package unicodeconv

// Platform is the text-conversion backend contract. Implementations convert
// between UTF-16 code units and UTF-8 bytes with strict validation, mirroring
// the two-call protocol of the Windows conversion API: a call with a nil
// destination measures the required output length, a call with a destination
// buffer performs the conversion.
//
// A zero count is the failure sentinel; it is always accompanied by a
// platform error code (one of the Code constants below). A successful call
// returns a positive count and code 0.
type Platform interface {
	// WideToMulti converts UTF-16 code units to UTF-8 bytes. When dst is nil
	// it returns the number of bytes the conversion requires; otherwise it
	// writes into dst and returns the number of bytes written.
	WideToMulti(src []uint16, dst []byte) (n int, code uint32)

	// MultiToWide converts UTF-8 bytes to UTF-16 code units. srcLen is the
	// byte length of src, pre-checked to fit an int32 by the caller. When dst
	// is nil it returns the number of code units the conversion requires;
	// otherwise it writes into dst and returns the number written.
	MultiToWide(src []byte, srcLen int32, dst []uint16) (n int, code uint32)
}

// Platform error codes reported alongside a zero count. The values match the
// Windows system error codes so that native and portable backends agree.
const (
	CodeInvalidParameter     uint32 = 87   // ERROR_INVALID_PARAMETER
	CodeInsufficientBuffer   uint32 = 122  // ERROR_INSUFFICIENT_BUFFER
	CodeInvalidFlags         uint32 = 1004 // ERROR_INVALID_FLAGS
	CodeNoUnicodeTranslation uint32 = 1113 // ERROR_NO_UNICODE_TRANSLATION
)
