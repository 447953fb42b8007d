//go:build windows

package platform

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	unicodeconv "github.com/wippyai/unicode-conv"
)

var (
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procWideCharToMultiByte = kernel32.NewProc("WideCharToMultiByte")
	procMultiByteToWideChar = kernel32.NewProc("MultiByteToWideChar")
)

const (
	cpUTF8            = 65001 // CP_UTF8
	wcErrInvalidChars = 0x80  // WC_ERR_INVALID_CHARS
	mbErrInvalidChars = 0x08  // MB_ERR_INVALID_CHARS
)

// Native converts through the Windows conversion API with CP_UTF8 and the
// strict validation flags, capturing the system's last-error code on failure.
type Native struct{}

// WideToMulti converts UTF-16 code units to UTF-8 bytes via WideCharToMultiByte.
// A nil dst measures the required byte count without writing.
func (Native) WideToMulti(src []uint16, dst []byte) (int, uint32) {
	if len(src) == 0 {
		return 0, unicodeconv.CodeInvalidParameter
	}

	var dstPtr unsafe.Pointer
	if len(dst) > 0 {
		dstPtr = unsafe.Pointer(&dst[0])
	}
	r1, _, errno := procWideCharToMultiByte.Call(
		cpUTF8,
		wcErrInvalidChars,
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(len(src)),
		uintptr(dstPtr),
		uintptr(len(dst)),
		0, // lpDefaultChar, must be nil for CP_UTF8
		0, // lpUsedDefaultChar, must be nil for CP_UTF8
	)
	if r1 == 0 {
		return 0, errnoCode(errno)
	}
	return int(r1), 0
}

// MultiToWide converts UTF-8 bytes to UTF-16 code units via MultiByteToWideChar.
// A nil dst measures the required code-unit count without writing.
func (Native) MultiToWide(src []byte, srcLen int32, dst []uint16) (int, uint32) {
	if srcLen <= 0 || int(srcLen) > len(src) {
		return 0, unicodeconv.CodeInvalidParameter
	}

	var dstPtr unsafe.Pointer
	if len(dst) > 0 {
		dstPtr = unsafe.Pointer(&dst[0])
	}
	r1, _, errno := procMultiByteToWideChar.Call(
		cpUTF8,
		mbErrInvalidChars,
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(srcLen),
		uintptr(dstPtr),
		uintptr(len(dst)),
	)
	if r1 == 0 {
		return 0, errnoCode(errno)
	}
	return int(r1), 0
}

// errnoCode extracts the system error code from a syscall error.
func errnoCode(err error) uint32 {
	if e, ok := err.(syscall.Errno); ok {
		return uint32(e)
	}
	return unicodeconv.CodeInvalidParameter
}
