// Package platform provides the text-conversion backends.
//
// Two backends implement the unicodeconv.Platform contract:
//
//	Native    - the Windows conversion API (WideCharToMultiByte and
//	            MultiByteToWideChar with strict validation flags).
//	            Only available on Windows.
//	Portable  - a pure Go implementation of the same contract, available
//	            on every platform.
//
// Default returns Native on Windows and Portable everywhere else. Both
// backends report failure as a zero count plus a Windows system error code,
// so callers behave identically regardless of which backend is in use.
//
// Backends are stateless and safe for concurrent use.
package platform
