// Package common holds the unsafe aliasing primitives shared by the
// view constructors. Both directions are zero-copy: the result shares
// storage with the argument, so the caller owns the lifetime and
// mutation discipline.
package common

import "unsafe"

// StringView aliases b as a string without copying. The string is only
// valid while b is live and unmodified.
func StringView(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// BytesView aliases s as a []byte without copying. Go strings are
// immutable; writing through the result is undefined.
func BytesView(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
