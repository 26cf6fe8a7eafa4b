// Package cstr inspects NUL-terminated buffers through raw pointers.
//
// The helpers here are the read-side counterpart of the marshal package:
// they walk foreign-owned (or freshly marshalled) buffers without taking
// ownership, copying the contents into ordinary Go values. None of them
// free anything.
package cstr

import (
	"unicode/utf16"
	"unsafe"
)

// maxScan bounds the array view used to walk a foreign buffer. The actual
// read never goes past the terminator, so the bound only has to exceed any
// string the parser can realistically produce.
const maxScan = 1 << 30

// Strlen returns the number of bytes at p before the NUL terminator.
// p must be non-nil and NUL-terminated.
func Strlen(p unsafe.Pointer) int {
	b := (*[maxScan]byte)(p)
	n := 0
	for b[n] != 0 {
		n++
	}
	return n
}

// GoString copies the NUL-terminated bytes at p into a Go string.
// Returns "" for a nil pointer.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := Strlen(p)
	b := (*[maxScan]byte)(p)
	// Three-index slice caps the view so the string copy cannot alias
	// memory past the terminator.
	return string(b[:n:n])
}

// GoBytes copies n bytes starting at p into a fresh slice.
func GoBytes(p unsafe.Pointer, n int) []byte {
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}

// Wcslen returns the number of 16-bit units at p before the 16-bit
// terminator. p must be non-nil and terminated.
func Wcslen(p unsafe.Pointer) int {
	w := (*[maxScan / 2]uint16)(p)
	n := 0
	for w[n] != 0 {
		n++
	}
	return n
}

// GoStringUTF16 copies the NUL-terminated UTF-16 buffer at p into a Go
// string, combining surrogate pairs. Returns "" for a nil pointer.
func GoStringUTF16(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := Wcslen(p)
	return string(utf16.Decode(unsafe.Slice((*uint16)(p), n)))
}
