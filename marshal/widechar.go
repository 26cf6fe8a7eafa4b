package marshal

import (
	"unicode/utf16"
	"unsafe"
)

// DuplicateUTF16 copies s into a fresh NUL-terminated UTF-16 buffer from the
// cross-boundary allocator, for consumers that marshal wide strings. Code
// units are in machine byte order; non-BMP runes become surrogate pairs.
// The result is (units+1)*2 bytes. Returns nil when allocation fails.
func DuplicateUTF16(s string) unsafe.Pointer {
	units := utf16.Encode([]rune(s))
	p := taskAlloc((len(units) + 1) * 2)
	if p == nil {
		return nil
	}
	dst := unsafe.Slice((*uint16)(p), len(units)+1)
	copy(dst, units)
	dst[len(units)] = 0
	return p
}
