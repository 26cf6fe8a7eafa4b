package marshal

import (
	"unsafe"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// DuplicateANSI transcodes s to Windows-1252 and copies the result into a
// fresh NUL-terminated buffer from the cross-boundary allocator, for
// consumers that marshal code-page strings. Runes outside the Windows-1252
// repertoire become the encoding's substitution byte. Returns nil when
// transcoding or allocation fails.
func DuplicateANSI(s string) unsafe.Pointer {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return DuplicateBytes(b)
}
