package marshal

import (
	"unsafe"

	"github.com/joshuapare/funcbridge/errdata"
	"github.com/joshuapare/funcbridge/internal/cstr"
)

const unknownErrorPrefix = "Unknown error"

// DuplicateBytes copies b into a fresh buffer from the cross-boundary
// allocator and appends the NUL terminator. The result is len(b)+1 bytes
// and is owned by the caller. Returns nil when allocation fails.
func DuplicateBytes(b []byte) unsafe.Pointer {
	p := taskAlloc(len(b) + 1)
	if p == nil {
		return nil
	}
	dst := unsafe.Slice((*byte)(p), len(b)+1)
	copy(dst, b)
	dst[len(b)] = 0
	return p
}

// DuplicateString copies the bytes of s into a fresh NUL-terminated buffer
// from the cross-boundary allocator.
func DuplicateString(s string) unsafe.Pointer {
	return DuplicateBytes(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Duplicate copies the NUL-terminated buffer at src, terminator included,
// into a fresh buffer from the cross-boundary allocator. Returns nil when
// src is nil or allocation fails.
func Duplicate(src unsafe.Pointer) unsafe.Pointer {
	if src == nil {
		return nil
	}
	n := cstr.Strlen(src)
	return DuplicateBytes(unsafe.Slice((*byte)(src), n))
}

// ErrorMessageFrom marshals the record's description for the foreign caller.
func ErrorMessageFrom(ed *errdata.ErrorData) unsafe.Pointer {
	return DuplicateString(ed.Description())
}

// ErrorMessageFromUnknown synthesizes an error message when no record is
// available. The source tag, when non-empty, names the operation that
// failed: "Unknown error in <source>".
func ErrorMessageFromUnknown(source string) unsafe.Pointer {
	message := unknownErrorPrefix
	if source != "" {
		message += " in " + source
	}
	return DuplicateString(message)
}

// Free releases a buffer obtained from this package through the paired
// cross-boundary deallocator. It exists for Go-side callers; a foreign
// caller releases buffers with its runtime's standard free routine instead.
// Free of nil is a no-op.
func Free(p unsafe.Pointer) {
	if p != nil {
		taskFree(p)
	}
}
