//go:build !windows

package marshal

// #include <stdlib.h>
import "C"
import "unsafe"

// Without a task allocator the host runtime pairs marshalled buffers with
// the process heap free, so the heap allocator stands in. calloc rather
// than malloc: cgo aborts the process when C.malloc returns NULL, while a
// calloc failure surfaces as nil the way the boundary contract requires.

func taskAlloc(size int) unsafe.Pointer {
	return C.calloc(C.size_t(size), 1)
}

func taskFree(p unsafe.Pointer) {
	C.free(p)
}
