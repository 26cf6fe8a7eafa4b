//go:build windows

package marshal

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// The host runtime releases marshalled buffers with CoTaskMemFree, so every
// buffer must come from the matching COM task allocator.
var (
	modole32           = windows.NewLazySystemDLL("ole32.dll")
	procCoTaskMemAlloc = modole32.NewProc("CoTaskMemAlloc")
)

func taskAlloc(size int) unsafe.Pointer {
	addr, _, _ := procCoTaskMemAlloc.Call(uintptr(size))
	return unsafe.Pointer(addr)
}

func taskFree(p unsafe.Pointer) {
	windows.CoTaskMemFree(p)
}
