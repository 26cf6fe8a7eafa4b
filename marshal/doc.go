// Package marshal copies string and error data into buffers a foreign
// runtime can own and release.
//
// # Overview
//
// Every returned buffer is a fresh, NUL-terminated allocation from the
// cross-boundary allocator: the COM task allocator on Windows (paired with
// the host runtime's CoTaskMemFree) and the process heap elsewhere (paired
// with free). The allocator is selected once, at build time, by the
// taskmem_windows.go / taskmem_other.go pair. There is no per-call choice
// and no runtime configuration.
//
// # Ownership
//
// Ownership of each buffer transfers to the caller on return. The package
// never frees what it hands out; a foreign caller releases buffers through
// its runtime's standard cross-boundary free routine, and Go-side callers
// (tests, embedders) use Free. Pairing a buffer with any other deallocator
// violates the boundary contract.
//
// # Failure
//
// Allocation failure surfaces as a nil pointer, the selected allocator's own
// failure mode. The package does not panic, wrap, or log. Sources that are
// not NUL-terminated where a terminator is required are the caller's
// contract violation.
package marshal
