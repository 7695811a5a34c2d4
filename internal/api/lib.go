package api

/*
#cgo pkg-config: gdal
#include <stdlib.h>
#include <cpl_string.h>
*/
import "C"

import (
	"unsafe"
)

// List holds the raw CSL handle (char **papszStrList): a NULL-terminated
// array of NUL-terminated strings, or nil for the empty list. The zero value
// is the empty list. Every mutating function may reallocate the array and
// returns the handle to adopt; the old handle is invalid afterwards.
type List struct {
	ptr **C.char
}

// Ptr exposes the raw handle for GDAL entry points taking a CSLConstList.
func (l List) Ptr() unsafe.Pointer {
	return unsafe.Pointer(l.ptr)
}

// SetNameValue inserts or overwrites the NAME=VALUE entry for name. GDAL
// matches existing names case-insensitively and stores the entry with the
// casing given here. Callers guarantee name and value are NUL-free.
func SetNameValue(l List, name, value string) List {
	n := C.CString(name)
	defer C.free(unsafe.Pointer(n))
	v := C.CString(value)
	defer C.free(unsafe.Pointer(v))
	return List{ptr: C.CSLSetNameValue(l.ptr, n, v)}
}

// AddString appends value verbatim as a new entry.
func AddString(l List, value string) List {
	v := C.CString(value)
	defer C.free(unsafe.Pointer(v))
	return List{ptr: C.CSLAddString(l.ptr, v)}
}

// FetchNameValue looks up key with GDAL's case-insensitive match. The bool
// reports presence, so a present-but-empty value is ("", true).
func FetchNameValue(l List, key string) (string, bool) {
	k := C.CString(key)
	defer C.free(unsafe.Pointer(k))
	c := C.CSLFetchNameValue(l.ptr, k)
	if c == nil {
		return "", false
	}
	return C.GoString(c), true
}

// Count walks the array and returns the number of entries.
func Count(l List) int {
	return int(C.CSLCount(l.ptr))
}

// Duplicate deep-copies the list. The copy has an independent lifetime.
func Duplicate(l List) List {
	return List{ptr: C.CSLDuplicate(l.ptr)}
}

// Destroy releases the backing allocation. Safe on the zero List.
func Destroy(l List) {
	C.CSLDestroy(l.ptr)
}

// Field reads the idx-th entry directly from the backing array, avoiding
// the walk a CSLGetField call repeats per entry. The bool is false for the
// zero List, a negative index, or when the slot holds the NULL terminator.
// Reading past the terminator is undefined; callers bound idx by Count.
func Field(l List, idx int) (string, bool) {
	if l.ptr == nil || idx < 0 {
		return "", false
	}
	entry := unsafe.Slice(l.ptr, idx+1)[idx]
	if entry == nil {
		return "", false
	}
	return C.GoString(entry), true
}
