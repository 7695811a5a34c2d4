package api

/*
#include <stdlib.h>
#include <cpl_conv.h>
*/
import "C"

import (
	"unsafe"
)

// SetConfigOption sets a process-wide runtime configuration option,
// overriding any environment variable of the same name.
func SetConfigOption(key, value string) {
	k := C.CString(key)
	defer C.free(unsafe.Pointer(k))
	v := C.CString(value)
	defer C.free(unsafe.Pointer(v))
	C.CPLSetConfigOption(k, v)
}

// ClearConfigOption removes the process-wide value for key, falling back to
// the environment.
func ClearConfigOption(key string) {
	k := C.CString(key)
	defer C.free(unsafe.Pointer(k))
	C.CPLSetConfigOption(k, nil)
}

// ConfigOption returns the value of key as seen by the calling OS thread:
// its thread-local value if set, else the process-wide value, else the
// environment, else def.
func ConfigOption(key, def string) string {
	k := C.CString(key)
	defer C.free(unsafe.Pointer(k))
	d := C.CString(def)
	defer C.free(unsafe.Pointer(d))
	return C.GoString(C.CPLGetConfigOption(k, d))
}

// SetThreadLocalConfigOption sets key for the calling OS thread only.
func SetThreadLocalConfigOption(key, value string) {
	k := C.CString(key)
	defer C.free(unsafe.Pointer(k))
	v := C.CString(value)
	defer C.free(unsafe.Pointer(v))
	C.CPLSetThreadLocalConfigOption(k, v)
}

// ClearThreadLocalConfigOption removes the calling OS thread's value for
// key.
func ClearThreadLocalConfigOption(key string) {
	k := C.CString(key)
	defer C.free(unsafe.Pointer(k))
	C.CPLSetThreadLocalConfigOption(k, nil)
}
