package api

/*
#include <stdlib.h>
#include <cpl_error.h>

void goCplErrorBridgeInstall(void);
void goCplErrorBridgeRemove(void);
void goCplEmitError(int eErrClass, int errNo, const char *msg);
void goCplEmitDebug(const char *category, const char *msg);
void goCplLastError(int *eErrClass, int *errNo, const char **msg);
*/
import "C"

import (
	"sync"
	"unsafe"
)

// Handler receives diagnostics forwarded from GDAL's error facility. It may
// be invoked from any OS thread, whichever one executes the failing call.
type Handler func(class int, code int, msg string)

var (
	handlerMu sync.RWMutex
	handler   Handler
)

// SetHandler routes CPL diagnostics to fn until the next SetHandler call.
// A nil fn restores GDAL's default handler, which prints to stderr.
func SetHandler(fn Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	handler = fn
	if fn == nil {
		C.goCplErrorBridgeRemove()
		return
	}
	C.goCplErrorBridgeInstall()
}

//export goErrorHandler
func goErrorHandler(class C.int, code C.int, msg *C.char) {
	handlerMu.RLock()
	fn := handler
	handlerMu.RUnlock()
	if fn == nil {
		return
	}
	fn(int(class), int(code), C.GoString(msg))
}

// EmitError reports an error through CPLError, exactly as GDAL-internal
// code would: the installed handler runs and the calling OS thread's
// last-error state is updated.
func EmitError(class int, code int, msg string) {
	m := C.CString(msg)
	defer C.free(unsafe.Pointer(m))
	C.goCplEmitError(C.int(class), C.int(code), m)
}

// EmitDebug reports a debugging message through CPLDebug. GDAL drops it
// unless the CPL_DEBUG configuration option enables the category.
func EmitDebug(category, msg string) {
	c := C.CString(category)
	defer C.free(unsafe.Pointer(c))
	m := C.CString(msg)
	defer C.free(unsafe.Pointer(m))
	C.goCplEmitDebug(c, m)
}

// LastError returns the calling OS thread's last-error state. The three
// values are read in a single C call so they are mutually consistent.
func LastError() (class int, code int, msg string) {
	var cls, num C.int
	var m *C.char
	C.goCplLastError(&cls, &num, &m)
	return int(cls), int(num), C.GoString(m)
}

// ErrorReset clears the calling OS thread's last-error state.
func ErrorReset() {
	C.CPLErrorReset()
}
