package api

/*
#include <stdlib.h>
#include <gdal.h>
*/
import "C"

import (
	"unsafe"
)

// VersionInfo answers a GDALVersionInfo request such as RELEASE_NAME,
// VERSION_NUM, LICENSE or --version. The returned storage is GDAL's; the
// result is copied before returning.
func VersionInfo(request string) string {
	r := C.CString(request)
	defer C.free(unsafe.Pointer(r))
	return C.GoString(C.GDALVersionInfo(r))
}
