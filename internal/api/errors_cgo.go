package api

/*
#include <cpl_error.h>

// Exported from errors.go; cgo generates the prototype in _cgo_export.h,
// redeclared here so this file compiles standalone.
void goErrorHandler(int eErrClass, int errNo, char *msg);

// We need these gateway functions to allow calling back to a go function
// from the c code. The formulation here is based on some superb answers in
// https://stackoverflow.com/q/6125683/2013738
static void errorHandlerGateway(CPLErr eErrClass, CPLErrorNum nError, const char *pszMsg) {
	goErrorHandler((int)eErrClass, (int)nError, (char *)pszMsg);
}

void goCplErrorBridgeInstall(void) {
	CPLSetErrorHandler(errorHandlerGateway);
}

void goCplErrorBridgeRemove(void) {
	CPLSetErrorHandler(CPLDefaultErrorHandler);
}

// CPLError and CPLDebug are variadic, which cgo cannot call directly.
void goCplEmitError(int eErrClass, int errNo, const char *msg) {
	CPLError((CPLErr)eErrClass, (CPLErrorNum)errNo, "%s", msg);
}

void goCplEmitDebug(const char *category, const char *msg) {
	CPLDebug(category, "%s", msg);
}

void goCplLastError(int *eErrClass, int *errNo, const char **msg) {
	*eErrClass = (int)CPLGetLastErrorType();
	*errNo = (int)CPLGetLastErrorNo();
	*msg = CPLGetLastErrorMsg();
}
*/
import "C"

// This file must be separate from errors.go: a file that contains the
// //export directives cannot also define functions in its preamble.
