//go:build cgo

package cpl

import (
	"go.uber.org/zap"

	"github.com/spatialgo/cpl/internal/api"
	"github.com/spatialgo/cpl/internal/logging"
	"github.com/spatialgo/cpl/types"
)

// SetErrorHandler routes CPL diagnostics to h instead of GDAL's default
// stderr handler, until ClearErrorHandler or the next SetErrorHandler
// call. Passing nil is equivalent to ClearErrorHandler.
//
// GDAL aborts the process after the handler returns for a Fatal
// diagnostic; a handler cannot suppress that.
func SetErrorHandler(h ErrorHandler) {
	if h == nil {
		api.SetHandler(nil)
		return
	}
	api.SetHandler(func(class, code int, msg string) {
		h(ErrClass(class), code, msg)
	})
}

// ClearErrorHandler restores GDAL's default error handler.
func ClearErrorHandler() {
	api.SetHandler(nil)
}

// LogErrorsTo installs ZapErrorHandler(log) as the error handler. A nil
// log uses this module's default logger.
func LogErrorsTo(log *zap.Logger) {
	if log == nil {
		log = logging.New("cpl")
	}
	SetErrorHandler(ZapErrorHandler(log))
}

// LastError returns the calling OS thread's last CPL diagnostic as a
// *CplError, or nil when the state is clean. GDAL keeps this state per OS
// thread: pin the goroutine with runtime.LockOSThread when pairing an
// operation with LastError, or the scheduler may run the two on different
// threads.
func LastError() error {
	class, code, msg := api.LastError()
	if ErrClass(class) == ErrNone {
		return nil
	}
	return &types.CplError{Class: ErrClass(class), Code: code, Msg: msg}
}

// ErrorReset clears the calling OS thread's last-error state.
func ErrorReset() {
	api.ErrorReset()
}

// Debug emits a debugging message under category through CPLDebug. GDAL
// drops it unless the CPL_DEBUG configuration option is ON or names the
// category; otherwise it reaches the installed error handler with class
// ErrDebug. A NUL byte truncates the C-side message.
func Debug(category, msg string) {
	api.EmitDebug(category, msg)
}
