//go:build cgo

package cpl

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spatialgo/cpl/internal/api"
)

// recorder collects forwarded diagnostics. The mutex is for the race
// detector; GDAL may invoke handlers from any OS thread.
type recorder struct {
	mu      sync.Mutex
	entries []CplError
}

func (r *recorder) handle(class ErrClass, code int, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, CplError{Class: class, Code: code, Msg: msg})
}

func (r *recorder) all() []CplError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]CplError(nil), r.entries...)
}

func TestErrorHandlerReceivesDiagnostics(t *testing.T) {
	rec := &recorder{}
	SetErrorHandler(rec.handle)
	defer ClearErrorHandler()

	api.EmitError(int(ErrWarning), 7, "attention")
	api.EmitError(int(ErrFailure), 42, "boom")

	entries := rec.all()
	require.Len(t, entries, 2)
	assert.Equal(t, CplError{Class: ErrWarning, Code: 7, Msg: "attention"}, entries[0])
	assert.Equal(t, CplError{Class: ErrFailure, Code: 42, Msg: "boom"}, entries[1])
}

func TestSetErrorHandlerNilClears(t *testing.T) {
	rec := &recorder{}
	SetErrorHandler(rec.handle)
	SetErrorHandler(nil)
	defer ClearErrorHandler()

	// silence the default handler while emitting
	SetErrorHandler(func(ErrClass, int, string) {})
	api.EmitError(int(ErrFailure), 1, "dropped")
	ClearErrorHandler()

	assert.Empty(t, rec.all())
}

func TestLastErrorAndReset(t *testing.T) {
	// last-error state is per OS thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	SetErrorHandler(func(ErrClass, int, string) {})
	defer ClearErrorHandler()

	ErrorReset()
	require.NoError(t, LastError())

	api.EmitError(int(ErrFailure), 42, "boom")
	err := LastError()
	require.Error(t, err)
	var cplErr *CplError
	require.ErrorAs(t, err, &cplErr)
	assert.Equal(t, ErrFailure, cplErr.Class)
	assert.Equal(t, 42, cplErr.Code)
	assert.Equal(t, "boom", cplErr.Msg)

	ErrorReset()
	require.NoError(t, LastError())
}

func TestZapErrorHandler(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetErrorHandler(ZapErrorHandler(zap.New(core)))
	defer ClearErrorHandler()

	api.EmitError(int(ErrWarning), 3, "disk almost full")
	api.EmitError(int(ErrFailure), 4, "disk full")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, "disk almost full", entries[0].Message)
	assert.Equal(t, "Warning", entries[0].ContextMap()["class"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["code"])

	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, "disk full", entries[1].Message)
}

func TestDebugReachesHandler(t *testing.T) {
	require.NoError(t, SetConfigOption("CPL_DEBUG", "ON"))
	defer ClearConfigOption("CPL_DEBUG")

	rec := &recorder{}
	SetErrorHandler(rec.handle)
	defer ClearErrorHandler()

	Debug("CPLGO", "checking plumbing")

	entries := rec.all()
	require.Len(t, entries, 1)
	assert.Equal(t, ErrDebug, entries[0].Class)
	assert.Contains(t, entries[0].Msg, "checking plumbing")
}

func TestDebugDroppedWithoutCplDebug(t *testing.T) {
	// OFF rather than unset so an inherited CPL_DEBUG cannot interfere
	require.NoError(t, SetConfigOption("CPL_DEBUG", "OFF"))
	defer ClearConfigOption("CPL_DEBUG")

	rec := &recorder{}
	SetErrorHandler(rec.handle)
	defer ClearErrorHandler()

	Debug("CPLGO", "nobody listens")
	assert.Empty(t, rec.all())
}
