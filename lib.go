// Package cpl wraps the string-list, configuration and error facilities of
// GDAL's Common Portability Library.
//
// The central type is StringList, an owning wrapper around GDAL's
// char **papszStrList: the NULL-terminated array of "NAME=VALUE" strings
// that GDAL APIs take as option lists. The wrapper keeps the foreign
// allocation and the Go view in sync, validates inputs before they reach C,
// and releases the allocation on Close (with a finalizer as backstop).
//
// The bindings link against libgdal through cgo (pkg-config: gdal). When
// built with CGO_ENABLED=0 the package still compiles: list construction
// and configuration fail with a sentinel error, see lib_no_cgo.go.
package cpl

import (
	"github.com/spatialgo/cpl/types"
)

// Pair is one name/value entry of a string list.
type Pair = types.Pair

// ParsePair splits a raw list entry on its first '='.
func ParsePair(entry string) Pair {
	return types.ParsePair(entry)
}

// ErrClass classifies CPL diagnostics, mirroring CPLErr.
type ErrClass = types.ErrClass

// CPLErr classes.
const (
	ErrNone    = types.ErrNone
	ErrDebug   = types.ErrDebug
	ErrWarning = types.ErrWarning
	ErrFailure = types.ErrFailure
	ErrFatal   = types.ErrFatal
)

// ErrorHandler receives CPL diagnostics forwarded from GDAL. Handlers may
// run on any OS thread and must not call back into this package's mutating
// functions.
type ErrorHandler = types.ErrorHandler

// InvalidArgumentError reports input rejected before it reached GDAL.
type InvalidArgumentError = types.InvalidArgumentError

// CplError is a diagnostic captured from GDAL's error facility.
type CplError = types.CplError
