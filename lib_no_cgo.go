//go:build !cgo

package cpl

import (
	"errors"
	"unsafe"

	"go.uber.org/zap"
)

// This file provides stub implementations for the types and functions that
// depend on libgdal through cgo, allowing the package to compile even when
// CGo is disabled. Validation still behaves as in the real build; anything
// that would have to call into GDAL fails with a sentinel error or acts on
// a permanently empty list.

var errCgoDisabled = errors.New("cpl compiled without CGo support, libgdal is not linked")

// StringList is a stub implementation for non-CGo builds: a permanently
// empty list whose mutators fail.
type StringList struct{}

// NewStringList is a stub implementation for non-CGo builds.
func NewStringList() *StringList {
	return &StringList{}
}

// NewStringListFromPairs is a stub implementation for non-CGo builds. It
// still rejects invalid pairs so callers see consistent validation.
func NewStringListFromPairs(pairs []Pair) (*StringList, error) {
	for _, p := range pairs {
		if err := checkName(p.Name); err != nil {
			return nil, err
		}
		if err := checkValue(p.Value); err != nil {
			return nil, err
		}
	}
	if len(pairs) > 0 {
		return nil, errCgoDisabled
	}
	return &StringList{}, nil
}

func (l *StringList) SetNameValue(name, value string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := checkValue(value); err != nil {
		return err
	}
	return errCgoDisabled
}

func (l *StringList) AddString(value string) error {
	if err := checkNulFree("string", value); err != nil {
		return err
	}
	return errCgoDisabled
}

func (l *StringList) FetchNameValue(name string) (string, bool) {
	return "", false
}

func (l *StringList) Len() int {
	return 0
}

func (l *StringList) IsEmpty() bool {
	return true
}

func (l *StringList) Clone() *StringList {
	return &StringList{}
}

func (l *StringList) Iter() *StringListIterator {
	return &StringListIterator{}
}

func (l *StringList) Ptr() unsafe.Pointer {
	return nil
}

func (l *StringList) Close() error {
	return nil
}

func (l *StringList) String() string {
	return ""
}

// StringListIterator is a stub implementation for non-CGo builds: always
// exhausted.
type StringListIterator struct{}

func (it *StringListIterator) Next() (Pair, bool) {
	return Pair{}, false
}

// SetConfigOption is a stub implementation for non-CGo builds.
func SetConfigOption(key, value string) error {
	if err := checkConfigKey(key); err != nil {
		return err
	}
	if err := checkNulFree("value", value); err != nil {
		return err
	}
	return errCgoDisabled
}

// ClearConfigOption is a stub implementation for non-CGo builds.
func ClearConfigOption(key string) error {
	if err := checkConfigKey(key); err != nil {
		return err
	}
	return errCgoDisabled
}

// ConfigOption is a stub implementation for non-CGo builds; it always
// reports the fallback.
func ConfigOption(key, def string) string {
	return def
}

// SetThreadLocalConfigOption is a stub implementation for non-CGo builds.
func SetThreadLocalConfigOption(key, value string) error {
	return SetConfigOption(key, value)
}

// ClearThreadLocalConfigOption is a stub implementation for non-CGo builds.
func ClearThreadLocalConfigOption(key string) error {
	return ClearConfigOption(key)
}

// SetErrorHandler is a stub implementation for non-CGo builds.
func SetErrorHandler(h ErrorHandler) {}

// ClearErrorHandler is a stub implementation for non-CGo builds.
func ClearErrorHandler() {}

// LogErrorsTo is a stub implementation for non-CGo builds.
func LogErrorsTo(log *zap.Logger) {}

// LastError is a stub implementation for non-CGo builds; the state is
// always clean.
func LastError() error {
	return nil
}

// ErrorReset is a stub implementation for non-CGo builds.
func ErrorReset() {}

// Debug is a stub implementation for non-CGo builds.
func Debug(category, msg string) {}
