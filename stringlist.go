//go:build cgo

package cpl

import (
	"runtime"
	"strings"
	"unsafe"

	"github.com/spatialgo/cpl/internal/api"
)

// StringList owns a GDAL string list (char **papszStrList): a
// NULL-terminated array of NUL-terminated strings allocated by GDAL.
// Entries are conventionally "NAME=VALUE", but AddString can append raw
// tokens without a separator.
//
// Every mutation may reallocate the backing array. The wrapper always
// adopts the handle GDAL returns, so exactly one StringList owns a given
// allocation at any time; Clone is the only way to fan out, and it deep
// copies. A StringList is not safe for concurrent use.
//
// Use NewStringList or NewStringListFromPairs; the zero value works but
// lacks the finalizer backstop that releases the C allocation when an owner
// forgets to Close.
type StringList struct {
	list api.List
}

// NewStringList returns an empty list. GDAL allocates nothing until the
// first mutation. Call Close when done; a finalizer releases the
// allocation if the owner never does.
func NewStringList() *StringList {
	l := &StringList{}
	runtime.SetFinalizer(l, (*StringList).finalize)
	return l
}

// NewStringListFromPairs builds a list by applying SetNameValue to each
// pair in order. Construction is all-or-nothing: on the first invalid pair
// the partial list is destroyed and only the error is returned.
func NewStringListFromPairs(pairs []Pair) (*StringList, error) {
	l := NewStringList()
	for _, p := range pairs {
		if err := l.SetNameValue(p.Name, p.Value); err != nil {
			l.Close()
			return nil, err
		}
	}
	return l, nil
}

// SetNameValue assigns value to name. An existing entry for name (matched
// case-insensitively) is replaced, keeping its position; otherwise a
// NAME=VALUE entry is appended. The entry stores the casing given here.
//
// name must be ASCII alphanumerics and underscores only; value must
// contain neither CR nor LF (the rendering's record separators) nor NUL.
// Violations return an InvalidArgumentError before any GDAL call, leaving
// the list unchanged.
func (l *StringList) SetNameValue(name, value string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := checkValue(value); err != nil {
		return err
	}
	l.list = api.SetNameValue(l.list, name, value)
	return nil
}

// AddString appends value verbatim as a new entry: no name matching, no
// uniqueness. value must not contain a NUL byte.
func (l *StringList) AddString(value string) error {
	if err := checkNulFree("string", value); err != nil {
		return err
	}
	l.list = api.AddString(l.list, value)
	return nil
}

// FetchNameValue looks up name with GDAL's case-insensitive match. The
// bool reports presence, so an entry "NAME=" yields ("", true). A missing
// name is a normal outcome, not an error. A name with a NUL byte can never
// be stored and is reported absent without calling into GDAL.
func (l *StringList) FetchNameValue(name string) (string, bool) {
	if strings.IndexByte(name, 0) >= 0 {
		return "", false
	}
	defer runtime.KeepAlive(l)
	return api.FetchNameValue(l.list, name)
}

// Len returns the number of entries. GDAL walks the whole array on every
// call; cache the result in hot loops.
func (l *StringList) Len() int {
	defer runtime.KeepAlive(l)
	return api.Count(l.list)
}

// IsEmpty reports whether the list has no entries.
func (l *StringList) IsEmpty() bool {
	return l.Len() == 0
}

// Clone returns a deep copy with an independent lifetime. Mutating or
// closing one list never affects the other.
func (l *StringList) Clone() *StringList {
	defer runtime.KeepAlive(l)
	dup := &StringList{list: api.Duplicate(l.list)}
	runtime.SetFinalizer(dup, (*StringList).finalize)
	return dup
}

// Iter returns an iterator over the entries. The entry count is
// snapshotted here so iteration does not recount per step. Mutating or
// closing the list mid-iteration yields stale or undefined results; it is
// the caller's job to avoid that.
func (l *StringList) Iter() *StringListIterator {
	return &StringListIterator{list: l, count: l.Len()}
}

// Ptr exposes the raw handle for GDAL entry points that take a
// CSLConstList. It is nil for an empty list. The callee must treat the
// array as read-only and must not destroy it; the pointer is invalidated
// by the next mutation or Close. Callers passing it into their own cgo
// calls must keep the StringList reachable for the duration, typically
// with runtime.KeepAlive.
func (l *StringList) Ptr() unsafe.Pointer {
	return l.list.Ptr()
}

// Close destroys the backing allocation and clears the finalizer. It is
// safe to call on an empty list and safe to call twice. A closed list is
// an empty list again: mutators reallocate from scratch, though without
// the finalizer backstop. Always returns nil.
func (l *StringList) Close() error {
	api.Destroy(l.list)
	l.list = api.List{}
	runtime.SetFinalizer(l, nil)
	return nil
}

func (l *StringList) finalize() {
	api.Destroy(l.list)
	l.list = api.List{}
}

// String renders the raw entries one per line, in list order. Entries
// added with AddString appear verbatim, so the rendering round-trips
// whatever GDAL stores.
func (l *StringList) String() string {
	defer runtime.KeepAlive(l)
	var b strings.Builder
	n := api.Count(l.list)
	for i := 0; i < n; i++ {
		entry, ok := api.Field(l.list, i)
		if !ok {
			break
		}
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	return b.String()
}
