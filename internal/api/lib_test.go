//go:build cgo

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLifecycle(t *testing.T) {
	var l List
	require.Nil(t, l.Ptr())
	require.Equal(t, 0, Count(l))

	l = SetNameValue(l, "ONE", "1")
	l = SetNameValue(l, "TWO", "2")
	// closure so the deferred call sees the final handle, not a stale one
	defer func() { Destroy(l) }()

	require.NotNil(t, l.Ptr())
	assert.Equal(t, 2, Count(l))

	v, ok := FetchNameValue(l, "ONE")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	// case-insensitive match, replaces in place
	l = SetNameValue(l, "one", "11")
	assert.Equal(t, 2, Count(l))
	v, ok = FetchNameValue(l, "ONE")
	require.True(t, ok)
	assert.Equal(t, "11", v)

	_, ok = FetchNameValue(l, "MISSING")
	assert.False(t, ok)
}

func TestAddStringKeepsRawEntries(t *testing.T) {
	var l List
	l = AddString(l, "-of")
	l = AddString(l, "COG")
	defer Destroy(l)

	require.Equal(t, 2, Count(l))
	entry, ok := Field(l, 0)
	require.True(t, ok)
	assert.Equal(t, "-of", entry)
	entry, ok = Field(l, 1)
	require.True(t, ok)
	assert.Equal(t, "COG", entry)
}

func TestField(t *testing.T) {
	var zero List
	_, ok := Field(zero, 0)
	assert.False(t, ok)

	var l List
	l = SetNameValue(l, "ONE", "1")
	defer Destroy(l)

	entry, ok := Field(l, 0)
	require.True(t, ok)
	assert.Equal(t, "ONE=1", entry)

	// slot 1 holds the NULL terminator
	_, ok = Field(l, 1)
	assert.False(t, ok)
	_, ok = Field(l, -1)
	assert.False(t, ok)
}

func TestDuplicateIsIndependent(t *testing.T) {
	var orig List
	orig = SetNameValue(orig, "KEY", "original")
	defer Destroy(orig)

	dup := Duplicate(orig)
	defer func() { Destroy(dup) }()
	dup = SetNameValue(dup, "KEY", "changed")

	v, ok := FetchNameValue(orig, "KEY")
	require.True(t, ok)
	assert.Equal(t, "original", v)
	v, ok = FetchNameValue(dup, "KEY")
	require.True(t, ok)
	assert.Equal(t, "changed", v)
}

func TestDuplicateOfEmptyIsEmpty(t *testing.T) {
	dup := Duplicate(List{})
	assert.Nil(t, dup.Ptr())
	assert.Equal(t, 0, Count(dup))
	Destroy(dup)
}

func TestDestroyZeroList(t *testing.T) {
	Destroy(List{})
}
