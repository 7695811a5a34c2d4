//go:build cgo

package cpl

import (
	"runtime"

	"github.com/spatialgo/cpl/internal/api"
	"github.com/spatialgo/cpl/types"
)

// StringListIterator walks a StringList without owning it. The entry count
// is snapshotted when the iterator is created, so each step is a direct
// array read instead of another O(n) count.
type StringListIterator struct {
	list  *StringList
	idx   int
	count int
}

// Next returns the next entry split into a Pair on its first '='; entries
// without '=' come back as key-only pairs with the whole entry in Name.
// Exhaustion is sticky: once Next has returned false it stays false.
func (it *StringListIterator) Next() (Pair, bool) {
	if it.idx >= it.count {
		return Pair{}, false
	}
	defer runtime.KeepAlive(it.list)
	entry, ok := api.Field(it.list.list, it.idx)
	if !ok {
		// A NULL slot inside the snapshot window means the list shrank
		// under us. Exhaust rather than read past the terminator.
		it.idx = it.count
		return Pair{}, false
	}
	it.idx++
	return types.ParsePair(entry), true
}
