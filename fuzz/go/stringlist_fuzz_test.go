//go:build go1.18 && cgo

package gofuzz

import (
	"strings"
	"testing"

	"github.com/spatialgo/cpl"
)

func FuzzSetNameValue(f *testing.F) {
	f.Add("ONE", "1")
	f.Add("NAME_2", "value=with=equals")
	f.Add("lower", "")
	f.Add("bad key", "x")
	f.Add("K", "line\nbreak")
	f.Add("N", "nul\x00byte")

	f.Fuzz(func(t *testing.T, name, value string) {
		if name == "" {
			// the vacuous name is valid but has no fetchable identity
			return
		}
		list := cpl.NewStringList()
		defer list.Close()

		err := list.SetNameValue(name, value)
		if err != nil {
			// rejected input must leave the list untouched
			if list.Len() != 0 {
				t.Fatalf("rejected set left %d entries", list.Len())
			}
			return
		}

		if n := list.Len(); n != 1 {
			t.Fatalf("one set produced %d entries", n)
		}
		got, ok := list.FetchNameValue(name)
		if !ok {
			t.Fatalf("set %q then fetch: absent", name)
		}
		if got != value {
			t.Fatalf("set %q=%q, fetched %q", name, value, got)
		}

		// a second set of the same name replaces, never appends
		if err := list.SetNameValue(name, "replaced"); err != nil {
			t.Fatalf("replacing set failed: %v", err)
		}
		if n := list.Len(); n != 1 {
			t.Fatalf("replace produced %d entries", n)
		}
	})
}

func FuzzAddStringAndIterate(f *testing.F) {
	f.Add("-abc", "A")
	f.Add("", "KEY=VALUE")
	f.Add("nul\x00byte", "fine")

	f.Fuzz(func(t *testing.T, a, b string) {
		list := cpl.NewStringList()
		defer list.Close()

		want := 0
		for _, s := range []string{a, b} {
			err := list.AddString(s)
			if strings.IndexByte(s, 0) >= 0 {
				if err == nil {
					t.Fatalf("AddString(%q) accepted a NUL byte", s)
				}
				continue
			}
			if err != nil {
				t.Fatalf("AddString(%q): %v", s, err)
			}
			want++
		}

		if n := list.Len(); n != want {
			t.Fatalf("added %d strings, Len is %d", want, n)
		}

		it := list.Iter()
		seen := 0
		for {
			if _, ok := it.Next(); !ok {
				break
			}
			seen++
		}
		if seen != want {
			t.Fatalf("iterator yielded %d of %d entries", seen, want)
		}
		if _, ok := it.Next(); ok {
			t.Fatal("iterator revived after exhaustion")
		}
	})
}
