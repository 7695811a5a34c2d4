package types

import "strings"

// Pair is one name/value entry of a CPL string list.
//
// GDAL stores entries as "NAME=VALUE" strings. Entries appended verbatim
// (raw tokens such as "-of") have no separator and parse as key-only pairs.
type Pair struct {
	Name  string
	Value string
}

// ParsePair splits a raw list entry on the first '=' character, so values
// may themselves contain '='. An entry without '=' yields a key-only Pair:
// Name holds the whole entry and Value is empty. Note that "KEY=" parses to
// the same Pair as the raw token "KEY"; callers that must distinguish the two
// need the raw entry.
func ParsePair(entry string) Pair {
	name, value, found := strings.Cut(entry, "=")
	if !found {
		return Pair{Name: entry}
	}
	return Pair{Name: name, Value: value}
}

// String renders the pair in GDAL's NAME=VALUE form.
func (p Pair) String() string {
	return p.Name + "=" + p.Value
}
