package cpl

import (
	"fmt"
	"strings"

	"github.com/spatialgo/cpl/types"
)

// Validation happens before anything is handed to libgdal. GDAL itself
// accepts nearly arbitrary bytes and would silently produce entries that
// cannot round-trip (a '=' in a name shifts the value boundary, CR or LF
// breaks the one-entry-per-line rendering, NUL truncates the C string).

func validName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

func checkName(name string) error {
	if !validName(name) {
		return &types.InvalidArgumentError{Msg: fmt.Sprintf("invalid characters in name %q", name)}
	}
	return nil
}

func checkValue(value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return &types.InvalidArgumentError{Msg: fmt.Sprintf("invalid characters in value %q", value)}
	}
	return checkNulFree("value", value)
}

func checkNulFree(what, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return &types.InvalidArgumentError{Msg: what + " contains a NUL byte"}
	}
	return nil
}

func checkConfigKey(key string) error {
	if key == "" {
		return &types.InvalidArgumentError{Msg: "empty configuration key"}
	}
	return checkNulFree("key", key)
}
