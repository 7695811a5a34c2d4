//go:build cgo

package cpl

import (
	"github.com/spatialgo/cpl/internal/api"
)

// SetConfigOption sets a process-wide GDAL runtime configuration option
// such as CPL_DEBUG or GDAL_CACHEMAX, overriding any environment variable
// of the same name. The key must be non-empty and NUL-free; the value must
// be NUL-free.
func SetConfigOption(key, value string) error {
	if err := checkConfigKey(key); err != nil {
		return err
	}
	if err := checkNulFree("value", value); err != nil {
		return err
	}
	api.SetConfigOption(key, value)
	return nil
}

// ClearConfigOption removes the process-wide value for key, falling back
// to the environment.
func ClearConfigOption(key string) error {
	if err := checkConfigKey(key); err != nil {
		return err
	}
	api.ClearConfigOption(key)
	return nil
}

// ConfigOption returns the value of key as seen by the calling OS thread:
// its thread-local value if set, else the process-wide value, else the
// environment, else def. A key or default that cannot be a C string
// returns def unchanged.
func ConfigOption(key, def string) string {
	if checkConfigKey(key) != nil || checkNulFree("default", def) != nil {
		return def
	}
	return api.ConfigOption(key, def)
}

// SetThreadLocalConfigOption sets key for the calling OS thread only,
// shadowing the process-wide value there. Pin the goroutine with
// runtime.LockOSThread for this to be meaningful; the Go scheduler
// otherwise migrates goroutines across threads.
func SetThreadLocalConfigOption(key, value string) error {
	if err := checkConfigKey(key); err != nil {
		return err
	}
	if err := checkNulFree("value", value); err != nil {
		return err
	}
	api.SetThreadLocalConfigOption(key, value)
	return nil
}

// ClearThreadLocalConfigOption removes the calling OS thread's value for
// key, unshadowing the process-wide one.
func ClearThreadLocalConfigOption(key string) error {
	if err := checkConfigKey(key); err != nil {
		return err
	}
	api.ClearThreadLocalConfigOption(key)
	return nil
}
