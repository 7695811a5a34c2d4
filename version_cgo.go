//go:build cgo

package cpl

import (
	"github.com/spatialgo/cpl/internal/api"
)

func versionInfoImpl(request string) (string, error) {
	return api.VersionInfo(request), nil
}
