//go:build !cgo

package cpl

func versionInfoImpl(request string) (string, error) {
	return "", errCgoDisabled
}
