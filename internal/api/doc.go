// Package api contains the cgo bindings to GDAL's Common Portability
// Library. It keeps all C types out of the public packages: handles cross
// the package boundary only as opaque structs or unsafe.Pointer.
//
// Everything here assumes inputs are already validated; the cpl package is
// responsible for rejecting names and values libgdal would mangle.
package api
