package cpl

// Version returns the release name of the GDAL library the bindings are
// linked against, such as "3.7.1".
func Version() (string, error) {
	return versionInfoImpl("RELEASE_NAME")
}

// VersionInfo answers a GDALVersionInfo request: VERSION_NUM,
// RELEASE_DATE, RELEASE_NAME, LICENSE, BUILD_INFO or "--version".
func VersionInfo(request string) (string, error) {
	return versionInfoImpl(request)
}
