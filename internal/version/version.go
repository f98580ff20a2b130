// Package version carries the cloudsync release version.
package version

// Version is the semantic version of this build.
const Version = "0.4.2"
