// Package version holds the build version, set with -ldflags at release.
package version

// Version is the current version of the snake binary.
var Version = "0.1.0-dev"
