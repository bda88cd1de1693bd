// Package version exposes the build version of resourcekit.
//
// Version and GitCommit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/resourcekit/version.Version=1.2.0"
//
// When unset, the commit is read from the module's VCS build settings.
package version
