// Package version exposes build-time version information.
//
// The variables are set at build time using ldflags:
//
//	go build -ldflags "-X github.com/ncobase/feature/version.Version=v1.2.0 \
//	  -X github.com/ncobase/feature/version.Revision=$(git rev-parse --short HEAD)"
//
// When they are left at their defaults, Get falls back to the VCS settings
// the Go toolchain embeds in the binary.
package version
