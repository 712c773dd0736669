// Package version reports build version information for the utilkit binary.
//
// Values are injected at build time with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/utilkit/version.Version=v1.0.0" ./cmd/utilkit
//
// Missing values are filled from the VCS settings embedded by the Go toolchain.
package version
