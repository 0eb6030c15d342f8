// Package version reports build metadata for vfsh.
//
// Version, Commit and Date are injected at build time with
//
//	-ldflags "-X github.com/dendrascience/vfsh/version.Version=v1.0.0 -X github.com/dendrascience/vfsh/version.Commit=abc1234 -X github.com/dendrascience/vfsh/version.Date=2024-01-01T00:00:00Z"
//
// When they are not set, the module version and VCS stamps recorded by the Go
// toolchain are used instead.
package version
