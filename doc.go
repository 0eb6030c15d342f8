// Package main provides the vfsh command-line interface.
//
// vfsh is a toy shell over a read-only, in-memory virtual filesystem seeded
// from built-in data or a zip archive. It runs a full-screen terminal UI when
// attached to a terminal and reads commands line by line otherwise.
//
// The binary also carries archive tooling:
//   - mount: Expose an archive as a read-only FUSE filesystem
//   - seed: Write the built-in filesystem to a zip archive
//   - pack: Archive a host directory tree
//   - validate: Check that archives load
//   - count: Show archive statistics
package main
