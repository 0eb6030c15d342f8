// Package shell interprets vfsh command lines against a vfs.FS.
//
// A Shell owns the filesystem, an explicit session environment used for
// $NAME substitution, and a closed set of commands dispatched through a
// lookup table. Every command error is caught at the dispatch boundary and
// turned into a single diagnostic line, so no command can end the session
// except exit.
package shell
