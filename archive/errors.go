package archive

import "errors"

// Sentinel errors for package archive.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrArchiveNotFound is returned when the archive path does not exist
	ErrArchiveNotFound = errors.New("archive not found")

	// ErrInvalidArchiveFormat is returned when the source is not a zip container
	ErrInvalidArchiveFormat = errors.New("invalid archive format")

	// ErrExpectedDirectory is returned when packing something that is not a directory
	ErrExpectedDirectory = errors.New("expected directory but got file")
)
