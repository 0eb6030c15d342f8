// Package archive loads zip archives into virtual filesystem mappings and
// writes mappings and host directories back out as zip archives.
//
// Every archive entry becomes a canonical vfs path. Names ending in "/" are
// directory markers; other entries hold UTF-8 text when the bytes are valid
// UTF-8 and tagged base64 otherwise (see vfs.BinaryTag). Text that itself
// begins with the tag is stored tagged so that it reads back unchanged.
package archive
