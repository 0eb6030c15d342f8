package vfs

import (
	"encoding/base64"
	"strings"
)

// BinaryTag prefixes the base64 payload of entries whose bytes are not valid
// UTF-8 text.
const BinaryTag = "base64:"

// Entry is the value stored for a canonical path. Dir entries are directory
// markers and carry no data.
type Entry struct {
	Dir  bool
	Data string
}

// DirEntry returns a directory marker.
func DirEntry() Entry {
	return Entry{Dir: true}
}

// TextEntry returns a file entry holding text. Text starting with BinaryTag
// must be stored with BinaryEntry instead.
func TextEntry(text string) Entry {
	return Entry{Data: text}
}

// BinaryEntry returns a file entry holding raw bytes in tagged form.
func BinaryEntry(data []byte) Entry {
	return Entry{Data: EncodeBinary(data)}
}

// IsBinary reports whether the entry holds tagged binary content.
func (e Entry) IsBinary() bool {
	return !e.Dir && strings.HasPrefix(e.Data, BinaryTag)
}

// Bytes returns the raw file content, decoding tagged binary data. A tag
// followed by malformed base64 is returned as the literal text.
func (e Entry) Bytes() []byte {
	if e.IsBinary() {
		if raw, err := base64.StdEncoding.DecodeString(e.Data[len(BinaryTag):]); err == nil {
			return raw
		}
	}
	return []byte(e.Data)
}

// Text returns the content for display. Binary data is mapped one byte per
// rune so that every byte value survives as exactly one character.
func (e Entry) Text() string {
	if !e.IsBinary() {
		return e.Data
	}
	raw := e.Bytes()
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}

// EncodeBinary tags and base64 encodes data.
func EncodeBinary(data []byte) string {
	return BinaryTag + base64.StdEncoding.EncodeToString(data)
}
