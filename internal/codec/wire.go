// Package codec implements the musicpak wire format: a 12-byte header
// followed by tagged, length-prefixed chunks, one per present section.
//
// All multi-byte integers are little-endian regardless of host byte
// order. Variable-length fields carry an explicit length prefix; nothing
// on the wire is sentinel-terminated. The package is pure byte
// conversion and performs no I/O.
package codec

import (
	"encoding/binary"
	"errors"
)

// Wire format constants.
const (
	// Magic is the 4-byte file signature.
	Magic = "DMPK"

	// Version is the only format version this codec reads or writes.
	Version = 1

	// HeaderSize is the fixed size of the file header:
	// magic (4) + version (4) + chunk count (4).
	HeaderSize = 12

	// chunkHeaderSize is type (1) + body length (4).
	chunkHeaderSize = 5

	// MaxChunkBody is the largest chunk body the uint32 length field
	// can describe. Sections whose encoded body would exceed it are
	// rejected before encoding.
	MaxChunkBody = 1<<32 - 1
)

// Chunk type tags. Unknown tags are skipped on decode.
const (
	TypeMetadata byte = 0x01
	TypeLyrics   byte = 0x02
	TypeAudio    byte = 0x03
	TypeCover    byte = 0x04
)

// ErrInvalidFormat is returned when a buffer is not a valid package:
// too short, wrong magic, unsupported version, or a malformed chunk body.
var ErrInvalidFormat = errors.New("musicpak: invalid format")

// appendUint16 appends v in little-endian order.
func appendUint16(b []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, v)
}

// appendUint32 appends v in little-endian order.
func appendUint32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

// appendString appends a length-prefixed UTF-8 string.
// The empty string is written as a bare zero length.
func appendString(b []byte, s string) []byte {
	b = appendUint32(b, uint32(len(s)))
	return append(b, s...)
}

// stringSize returns the encoded size of a length-prefixed string.
func stringSize(s string) int {
	return 4 + len(s)
}

// readUint16 reads a little-endian uint16 at off.
// ok is false when fewer than 2 bytes remain.
func readUint16(b []byte, off int) (v uint16, next int, ok bool) {
	if off < 0 || len(b)-off < 2 {
		return 0, off, false
	}
	return binary.LittleEndian.Uint16(b[off:]), off + 2, true
}

// readUint32 reads a little-endian uint32 at off.
// ok is false when fewer than 4 bytes remain.
func readUint32(b []byte, off int) (v uint32, next int, ok bool) {
	if off < 0 || len(b)-off < 4 {
		return 0, off, false
	}
	return binary.LittleEndian.Uint32(b[off:]), off + 4, true
}

// readString reads a length-prefixed string at off. A zero length yields
// the empty string. The returned string copies out of b, so callers may
// release the source buffer afterwards.
func readString(b []byte, off int) (s string, next int, ok bool) {
	n, next, ok := readUint32(b, off)
	if !ok {
		return "", off, false
	}
	if int64(len(b)-next) < int64(n) {
		return "", off, false
	}
	return string(b[next : next+int(n)]), next + int(n), true
}
