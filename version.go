package musicpak

import "github.com/rgeorgiev/musicpak/internal/codec"

// Version is the library version string.
const Version = "1.0.1"

// FormatVersion is the wire format version this library reads and writes.
// Buffers carrying any other version are rejected on decode.
const FormatVersion = codec.Version
