package codec

import (
	"fmt"

	"github.com/rgeorgiev/musicpak/internal/paktype"
)

// Encode serializes the present sections into the wire format.
//
// Sections are written in canonical order (metadata, lyrics, audio,
// cover); absent sections contribute no chunk. Encoding is
// deterministic. Each chunk body length is written as a uint32, so
// callers must reject sections whose body size exceeds MaxChunkBody
// (see the BodySize helpers) before encoding; a larger body would wrap
// the length field.
func Encode(s *paktype.Sections) []byte {
	buf := make([]byte, 0, encodedSize(s))

	buf = append(buf, Magic...)
	buf = appendUint32(buf, Version)
	buf = appendUint32(buf, uint32(s.Count()))

	if m := s.Metadata; m != nil {
		buf = append(buf, TypeMetadata)
		buf = appendUint32(buf, uint32(metadataSize(m)))
		buf = appendMetadata(buf, m)
	}
	if l := s.Lyrics; l != nil {
		buf = append(buf, TypeLyrics)
		buf = appendUint32(buf, uint32(4+len(l.Data)))
		buf = appendUint32(buf, uint32(l.Format))
		buf = append(buf, l.Data...)
	}
	if a := s.Audio; a != nil {
		buf = append(buf, TypeAudio)
		buf = appendUint32(buf, uint32(stringSize(a.SourceFilename)+len(a.Data)))
		buf = appendString(buf, a.SourceFilename)
		buf = append(buf, a.Data...)
	}
	if c := s.Cover; c != nil {
		buf = append(buf, TypeCover)
		buf = appendUint32(buf, uint32(12+len(c.Data)))
		buf = appendUint32(buf, uint32(c.Format))
		buf = appendUint32(buf, c.Width)
		buf = appendUint32(buf, c.Height)
		buf = append(buf, c.Data...)
	}

	return buf
}

// encodedSize computes the exact output size so Encode allocates once.
func encodedSize(s *paktype.Sections) int {
	size := HeaderSize
	if s.Metadata != nil {
		size += chunkHeaderSize + metadataSize(s.Metadata)
	}
	if s.Lyrics != nil {
		size += chunkHeaderSize + 4 + len(s.Lyrics.Data)
	}
	if s.Audio != nil {
		size += chunkHeaderSize + stringSize(s.Audio.SourceFilename) + len(s.Audio.Data)
	}
	if s.Cover != nil {
		size += chunkHeaderSize + 12 + len(s.Cover.Data)
	}
	return size
}

// MetadataBodySize returns the encoded chunk body size of m.
// Computed in int64 so oversized sections can be detected before the
// uint32 length field would wrap.
func MetadataBodySize(m *paktype.Metadata) int64 {
	size := int64(4 + 4 + 4 + 2)
	for _, s := range []string{m.Title, m.Artist, m.Album, m.Genre, m.Year, m.Comment} {
		size += 4 + int64(len(s))
	}
	return size
}

// LyricsBodySize returns the encoded chunk body size of l.
func LyricsBodySize(l *paktype.Lyrics) int64 {
	return 4 + int64(len(l.Data))
}

// AudioBodySize returns the encoded chunk body size of a.
func AudioBodySize(a *paktype.Audio) int64 {
	return 4 + int64(len(a.SourceFilename)) + int64(len(a.Data))
}

// CoverBodySize returns the encoded chunk body size of c.
func CoverBodySize(c *paktype.Cover) int64 {
	return 12 + int64(len(c.Data))
}

func metadataSize(m *paktype.Metadata) int {
	return stringSize(m.Title) + stringSize(m.Artist) + stringSize(m.Album) +
		stringSize(m.Genre) + stringSize(m.Year) + stringSize(m.Comment) +
		4 + 4 + 4 + 2
}

func appendMetadata(buf []byte, m *paktype.Metadata) []byte {
	buf = appendString(buf, m.Title)
	buf = appendString(buf, m.Artist)
	buf = appendString(buf, m.Album)
	buf = appendString(buf, m.Genre)
	buf = appendString(buf, m.Year)
	buf = appendString(buf, m.Comment)
	buf = appendUint32(buf, m.DurationMS)
	buf = appendUint32(buf, m.Bitrate)
	buf = appendUint32(buf, m.SampleRate)
	return appendUint16(buf, m.Channels)
}

// Decode parses an encoded package.
//
// Decode fails with ErrInvalidFormat when the buffer is shorter than the
// header, the magic does not match, the version is unsupported, or a
// chunk body is internally malformed. A chunk that would overrun the
// buffer instead stops decoding early: the sections decoded so far are
// returned with truncated set to true. Unknown chunk types are skipped.
//
// The returned sections are fully independent of data; callers may
// release the buffer as soon as Decode returns.
func Decode(data []byte) (s *paktype.Sections, truncated bool, err error) {
	sc, err := NewScanner(data)
	if err != nil {
		return nil, false, err
	}

	s = &paktype.Sections{}
	for sc.Next() {
		switch sc.Type() {
		case TypeMetadata:
			m, err := decodeMetadata(sc.Body())
			if err != nil {
				return nil, false, err
			}
			s.Metadata = m
		case TypeLyrics:
			l, err := decodeLyrics(sc.Body())
			if err != nil {
				return nil, false, err
			}
			s.Lyrics = l
		case TypeAudio:
			a, err := decodeAudio(sc.Body())
			if err != nil {
				return nil, false, err
			}
			s.Audio = a
		case TypeCover:
			c, err := decodeCover(sc.Body())
			if err != nil {
				return nil, false, err
			}
			s.Cover = c
		default:
			// Unknown chunk type: skip for forward compatibility.
		}
	}

	return s, sc.Truncated(), nil
}

// decodeMetadata reads the metadata chunk body. String fields vary in
// length, so every fixed-width field position depends on the running
// offset; each read is bounds-checked against the body.
func decodeMetadata(body []byte) (*paktype.Metadata, error) {
	m := &paktype.Metadata{}
	off := 0
	var ok bool

	for _, field := range []*string{&m.Title, &m.Artist, &m.Album, &m.Genre, &m.Year, &m.Comment} {
		*field, off, ok = readString(body, off)
		if !ok {
			return nil, fmt.Errorf("%w: metadata chunk truncated", ErrInvalidFormat)
		}
	}

	if m.DurationMS, off, ok = readUint32(body, off); !ok {
		return nil, fmt.Errorf("%w: metadata chunk truncated", ErrInvalidFormat)
	}
	if m.Bitrate, off, ok = readUint32(body, off); !ok {
		return nil, fmt.Errorf("%w: metadata chunk truncated", ErrInvalidFormat)
	}
	if m.SampleRate, off, ok = readUint32(body, off); !ok {
		return nil, fmt.Errorf("%w: metadata chunk truncated", ErrInvalidFormat)
	}
	if m.Channels, _, ok = readUint16(body, off); !ok {
		return nil, fmt.Errorf("%w: metadata chunk truncated", ErrInvalidFormat)
	}

	return m, nil
}

func decodeLyrics(body []byte) (*paktype.Lyrics, error) {
	format, off, ok := readUint32(body, 0)
	if !ok {
		return nil, fmt.Errorf("%w: lyrics chunk truncated", ErrInvalidFormat)
	}
	return &paktype.Lyrics{
		Format: paktype.LyricsFormat(format),
		Data:   cloneTail(body, off),
	}, nil
}

func decodeAudio(body []byte) (*paktype.Audio, error) {
	filename, off, ok := readString(body, 0)
	if !ok {
		return nil, fmt.Errorf("%w: audio chunk truncated", ErrInvalidFormat)
	}
	return &paktype.Audio{
		SourceFilename: filename,
		Data:           cloneTail(body, off),
	}, nil
}

func decodeCover(body []byte) (*paktype.Cover, error) {
	c := &paktype.Cover{}
	format, off, ok := readUint32(body, 0)
	if !ok {
		return nil, fmt.Errorf("%w: cover chunk truncated", ErrInvalidFormat)
	}
	c.Format = paktype.CoverFormat(format)
	if c.Width, off, ok = readUint32(body, off); !ok {
		return nil, fmt.Errorf("%w: cover chunk truncated", ErrInvalidFormat)
	}
	if c.Height, off, ok = readUint32(body, off); !ok {
		return nil, fmt.Errorf("%w: cover chunk truncated", ErrInvalidFormat)
	}
	c.Data = cloneTail(body, off)
	return c, nil
}

// cloneTail copies the remainder of body starting at off. Decoded
// sections must not alias the source buffer.
func cloneTail(body []byte, off int) []byte {
	tail := make([]byte, len(body)-off)
	copy(tail, body[off:])
	return tail
}
