// Package paktype defines the section value types that make up a music
// package: metadata, lyrics, audio, and cover art.
//
// Section values are plain data. Clone methods produce fully independent
// copies so that callers and the owning store never alias each other's
// payload buffers.
package paktype

import "bytes"

// Metadata describes a track: textual tags plus technical properties.
// The zero value is a valid, empty metadata section.
type Metadata struct {
	Title   string
	Artist  string
	Album   string
	Genre   string
	Year    string
	Comment string

	DurationMS uint32
	Bitrate    uint32
	SampleRate uint32
	Channels   uint16
}

// Clone returns an independent copy of the metadata.
func (m *Metadata) Clone() *Metadata {
	cp := *m
	return &cp
}

// Lyrics holds raw lyric text in one of the supported sub-formats.
// The codec stores the payload verbatim and never parses lyric syntax.
type Lyrics struct {
	Format LyricsFormat
	Data   []byte
}

// Clone returns an independent copy of the lyrics, including the payload.
func (l *Lyrics) Clone() *Lyrics {
	return &Lyrics{
		Format: l.Format,
		Data:   bytes.Clone(l.Data),
	}
}

// Audio holds the raw audio payload.
//
// Format is informational only: it is not validated against the payload
// bytes and is not part of the wire encoding. SourceFilename records the
// original file name, if known.
type Audio struct {
	Format         AudioFormat
	SourceFilename string
	Data           []byte
}

// Clone returns an independent copy of the audio section, including the payload.
func (a *Audio) Clone() *Audio {
	return &Audio{
		Format:         a.Format,
		SourceFilename: a.SourceFilename,
		Data:           bytes.Clone(a.Data),
	}
}

// Cover holds raw cover-art image bytes. Width and height are
// caller-supplied and are not derived from the image data.
type Cover struct {
	Format CoverFormat
	Width  uint32
	Height uint32
	Data   []byte
}

// Clone returns an independent copy of the cover section, including the payload.
func (c *Cover) Clone() *Cover {
	return &Cover{
		Format: c.Format,
		Width:  c.Width,
		Height: c.Height,
		Data:   bytes.Clone(c.Data),
	}
}

// Sections is the aggregate of all optional package sections.
// A nil pointer means the section is absent.
type Sections struct {
	Metadata *Metadata
	Lyrics   *Lyrics
	Audio    *Audio
	Cover    *Cover
}

// Count returns the number of present sections.
func (s *Sections) Count() int {
	n := 0
	if s.Metadata != nil {
		n++
	}
	if s.Lyrics != nil {
		n++
	}
	if s.Audio != nil {
		n++
	}
	if s.Cover != nil {
		n++
	}
	return n
}

// Clone returns a deep copy of all present sections.
func (s *Sections) Clone() *Sections {
	cp := &Sections{}
	if s.Metadata != nil {
		cp.Metadata = s.Metadata.Clone()
	}
	if s.Lyrics != nil {
		cp.Lyrics = s.Lyrics.Clone()
	}
	if s.Audio != nil {
		cp.Audio = s.Audio.Clone()
	}
	if s.Cover != nil {
		cp.Cover = s.Cover.Clone()
	}
	return cp
}
