package musicpak

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/opencontainers/go-digest"

	"github.com/rgeorgiev/musicpak/internal/codec"
	"github.com/rgeorgiev/musicpak/internal/paktype"
)

// Package is the in-memory form of a music package: at most one of each
// section, independently present or absent.
//
// Mutators copy their argument in and accessors copy the stored value
// out, so callers never share buffers with the store. A Package is not
// safe for concurrent use without external synchronization, but values
// returned by accessors are always independent snapshots.
//
// All methods tolerate a nil receiver: error-returning methods report
// ErrInvalidParam, predicates report absence, and Encode yields an
// empty package.
type Package struct {
	sections  paktype.Sections
	truncated bool
	logger    *slog.Logger
}

// Option configures a Package.
type Option func(*Package)

// WithLogger sets the logger used for load diagnostics.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Package) {
		p.logger = logger
	}
}

// New creates an empty Package with all sections absent.
func New(opts ...Option) *Package {
	p := &Package{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// log returns the logger, falling back to a discard logger if nil.
func (p *Package) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.logger
}

// SetMetadata replaces the metadata section with a copy of m.
func (p *Package) SetMetadata(m *Metadata) error {
	if p == nil || m == nil {
		return ErrInvalidParam
	}
	if codec.MetadataBodySize(m) > codec.MaxChunkBody {
		return fmt.Errorf("%w: metadata section exceeds %d bytes", ErrInvalidParam, codec.MaxChunkBody)
	}
	p.sections.Metadata = m.Clone()
	return nil
}

// SetLyrics replaces the lyrics section with a copy of l.
func (p *Package) SetLyrics(l *Lyrics) error {
	if p == nil || l == nil {
		return ErrInvalidParam
	}
	if codec.LyricsBodySize(l) > codec.MaxChunkBody {
		return fmt.Errorf("%w: lyrics section exceeds %d bytes", ErrInvalidParam, codec.MaxChunkBody)
	}
	p.sections.Lyrics = l.Clone()
	return nil
}

// SetAudio replaces the audio section with a copy of a.
func (p *Package) SetAudio(a *Audio) error {
	if p == nil || a == nil {
		return ErrInvalidParam
	}
	if codec.AudioBodySize(a) > codec.MaxChunkBody {
		return fmt.Errorf("%w: audio section exceeds %d bytes", ErrInvalidParam, codec.MaxChunkBody)
	}
	p.sections.Audio = a.Clone()
	return nil
}

// SetCover replaces the cover section with a copy of c.
func (p *Package) SetCover(c *Cover) error {
	if p == nil || c == nil {
		return ErrInvalidParam
	}
	if codec.CoverBodySize(c) > codec.MaxChunkBody {
		return fmt.Errorf("%w: cover section exceeds %d bytes", ErrInvalidParam, codec.MaxChunkBody)
	}
	p.sections.Cover = c.Clone()
	return nil
}

// Metadata returns a copy of the metadata section, or ErrNoSection if absent.
func (p *Package) Metadata() (*Metadata, error) {
	if p == nil {
		return nil, ErrInvalidParam
	}
	if p.sections.Metadata == nil {
		return nil, ErrNoSection
	}
	return p.sections.Metadata.Clone(), nil
}

// Lyrics returns a copy of the lyrics section, or ErrNoSection if absent.
func (p *Package) Lyrics() (*Lyrics, error) {
	if p == nil {
		return nil, ErrInvalidParam
	}
	if p.sections.Lyrics == nil {
		return nil, ErrNoSection
	}
	return p.sections.Lyrics.Clone(), nil
}

// Audio returns a copy of the audio section, or ErrNoSection if absent.
func (p *Package) Audio() (*Audio, error) {
	if p == nil {
		return nil, ErrInvalidParam
	}
	if p.sections.Audio == nil {
		return nil, ErrNoSection
	}
	return p.sections.Audio.Clone(), nil
}

// Cover returns a copy of the cover section, or ErrNoSection if absent.
func (p *Package) Cover() (*Cover, error) {
	if p == nil {
		return nil, ErrInvalidParam
	}
	if p.sections.Cover == nil {
		return nil, ErrNoSection
	}
	return p.sections.Cover.Clone(), nil
}

// HasMetadata reports whether the metadata section is present.
func (p *Package) HasMetadata() bool {
	return p != nil && p.sections.Metadata != nil
}

// HasLyrics reports whether the lyrics section is present.
func (p *Package) HasLyrics() bool {
	return p != nil && p.sections.Lyrics != nil
}

// HasAudio reports whether the audio section is present.
func (p *Package) HasAudio() bool {
	return p != nil && p.sections.Audio != nil
}

// HasCover reports whether the cover section is present.
func (p *Package) HasCover() bool {
	return p != nil && p.sections.Cover != nil
}

// SectionCount returns the number of present sections. Encoding writes
// exactly this many chunks.
func (p *Package) SectionCount() int {
	if p == nil {
		return 0
	}
	return p.sections.Count()
}

// Truncated reports whether the package was decoded from a buffer whose
// chunk stream stopped before the declared chunk count. Such a package
// is valid but carries fewer sections than the header promised.
func (p *Package) Truncated() bool {
	return p != nil && p.truncated
}

// Encode serializes the package into the wire format. A nil Package
// encodes as an empty one.
func (p *Package) Encode() []byte {
	if p == nil {
		return codec.Encode(&paktype.Sections{})
	}
	return codec.Encode(&p.sections)
}

// Digest returns the canonical content digest of the encoded package.
// Two packages with equal present sections have equal digests.
func (p *Package) Digest() digest.Digest {
	return digest.FromBytes(p.Encode())
}
