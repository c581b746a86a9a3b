package musicpak

import (
	"bytes"
	"io"
)

// StreamChunkSize is the slice size used by StreamAudio.
const StreamChunkSize = 8192

// StreamAudio pushes the audio payload to fn in successive slices of at
// most StreamChunkSize bytes, in order, starting at offset zero.
//
// fn returns the number of bytes it accepted. Accepting fewer bytes than
// offered stops streaming without error; that is the sink's flow-control
// signal, not a failure. A non-nil error from fn aborts streaming and is
// returned as-is.
//
// fn is invoked inline on the caller's goroutine and may block.
// StreamAudio returns ErrNoSection when no audio section is present.
func (p *Package) StreamAudio(fn func(chunk []byte) (int, error)) error {
	if p == nil || fn == nil {
		return ErrInvalidParam
	}
	if p.sections.Audio == nil {
		return ErrNoSection
	}

	data := p.sections.Audio.Data
	for off := 0; off < len(data); {
		end := min(off+StreamChunkSize, len(data))
		offered := end - off
		n, err := fn(data[off:end])
		if err != nil {
			return err
		}
		if n < 0 {
			n = 0
		}
		if n > offered {
			n = offered
		}
		off += n
		if n < offered {
			// Sink accepted less than offered: early termination.
			return nil
		}
	}
	return nil
}

// AudioChunkAt reads into buf from the audio payload at offset off,
// following the io.ReaderAt contract: a read ending at the payload tail
// returns the clamped count with io.EOF, and a read starting at or past
// the end returns (0, io.EOF). End-of-payload is the normal termination
// condition for chunked read loops, not a failure.
//
// AudioChunkAt returns ErrNoSection when no audio section is present and
// ErrInvalidParam for a nil buffer or negative offset.
func (p *Package) AudioChunkAt(buf []byte, off int64) (int, error) {
	if p == nil || buf == nil || off < 0 {
		return 0, ErrInvalidParam
	}
	if p.sections.Audio == nil {
		return 0, ErrNoSection
	}

	data := p.sections.Audio.Data
	if off >= int64(len(data)) {
		return 0, io.EOF
	}
	n := copy(buf, data[off:])
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

// AudioSize returns the size of the audio payload in bytes, or
// ErrNoSection when no audio section is present.
func (p *Package) AudioSize() (int64, error) {
	if p == nil {
		return 0, ErrInvalidParam
	}
	if p.sections.Audio == nil {
		return 0, ErrNoSection
	}
	return int64(len(p.sections.Audio.Data)), nil
}

// AudioReader returns a reader over an independent copy of the audio
// payload, for io.Copy-style consumers. Mutating the package afterwards
// does not affect the returned reader.
func (p *Package) AudioReader() (*io.SectionReader, error) {
	if p == nil {
		return nil, ErrInvalidParam
	}
	if p.sections.Audio == nil {
		return nil, ErrNoSection
	}
	data := bytes.Clone(p.sections.Audio.Data)
	return io.NewSectionReader(bytes.NewReader(data), 0, int64(len(data))), nil
}
