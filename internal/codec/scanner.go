package codec

import "fmt"

// Scanner walks the chunk stream of an encoded package.
//
// The scanner validates the header up front and then yields one chunk
// per Next call, up to the count declared in the header. A chunk whose
// header or declared body would overrun the buffer stops the scan early;
// Truncated reports whether that happened. This keeps the already-scanned
// prefix usable when the tail of a file is missing or damaged.
type Scanner struct {
	data      []byte
	off       int
	declared  uint32
	scanned   uint32
	typ       byte
	body      []byte
	truncated bool
}

// NewScanner validates the header of data and returns a scanner
// positioned at the first chunk.
func NewScanner(data []byte) (*Scanner, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidFormat, len(data), HeaderSize)
	}
	if string(data[:4]) != Magic {
		return nil, fmt.Errorf("%w: bad magic", ErrInvalidFormat)
	}
	version, off, _ := readUint32(data, 4)
	if version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidFormat, version)
	}
	count, off, _ := readUint32(data, off)
	return &Scanner{
		data:     data,
		off:      off,
		declared: count,
	}, nil
}

// Next advances to the next chunk. It returns false when the declared
// chunk count has been consumed or the remaining buffer cannot hold the
// next chunk.
func (s *Scanner) Next() bool {
	if s.scanned >= s.declared {
		return false
	}
	if len(s.data)-s.off < chunkHeaderSize {
		s.truncated = true
		return false
	}
	typ := s.data[s.off]
	size, bodyOff, _ := readUint32(s.data, s.off+1)
	// Compare in int64: narrowing the remaining byte count to uint32
	// wraps once 4 GiB or more follow the chunk header.
	if int64(len(s.data)-bodyOff) < int64(size) {
		s.truncated = true
		return false
	}
	s.typ = typ
	s.body = s.data[bodyOff : bodyOff+int(size)]
	s.off = bodyOff + int(size)
	s.scanned++
	return true
}

// Type returns the tag of the current chunk.
func (s *Scanner) Type() byte {
	return s.typ
}

// Body returns the body of the current chunk. The slice aliases the
// scanned buffer and is only valid until the buffer is released.
func (s *Scanner) Body() []byte {
	return s.body
}

// Declared returns the chunk count declared in the header.
func (s *Scanner) Declared() uint32 {
	return s.declared
}

// Scanned returns the number of chunks yielded so far.
func (s *Scanner) Scanned() uint32 {
	return s.scanned
}

// Truncated reports whether the scan stopped before the declared chunk
// count because a chunk would have overrun the buffer.
func (s *Scanner) Truncated() bool {
	return s.truncated
}
