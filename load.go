package musicpak

import (
	"fmt"
	"os"

	"github.com/rgeorgiev/musicpak/internal/codec"
)

// LoadFile reads the file at path into memory and decodes it.
//
// An unreadable file is reported as ErrNotFound; a file that is not a
// valid package is reported as ErrInvalidFormat. See LoadBuffer for the
// handling of truncated chunk streams.
func LoadFile(path string, opts ...Option) (*Package, error) {
	if path == "" {
		return nil, ErrInvalidParam
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	return LoadBuffer(data, opts...)
}

// LoadBuffer decodes an in-memory encoded package.
//
// The returned Package is fully independent of data; the buffer may be
// released as soon as LoadBuffer returns. A decode failure yields no
// package. A buffer whose chunk stream stops before the declared chunk
// count still decodes: the sections present in the intact prefix are
// kept and Truncated reports true on the result.
func LoadBuffer(data []byte, opts ...Option) (*Package, error) {
	if data == nil {
		return nil, ErrInvalidParam
	}

	sections, truncated, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	p := New(opts...)
	p.sections = *sections
	p.truncated = truncated
	if truncated {
		p.log().Warn("chunk stream truncated, decoded partial package",
			"sections", sections.Count())
	}
	return p, nil
}
