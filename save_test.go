package musicpak

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileLoadFileRoundTrip(t *testing.T) {
	t.Parallel()

	pkg := New()
	require.NoError(t, pkg.SetMetadata(&Metadata{Title: "Disk Song", SampleRate: 48000, Channels: 2}))
	require.NoError(t, pkg.SetCover(&Cover{Format: CoverJPEG, Width: 300, Height: 300, Data: []byte{0xFF, 0xD8}}))

	path := filepath.Join(t.TempDir(), "song.dmpk")
	require.NoError(t, pkg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pkg.Digest(), loaded.Digest())

	m, err := loaded.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "Disk Song", m.Title)
	assert.Equal(t, uint32(48000), m.SampleRate)

	c, err := loaded.Cover()
	require.NoError(t, err)
	assert.Equal(t, CoverJPEG, c.Format)
	assert.Equal(t, uint32(300), c.Width)
}

func TestSaveFileReplacesAtomically(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "song.dmpk")

	first := New()
	require.NoError(t, first.SetLyrics(&Lyrics{Data: []byte("v1")}))
	require.NoError(t, first.SaveFile(path))

	second := New()
	require.NoError(t, second.SetLyrics(&Lyrics{Data: []byte("v2")}))
	require.NoError(t, second.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	l, err := loaded.Lyrics()
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), l.Data)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "song.dmpk", entries[0].Name())
}

func TestSaveFileErrors(t *testing.T) {
	t.Parallel()

	pkg := New()
	assert.ErrorIs(t, pkg.SaveFile(""), ErrInvalidParam)

	// Directory does not exist: temp file creation fails.
	err := pkg.SaveFile(filepath.Join(t.TempDir(), "missing", "song.dmpk"))
	assert.ErrorIs(t, err, ErrIO)
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.dmpk"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = LoadFile("")
	assert.ErrorIs(t, err, ErrInvalidParam)

	garbage := filepath.Join(t.TempDir(), "garbage.dmpk")
	require.NoError(t, os.WriteFile(garbage, []byte("not a package at all"), 0o644))
	_, err = LoadFile(garbage)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoadFileEmptyPackage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.dmpk")
	require.NoError(t, New().SaveFile(path))

	loaded, err := LoadFile(path, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.SectionCount())
	assert.False(t, loaded.Truncated())
}
