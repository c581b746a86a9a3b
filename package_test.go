package musicpak

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackageIsEmpty(t *testing.T) {
	t.Parallel()

	pkg := New()
	assert.False(t, pkg.HasMetadata())
	assert.False(t, pkg.HasLyrics())
	assert.False(t, pkg.HasAudio())
	assert.False(t, pkg.HasCover())
	assert.Equal(t, 0, pkg.SectionCount())
	assert.False(t, pkg.Truncated())

	_, err := pkg.Metadata()
	assert.ErrorIs(t, err, ErrNoSection)
	_, err = pkg.Lyrics()
	assert.ErrorIs(t, err, ErrNoSection)
	_, err = pkg.Audio()
	assert.ErrorIs(t, err, ErrNoSection)
	_, err = pkg.Cover()
	assert.ErrorIs(t, err, ErrNoSection)
}

func TestSettersRejectNil(t *testing.T) {
	t.Parallel()

	pkg := New()
	assert.ErrorIs(t, pkg.SetMetadata(nil), ErrInvalidParam)
	assert.ErrorIs(t, pkg.SetLyrics(nil), ErrInvalidParam)
	assert.ErrorIs(t, pkg.SetAudio(nil), ErrInvalidParam)
	assert.ErrorIs(t, pkg.SetCover(nil), ErrInvalidParam)
	assert.Equal(t, 0, pkg.SectionCount())
}

func TestNilPackageMethods(t *testing.T) {
	t.Parallel()

	var pkg *Package

	assert.ErrorIs(t, pkg.SetMetadata(&Metadata{}), ErrInvalidParam)
	assert.ErrorIs(t, pkg.SetLyrics(&Lyrics{}), ErrInvalidParam)
	assert.ErrorIs(t, pkg.SetAudio(&Audio{}), ErrInvalidParam)
	assert.ErrorIs(t, pkg.SetCover(&Cover{}), ErrInvalidParam)

	_, err := pkg.Metadata()
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = pkg.Lyrics()
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = pkg.Audio()
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = pkg.Cover()
	assert.ErrorIs(t, err, ErrInvalidParam)

	assert.False(t, pkg.HasMetadata())
	assert.False(t, pkg.HasLyrics())
	assert.False(t, pkg.HasAudio())
	assert.False(t, pkg.HasCover())
	assert.Equal(t, 0, pkg.SectionCount())
	assert.False(t, pkg.Truncated())

	_, err = pkg.AudioSize()
	assert.ErrorIs(t, err, ErrInvalidParam)
	_, err = pkg.AudioReader()
	assert.ErrorIs(t, err, ErrInvalidParam)
	assert.ErrorIs(t, pkg.StreamAudio(func([]byte) (int, error) { return 0, nil }), ErrInvalidParam)
	_, err = pkg.AudioChunkAt(make([]byte, 1), 0)
	assert.ErrorIs(t, err, ErrInvalidParam)
	assert.ErrorIs(t, pkg.SaveFile("x.dmpk"), ErrInvalidParam)

	assert.Equal(t, New().Encode(), pkg.Encode())
	assert.Equal(t, New().Digest(), pkg.Digest())
}

func TestSettersRejectOversizedSection(t *testing.T) {
	if bits.UintSize == 32 {
		t.Skip("requires a 64-bit address space")
	}
	if testing.Short() {
		t.Skip("allocates a 4 GiB payload")
	}

	// A chunk body length is a uint32; a payload this large would wrap it.
	data := make([]byte, int64(1)<<32)
	pkg := New()
	err := pkg.SetAudio(&Audio{SourceFilename: "big.wav", Data: data})
	assert.ErrorIs(t, err, ErrInvalidParam)
	assert.False(t, pkg.HasAudio())
}

func TestSetCopiesIn(t *testing.T) {
	t.Parallel()

	pkg := New()
	audio := &Audio{SourceFilename: "a.mp3", Data: []byte{1, 2, 3}}
	require.NoError(t, pkg.SetAudio(audio))

	// Mutating the caller's value must not affect the store.
	audio.Data[0] = 99
	audio.SourceFilename = "changed"

	got, err := pkg.Audio()
	require.NoError(t, err)
	assert.Equal(t, "a.mp3", got.SourceFilename)
	assert.Equal(t, []byte{1, 2, 3}, got.Data)
}

func TestGetCopiesOut(t *testing.T) {
	t.Parallel()

	pkg := New()
	require.NoError(t, pkg.SetLyrics(&Lyrics{Format: LyricsSRT, Data: []byte("one")}))

	first, err := pkg.Lyrics()
	require.NoError(t, err)

	// Replacing the section must not affect previously returned copies.
	require.NoError(t, pkg.SetLyrics(&Lyrics{Format: LyricsASS, Data: []byte("two")}))
	assert.Equal(t, LyricsSRT, first.Format)
	assert.Equal(t, []byte("one"), first.Data)

	// Mutating a returned copy must not affect the store.
	second, err := pkg.Lyrics()
	require.NoError(t, err)
	second.Data[0] = 'X'
	third, err := pkg.Lyrics()
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), third.Data)
}

func TestSetReplacesWholeSection(t *testing.T) {
	t.Parallel()

	pkg := New()
	require.NoError(t, pkg.SetMetadata(&Metadata{Title: "First", Artist: "A", Bitrate: 128}))
	require.NoError(t, pkg.SetMetadata(&Metadata{Title: "Second"}))

	got, err := pkg.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
	// Last write wins: fields not set in the replacement are zeroed, not merged.
	assert.Equal(t, "", got.Artist)
	assert.Equal(t, uint32(0), got.Bitrate)
}

func TestSectionIndependence(t *testing.T) {
	t.Parallel()

	pkg := New()
	require.NoError(t, pkg.SetCover(&Cover{Format: CoverPNG, Width: 8, Height: 8, Data: []byte{1}}))

	assert.True(t, pkg.HasCover())
	assert.False(t, pkg.HasMetadata())
	assert.False(t, pkg.HasLyrics())
	assert.False(t, pkg.HasAudio())
	assert.Equal(t, 1, pkg.SectionCount())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	pkg := New()
	require.NoError(t, pkg.SetMetadata(&Metadata{
		Title:      "My Song",
		Artist:     "My Artist",
		DurationMS: 180000,
	}))
	require.NoError(t, pkg.SetAudio(&Audio{
		SourceFilename: "song.mp3",
		Data:           []byte{0xFF, 0xFB, 0x90, 0x00},
	}))

	dec, err := LoadBuffer(pkg.Encode())
	require.NoError(t, err)
	assert.False(t, dec.Truncated())
	assert.Equal(t, 2, dec.SectionCount())
	assert.False(t, dec.HasLyrics())
	assert.False(t, dec.HasCover())

	m, err := dec.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "My Song", m.Title)
	assert.Equal(t, "My Artist", m.Artist)
	assert.Equal(t, uint32(180000), m.DurationMS)

	a, err := dec.Audio()
	require.NoError(t, err)
	assert.Equal(t, "song.mp3", a.SourceFilename)
	assert.Len(t, a.Data, 4)
}

func TestLoadBufferRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"not a package", []byte("definitely not a package")},
		{"too short", []byte("DMPK")},
		{"empty", []byte{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pkg, err := LoadBuffer(tt.data)
			require.ErrorIs(t, err, ErrInvalidFormat)
			assert.Nil(t, pkg)
		})
	}

	pkg, err := LoadBuffer(nil)
	require.ErrorIs(t, err, ErrInvalidParam)
	assert.Nil(t, pkg)
}

func TestLoadBufferTruncatedKeepsPrefix(t *testing.T) {
	t.Parallel()

	pkg := New()
	require.NoError(t, pkg.SetMetadata(&Metadata{Title: "T"}))
	require.NoError(t, pkg.SetAudio(&Audio{Data: make([]byte, 4096)}))
	data := pkg.Encode()

	dec, err := LoadBuffer(data[:len(data)-1024])
	require.NoError(t, err)
	assert.True(t, dec.Truncated())
	assert.True(t, dec.HasMetadata())
	assert.False(t, dec.HasAudio())
}

func TestDigestStableAcrossCopies(t *testing.T) {
	t.Parallel()

	pkg := New()
	require.NoError(t, pkg.SetLyrics(&Lyrics{Format: LyricsSRT, Data: []byte("text")}))

	dec, err := LoadBuffer(pkg.Encode())
	require.NoError(t, err)
	assert.Equal(t, pkg.Digest(), dec.Digest())

	require.NoError(t, dec.SetLyrics(&Lyrics{Format: LyricsSRT, Data: []byte("other")}))
	assert.NotEqual(t, pkg.Digest(), dec.Digest())
}
