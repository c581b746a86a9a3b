package musicpak

import "github.com/rgeorgiev/musicpak/internal/paktype"

// Section types re-exported from internal/paktype.
type (
	// Metadata describes a track: textual tags plus technical properties.
	Metadata = paktype.Metadata

	// Lyrics holds raw lyric text in one of the supported sub-formats.
	Lyrics = paktype.Lyrics

	// Audio holds the raw audio payload and its source filename.
	Audio = paktype.Audio

	// Cover holds raw cover-art image bytes with caller-supplied dimensions.
	Cover = paktype.Cover

	// LyricsFormat identifies the sub-format of a lyrics payload.
	LyricsFormat = paktype.LyricsFormat

	// AudioFormat identifies the container/codec of an audio payload.
	AudioFormat = paktype.AudioFormat

	// CoverFormat identifies the image format of a cover payload.
	CoverFormat = paktype.CoverFormat
)

// Lyrics format constants.
const (
	LyricsNone          = paktype.LyricsNone
	LyricsLRCESLyric    = paktype.LyricsLRCESLyric
	LyricsLRCWordByWord = paktype.LyricsLRCWordByWord
	LyricsLRCLineByLine = paktype.LyricsLRCLineByLine
	LyricsSRT           = paktype.LyricsSRT
	LyricsASS           = paktype.LyricsASS
)

// Audio format constants.
const (
	AudioNone = paktype.AudioNone
	AudioMP3  = paktype.AudioMP3
	AudioFLAC = paktype.AudioFLAC
	AudioWAV  = paktype.AudioWAV
	AudioOGG  = paktype.AudioOGG
	AudioAAC  = paktype.AudioAAC
	AudioM4A  = paktype.AudioM4A
	AudioOPUS = paktype.AudioOPUS
	AudioWMA  = paktype.AudioWMA
	AudioAPE  = paktype.AudioAPE
	AudioDSD  = paktype.AudioDSD
)

// Cover format constants.
const (
	CoverNone = paktype.CoverNone
	CoverJPEG = paktype.CoverJPEG
	CoverPNG  = paktype.CoverPNG
	CoverWEBP = paktype.CoverWEBP
	CoverBMP  = paktype.CoverBMP
)
