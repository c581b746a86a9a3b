package paktype

// LyricsFormat identifies the sub-format of a lyrics payload.
// Values are stable: they are written to the wire as a uint32.
type LyricsFormat uint32

const (
	LyricsNone          LyricsFormat = 0
	LyricsLRCESLyric    LyricsFormat = 1
	LyricsLRCWordByWord LyricsFormat = 2
	LyricsLRCLineByLine LyricsFormat = 3
	LyricsSRT           LyricsFormat = 4
	LyricsASS           LyricsFormat = 5
)

// String returns a human-readable name for the lyrics format.
func (f LyricsFormat) String() string {
	switch f {
	case LyricsNone:
		return "none"
	case LyricsLRCESLyric:
		return "lrc-eslyric"
	case LyricsLRCWordByWord:
		return "lrc-word-by-word"
	case LyricsLRCLineByLine:
		return "lrc-line-by-line"
	case LyricsSRT:
		return "srt"
	case LyricsASS:
		return "ass"
	default:
		return "unknown"
	}
}

// AudioFormat identifies the container/codec of an audio payload.
// Informational only: never validated against the payload bytes and
// not part of the wire encoding.
type AudioFormat uint32

const (
	AudioNone AudioFormat = 0
	AudioMP3  AudioFormat = 1
	AudioFLAC AudioFormat = 2
	AudioWAV  AudioFormat = 3
	AudioOGG  AudioFormat = 4
	AudioAAC  AudioFormat = 5
	AudioM4A  AudioFormat = 6
	AudioOPUS AudioFormat = 7
	AudioWMA  AudioFormat = 8
	AudioAPE  AudioFormat = 9
	AudioDSD  AudioFormat = 10
)

// String returns a human-readable name for the audio format.
func (f AudioFormat) String() string {
	switch f {
	case AudioNone:
		return "none"
	case AudioMP3:
		return "mp3"
	case AudioFLAC:
		return "flac"
	case AudioWAV:
		return "wav"
	case AudioOGG:
		return "ogg"
	case AudioAAC:
		return "aac"
	case AudioM4A:
		return "m4a"
	case AudioOPUS:
		return "opus"
	case AudioWMA:
		return "wma"
	case AudioAPE:
		return "ape"
	case AudioDSD:
		return "dsd"
	default:
		return "unknown"
	}
}

// CoverFormat identifies the image format of a cover payload.
// Values are stable: they are written to the wire as a uint32.
type CoverFormat uint32

const (
	CoverNone CoverFormat = 0
	CoverJPEG CoverFormat = 1
	CoverPNG  CoverFormat = 2
	CoverWEBP CoverFormat = 3
	CoverBMP  CoverFormat = 4
)

// String returns a human-readable name for the cover format.
func (f CoverFormat) String() string {
	switch f {
	case CoverNone:
		return "none"
	case CoverJPEG:
		return "jpeg"
	case CoverPNG:
		return "png"
	case CoverWEBP:
		return "webp"
	case CoverBMP:
		return "bmp"
	default:
		return "unknown"
	}
}
