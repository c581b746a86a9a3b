// Package musicpak implements a chunk-based container format that bundles
// audio bytes, textual metadata, lyrics, and cover art into a single
// seekable file.
//
// A [Package] owns at most one of each section. Sections are set and read
// through copy-in/copy-out accessors, so returned values never alias the
// store's internal buffers. Encoding writes a fixed header followed by
// one tagged, length-prefixed chunk per present section; decoding
// tolerates truncated chunk streams and skips unknown chunk types within
// the supported format version.
//
// # Quick start
//
// Build and save a package:
//
//	pkg := musicpak.New()
//	err := pkg.SetMetadata(&musicpak.Metadata{Title: "My Song", Artist: "My Artist"})
//	if err != nil {
//	    return err
//	}
//	err = pkg.SetAudio(&musicpak.Audio{Format: musicpak.AudioMP3, Data: audioBytes})
//	if err != nil {
//	    return err
//	}
//	err = pkg.SaveFile("song.dmpk")
//
// Load and stream the audio payload:
//
//	pkg, err := musicpak.LoadFile("song.dmpk")
//	if err != nil {
//	    return err
//	}
//	err = pkg.StreamAudio(func(chunk []byte) (int, error) {
//	    return out.Write(chunk)
//	})
//
// For packages served over HTTP, the http subpackage provides a
// range-request byte source and a loader with request deduplication.
package musicpak
