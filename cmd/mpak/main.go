// Command mpak inspects and manipulates music package files.
//
// Usage:
//
//	mpak inspect <file>
//	mpak pack -audio song.mp3 [-title T] [-artist A] [-lyrics file.lrc] [-cover img.jpg] <out>
//	mpak extract <file> <out>
//	mpak fetch <url> <out>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rgeorgiev/musicpak"
	pakhttp "github.com/rgeorgiev/musicpak/http"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "inspect":
		err = runInspect(os.Args[2:])
	case "pack":
		err = runPack(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "fetch":
		err = runFetch(os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mpak <inspect|pack|extract|fetch> [args]")
	os.Exit(2)
}

func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: mpak inspect <file>")
	}
	pkg, err := musicpak.LoadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("file:     %s\n", args[0])
	fmt.Printf("digest:   %s\n", pkg.Digest())
	fmt.Printf("sections: %d\n", pkg.SectionCount())
	if pkg.Truncated() {
		fmt.Println("warning:  chunk stream truncated, package is partial")
	}

	if m, err := pkg.Metadata(); err == nil {
		fmt.Printf("metadata: title=%q artist=%q album=%q genre=%q year=%q\n",
			m.Title, m.Artist, m.Album, m.Genre, m.Year)
		fmt.Printf("          duration=%s bitrate=%dkbps rate=%dHz channels=%d\n",
			time.Duration(m.DurationMS)*time.Millisecond, m.Bitrate, m.SampleRate, m.Channels)
	}
	if l, err := pkg.Lyrics(); err == nil {
		fmt.Printf("lyrics:   format=%s size=%d\n", l.Format, len(l.Data))
	}
	if a, err := pkg.Audio(); err == nil {
		fmt.Printf("audio:    file=%q size=%d\n", a.SourceFilename, len(a.Data))
	}
	if c, err := pkg.Cover(); err == nil {
		fmt.Printf("cover:    format=%s %dx%d size=%d\n", c.Format, c.Width, c.Height, len(c.Data))
	}
	return nil
}

func runPack(args []string) error {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	audioPath := fs.String("audio", "", "audio file to embed (required)")
	title := fs.String("title", "", "track title")
	artist := fs.String("artist", "", "track artist")
	album := fs.String("album", "", "track album")
	lyricsPath := fs.String("lyrics", "", "lyrics file to embed")
	coverPath := fs.String("cover", "", "cover image to embed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *audioPath == "" {
		return fmt.Errorf("usage: mpak pack -audio <file> [flags] <out>")
	}

	pkg := musicpak.New()

	if *title != "" || *artist != "" || *album != "" {
		err := pkg.SetMetadata(&musicpak.Metadata{
			Title:  *title,
			Artist: *artist,
			Album:  *album,
		})
		if err != nil {
			return err
		}
	}

	audioData, err := os.ReadFile(*audioPath)
	if err != nil {
		return err
	}
	err = pkg.SetAudio(&musicpak.Audio{
		Format:         audioFormatFromPath(*audioPath),
		SourceFilename: filepath.Base(*audioPath),
		Data:           audioData,
	})
	if err != nil {
		return err
	}

	if *lyricsPath != "" {
		data, err := os.ReadFile(*lyricsPath)
		if err != nil {
			return err
		}
		format := musicpak.LyricsLRCLineByLine
		if strings.EqualFold(filepath.Ext(*lyricsPath), ".srt") {
			format = musicpak.LyricsSRT
		}
		if err := pkg.SetLyrics(&musicpak.Lyrics{Format: format, Data: data}); err != nil {
			return err
		}
	}

	if *coverPath != "" {
		data, err := os.ReadFile(*coverPath)
		if err != nil {
			return err
		}
		if err := pkg.SetCover(&musicpak.Cover{Format: coverFormatFromPath(*coverPath), Data: data}); err != nil {
			return err
		}
	}

	out := fs.Arg(0)
	if err := pkg.SaveFile(out); err != nil {
		return err
	}
	log.Printf("wrote %s (%d sections, digest %s)", out, pkg.SectionCount(), pkg.Digest())
	return nil
}

func runExtract(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: mpak extract <file> <out>")
	}
	pkg, err := musicpak.LoadFile(args[0])
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}

	var total int
	err = pkg.StreamAudio(func(chunk []byte) (int, error) {
		n, err := out.Write(chunk)
		total += n
		return n, err
	})
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	log.Printf("extracted %d audio bytes to %s", total, args[1])
	return nil
}

func runFetch(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: mpak fetch <url> <out>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	loader := pakhttp.NewLoader()
	pkg, err := loader.Load(ctx, args[0])
	if err != nil {
		return err
	}
	if err := pkg.SaveFile(args[1]); err != nil {
		return err
	}
	log.Printf("fetched %s (%d sections) to %s", args[0], pkg.SectionCount(), args[1])
	return nil
}

func audioFormatFromPath(path string) musicpak.AudioFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return musicpak.AudioMP3
	case ".flac":
		return musicpak.AudioFLAC
	case ".wav":
		return musicpak.AudioWAV
	case ".ogg":
		return musicpak.AudioOGG
	case ".aac":
		return musicpak.AudioAAC
	case ".m4a":
		return musicpak.AudioM4A
	case ".opus":
		return musicpak.AudioOPUS
	case ".wma":
		return musicpak.AudioWMA
	case ".ape":
		return musicpak.AudioAPE
	default:
		return musicpak.AudioNone
	}
}

func coverFormatFromPath(path string) musicpak.CoverFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return musicpak.CoverJPEG
	case ".png":
		return musicpak.CoverPNG
	case ".webp":
		return musicpak.CoverWEBP
	case ".bmp":
		return musicpak.CoverBMP
	default:
		return musicpak.CoverNone
	}
}
