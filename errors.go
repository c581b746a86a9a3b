package musicpak

import (
	"errors"

	"github.com/rgeorgiev/musicpak/internal/codec"
)

// Sentinel errors. Every operation reports failure through one of these,
// possibly wrapped with additional detail; match with errors.Is.
var (
	// ErrInvalidParam is returned when a required argument is nil.
	ErrInvalidParam = errors.New("musicpak: invalid parameter")

	// ErrNotFound is returned when a package file cannot be opened or read.
	ErrNotFound = errors.New("musicpak: file not found")

	// ErrInvalidFormat is returned when a buffer is not a valid package:
	// too short, wrong magic, unsupported version, or a malformed chunk.
	ErrInvalidFormat = codec.ErrInvalidFormat

	// ErrIO is returned when writing a package file fails.
	ErrIO = errors.New("musicpak: i/o error")

	// ErrNoSection is returned when the requested section is not present
	// in the package.
	ErrNoSection = errors.New("musicpak: section not present")

	// ErrCorrupted is reserved for integrity failures stronger than a
	// format violation. The current decoder reports all malformed input
	// as ErrInvalidFormat.
	ErrCorrupted = errors.New("musicpak: corrupted")
)
