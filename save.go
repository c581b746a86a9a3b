package musicpak

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile writes the encoded package to path.
//
// The write is atomic: content goes to a temp file in the same directory
// which is then renamed over the target, so a failed save never leaves a
// partially written package behind. Failures are reported as ErrIO.
func (p *Package) SaveFile(path string) error {
	if p == nil || path == "" {
		return ErrInvalidParam
	}
	if err := writeFileAtomic(path, p.Encode()); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrIO, path, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file then renames to target,
// ensuring atomic replacement of the target file.
func writeFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".musicpak-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
