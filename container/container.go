// Package container provides read access to the zip container holding a
// design archive's manifest and per-artboard content documents.
package container

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
)

// Container-related errors.
var (
	ErrInvalidArchive = errors.New("container: invalid or corrupted archive")
	ErrMissingEntry   = errors.New("container: entry not found")
)

// Archive provides access to the named entries of a design archive.
type Archive struct {
	zr       *zip.ReadCloser
	zrReader *zip.Reader // For when opened from an io.ReaderAt
}

// Open opens a design archive from a path.
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, ErrInvalidArchive
	}
	return &Archive{zr: zr}, nil
}

// OpenReader opens a design archive from an io.ReaderAt.
func OpenReader(ra io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, ErrInvalidArchive
	}
	return &Archive{zrReader: zr}, nil
}

// ReadEntry returns the raw bytes of the named entry. A missing entry is
// reported as ErrMissingEntry; whether that is fatal is the caller's call
// (manifest: abort, artboard content: skip the page).
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	for _, f := range a.reader().File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingEntry, name)
}

// Entries returns all entry names in archive order.
func (a *Archive) Entries() []string {
	files := a.reader().File
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}

// Close releases the archive. It is a no-op for archives opened from an
// io.ReaderAt.
func (a *Archive) Close() error {
	if a.zr != nil {
		return a.zr.Close()
	}
	return nil
}

// reader returns the appropriate zip.Reader.
func (a *Archive) reader() *zip.Reader {
	if a.zr != nil {
		return &a.zr.Reader
	}
	return a.zrReader
}
