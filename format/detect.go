// Package format provides file format detection for design archives.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported container format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// XD indicates an Adobe XD design archive.
	XD
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case XD:
		return "XD"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case XD:
		return ".xd"
	default:
		return ""
	}
}

// DetectFromName guesses the format from the filename extension alone.
func DetectFromName(filename string) Format {
	if strings.ToLower(filepath.Ext(filename)) == ".xd" {
		return XD
	}
	return Unknown
}

// Detect determines the format from file content. A design archive is a zip
// container carrying a top-level manifest entry; anything else, including a
// plain zip without a manifest, is Unknown.
func Detect(path string) (Format, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		// Not a zip container at all.
		return Unknown, nil
	}
	defer zr.Close()
	return detect(&zr.Reader), nil
}

// DetectReader determines the format from an io.ReaderAt.
func DetectReader(ra io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return Unknown, nil
	}
	return detect(zr), nil
}

func detect(zr *zip.Reader) Format {
	for _, f := range zr.File {
		if f.Name == "manifest" {
			return XD
		}
	}
	return Unknown
}
