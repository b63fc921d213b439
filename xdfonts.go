// Package xdfonts provides a fluent API for inventorying the fonts
// referenced inside Adobe XD design archives.
//
// Basic usage:
//
//	catalog, warnings, err := xdfonts.Open("design.xd").Fonts()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", xdfonts.FormatWarnings(warnings))
//	}
//
// With options:
//
//	catalog, _, err := xdfonts.Open("design.xd").
//	    Artboards("Home", "Checkout").
//	    Fonts()
//
// For advanced use cases, the lower-level container, manifest, and artboard
// packages are also available.
package xdfonts

import (
	"github.com/tsawler/xdfonts/container"
)

// Open opens a design archive and returns an Inventory for fluent
// configuration. The returned Inventory must be closed when done, either
// explicitly via Close() or implicitly when calling a terminal operation
// like Fonts().
//
// Example:
//
//	catalog, warnings, err := xdfonts.Open("design.xd").Fonts()
func Open(path string) *Inventory {
	return &Inventory{
		filename: path,
		options:  defaultOptions(),
	}
}

// FromArchive creates an Inventory from an already-opened container.Archive.
// This is useful when you need more control over the archive lifecycle.
// Note: The caller is responsible for closing the archive.
//
// Example:
//
//	a, err := container.Open("design.xd")
//	if err != nil {
//	    // handle error
//	}
//	defer a.Close()
//	catalog, warnings, err := xdfonts.FromArchive(a).Fonts()
func FromArchive(a *container.Archive) *Inventory {
	return &Inventory{
		archive:       a,
		ownsArchive:   false,
		archiveOpened: true,
		options:       defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustFonts is a helper that wraps a call to Fonts() and panics if the
// error is non-nil. It discards warnings and returns just the catalog.
//
// Example:
//
//	catalog := xdfonts.MustFonts(xdfonts.Open("design.xd").Fonts())
func MustFonts[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
