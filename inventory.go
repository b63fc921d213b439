package xdfonts

import (
	"fmt"

	"github.com/tsawler/xdfonts/artboard"
	"github.com/tsawler/xdfonts/container"
	"github.com/tsawler/xdfonts/embedded"
	"github.com/tsawler/xdfonts/manifest"
	"github.com/tsawler/xdfonts/model"
)

// Inventory provides a fluent interface for scanning a design archive.
// Each configuration method returns a new Inventory instance, making it
// safe for concurrent use and allowing method chaining.
type Inventory struct {
	// Source
	filename string

	// Archive handle
	archive *container.Archive

	// Lifecycle
	ownsArchive   bool // true if we opened the archive and should close it
	archiveOpened bool // true if the archive has been opened

	// Configuration
	options ScanOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Inventory with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (inv *Inventory) clone() *Inventory {
	return &Inventory{
		filename:      inv.filename,
		archive:       inv.archive,
		ownsArchive:   inv.ownsArchive,
		archiveOpened: inv.archiveOpened,
		options:       inv.options.clone(),
		err:           inv.err,
	}
}

// Artboards restricts the scan to artboards with the given names. Names not
// present in the manifest are silently ignored.
//
// Example:
//
//	catalog, _, err := xdfonts.Open("design.xd").Artboards("Home").Fonts()
func (inv *Inventory) Artboards(names ...string) *Inventory {
	newInv := inv.clone()
	newInv.options.artboards = append([]string(nil), names...)
	return newInv
}

// ensureArchive opens the archive if not already open.
func (inv *Inventory) ensureArchive() error {
	if inv.archiveOpened {
		return nil
	}
	if inv.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	a, err := container.Open(inv.filename)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	inv.archive = a
	inv.ownsArchive = true
	inv.archiveOpened = true
	return nil
}

// Close releases resources associated with the Inventory.
// It is safe to call Close multiple times.
func (inv *Inventory) Close() error {
	if inv.ownsArchive && inv.archive != nil {
		err := inv.archive.Close()
		inv.archive = nil
		inv.archiveOpened = false
		inv.ownsArchive = false
		return err
	}
	return nil
}

// Fonts scans the archive and returns the deduplicated font catalog.
// This is a terminal operation that closes the underlying archive.
//
// Returns the catalog, any warnings encountered during processing, and an
// error if the manifest itself could not be read or parsed. Warnings report
// artboards that were skipped (missing or malformed content); the catalog
// still covers every other artboard. An archive whose manifest carries no
// artwork tree yields an empty catalog and no error.
//
// Example:
//
//	catalog, warnings, err := xdfonts.Open("design.xd").Fonts()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", xdfonts.FormatWarnings(warnings))
//	}
func (inv *Inventory) Fonts() (*model.Catalog, []Warning, error) {
	if inv.err != nil {
		return nil, nil, inv.err
	}

	if err := inv.ensureArchive(); err != nil {
		return nil, nil, err
	}
	defer inv.Close()

	// The manifest is load-bearing: failure here is fatal to the run.
	data, err := inv.archive.ReadEntry(manifest.EntryName)
	if err != nil {
		return nil, nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing manifest: %w", err)
	}

	catalog := model.NewCatalog()
	var warnings []Warning

	// Artboards are processed strictly one at a time, in manifest order.
	// A failure on one artboard skips it and moves on.
	for _, ab := range m.Artboards() {
		if !inv.options.selects(ab.Name) {
			continue
		}

		content, err := inv.archive.ReadEntry(ab.ContentPath())
		if err != nil {
			warnings = append(warnings, Warning{
				Artboard: ab.Label(),
				Message:  fmt.Sprintf("skipping: %v", err),
			})
			continue
		}

		doc, err := artboard.Parse(content)
		if err != nil {
			warnings = append(warnings, Warning{
				Artboard: ab.Label(),
				Message:  fmt.Sprintf("skipping: %v", err),
			})
			continue
		}

		catalog.Merge(doc.Fonts(), ab.Label())
	}

	return catalog, warnings, nil
}

// EmbeddedFonts lists the font binaries shipped inside the archive.
// This is a terminal operation that closes the underlying archive.
//
// Entries that look like fonts but fail to parse are reported as warnings.
func (inv *Inventory) EmbeddedFonts() ([]embedded.Font, []Warning, error) {
	if inv.err != nil {
		return nil, nil, inv.err
	}

	if err := inv.ensureArchive(); err != nil {
		return nil, nil, err
	}
	defer inv.Close()

	fonts, skipped := embedded.Scan(inv.archive)
	var warnings []Warning
	for _, name := range skipped {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("unreadable font resource: %s", name),
		})
	}
	return fonts, warnings, nil
}
