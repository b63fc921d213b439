// Package embedded inspects font resources shipped inside a design archive.
//
// Design archives may carry the actual font binaries their documents
// reference. Scanning them lets a caller cross-check which declared fonts
// are available without being installed on the host.
package embedded

import (
	"path"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/tsawler/xdfonts/container"
)

// Font describes one font resource found inside the archive.
type Font struct {
	// Entry is the archive entry name the font was read from.
	Entry string
	// PostScriptName is the font's canonical name, as recorded in its
	// naming table. Comparable against a catalog's PostScript names.
	PostScriptName string
	// Family is the font's family name.
	Family string
}

// Scan walks the archive's entries and parses every TrueType/OpenType font
// it finds. Entries that fail to read or parse are skipped; their names are
// returned so the caller can surface them as warnings.
func Scan(a *container.Archive) (fonts []Font, skipped []string) {
	for _, name := range a.Entries() {
		if !isFontEntry(name) {
			continue
		}
		data, err := a.ReadEntry(name)
		if err != nil {
			skipped = append(skipped, name)
			continue
		}
		f, err := sfnt.Parse(data)
		if err != nil {
			skipped = append(skipped, name)
			continue
		}

		var buf sfnt.Buffer
		ps, err := f.Name(&buf, sfnt.NameIDPostScript)
		if err != nil {
			ps = ""
		}
		family, err := f.Name(&buf, sfnt.NameIDFamily)
		if err != nil {
			family = ""
		}
		fonts = append(fonts, Font{Entry: name, PostScriptName: ps, Family: family})
	}
	return fonts, skipped
}

// isFontEntry reports whether the entry name looks like a font resource.
func isFontEntry(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}
