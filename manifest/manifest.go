// Package manifest parses a design archive's manifest document and
// enumerates the artboards in its artwork tree.
package manifest

import (
	"encoding/json"
	"errors"
	"strings"
)

// EntryName is the archive entry holding the manifest document.
const EntryName = "manifest"

// Fixed labels and path templates of the archive layout.
const (
	artworkRootName = "artwork"
	pasteboardName  = "pasteboard"
	artboardPrefix  = "artboard-"
	contentPrefix   = "artwork/"
	contentSuffix   = "/graphics/graphicContent.agc"
)

// ErrMalformed reports a manifest that is not well-formed JSON.
var ErrMalformed = errors.New("manifest: malformed manifest document")

// manifestJSON mirrors the manifest's JSON structure.
type manifestJSON struct {
	Children []childJSON `json:"children"`
}

type childJSON struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Children []childJSON `json:"children"`
}

// Manifest is a parsed manifest document.
type Manifest struct {
	doc manifestJSON
}

// Artboard describes one page of the design file: one entry of the artwork
// tree whose content document can be located inside the archive.
type Artboard struct {
	ID   string
	Name string
	Path string
}

// Parse decodes manifest bytes. It fails only when the bytes are not
// well-formed JSON; structural surprises (no children, no artwork root) are
// handled by Artboards.
func Parse(data []byte) (*Manifest, error) {
	var doc manifestJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrMalformed
	}
	return &Manifest{doc: doc}, nil
}

// Artboards enumerates the pages of the artwork tree, in manifest order.
// A manifest with no artwork root, or an artwork root with no children,
// yields nil: zero pages, not an error. The pasteboard scratch area is
// never a page, and children missing any of id, name, or path are silently
// dropped.
func (m *Manifest) Artboards() []Artboard {
	root := m.artworkRoot()
	if root == nil {
		return nil
	}

	var boards []Artboard
	for _, c := range root.Children {
		if c.Name == pasteboardName {
			continue
		}
		if c.ID == "" || c.Name == "" || c.Path == "" {
			continue
		}
		ab := Artboard{ID: c.ID, Name: c.Name, Path: c.Path}
		if !ab.IsArtboard() {
			continue
		}
		boards = append(boards, ab)
	}
	return boards
}

// artworkRoot finds the top-level child labelled as the artwork tree.
func (m *Manifest) artworkRoot() *childJSON {
	for i := range m.doc.Children {
		if m.doc.Children[i].Name == artworkRootName {
			return &m.doc.Children[i]
		}
	}
	return nil
}

// IsArtboard reports whether the entry's path carries the artboard marker.
func (a Artboard) IsArtboard() bool {
	return strings.HasPrefix(a.Path, artboardPrefix)
}

// ContentPath returns the archive entry name of the artboard's graphic
// content document.
func (a Artboard) ContentPath() string {
	return contentPrefix + a.Path + contentSuffix
}

// Label returns the human-readable usage label recorded against fonts found
// on this artboard.
func (a Artboard) Label() string {
	return a.Name + " [" + a.ID + "]"
}
