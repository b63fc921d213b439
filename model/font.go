package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/unicode/norm"
)

// FontDeclaration represents one discovered font reference.
type FontDeclaration struct {
	// Family is the human-readable font family name, NFC-normalized.
	Family string
	// Style is the face style ("Bold", "Italic", ...). A missing or null
	// style in the source document becomes the empty string, never a nil
	// marker.
	Style string
	// PostScriptName is the canonical identifier used to deduplicate
	// declarations across the whole archive.
	PostScriptName string
	// Usages lists the artboards the font was found on, one label per
	// artboard, unique, in first-seen order.
	Usages []string
}

// NewFontDeclaration creates a declaration with no usages. The family name
// is normalized to NFC so that visually identical names compare equal.
func NewFontDeclaration(family, style, postScriptName string) *FontDeclaration {
	return &FontDeclaration{
		Family:         norm.NFC.String(family),
		Style:          style,
		PostScriptName: postScriptName,
	}
}

// AddUsage appends label to Usages unless that exact label is already
// present. First-seen order is preserved.
func (d *FontDeclaration) AddUsage(label string) {
	for _, u := range d.Usages {
		if u == label {
			return
		}
	}
	d.Usages = append(d.Usages, label)
}

// FontMap is an insertion-ordered mapping from PostScript name to font
// declaration. The zero value is not usable; use NewFontMap.
type FontMap struct {
	fonts *orderedmap.OrderedMap[string, *FontDeclaration]
}

// NewFontMap creates an empty font map.
func NewFontMap() *FontMap {
	return &FontMap{fonts: orderedmap.New[string, *FontDeclaration]()}
}

// Set records decl under its PostScript name. An existing entry under the
// same name is replaced (within a single artboard the last declaration
// scanned wins) but keeps its original position in iteration order.
func (m *FontMap) Set(decl *FontDeclaration) {
	m.fonts.Set(decl.PostScriptName, decl)
}

// Get returns the declaration for a PostScript name.
func (m *FontMap) Get(postScriptName string) (*FontDeclaration, bool) {
	return m.fonts.Get(postScriptName)
}

// Len returns the number of distinct fonts in the map.
func (m *FontMap) Len() int {
	return m.fonts.Len()
}

// Declarations returns the declarations in insertion order.
func (m *FontMap) Declarations() []*FontDeclaration {
	decls := make([]*FontDeclaration, 0, m.fonts.Len())
	for pair := m.fonts.Oldest(); pair != nil; pair = pair.Next() {
		decls = append(decls, pair.Value)
	}
	return decls
}

// Catalog accumulates font declarations across artboards. It grows
// monotonically: declarations are merged in, never removed.
type Catalog struct {
	fonts *FontMap
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{fonts: NewFontMap()}
}

// Merge folds one artboard's font map into the catalog. pageLabel is the
// artboard's usage label. For a PostScript name new to the catalog the
// declaration is inserted and its usage list seeded with pageLabel; for a
// name already present only pageLabel is appended (deduplicated) — the
// first-seen family and style are retained permanently.
func (c *Catalog) Merge(pageFonts *FontMap, pageLabel string) {
	for _, decl := range pageFonts.Declarations() {
		existing, ok := c.fonts.Get(decl.PostScriptName)
		if !ok {
			decl.Usages = []string{pageLabel}
			c.fonts.Set(decl)
			continue
		}
		existing.AddUsage(pageLabel)
	}
}

// Len returns the number of distinct fonts in the catalog.
func (c *Catalog) Len() int {
	return c.fonts.Len()
}

// Lookup returns the declaration for a PostScript name.
func (c *Catalog) Lookup(postScriptName string) (*FontDeclaration, bool) {
	return c.fonts.Get(postScriptName)
}

// Fonts returns the catalog's declarations in first-seen order.
func (c *Catalog) Fonts() []*FontDeclaration {
	return c.fonts.Declarations()
}
