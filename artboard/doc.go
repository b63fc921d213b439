// Package artboard parses one artboard's graphic content document and scans
// it for font declarations.
//
// The graphic content is an arbitrarily nested, heterogeneously shaped JSON
// tree. Font references appear in two syntactic shapes:
//
// An inline object carrying the declaration fields directly:
//
//	{"fontFamily": "Helvetica Neue", "fontStyle": "Bold", "postscriptName": "HelveticaNeue-Bold"}
//
// Or a nested object under a field literally named "font":
//
//	{"font": {"family": "Helvetica Neue", "style": "Bold", "postscriptName": "HelveticaNeue-Bold"}}
//
// [Document.Fonts] walks the whole tree depth-first, honors both shapes, and
// normalizes them into identical [model.FontDeclaration] values keyed by
// PostScript name. The walk visits object fields in the document's native
// field order, so identity collisions within a page resolve by visitation
// order: the last declaration scanned wins.
package artboard
