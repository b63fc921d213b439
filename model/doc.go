// Package model provides the shared data structures for font inventory
// results.
//
// This package defines the user-facing types that every scanning operation
// ultimately produces, making them the primary API for consuming inventory
// results.
//
// # Font Declarations
//
// A [FontDeclaration] records one discovered font: its display family, its
// style, its canonical PostScript name, and the list of artboards it was
// found on. Declarations are deduplicated by PostScript name.
//
// # Font Maps and the Catalog
//
// A [FontMap] is an insertion-ordered map from PostScript name to
// declaration. Each artboard scan produces a fresh FontMap; the run-level
// [Catalog] folds those page-local maps together with [Catalog.Merge],
// keeping the first-seen family and style for every PostScript name and
// accumulating deduplicated usage labels.
//
// Insertion order is preserved throughout, so iterating a catalog yields
// fonts in first-discovered order, which keeps report output deterministic.
package model
