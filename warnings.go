package xdfonts

import "strings"

// Warning describes a non-fatal issue encountered during an inventory run,
// typically an artboard that had to be skipped. The run's results are still
// valid; they just cover less of the archive.
type Warning struct {
	// Artboard is the usage label of the affected artboard, or empty for
	// archive-level warnings.
	Artboard string
	// Message describes what went wrong.
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Artboard == "" {
		return w.Message
	}
	return "artboard " + w.Artboard + ": " + w.Message
}

// FormatWarnings joins warnings into a single printable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}
