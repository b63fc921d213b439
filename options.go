package xdfonts

// ScanOptions holds configuration for an inventory run.
type ScanOptions struct {
	// Artboard selection by name (nil means all artboards)
	artboards []string
}

// defaultOptions returns the default scan options.
func defaultOptions() ScanOptions {
	return ScanOptions{
		artboards: nil, // nil means all artboards
	}
}

// clone creates a deep copy of ScanOptions.
func (o ScanOptions) clone() ScanOptions {
	newOpts := ScanOptions{}

	// Deep copy artboards slice
	if o.artboards != nil {
		newOpts.artboards = make([]string, len(o.artboards))
		copy(newOpts.artboards, o.artboards)
	}

	return newOpts
}

// selects reports whether an artboard with the given name is in scope.
func (o ScanOptions) selects(name string) bool {
	if o.artboards == nil {
		return true
	}
	for _, n := range o.artboards {
		if n == name {
			return true
		}
	}
	return false
}
