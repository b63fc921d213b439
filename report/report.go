// Package report renders inventory results as line-oriented console output.
package report

import (
	"fmt"
	"io"

	"github.com/tsawler/xdfonts/embedded"
	"github.com/tsawler/xdfonts/model"
)

// Write renders the catalog to w, one block per font in catalog order:
//
//	Helvetica Neue:Bold
//	  - Home [ab1]
//	  - Checkout [ab2]
func Write(w io.Writer, c *model.Catalog) error {
	for _, d := range c.Fonts() {
		if _, err := fmt.Fprintf(w, "%s:%s\n", d.Family, d.Style); err != nil {
			return err
		}
		for _, u := range d.Usages {
			if _, err := fmt.Fprintf(w, "  - %s\n", u); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteEmbedded renders the archive's embedded font resources to w, one line
// per font:
//
//	resources/fonts/Lato-Regular.ttf: Lato-Regular (Lato)
func WriteEmbedded(w io.Writer, fonts []embedded.Font) error {
	for _, f := range fonts {
		if _, err := fmt.Fprintf(w, "%s: %s (%s)\n", f.Entry, f.PostScriptName, f.Family); err != nil {
			return err
		}
	}
	return nil
}
