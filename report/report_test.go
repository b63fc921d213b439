package report

import (
	"strings"
	"testing"

	"github.com/tsawler/xdfonts/embedded"
	"github.com/tsawler/xdfonts/model"
)

func TestWrite(t *testing.T) {
	c := model.NewCatalog()

	page1 := model.NewFontMap()
	page1.Set(model.NewFontDeclaration("Helvetica Neue", "Bold", "HelveticaNeue-Bold"))
	page1.Set(model.NewFontDeclaration("Lato", "", "Lato-Regular"))
	c.Merge(page1, "Home [ab1]")

	page2 := model.NewFontMap()
	page2.Set(model.NewFontDeclaration("Helvetica Neue", "Bold", "HelveticaNeue-Bold"))
	c.Merge(page2, "Checkout [ab2]")

	var sb strings.Builder
	if err := Write(&sb, c); err != nil {
		t.Fatal(err)
	}

	want := "Helvetica Neue:Bold\n" +
		"  - Home [ab1]\n" +
		"  - Checkout [ab2]\n" +
		"Lato:\n" +
		"  - Home [ab1]\n"
	if sb.String() != want {
		t.Errorf("Write() output:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestWriteEmptyCatalog(t *testing.T) {
	var sb strings.Builder
	if err := Write(&sb, model.NewCatalog()); err != nil {
		t.Fatal(err)
	}
	if sb.Len() != 0 {
		t.Errorf("Write() on empty catalog produced %q", sb.String())
	}
}

func TestWriteEmbedded(t *testing.T) {
	fonts := []embedded.Font{
		{Entry: "resources/fonts/Lato-Regular.ttf", PostScriptName: "Lato-Regular", Family: "Lato"},
	}

	var sb strings.Builder
	if err := WriteEmbedded(&sb, fonts); err != nil {
		t.Fatal(err)
	}

	want := "resources/fonts/Lato-Regular.ttf: Lato-Regular (Lato)\n"
	if sb.String() != want {
		t.Errorf("WriteEmbedded() = %q, want %q", sb.String(), want)
	}
}
