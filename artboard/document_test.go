package artboard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/xdfonts/model"
)

func mustParse(t *testing.T, doc string) *Document {
	t.Helper()
	d, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return d
}

func postScriptNames(m *model.FontMap) []string {
	var names []string
	for _, d := range m.Declarations() {
		names = append(names, d.PostScriptName)
	}
	return names
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte(`{"version":`)); !errors.Is(err, ErrMalformed) {
		t.Errorf("Parse() error = %v, want ErrMalformed", err)
	}
}

func TestFontsBothShapes(t *testing.T) {
	d := mustParse(t, `{
	  "a": {"font": {"family": "Foo", "style": "Bold", "postscriptName": "Foo-Bold"}},
	  "b": [{"fontFamily": "Bar", "fontStyle": null, "postscriptName": "Bar-Reg"}]
	}`)

	fonts := d.Fonts()
	if fonts.Len() != 2 {
		t.Fatalf("Fonts() found %d fonts, want 2: %v", fonts.Len(), postScriptNames(fonts))
	}

	foo, ok := fonts.Get("Foo-Bold")
	if !ok {
		t.Fatal("Foo-Bold not found")
	}
	if foo.Family != "Foo" || foo.Style != "Bold" {
		t.Errorf("Foo-Bold = %q/%q", foo.Family, foo.Style)
	}

	bar, ok := fonts.Get("Bar-Reg")
	if !ok {
		t.Fatal("Bar-Reg not found")
	}
	if bar.Style != "" {
		t.Errorf("null fontStyle = %q, want empty string", bar.Style)
	}
}

func TestFontsNullStyleNestedShape(t *testing.T) {
	d := mustParse(t, `{"font": {"family": "Baz", "postscriptName": "Baz-Reg"}}`)

	baz, ok := d.Fonts().Get("Baz-Reg")
	if !ok {
		t.Fatal("Baz-Reg not found")
	}
	if baz.Style != "" {
		t.Errorf("missing style = %q, want empty string", baz.Style)
	}
}

func TestFontsDeepNesting(t *testing.T) {
	d := mustParse(t, `{
	  "children": [
	    {"group": {"children": [
	      {"text": {"attributes": {"font": {"family": "Deep", "style": "Light", "postscriptName": "Deep-Light"}}}}
	    ]}}
	  ]
	}`)

	if _, ok := d.Fonts().Get("Deep-Light"); !ok {
		t.Error("declaration nested four levels down not found")
	}
}

func TestFontsRecursesThroughFontValue(t *testing.T) {
	// A "font" object that itself contains an inline declaration deeper
	// inside: the fragment is reported through shape B and still traversed.
	d := mustParse(t, `{
	  "font": {
	    "family": "Outer",
	    "postscriptName": "Outer-Reg",
	    "fallback": {"fontFamily": "Inner", "fontStyle": "Thin", "postscriptName": "Inner-Thin"}
	  }
	}`)

	fonts := d.Fonts()
	want := []string{"Outer-Reg", "Inner-Thin"}
	if diff := cmp.Diff(want, postScriptNames(fonts)); diff != "" {
		t.Errorf("fonts mismatch (-want +got):\n%s", diff)
	}
}

func TestFontsDualShapeSameFragment(t *testing.T) {
	// A mapping can both carry an inline declaration and hold a "font"
	// field; both are reported.
	d := mustParse(t, `{
	  "fontFamily": "Inline",
	  "postscriptName": "Inline-Reg",
	  "font": {"family": "Nested", "postscriptName": "Nested-Reg"}
	}`)

	fonts := d.Fonts()
	if fonts.Len() != 2 {
		t.Fatalf("Fonts() found %d fonts, want 2: %v", fonts.Len(), postScriptNames(fonts))
	}
}

func TestFontsWithinPageCollisionLastWins(t *testing.T) {
	d := mustParse(t, `[
	  {"fontFamily": "First", "fontStyle": "Regular", "postscriptName": "Same-PS"},
	  {"fontFamily": "Second", "fontStyle": "Bold", "postscriptName": "Same-PS"}
	]`)

	fonts := d.Fonts()
	if fonts.Len() != 1 {
		t.Fatalf("Fonts() found %d fonts, want 1", fonts.Len())
	}
	decl, _ := fonts.Get("Same-PS")
	if decl.Family != "Second" {
		t.Errorf("Family = %q, want the later declaration to win within a page", decl.Family)
	}
}

func TestFontsArrayRoot(t *testing.T) {
	d := mustParse(t, `[[{"fontFamily": "A", "postscriptName": "A-Reg"}], "scalar", null, 7]`)

	if _, ok := d.Fonts().Get("A-Reg"); !ok {
		t.Error("declaration inside nested array not found")
	}
}

func TestFontsScalarsTerminate(t *testing.T) {
	for _, doc := range []string{`"just a string"`, `42`, `null`, `true`, `{}`, `[]`} {
		d := mustParse(t, doc)
		if n := d.Fonts().Len(); n != 0 {
			t.Errorf("Fonts(%s) found %d fonts, want 0", doc, n)
		}
	}
}

func TestFontsRebuiltOnEachCall(t *testing.T) {
	d := mustParse(t, `{"fontFamily": "Lato", "postscriptName": "Lato-Regular"}`)

	first := d.Fonts()
	second := d.Fonts()
	if first == second {
		t.Fatal("Fonts() returned the same map twice")
	}
	if second.Len() != 1 {
		t.Errorf("second scan found %d fonts, want 1", second.Len())
	}
}
