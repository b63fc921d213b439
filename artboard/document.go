package artboard

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/buger/jsonparser"

	"github.com/tsawler/xdfonts/model"
)

// ErrMalformed reports graphic content that is not well-formed JSON.
var ErrMalformed = errors.New("artboard: malformed graphic content")

// Fields recognized during the scan.
const (
	inlineFamilyField = "fontFamily"
	inlineStyleField  = "fontStyle"
	nestedFontField   = "font"
	nestedFamilyField = "family"
	nestedStyleField  = "style"
	postScriptField   = "postscriptName"
)

// Document is the parsed graphic content of one artboard. The raw JSON is
// retained so the scan can preserve the document's native field order.
type Document struct {
	data []byte
}

// Parse validates and wraps graphic content bytes.
func Parse(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, ErrMalformed
	}
	return &Document{data: data}, nil
}

// Fonts scans the document and returns a fresh map of every font declared
// anywhere in it, keyed by PostScript name. The map is rebuilt from scratch
// on every call.
func (d *Document) Fonts() *model.FontMap {
	fonts := model.NewFontMap()
	scanValue(d.data, rootValueType(d.data), fonts)
	return fonts
}

// scanValue walks one JSON value depth-first, recording font declarations
// into fonts. Scalars and null terminate the recursion.
func scanValue(value []byte, valueType jsonparser.ValueType, fonts *model.FontMap) {
	switch valueType {
	case jsonparser.Array:
		jsonparser.ArrayEach(value, func(elem []byte, elemType jsonparser.ValueType, _ int, _ error) {
			scanValue(elem, elemType, fonts)
		})
	case jsonparser.Object:
		// Shape A: the object itself carries the declaration fields.
		if decl, ok := inlineDeclaration(value); ok {
			fonts.Set(decl)
		}
		// Every field is visited in document order. A "font" field holding
		// an object is additionally read as a shape-B declaration, and its
		// value is still recursed into like any other.
		jsonparser.ObjectEach(value, func(key, fieldValue []byte, fieldType jsonparser.ValueType, _ int) error {
			if string(key) == nestedFontField && fieldType == jsonparser.Object {
				fonts.Set(nestedDeclaration(fieldValue))
			}
			scanValue(fieldValue, fieldType, fonts)
			return nil
		})
	}
}

// inlineDeclaration reads a shape-A declaration from an object that carries
// a fontFamily field. The second return is false when the object is not a
// font declaration at all.
func inlineDeclaration(obj []byte) (*model.FontDeclaration, bool) {
	if _, fieldType, _, _ := jsonparser.Get(obj, inlineFamilyField); fieldType == jsonparser.NotExist {
		return nil, false
	}
	return model.NewFontDeclaration(
		stringField(obj, inlineFamilyField),
		stringField(obj, inlineStyleField),
		stringField(obj, postScriptField),
	), true
}

// nestedDeclaration reads a shape-B declaration from the object value of a
// "font" field.
func nestedDeclaration(obj []byte) *model.FontDeclaration {
	return model.NewFontDeclaration(
		stringField(obj, nestedFamilyField),
		stringField(obj, nestedStyleField),
		stringField(obj, postScriptField),
	)
}

// stringField returns the named string field, normalizing missing, null, or
// non-string values to the empty string.
func stringField(obj []byte, key string) string {
	s, err := jsonparser.GetString(obj, key)
	if err != nil {
		return ""
	}
	return s
}

// rootValueType classifies the document's top-level value so scanValue can
// dispatch on it.
func rootValueType(data []byte) jsonparser.ValueType {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return jsonparser.Unknown
	}
	switch trimmed[0] {
	case '{':
		return jsonparser.Object
	case '[':
		return jsonparser.Array
	}
	return jsonparser.Unknown
}
