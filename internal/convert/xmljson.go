// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/clbanning/mxj/v2"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	// xmlRootTag wraps JSON documents that are not a single-key object.
	xmlRootTag = "doc"
	// xmlItemTag names the repeated elements of a top-level JSON array or scalar.
	xmlItemTag = "item"
	// attrPrefix marks map keys that came from (or become) XML attributes.
	attrPrefix = "-"
	// textKey holds element text next to attributes or children.
	textKey = "#text"
)

// errInvalidXMLName is returned by JSONToXML for keys that cannot be used
// as element or attribute names.
var errInvalidXMLName = errors.New("invalid XML name")

func init() {
	mxj.XmlCharsetReader = charsetReader
}

// charsetReader decodes XML documents that declare a non-UTF-8 encoding.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.MIME.Encoding(charset)
	if err != nil || enc == nil {
		enc, err = ianaindex.IANA.Encoding(charset)
	}
	if err != nil {
		return nil, fmt.Errorf("unknown XML encoding %q: %w", charset, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported XML encoding %q", charset)
	}
	return enc.NewDecoder().Reader(input), nil
}

// XMLToJSON parses XML into a generic tree and serializes it as JSON.
// Attributes appear as "-name" keys next to the child elements, element
// text offset by attributes or children is stored under "#text", and empty
// elements become null. Values stay strings.
type XMLToJSON struct{}

// Convert implements Converter.
func (XMLToJSON) Convert(r io.Reader, w io.Writer) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("parsing XML: %w", errEmptyInput)
	}

	m, err := mxj.NewMapXml(data)
	if err != nil {
		return fmt.Errorf("parsing XML: %w", err)
	}
	nullEmpty(m)

	out, err := m.Json()
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// nullEmpty replaces empty element values with nil, leaving attributes alone.
func nullEmpty(m map[string]interface{}) {
	for k, v := range m {
		if strings.HasPrefix(k, attrPrefix) {
			continue
		}
		m[k] = nullValue(v)
	}
}

func nullValue(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
	case map[string]interface{}:
		nullEmpty(t)
	case []interface{}:
		for i := range t {
			t[i] = nullValue(t[i])
		}
	}
	return v
}

// JSONToXML parses JSON into a generic tree and serializes it as XML. A
// single-key object supplies the root element; any other object is wrapped
// in <doc>. Top-level arrays and scalars become <doc><item>...</item></doc>.
// Keys prefixed with "-" are written as attributes.
type JSONToXML struct{}

// Convert implements Converter.
func (JSONToXML) Convert(r io.Reader, w io.Writer) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("parsing JSON: %w", errEmptyInput)
	}

	var out []byte
	if data[0] == '{' {
		m, err := mxj.NewMapJson(data)
		if err != nil {
			return fmt.Errorf("parsing JSON: %w", err)
		}
		if err := checkXMLNames(map[string]interface{}(m)); err != nil {
			return err
		}
		out, err = m.Xml()
		if err != nil {
			return fmt.Errorf("encoding XML: %w", err)
		}
	} else {
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("parsing JSON: %w", err)
		}
		if err := checkXMLNames(v); err != nil {
			return err
		}
		out, err = mxj.Map{xmlItemTag: v}.Xml(xmlRootTag)
		if err != nil {
			return fmt.Errorf("encoding XML: %w", err)
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing XML: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing XML: %w", err)
	}
	return nil
}

// checkXMLNames rejects any object key in v that is not a valid element
// name, or, for "-" prefixed keys, a valid attribute name.
func checkXMLNames(v interface{}) error {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, child := range t {
			if k != textKey {
				name := strings.TrimPrefix(k, attrPrefix)
				if !isXMLName(name) {
					return fmt.Errorf("%w: %q", errInvalidXMLName, k)
				}
			}
			if err := checkXMLNames(child); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, child := range t {
			if err := checkXMLNames(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// isXMLName reports whether s is a valid XML 1.0 name: a letter, '_' or ':'
// followed by letters, digits, '_', ':', '-', '.' or combining marks.
func isXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_', r == ':':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.' ||
			unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || r == '\u00B7'):
		default:
			return false
		}
	}
	return true
}
