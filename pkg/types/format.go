// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a lower-case extension tag identifying a document format
// (e.g. "txt", "pdf").
type Format string

const (
	FormatTXT  Format = "txt"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatHTML Format = "html"
)

// ErrUnknownFormat is returned by ParseFormat for tags outside the
// supported set.
var ErrUnknownFormat = errors.New("unknown format")

var supportedFormats = []Format{
	FormatTXT, FormatPDF, FormatDOCX, FormatCSV,
	FormatXLSX, FormatJSON, FormatXML, FormatHTML,
}

// SupportedFormats returns the accepted extension tags. Not every
// combination of them has a converter.
func SupportedFormats() []Format {
	out := make([]Format, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}

// Valid reports whether f is one of the supported tags.
func (f Format) Valid() bool {
	for _, s := range supportedFormats {
		if f == s {
			return true
		}
	}
	return false
}

// ParseFormat normalizes s (case, leading dot) and validates it.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// FormatFromPath returns the lower-cased extension of path without the dot.
// The result is not validated; it is empty when path has no extension.
func FormatFromPath(path string) Format {
	return Format(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
}

// Pair is an ordered (input, output) format combination.
type Pair struct {
	From Format `json:"from" yaml:"from"`
	To   Format `json:"to" yaml:"to"`
}

// String renders the pair as "from => to".
func (p Pair) String() string {
	return fmt.Sprintf("%s => %s", p.From, p.To)
}

// Identity reports whether the pair converts a format to itself.
func (p Pair) Identity() bool {
	return p.From == p.To
}
