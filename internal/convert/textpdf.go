// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"unicode"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/pdiddy/docconv/pkg/types"
)

const (
	pdfFontFamily = "Times"
	pdfCreator    = "docconv"
)

// Paginate cuts text into lines of cfg.CharsPerLine characters and groups
// the lines into pages of cfg.LinesPerPage. Breaks fall on character
// boundaries, not words, so a word may be split across lines. The last line
// holds the remainder. Empty text yields a single empty page.
func Paginate(text string, cfg types.PDFConfig) [][]string {
	cfg = cfg.WithDefaults()
	runes := []rune(text)

	var lines []string
	for start := 0; start < len(runes); start += cfg.CharsPerLine {
		end := min(start+cfg.CharsPerLine, len(runes))
		lines = append(lines, string(runes[start:end]))
	}

	if len(lines) == 0 {
		return [][]string{nil}
	}

	pages := make([][]string, 0, (len(lines)+cfg.LinesPerPage-1)/cfg.LinesPerPage)
	for start := 0; start < len(lines); start += cfg.LinesPerPage {
		end := min(start+cfg.LinesPerPage, len(lines))
		pages = append(pages, lines[start:end])
	}
	return pages
}

// TextToPDF renders plain text onto A4 pages using the fixed-width
// pagination of Paginate.
type TextToPDF struct {
	Config types.PDFConfig
}

// Convert implements Converter.
func (c TextToPDF) Convert(r io.Reader, w io.Writer) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	text, err := decodeText(data)
	if err != nil {
		return err
	}

	cfg := c.Config.WithDefaults()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCreator(pdfCreator, false)
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont(pdfFontFamily, "", cfg.FontSize)
	_, pageHeight := doc.GetPageSize()

	for _, page := range Paginate(text, cfg) {
		doc.AddPage()
		for j, line := range page {
			// TopY is measured from the bottom edge; gofpdf measures from the top.
			y := pageHeight - (cfg.TopY - float64(j)*cfg.LineSpacing)
			doc.Text(cfg.LeftX, y, encodeWinAnsi(line))
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// encodeWinAnsi maps s to the Windows-1252 bytes expected by the core
// fonts. Control characters become spaces and unmappable runes become '?',
// so the byte count matches the character count.
func encodeWinAnsi(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			out = append(out, ' ')
			continue
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
