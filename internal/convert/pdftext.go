// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PDFToText extracts the embedded text layer of a PDF. Scanned pages
// without a text layer produce no output.
type PDFToText struct {
	// Lenient writes an empty document instead of failing when
	// extraction fails.
	Lenient bool
	Logger  *zap.Logger
}

// Convert implements Converter.
func (c PDFToText) Convert(r io.Reader, w io.Writer) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}

	text, err := extractText(data)
	if err != nil {
		if !c.Lenient {
			return err
		}
		c.logger().Warn("pdf text extraction failed, writing empty output", zap.Error(err))
		text = ""
	}

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing text: %w", err)
	}
	return nil
}

func (c PDFToText) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// extractText returns the plain text of every page. The reader panics on
// some malformed inputs; those are reported as errors.
func extractText(data []byte) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("extracting PDF text: malformed document: %v", p)
		}
	}()

	if len(data) == 0 {
		return "", fmt.Errorf("extracting PDF text: %w", errEmptyInput)
	}

	rd, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	plain, err := rd.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting PDF text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading extracted text: %w", err)
	}
	return buf.String(), nil
}
