// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

const (
	htmlOpen  = "<!DOCTYPE html><html><body><table>"
	htmlClose = "</table></body></html>"
)

// CSVToHTML renders a CSV file as one HTML table. The first record becomes
// the <th> header row; every later record becomes a <tr> of <td> cells in
// input order. Cell text is copied verbatim: no escaping and no type
// inference. All records must have as many fields as the header.
type CSVToHTML struct{}

// Convert implements Converter.
func (CSVToHTML) Convert(r io.Reader, w io.Writer) error {
	cr := csv.NewReader(r)
	bw := bufio.NewWriter(w)

	bw.WriteString(htmlOpen)

	header, err := cr.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading CSV header: %w", err)
	}
	writeRow(bw, "th", header)

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading CSV record: %w", err)
		}
		writeRow(bw, "td", record)
	}

	bw.WriteString(htmlClose)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}
	return nil
}

func writeRow(w *bufio.Writer, cell string, fields []string) {
	w.WriteString("<tr>")
	for _, f := range fields {
		fmt.Fprintf(w, "<%s>%s</%s>", cell, f, cell)
	}
	w.WriteString("</tr>")
}
