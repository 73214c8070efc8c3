// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the pairwise document converters. Each
// converter reads its whole input into memory, transforms it, and writes
// the whole output in one pass.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Converter transforms one document format into another.
type Converter interface {
	// Convert reads the source document from r and writes the result to w.
	Convert(r io.Reader, w io.Writer) error
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(r io.Reader, w io.Writer) error

// Convert calls f(r, w).
func (f ConverterFunc) Convert(r io.Reader, w io.Writer) error {
	return f(r, w)
}

// Copy duplicates the input byte for byte.
var Copy Converter = ConverterFunc(func(r io.Reader, w io.Writer) error {
	_, err := io.Copy(w, r)
	return err
})

// ErrOutputIsInput is returned by File when the destination resolves to the
// source file.
var ErrOutputIsInput = errors.New("output file is the input file")

// File runs c with inPath as the source and outPath as the destination.
// An existing file at outPath is overwritten unless it is the input itself.
// If the conversion fails the partially written output is removed.
func File(c Converter, inPath, outPath string) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input %s: %w", inPath, err)
	}
	defer in.Close()

	inInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("inspecting input %s: %w", inPath, err)
	}
	if outInfo, err := os.Stat(outPath); err == nil && os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, outPath)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", outPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output %s: %w", outPath, cerr)
		}
		if err != nil {
			os.Remove(outPath)
		}
	}()

	if err := c.Convert(in, out); err != nil {
		return err
	}
	return nil
}

// readAll is io.ReadAll with an error that names the failing step.
func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// errEmptyInput is returned by converters that cannot work on zero bytes.
var errEmptyInput = errors.New("input is empty")
