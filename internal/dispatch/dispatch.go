// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dispatch routes a ConversionRequest to the converter registered
// for its (input, output) format pair.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/pdiddy/docconv/internal/convert"
	"github.com/pdiddy/docconv/pkg/types"
)

// UnsupportedError reports a pair of valid formats with no converter.
type UnsupportedError struct {
	Pair      types.Pair
	Supported []types.Pair
}

func (e *UnsupportedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot convert %s to %s\nsee possible conversions:", e.Pair.From, e.Pair.To)
	for _, p := range e.Supported {
		b.WriteString("\n  ")
		b.WriteString(p.String())
	}
	return b.String()
}

type entry struct {
	pair      types.Pair
	converter convert.Converter
}

// Dispatcher selects and runs converters. It holds no mutable state.
type Dispatcher struct {
	order  []types.Pair
	table  map[types.Pair]convert.Converter
	logger *zap.Logger
}

// New builds a dispatcher with the fixed conversion table.
func New(cfg types.PDFConfig, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.WithDefaults()

	entries := []entry{
		{types.Pair{From: types.FormatTXT, To: types.FormatPDF}, convert.TextToPDF{Config: cfg}},
		{types.Pair{From: types.FormatPDF, To: types.FormatTXT}, convert.PDFToText{Lenient: cfg.LenientExtract, Logger: logger}},
		{types.Pair{From: types.FormatJSON, To: types.FormatXML}, convert.JSONToXML{}},
		{types.Pair{From: types.FormatXML, To: types.FormatJSON}, convert.XMLToJSON{}},
		{types.Pair{From: types.FormatCSV, To: types.FormatHTML}, convert.CSVToHTML{}},
		{types.Pair{From: types.FormatTXT, To: types.FormatDOCX}, convert.TextToDOCX{}},
	}

	return &Dispatcher{
		order:  lo.Map(entries, func(e entry, _ int) types.Pair { return e.pair }),
		table:  lo.SliceToMap(entries, func(e entry) (types.Pair, convert.Converter) { return e.pair, e.converter }),
		logger: logger,
	}
}

// Supported returns the registered conversion pairs, excluding identity copies.
func (d *Dispatcher) Supported() []types.Pair {
	out := make([]types.Pair, len(d.order))
	copy(out, d.order)
	return out
}

// Lookup returns the converter for pair. Identity pairs always resolve to
// a byte copy. Unregistered pairs return *UnsupportedError.
func (d *Dispatcher) Lookup(pair types.Pair) (convert.Converter, error) {
	if pair.Identity() {
		return convert.Copy, nil
	}
	c, ok := d.table[pair]
	if !ok {
		return nil, &UnsupportedError{Pair: pair, Supported: d.Supported()}
	}
	return c, nil
}

// Dispatch runs the conversion described by req and returns the path of the
// written file. For unsupported pairs no file is created.
func (d *Dispatcher) Dispatch(req types.ConversionRequest) (string, error) {
	pair := req.Pair()
	c, err := d.Lookup(pair)
	if err != nil {
		d.logger.Debug("no converter", zap.Stringer("pair", pair))
		return "", err
	}

	out := req.OutputFile()
	d.logger.Debug("converting",
		zap.String("input", req.InputPath),
		zap.String("output", out),
		zap.Stringer("pair", pair),
		zap.Bool("copy", pair.Identity()))

	if err := convert.File(c, req.InputPath, out); err != nil {
		d.logger.Debug("conversion failed", zap.Stringer("pair", pair), zap.Error(err))
		return "", fmt.Errorf("converting %s: %w", pair, err)
	}
	return out, nil
}
