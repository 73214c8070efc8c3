// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/docconv/pkg/types"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	return New(types.DefaultPDFConfig(), zaptest.NewLogger(t))
}

func request(t *testing.T, name, content string, to types.Format) types.ConversionRequest {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	from := types.FormatFromPath(name)
	suffix := "-converted"
	if from == to {
		suffix = "-copied"
	}
	return types.ConversionRequest{
		InputPath:    in,
		InputFormat:  from,
		OutputDir:    outDir,
		OutputFormat: to,
		NameFile:     strings.TrimSuffix(name, filepath.Ext(name)) + suffix,
	}
}

func TestSupported(t *testing.T) {
	got := newTestDispatcher(t).Supported()
	want := []types.Pair{
		{From: types.FormatTXT, To: types.FormatPDF},
		{From: types.FormatPDF, To: types.FormatTXT},
		{From: types.FormatJSON, To: types.FormatXML},
		{From: types.FormatXML, To: types.FormatJSON},
		{From: types.FormatCSV, To: types.FormatHTML},
		{From: types.FormatTXT, To: types.FormatDOCX},
	}
	assert.Equal(t, want, got)
}

func TestLookupUnsupported(t *testing.T) {
	d := newTestDispatcher(t)
	for _, p := range []types.Pair{
		{From: types.FormatPDF, To: types.FormatXLSX},
		{From: types.FormatCSV, To: types.FormatJSON},
		{From: types.FormatXLSX, To: types.FormatCSV},
		{From: types.FormatHTML, To: types.FormatCSV},
	} {
		t.Run(p.String(), func(t *testing.T) {
			_, err := d.Lookup(p)
			var unsupported *UnsupportedError
			require.True(t, errors.As(err, &unsupported), "err = %v", err)
			assert.Equal(t, p, unsupported.Pair)
			assert.Contains(t, err.Error(), "cannot convert "+string(p.From)+" to "+string(p.To))
			assert.Contains(t, err.Error(), "txt => pdf")
			assert.Contains(t, err.Error(), "csv => html")
		})
	}
}

func TestLookupIdentityForEveryFormat(t *testing.T) {
	d := newTestDispatcher(t)
	for _, f := range types.SupportedFormats() {
		c, err := d.Lookup(types.Pair{From: f, To: f})
		require.NoError(t, err, f)
		assert.NotNil(t, c)
	}
}

func TestDispatchAllPairs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		content string
		to      types.Format
	}{
		{"txt to pdf", "notes.txt", strings.Repeat("lorem ipsum ", 50), types.FormatPDF},
		{"txt to docx", "notes.txt", "hello docx", types.FormatDOCX},
		{"json to xml", "data.json", `{"root":{"a":"1"}}`, types.FormatXML},
		{"xml to json", "data.xml", `<root><a>1</a></root>`, types.FormatJSON},
		{"csv to html", "table.csv", "h1,h2\nv1,v2\n", types.FormatHTML},
		{"identity copy", "notes.txt", "copy me", types.FormatTXT},
		{"identity copy of xlsx", "sheet.xlsx", "PK\x03\x04 not really", types.FormatXLSX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request(t, tt.input, tt.content, tt.to)
			out, err := newTestDispatcher(t).Dispatch(req)
			require.NoError(t, err)
			assert.Equal(t, req.OutputFile(), out)

			info, err := os.Stat(out)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestDispatchPDFRoundTrip(t *testing.T) {
	d := newTestDispatcher(t)

	req := request(t, "memo.txt", "Quarterly", types.FormatPDF)
	pdfPath, err := d.Dispatch(req)
	require.NoError(t, err)

	back := types.ConversionRequest{
		InputPath:    pdfPath,
		InputFormat:  types.FormatPDF,
		OutputDir:    req.OutputDir,
		OutputFormat: types.FormatTXT,
		NameFile:     "memo-back",
	}
	txtPath, err := d.Dispatch(back)
	require.NoError(t, err)

	data, err := os.ReadFile(txtPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Quarterly")
}

func TestDispatchIdentityIsByteIdentical(t *testing.T) {
	content := strings.Repeat("n", 500)
	req := request(t, "notes.txt", content, types.FormatTXT)

	out, err := newTestDispatcher(t).Dispatch(req)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(req.OutputDir, "notes-copied.txt"), out)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestDispatchUnsupportedWritesNothing(t *testing.T) {
	req := request(t, "scan.pdf", "%PDF-1.4", types.FormatXLSX)

	_, err := newTestDispatcher(t).Dispatch(req)
	var unsupported *UnsupportedError
	require.True(t, errors.As(err, &unsupported))

	entries, err := os.ReadDir(req.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDispatchConversionErrorLeavesNoFile(t *testing.T) {
	req := request(t, "broken.json", `{"a": [1, 2`, types.FormatXML)

	_, err := newTestDispatcher(t).Dispatch(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json => xml")

	_, statErr := os.Stat(req.OutputFile())
	assert.True(t, os.IsNotExist(statErr))
}

func TestDispatchLenientPDFExtraction(t *testing.T) {
	cfg := types.DefaultPDFConfig()
	cfg.LenientExtract = true
	d := New(cfg, zaptest.NewLogger(t))

	req := request(t, "fake.pdf", "not a pdf at all", types.FormatTXT)
	out, err := d.Dispatch(req)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}
