// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingConverter writes some bytes and then fails, like a parser that
// hits malformed input halfway through.
type failingConverter struct {
	partial string
	err     error
}

func (f *failingConverter) Convert(_ io.Reader, w io.Writer) error {
	io.WriteString(w, f.partial)
	return f.err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runConverter(t *testing.T, c Converter, input []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, c.Convert(bytes.NewReader(input), &out))
	return out.Bytes()
}

func TestFile(t *testing.T) {
	tests := []struct {
		name      string
		converter Converter
		preCreate bool
		wantErr   bool
		wantOut   string
	}{
		{
			name:      "successful conversion",
			converter: ConverterFunc(func(r io.Reader, w io.Writer) error { _, err := io.WriteString(w, "converted"); return err }),
			wantOut:   "converted",
		},
		{
			name:      "overwrites existing output",
			converter: Copy,
			preCreate: true,
			wantOut:   "source body",
		},
		{
			name:      "failure removes partial output",
			converter: &failingConverter{partial: "half", err: errors.New("bad input")},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := writeFile(t, dir, "source.txt", "source body")
			out := filepath.Join(dir, "result.txt")
			if tt.preCreate {
				writeFile(t, dir, "result.txt", "stale content that is longer than the source")
			}

			err := File(tt.converter, in, out)
			if tt.wantErr {
				require.Error(t, err)
				_, statErr := os.Stat(out)
				assert.True(t, os.IsNotExist(statErr), "output should be removed after failure")
				return
			}
			require.NoError(t, err)
			got, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, string(got))
		})
	}
}

func TestFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	err := File(Copy, filepath.Join(dir, "missing.txt"), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening input")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output should be created")
}

func TestFileRefusesToOverwriteInput(t *testing.T) {
	tests := []struct {
		name      string
		converter Converter
	}{
		{"copy onto itself", Copy},
		{"failing converter onto itself", &failingConverter{partial: "half", err: errors.New("bad input")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := writeFile(t, dir, "notes.txt", "precious data")

			// A differently spelled path to the same file must be caught too.
			sep := string(os.PathSeparator)
			same := dir + sep + "." + sep + "notes.txt"
			err := File(tt.converter, in, same)
			require.ErrorIs(t, err, ErrOutputIsInput)

			got, err := os.ReadFile(in)
			require.NoError(t, err)
			assert.Equal(t, "precious data", string(got))
		})
	}
}

func TestCopyIsByteIdentical(t *testing.T) {
	input := []byte("line one\r\nline two\x00\xff binary tail")
	assert.Equal(t, input, runConverter(t, Copy, input))
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain utf-8", []byte("héllo"), "héllo"},
		{"utf-8 bom is dropped", append([]byte{0xEF, 0xBB, 0xBF}, "abc"...), "abc"},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "hi"},
		{"invalid bytes are replaced", []byte{'a', 0xff, 'b'}, "a�b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeText(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeWinAnsi(t *testing.T) {
	assert.Equal(t, "a b", encodeWinAnsi("a\nb"))
	assert.Equal(t, "caf\xe9", encodeWinAnsi("café"))
	assert.Equal(t, "x?y", encodeWinAnsi("x世y"))
	assert.Len(t, encodeWinAnsi(strings.Repeat("é", 5)), 5)
}
